package config

import "fmt"

// ConfigError describes a configuration problem. Tab and Field are empty
// when the problem is not specific to one tab or field.
type ConfigError struct {
	// Path is the configuration file involved
	Path string
	// Tab is the name of the offending tab
	Tab string
	// Field is the offending setting (e.g. "media_dirs")
	Field string
	// Underlying error
	Err error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Tab != "" && e.Field != "":
		return fmt.Sprintf("configuration error for tab %q, %s: %v", e.Tab, e.Field, e.Err)
	case e.Tab != "":
		return fmt.Sprintf("configuration error for tab %q: %v", e.Tab, e.Err)
	case e.Field != "":
		return fmt.Sprintf("configuration error, %s: %v", e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("configuration error in %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
