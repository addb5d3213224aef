package launch

import (
	"errors"
	"strings"
)

// Placeholder is replaced by the selected file's path in every argument
// that contains it.
const Placeholder = "{0}"

// Template describes the player command configured for a tab.
type Template struct {
	Program string   `yaml:"program" mapstructure:"program"`
	Args    []string `yaml:"args" mapstructure:"args"`
}

// Validate checks that the template names a program.
func (t Template) Validate() error {
	if strings.TrimSpace(t.Program) == "" {
		return errors.New("command program is empty")
	}
	return nil
}

// HasPlaceholder reports whether any argument references the selected path.
func (t Template) HasPlaceholder() bool {
	for _, arg := range t.Args {
		if strings.Contains(arg, Placeholder) {
			return true
		}
	}
	return false
}

// Expand returns the argument list with every placeholder occurrence
// replaced by path. Arguments without the placeholder are returned as is.
func (t Template) Expand(path string) []string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = strings.ReplaceAll(arg, Placeholder, path)
	}
	return args
}

// String renders the template for logs and the UI footer.
func (t Template) String() string {
	if len(t.Args) == 0 {
		return t.Program
	}
	return t.Program + " " + strings.Join(t.Args, " ")
}
