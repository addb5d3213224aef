package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "simon"
	configFile = "config.yaml"
	envPrefix  = "SIMON"
)

// Mutex for thread-safe file writes
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/simon or $HOME/.config/simon
//   - macOS: $HOME/.config/simon (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\simon
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// GetStateDir returns where runtime files such as the log live:
// $XDG_STATE_HOME/simon or $HOME/.local/state/simon. Windows uses the
// configuration directory.
func GetStateDir() (string, error) {
	if runtime.GOOS == "windows" {
		return GetConfigDir()
	}
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "state", appName), nil
}

// Load reads, normalizes and validates the settings at path. An empty path
// selects the default location. Env var overrides use prefix SIMON_.
func Load(path string) (*Settings, error) {
	if strings.TrimSpace(path) == "" {
		defaultPath, err := GetConfigPath()
		if err != nil {
			return nil, &ConfigError{Err: fmt.Errorf("failed to get config path: %w", err)}
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Path: path, Err: errors.New("file not found (create one with 'simon config init')")}
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	v := viper.New()
	v.SetDefault("tick_interval", "250ms")
	v.SetDefault("exit_key", "q")
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}

	if errs := unknownKeys(path, v.AllSettings()); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to decode settings: %w", err)}
	}
	settings.Path = path
	settings.normalize()

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// WriteExample writes the example configuration to path. An existing file
// is only replaced when force is set. The write is atomic.
func WriteExample(path string, force bool) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# simon configuration
#
# Each entry under "tabs" is one tab. Tabs are ordered by priority, then name.
# Command arguments may contain ` + "{0}" + `, which is replaced by the selected file.
#
# Location: ` + path + `
# Written: ` + time.Now().Format(time.RFC3339) + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
