package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idntools/idnls/internal/serverlist"
)

const (
	appName    = "idnls"
	configFile = "config.yaml"
)

// Defaults applied when the config file is absent or a field is omitted.
const (
	DefaultGroup     = 0
	DefaultTimeoutMS = 500
	DefaultProvider  = "mdns"
)

// Config carries the user's defaults for discovery runs. Command-line flags
// override any of these.
type Config struct {
	// Group is the client group selector (0-15) discovery targets.
	Group int `yaml:"group"`

	// TimeoutMS bounds how long one discovery pass waits for responses.
	TimeoutMS int `yaml:"timeout_ms"`

	// Provider names the discovery provider to use.
	Provider string `yaml:"provider"`

	// LogLevel, when set, turns on diagnostic logging at that level.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns a Config with all defaults filled in.
func Default() *Config {
	return &Config{
		Group:     DefaultGroup,
		TimeoutMS: DefaultTimeoutMS,
		Provider:  DefaultProvider,
	}
}

// Timeout returns the configured discovery timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Validate checks the field ranges.
func (c *Config) Validate() error {
	if !serverlist.ValidGroup(c.Group) {
		return fmt.Errorf("group %d out of range 0-%d", c.Group, serverlist.MaxClientGroup)
	}
	if c.TimeoutMS <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", c.TimeoutMS)
	}
	if c.Provider == "" {
		return fmt.Errorf("provider must not be empty")
	}
	return nil
}

// Dir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/idnls or $HOME/.config/idnls
//   - macOS: $HOME/.config/idnls
//   - Windows: %LOCALAPPDATA%\idnls
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			return filepath.Join(userProfile, "AppData", "Local", appName), nil
		}
		return filepath.Join(localAppData, appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// Path returns the full path of the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the configuration file. A missing file is not an error and
// yields the defaults; a present but malformed or out-of-range file is.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the configuration file, creating the directory with
// user-only permissions when needed.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
