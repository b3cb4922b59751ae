package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "filex"

// Config is the TOML configuration file. Apps maps an application
// command to the file extensions it opens; Default is used when no
// mapping matches. Columns selects the visible listing columns.
type Config struct {
	Default string              `toml:"default"`
	Apps    map[string][]string `toml:"apps"`
	Columns []string            `toml:"columns"`
}

// Load reads the configuration from the user config directory. A
// missing file yields the zero config; a malformed file is an error
// the caller should treat as fatal.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// AppFor returns the application command configured for the given
// lowercase file extension, falling back to the default application.
// The second result is false when neither is configured.
func (c *Config) AppFor(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	for app, exts := range c.Apps {
		for _, e := range exts {
			if strings.ToLower(e) == ext {
				return app, true
			}
		}
	}
	if c.Default != "" {
		return c.Default, true
	}
	return "", false
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("cannot determine config directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appName, "config.toml"), nil
}
