package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "NLTERM_CONFIG"

// Load parses configuration from r on top of the defaults. Unknown fields
// cause an error.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads configuration from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // config path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Resolve finds and loads the configuration. An explicit path must exist;
// otherwise $NLTERM_CONFIG, then the user config directory, are tried, and
// the defaults are used when neither has a file.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return LoadFile(env)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "nlterm", "config.yaml")
		cfg, err := LoadFile(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return Default(), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
