package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultServerURL     = "http://localhost:8080"
	defaultClientTimeout = 10 * time.Second
)

// ClientConfig is the board CLI configuration stored in config.toml.
type ClientConfig struct {
	Server  ClientServerConfig  `toml:"server"`
	Logging ClientLoggingConfig `toml:"logging"`
}

type ClientServerConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout string `toml:"timeout"`
}

type ClientLoggingConfig struct {
	Level string `toml:"level"`
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Server: ClientServerConfig{
			URL:     defaultServerURL,
			Timeout: defaultClientTimeout.String(),
		},
		Logging: ClientLoggingConfig{Level: "info"},
	}
}

// ClientConfigPath returns ~/.config/notecards/config.toml.
func ClientConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notecards", "config.toml"), nil
}

// LoadClientConfig reads path on top of the defaults. A missing file is not
// an error.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RequestTimeout parses Server.Timeout, falling back to the default when the
// value is empty or invalid.
func (c ClientConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		return defaultClientTimeout
	}
	return d
}
