package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the environment variable prefix, e.g. LOCKBOX_SERVER_URL.
const envPrefix = "LOCKBOX_"

// configFilename is looked up inside the lockbox home directory.
const configFilename = "config.yaml"

// Config holds runtime options for building the app. Sources, later
// overriding earlier: defaults, config.yaml in the home directory,
// LOCKBOX_* environment variables, then CLI flags applied by the caller.
type Config struct {
	Home   string        `koanf:"home"`
	Server ServerSection `koanf:"server"`
	HTTP   HTTPSection   `koanf:"http"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures the backend endpoint.
type ServerSection struct {
	URL string `koanf:"url"`
}

// HTTPSection configures the outbound HTTP client.
type HTTPSection struct {
	Timeout time.Duration `koanf:"timeout"`
}

// LogSection configures CLI output.
type LogSection struct {
	Verbose bool `koanf:"verbose"`
	Debug   bool `koanf:"debug"`
}

// Default returns the default configuration. Home is left empty and
// resolved against the user's home directory during load.
func Default() Config {
	return Config{
		Server: ServerSection{URL: "http://127.0.0.1:8000"},
		HTTP:   HTTPSection{Timeout: 15 * time.Second},
	}
}

// LoadConfig builds the effective configuration. home may be empty, in
// which case ~/.lockbox is used.
func LoadConfig(home string) (Config, error) {
	cfg := Default()
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".lockbox")
	}
	cfg.Home = home

	k := koanf.New(".")

	// The config file is optional.
	path := filepath.Join(home, configFilename)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	// LOCKBOX_SERVER_URL -> server.url
	transform := func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "_", ".")
	}
	if err := k.Load(env.Provider(envPrefix, ".", transform), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Home = home
	return cfg, nil
}
