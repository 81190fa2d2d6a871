package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// renderConfig is the project configuration, read from render.yaml or
// render.toml.
type renderConfig struct {
	Indent   int    `yaml:"indent" toml:"indent"`
	LogLevel string `yaml:"log-level" toml:"log-level"`
}

const defaultConfigFile = "render.yaml"

var configCandidates = []string{"render.yaml", "render.yml", "render.toml"}

func defaultConfig() renderConfig {
	return renderConfig{
		Indent:   4,
		LogLevel: "INFO",
	}
}

// findConfig returns the first config file present in dir, or "" if there is
// none.
func findConfig(dir string) string {
	for _, name := range configCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (renderConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, tracerr.Wrap(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("%s: unknown config file extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return cfg, tracerr.Wrap(err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, tracerr.Wrap(fmt.Errorf("%s: %w", path, err))
	}
	return cfg, nil
}

func (c renderConfig) validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return nil
}

// writeDefaultConfig creates path holding the default configuration. It
// refuses to overwrite an existing file.
func writeDefaultConfig(path string) error {
	out, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return tracerr.Wrap(err)
	}

	fi, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer fi.Close()

	if _, err := fi.Write(out); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}
