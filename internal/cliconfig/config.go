// Package cliconfig loads the optional YAML defaults file consumed by
// cmd/ipcalc, so the CLI's parsing defaults are not hardcoded.
package cliconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the optional YAML file. The ipcalc
// command applies PrefixMode; it reads AllowEmpty and AllowAll but does not
// apply them to parsing.
type Config struct {
	// PrefixMode selects the process-wide prefix configuration: one of
	// "all-subnets" (default), "zero-hosts-subnets", "explicit".
	PrefixMode string `yaml:"prefix_mode"`
	// AllowEmpty holds the file's allow_empty value; ipcalc does not apply it.
	AllowEmpty *bool `yaml:"allow_empty"`
	// AllowAll holds the file's allow_all value; ipcalc does not apply it.
	AllowAll *bool `yaml:"allow_all"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{PrefixMode: "all-subnets"}
}

// Load reads and parses a YAML config file. A missing path is not an
// error; the caller gets the default configuration back.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
