package main

import (
	"github.com/spf13/viper"
)

// cliConfig holds the operationally-variable knobs a -config file may set.
// Command-line flags always override these (see main.go).
type cliConfig struct {
	Threshold int    `mapstructure:"threshold"`
	Limit     int    `mapstructure:"limit"`
	Workers   int    `mapstructure:"workers"`
	Format    string `mapstructure:"format"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Threshold: 3,
		Limit:     10,
		Workers:   1,
		Format:    "jsonl",
	}
}

// loadCLIConfig reads an optional YAML/JSON config file via viper, falling
// back silently to defaults when path is empty.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, &configLoadError{Path: path, Cause: err}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, &configLoadError{Path: path, Cause: err}
	}
	return cfg, nil
}

type configLoadError struct {
	Path  string
	Cause error
}

func (e *configLoadError) Error() string {
	return "loading config " + e.Path + ": " + e.Cause.Error()
}

func (e *configLoadError) Unwrap() error {
	return e.Cause
}
