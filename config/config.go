// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads settings for the checker from defaults, an optional
// config file, BRACKETS_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mdhender/brackets"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables, e.g. BRACKETS_CONTEXT_RADIUS.
const EnvPrefix = "BRACKETS"

const (
	FormatText       = "text"
	FormatDiagnostic = "diagnostic"
)

// Config holds the checker configuration.
type Config struct {
	ContextRadius int    `mapstructure:"context_radius"`
	StackTail     int    `mapstructure:"stack_tail"`
	Encoding      string `mapstructure:"encoding"`
	PreserveLines bool   `mapstructure:"preserve_lines"`
	Format        string `mapstructure:"format"`
	ExitCode      bool   `mapstructure:"exit_code"`
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("context_radius", brackets.DefaultContextRadius)
	v.SetDefault("stack_tail", brackets.DefaultStackTail)
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("preserve_lines", false)
	v.SetDefault("format", FormatText)
	v.SetDefault("exit_code", false)
}

// Load reads the configuration into a new Config.
//
// If configFile is empty, Load looks for an optional ".brackets" file
// (yaml, toml or json) in the working directory. A missing file is not an
// error; a named file that cannot be read is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".brackets")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return New(v)
}

// New decodes and validates the configuration held by v.
func New(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ContextRadius < 0 {
		return errors.New("context_radius must not be negative")
	}
	if c.StackTail < 0 {
		return errors.New("stack_tail must not be negative")
	}
	switch c.Format {
	case FormatText, FormatDiagnostic:
	default:
		return fmt.Errorf("format %q: must be %q or %q", c.Format, FormatText, FormatDiagnostic)
	}
	return nil
}

// Options returns the scanner options for the configuration.
func (c *Config) Options() []brackets.Option {
	return []brackets.Option{
		brackets.WithContextRadius(c.ContextRadius),
		brackets.WithStackTail(c.StackTail),
	}
}
