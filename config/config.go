// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// whether to log progress to stdout
	Verbose bool `mapstructure:"verbose"`

	// the output format: table, bed, csv or json
	Format string `mapstructure:"format"`

	// the minimum length of a CpG island for it to be reported
	MinLength int `mapstructure:"min-length"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() *Config {
	viper.SetDefault("format", "table")
	viper.SetDefault("min-length", 0)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}
	return &c
}

// Validate errors out on settings no command could act on.
func (c *Config) Validate() error {
	switch c.Format {
	case "table", "bed", "csv", "json":
	default:
		return fmt.Errorf("unknown output format %q (want table, bed, csv or json)", c.Format)
	}
	if c.MinLength < 0 {
		return fmt.Errorf("min-length must be >= 0, got %d", c.MinLength)
	}
	return nil
}
