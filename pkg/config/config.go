// Package config holds app wide settings unmarshalled from viper: the
// seqviz.yaml file, SEQVIZ_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// SearchConfig are settings for sequence search
type SearchConfig struct {
	// more hits than this on one strand aborts the search
	MaxResults int `mapstructure:"max-results"`

	// query length minus mismatches must reach this
	MinLength int `mapstructure:"min-length"`
}

// PrimerConfig are settings for primer binding
type PrimerConfig struct {
	// one mismatch is allowed per this many annealing bases
	BasesPerMismatch int `mapstructure:"bases-per-mismatch"`

	// more sites than this for a single primer is an error
	MaxSites int `mapstructure:"max-sites"`
}

// EnzymeConfig points at an optional enzyme database
type EnzymeConfig struct {
	// name<TAB>site file added to the built-in enzymes
	DB string `mapstructure:"db"`
}

// GelConfig are settings for gel images
type GelConfig struct {
	Ladder string `mapstructure:"ladder"`
	// image size in centimeters
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// LogConfig sets up the logger
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Config is the root-level settings struct
type Config struct {
	Search  SearchConfig `mapstructure:"search"`
	Primer  PrimerConfig `mapstructure:"primer"`
	Enzymes EnzymeConfig `mapstructure:"enzymes"`
	Gel     GelConfig    `mapstructure:"gel"`
	Log     LogConfig    `mapstructure:"log"`
}

// SetDefaults registers every key with its default, which also lets
// AutomaticEnv find them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("search.max-results", util.SearchResultMax)
	v.SetDefault("search.min-length", util.QueryLengthMin)
	v.SetDefault("primer.bases-per-mismatch", util.BasesPerMismatch)
	v.SetDefault("primer.max-sites", util.PrimerSiteMax)
	v.SetDefault("enzymes.db", "")
	v.SetDefault("gel.ladder", "1kb")
	v.SetDefault("gel.width", 0.0)
	v.SetDefault("gel.height", 12.0)
	v.SetDefault("log.level", "info")
}

// Load reads settings into v and decodes them. An empty file searches for
// seqviz.yaml in the working directory and $HOME/.seqviz; not finding one
// there is fine, a named file that is missing is not.
func Load(v *viper.Viper, file string) (Config, error) {
	var c Config
	SetDefaults(v)
	v.SetEnvPrefix("SEQVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("seqviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.seqviz")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, c.Validate()
}

// Validate rejects settings no command could use.
func (c Config) Validate() error {
	switch {
	case c.Search.MinLength < 1:
		return fmt.Errorf("search.min-length must be at least 1, got %d", c.Search.MinLength)
	case c.Primer.BasesPerMismatch < 1:
		return fmt.Errorf("primer.bases-per-mismatch must be at least 1, got %d", c.Primer.BasesPerMismatch)
	case c.Gel.Width < 0 || c.Gel.Height < 0:
		return fmt.Errorf("gel size must not be negative, got %gx%g", c.Gel.Width, c.Gel.Height)
	}
	_, err := c.Level()
	return err
}

// Level is the configured log level.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}
