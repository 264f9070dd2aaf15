// Package config holds the bnbx settings.
//
// Values resolve in viper's order: command-line flag, BNBX_* environment
// variable, config file, default. Environment names upper-case the key and
// replace '-' with '_', e.g. BNBX_MAX_EXHAUSTIVE_ITEMS.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/boundsearch/bench"
)

// Keys shared by flags, env vars and config files.
const (
	KeyDebug               = "debug"
	KeyTrace               = "trace"
	KeyFormat              = "format"
	KeyRepeat              = "repeat"
	KeyParallel            = "parallel"
	KeyMaxExhaustiveItems  = "max-exhaustive-items"
	KeyMaxExhaustiveCities = "max-exhaustive-cities"
	KeySeed                = "seed"

	EnvPrefix = "BNBX"
)

var (
	ErrBadRepeat   = errors.New("config: repeat must be at least 1")
	ErrBadParallel = errors.New("config: parallel must be at least 1")
	ErrBadLimit    = errors.New("config: exhaustive limits must not be negative")
)

// Config wraps a private viper instance so independent commands never
// share state.
type Config struct {
	v *viper.Viper
}

// New returns a Config with defaults and environment lookup installed.
func New() *Config {
	v := viper.New()
	def := bench.DefaultRunner()
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyFormat, string(bench.FormatTable))
	v.SetDefault(KeyRepeat, def.Repeat)
	v.SetDefault(KeyParallel, runtime.NumCPU())
	v.SetDefault(KeyMaxExhaustiveItems, def.MaxExhaustiveItems)
	v.SetDefault(KeyMaxExhaustiveCities, def.MaxExhaustiveCities)
	v.SetDefault(KeySeed, int64(0))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// ReadFile merges the YAML (or any viper-supported) file at path. An empty
// path is a no-op.
func (c *Config) ReadFile(path string) error {
	if path == "" {
		return nil
	}
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// BindFlags makes explicitly set flags in fs override every other source.
// Flag names must match the Key constants.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	return c.v.BindPFlags(fs)
}

// Set overrides key for the lifetime of c.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

func (c *Config) Debug() bool              { return c.v.GetBool(KeyDebug) }
func (c *Config) Trace() bool              { return c.v.GetBool(KeyTrace) }
func (c *Config) Repeat() int              { return c.v.GetInt(KeyRepeat) }
func (c *Config) Parallel() int            { return c.v.GetInt(KeyParallel) }
func (c *Config) MaxExhaustiveItems() int  { return c.v.GetInt(KeyMaxExhaustiveItems) }
func (c *Config) MaxExhaustiveCities() int { return c.v.GetInt(KeyMaxExhaustiveCities) }
func (c *Config) Seed() int64              { return c.v.GetInt64(KeySeed) }

// Format returns the parsed table format.
func (c *Config) Format() (bench.Format, error) {
	return bench.ParseFormat(c.v.GetString(KeyFormat))
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Format(); err != nil {
		return err
	}
	switch {
	case c.Repeat() < 1:
		return ErrBadRepeat
	case c.Parallel() < 1:
		return ErrBadParallel
	case c.MaxExhaustiveItems() < 0, c.MaxExhaustiveCities() < 0:
		return ErrBadLimit
	}

	return nil
}

// Runner builds a bench.Runner from the current settings.
func (c *Config) Runner() bench.Runner {
	return bench.Runner{
		Repeat:              c.Repeat(),
		Parallel:            c.Parallel(),
		MaxExhaustiveItems:  c.MaxExhaustiveItems(),
		MaxExhaustiveCities: c.MaxExhaustiveCities(),
		Trace:               c.Trace(),
	}
}
