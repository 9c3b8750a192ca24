// SPDX-License-Identifier: MIT
// Package: config
//
// config.go - viper-backed configuration with defaults, file, env and flag layers.
//
// Precedence (highest first): bound flags, TRIEST_* environment, config file,
// defaults. Keys are dotted ("estimator.capacity"); the environment form
// replaces dots with underscores (TRIEST_ESTIMATOR_CAPACITY).

package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/triest/eval"
	"github.com/katalvlaran/triest/triest"
)

// Keys.
const (
	KeyVariant     = "estimator.variant"
	KeyCapacity    = "estimator.capacity"
	KeySeed        = "estimator.seed"
	KeyReportEvery = "stream.report_every"
	KeyDedupe      = "stream.dedupe"
	KeyTrials      = "eval.trials"
	KeyWorkers     = "eval.workers"
	KeyLogLevel    = "logging.level"
	KeyLogConsole  = "logging.console"
	KeyMetricsAddr = "metrics.addr"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TRIEST"

// Config manages estimator, stream, eval and logging settings.
type Config struct {
	v *viper.Viper
}

// New creates a configuration populated with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyVariant, triest.Improved.String())
	v.SetDefault(KeyCapacity, 10_000)
	v.SetDefault(KeySeed, time.Now().UnixNano())

	v.SetDefault(KeyReportEvery, 100_000)
	v.SetDefault(KeyDedupe, false)

	v.SetDefault(KeyTrials, 50)
	v.SetDefault(KeyWorkers, runtime.NumCPU())

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogConsole, true)

	v.SetDefault(KeyMetricsAddr, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges the file at path (format by extension: yaml, json, toml...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile: %s: %w", path, err)
	}
	return nil
}

// BindFlags binds each flag in fs whose name matches a key's last segment
// ("capacity" → estimator.capacity, "log-level" → logging.level). Unknown
// flags are left alone. Flags only override when set on the command line.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("BindFlags: %s: %w", flag, err)
		}
	}
	return nil
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"variant":      KeyVariant,
	"capacity":     KeyCapacity,
	"seed":         KeySeed,
	"report-every": KeyReportEvery,
	"dedupe":       KeyDedupe,
	"trials":       KeyTrials,
	"workers":      KeyWorkers,
	"log-level":    KeyLogLevel,
	"log-console":  KeyLogConsole,
	"metrics-addr": KeyMetricsAddr,
}

// Set overrides key at runtime.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Typed getters.
func (c *Config) VariantName() string { return c.v.GetString(KeyVariant) }
func (c *Config) Capacity() int       { return c.v.GetInt(KeyCapacity) }
func (c *Config) Seed() int64         { return c.v.GetInt64(KeySeed) }
func (c *Config) ReportEvery() int    { return c.v.GetInt(KeyReportEvery) }
func (c *Config) Dedupe() bool        { return c.v.GetBool(KeyDedupe) }
func (c *Config) Trials() int         { return c.v.GetInt(KeyTrials) }
func (c *Config) Workers() int        { return c.v.GetInt(KeyWorkers) }
func (c *Config) LogLevel() string    { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogConsole() bool    { return c.v.GetBool(KeyLogConsole) }
func (c *Config) MetricsAddr() string { return c.v.GetString(KeyMetricsAddr) }

// Variant parses the configured estimator variant.
func (c *Config) Variant() (triest.Variant, error) {
	return triest.ParseVariant(c.VariantName())
}

// Eval assembles an eval.Config from the current settings.
func (c *Config) Eval() (eval.Config, error) {
	v, err := c.Variant()
	if err != nil {
		return eval.Config{}, fmt.Errorf("Eval: %w", err)
	}
	return eval.Config{
		Variant:  v,
		Capacity: c.Capacity(),
		Trials:   c.Trials(),
		Workers:  c.Workers(),
		Seed:     c.Seed(),
	}, nil
}

// Validate checks every setting the commands depend on.
func (c *Config) Validate() error {
	if _, err := c.Variant(); err != nil {
		return fmt.Errorf("Validate: %s: %v: %w", KeyVariant, err, ErrInvalid)
	}
	if n := c.Capacity(); n < triest.MinCapacity {
		return fmt.Errorf("Validate: %s=%d < min=%d: %w", KeyCapacity, n, triest.MinCapacity, ErrInvalid)
	}
	if n := c.ReportEvery(); n < 0 {
		return fmt.Errorf("Validate: %s=%d < 0: %w", KeyReportEvery, n, ErrInvalid)
	}
	if n := c.Trials(); n < 1 {
		return fmt.Errorf("Validate: %s=%d < 1: %w", KeyTrials, n, ErrInvalid)
	}
	if n := c.Workers(); n < 0 {
		return fmt.Errorf("Validate: %s=%d < 0: %w", KeyWorkers, n, ErrInvalid)
	}
	return nil
}
