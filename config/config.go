// Package config loads YAML configuration with environment overrides into a
// struct, applying `default` tags first and `validate` tags last.
package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/ecies/core/validator"
)

// Config binds a loader to a target struct.
type Config struct {
	mu       sync.Mutex
	viper    *viper.Viper
	validate validator.Validator
	target   any
	loader   Loader
	file     fileOptions
}

// Option configures a Config.
type Option func(*Config)

// WithViper sets the viper instance.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator sets the validator. A nil validator disables validation.
func WithValidator(v validator.Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader replaces the file loader.
func WithLoader(l Loader) Option {
	return func(c *Config) {
		c.loader = l
	}
}

// WithFile reads exactly this file. Its extension selects the format.
func WithFile(path string) Option {
	return func(c *Config) {
		c.file.path = path
	}
}

// WithSearch looks for name (without extension) in each of paths.
func WithSearch(name string, paths ...string) Option {
	return func(c *Config) {
		c.file.name = name
		c.file.paths = paths
	}
}

// WithEnvPrefix sets the environment prefix: with prefix "ECIES" the key
// log.level is read from ECIES_LOG_LEVEL.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.file.envPrefix = prefix
	}
}

// WithOptional tolerates a missing configuration file.
func WithOptional() Option {
	return func(c *Config) {
		c.file.optional = true
	}
}

// New creates a Config for target, which must be a pointer to a struct. By
// default it searches for config.yaml in the working directory.
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:    viper.New(),
		validate: validator.Validate(),
		target:   target,
		file:     fileOptions{name: "config", paths: []string{"."}},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		c.loader = NewFileLoader(c.viper, c.validate, c.file)
	}
	return c
}

// Load reads the configuration into the target.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loader.Load(c.target)
}

// GetViper returns the underlying viper instance.
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
