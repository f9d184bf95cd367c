package main

import (
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/kochabx/ecies/config"
	"github.com/kochabx/ecies/errors"
	"github.com/kochabx/ecies/log"
)

const envPrefix = "ECIES"

// Config is read from ecies.yaml and ECIES_* environment variables.
type Config struct {
	Log     log.Config    `json:"log" mapstructure:"log"`
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
	Batch   BatchConfig   `json:"batch" mapstructure:"batch"`
}

type MetricsConfig struct {
	// Textfile is written on exit when set.
	Textfile    string `json:"textfile" mapstructure:"textfile"`
	GoCollector bool   `json:"go_collector" mapstructure:"go_collector"`
}

type BatchConfig struct {
	Concurrency int `json:"concurrency" mapstructure:"concurrency" default:"4" validate:"gte=1,lte=1024"`
}

// loadConfig reads path when given. Otherwise ecies.yaml in the working
// directory is used if present.
func loadConfig(path string) (*Config, error) {
	var cfg Config

	opts := []config.Option{config.WithEnvPrefix(envPrefix)}
	if path != "" {
		opts = append(opts, config.WithFile(path))
	} else {
		opts = append(opts, config.WithSearch("ecies", "."), config.WithOptional())
	}

	if err := config.New(&cfg, opts...).Load(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv exports the variables of an env file without overriding the
// environment. A missing file is ignored.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(err, errors.CodeBadRequest, "load %s", path)
	}
	return nil
}
