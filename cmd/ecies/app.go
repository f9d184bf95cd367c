package main

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/kochabx/ecies/core/crypto/ecies"
	"github.com/kochabx/ecies/core/crypto/ecies/batch"
	"github.com/kochabx/ecies/log"
	"github.com/kochabx/ecies/metrics"
)

// app holds what the commands share for one invocation.
type app struct {
	cfg     *Config
	logger  *log.Logger
	metrics *metrics.Prometheus
	svc     *ecies.Service
	stdin   io.Reader
	stdout  io.Writer
}

func newApp(cfg *Config, stdin io.Reader, stdout io.Writer) (*app, error) {
	logger, err := log.FromConfig(cfg.Log)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	if cfg.Metrics.GoCollector {
		m.WithGoCollectorRuntimeMetrics()
		m.WithBuildInfoCollector()
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		svc:     ecies.NewService(ecies.WithLogger(logger), ecies.WithObserver(m)),
		stdin:   stdin,
		stdout:  stdout,
	}, nil
}

func (a *app) batch() (*batch.Batch, error) {
	return batch.New(a.svc,
		batch.WithConcurrency(a.cfg.Batch.Concurrency),
		batch.WithLogger(a.logger),
	)
}

// close flushes metrics and releases the log sink.
func (a *app) close() error {
	var err error
	if a.cfg.Metrics.Textfile != "" {
		err = a.metrics.WriteTextfile(a.cfg.Metrics.Textfile)
	}
	if cerr := a.logger.Close(); err == nil {
		err = cerr
	}
	return err
}

// newCommand builds the CLI. Commands read from stdin and write to stdout
// unless --in or --out is given.
func newCommand(stdin io.Reader, stdout io.Writer) *cli.Command {
	var a *app

	return &cli.Command{
		Name:    "ecies",
		Usage:   "Encrypt and decrypt with ECIES over secp256k1",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (yaml, json or toml)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "Export variables from this file when it exists",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override log.level",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics to this file on exit",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := loadDotEnv(cmd.String("env-file")); err != nil {
				return ctx, err
			}
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			if level := cmd.String("log-level"); level != "" {
				cfg.Log.Level = level
			}
			if path := cmd.String("metrics-file"); path != "" {
				cfg.Metrics.Textfile = path
			}

			a, err = newApp(cfg, stdin, stdout)
			return ctx, err
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if a == nil {
				return nil
			}
			return a.close()
		},
		Commands: []*cli.Command{
			{
				Name:  "encrypt",
				Usage: "Encrypt input for a public key and print the JSON envelope",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "public-key",
						Aliases:  []string{"k"},
						Required: true,
						Usage:    "Recipient public key, compressed or uncompressed hex",
						Sources:  cli.EnvVars("ECIES_PUBLIC_KEY"),
					},
					&cli.StringFlag{
						Name:    "in",
						Aliases: []string{"i"},
						Usage:   "Input file (default stdin)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout)",
					},
					&cli.BoolFlag{
						Name:    "lines",
						Aliases: []string{"l"},
						Usage:   "Encrypt each non-empty input line and print a JSON array",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runEncrypt(ctx, a,
						cmd.String("public-key"),
						cmd.String("in"),
						cmd.String("out"),
						cmd.Bool("lines"),
					)
				},
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt a JSON envelope, or a JSON array of envelopes, with a private key",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "private-key",
						Aliases:  []string{"k"},
						Required: true,
						Usage:    "Recipient private key as hex",
						Sources:  cli.EnvVars("ECIES_PRIVATE_KEY"),
					},
					&cli.StringFlag{
						Name:    "in",
						Aliases: []string{"i"},
						Usage:   "Input file (default stdin)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDecrypt(ctx, a,
						cmd.String("private-key"),
						cmd.String("in"),
						cmd.String("out"),
					)
				},
			},
		},
	}
}
