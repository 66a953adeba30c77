package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"

	"github.com/katalvlaran/integral/mc"
)

var errNoJobFile = errors.New("integral: no job file given")

// Config holds command configuration. Flags override the environment.
type Config struct {
	JobFile     string `env:"INTEGRAL_JOB_FILE"`
	Seed        int64  `env:"INTEGRAL_SEED" envDefault:"0"`
	DrawsPerDim int    `env:"INTEGRAL_DRAWS_PER_DIM" envDefault:"40000"`
	MaxDraws    int    `env:"INTEGRAL_MAX_DRAWS" envDefault:"1048576"`
	Parallel    int    `env:"INTEGRAL_PARALLEL" envDefault:"4"`
	LogLevel    string `env:"INTEGRAL_LOG_LEVEL" envDefault:"info"`
	MetricsOut  string `env:"INTEGRAL_METRICS_OUT"`
}

// ParseConfig parses environment and flags into Config. A single positional
// argument is taken as the job file when -jobs is not set.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.JobFile, "jobs", cfg.JobFile, "path to the HCL job file")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed (0 = nondeterministic)")
	fs.IntVar(&cfg.DrawsPerDim, "draws", cfg.DrawsPerDim, "Monte Carlo draws per integrated axis")
	fs.IntVar(&cfg.MaxDraws, "max-draws", cfg.MaxDraws, "cap on Monte Carlo draws per event")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "jobs run concurrently")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.MetricsOut, "metrics-out", cfg.MetricsOut, "write Prometheus text metrics to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.JobFile == "" && fs.NArg() == 1 {
		cfg.JobFile = fs.Arg(0)
	}
	if cfg.JobFile == "" {
		return Config{}, errNoJobFile
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	if cfg.DrawsPerDim <= 0 || cfg.MaxDraws <= 0 {
		return Config{}, fmt.Errorf("draws=%d max-draws=%d: %w", cfg.DrawsPerDim, cfg.MaxDraws, mc.ErrBadDraws)
	}

	return cfg, nil
}

// newLogger returns a colored slog logger writing to w.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
	})), nil
}
