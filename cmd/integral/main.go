// Command integral runs the integration jobs of an HCL file and prints one
// line per job.
//
//	integral -jobs jobs.hcl -seed 42 -metrics-out metrics.prom
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	logger, err := newLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
