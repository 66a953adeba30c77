package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/integral/integrate"
	"github.com/katalvlaran/integral/jobfile"
	"github.com/katalvlaran/integral/mc"
	"github.com/katalvlaran/integral/metrics"
)

// outcome is the printed result of one job.
type outcome struct {
	name string
	res  *mc.Result
}

// Run executes every job of cfg.JobFile and writes one line per job to out,
// in file order.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) error {
	logger = logger.With("run", uuid.NewString())
	f, err := jobfile.Load(cfg.JobFile, logger)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 && f.Seed != nil {
		seed = *f.Seed
	}

	promReg := prometheus.NewRegistry()
	mtr := metrics.New(promReg)

	results := make([]outcome, len(f.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, job := range f.Jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runJob(job, cfg, seed, uint64(i), mtr, logger)
			if err != nil {
				return err
			}
			results[i] = outcome{name: job.Name, res: res}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range results {
		for e, v := range o.res.Values {
			if _, err := fmt.Fprintf(out, "%s[%d]\t%.10g\t± %.3g\tdraws=%d\n", o.name, e, v, o.res.StdErr[e], o.res.Draws); err != nil {
				return err
			}
		}
	}
	logger.Info("jobs done", "jobs", len(results), "seed", seed)

	if cfg.MetricsOut != "" {
		return writeMetrics(promReg, cfg.MetricsOut)
	}

	return nil
}

// runJob integrates one job. Each job gets its own stream derived from seed.
func runJob(job *jobfile.Job, cfg Config, seed int64, stream uint64, mtr *metrics.Metrics, logger *slog.Logger) (*mc.Result, error) {
	m, err := job.NewModel()
	if err != nil {
		return nil, err
	}
	region, err := job.Region()
	if err != nil {
		return nil, err
	}

	draws, maxDraws := cfg.DrawsPerDim, cfg.MaxDraws
	if job.DrawsPerDim > 0 {
		draws = job.DrawsPerDim
	}
	if job.MaxDraws > 0 {
		maxDraws = job.MaxDraws
	}
	mcOpts := []mc.Option{mc.WithDrawsPerDim(draws), mc.WithMaxDraws(maxDraws)}
	if seed != 0 {
		mcOpts = append(mcOpts, mc.WithSeed(mc.DeriveSeed(seed, stream)))
	}
	opts := []integrate.Option{
		integrate.WithMC(mcOpts...),
		integrate.WithMetrics(mtr),
		integrate.WithLogger(logger.With("job", job.Name)),
	}
	if job.Numeric {
		opts = append(opts, integrate.WithoutAnalytic())
	}

	res, err := integrate.Integrate(m, region, opts...)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}

	return res, nil
}

// writeMetrics dumps the registry in the Prometheus text format.
func writeMetrics(g prometheus.Gatherer, path string) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(file, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return file.Close()
}
