package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/envision/envision"
	"github.com/katalvlaran/envision/modelfile"
	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/render"
	"github.com/katalvlaran/envision/report"
)

// buildFlags are the options of every command that runs a Build.
type buildFlags struct {
	workers       int
	maxCandidates uint64
	metricsPath   string
	stats         bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.workers, "workers", 0,
		"Worker shards (0 = model file setting, else GOMAXPROCS)")
	cmd.Flags().Uint64Var(&f.maxCandidates, "max-candidates", 0,
		"Candidate-state ceiling (0 = model file setting, else library default)")
	cmd.Flags().StringVar(&f.metricsPath, "metrics", "",
		"Write Prometheus text metrics of the run to this file")
	cmd.Flags().BoolVar(&f.stats, "stats", false,
		"Print a run summary to stderr")
}

// build loads the model at path and runs envision.Build. Flags override the
// file's run settings.
func (a *app) build(ctx context.Context, path string, f *buildFlags) (*quantity.Model, *envision.Result, error) {
	m, run, err := modelfile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	opts := []envision.Option{envision.WithLogger(a.logger)}
	switch {
	case f.workers > 0:
		opts = append(opts, envision.WithWorkers(f.workers))
	case run.Workers > 0:
		opts = append(opts, envision.WithWorkers(run.Workers))
	}
	switch {
	case f.maxCandidates > 0:
		opts = append(opts, envision.WithMaxCandidates(f.maxCandidates))
	case run.MaxCandidates > 0:
		opts = append(opts, envision.WithMaxCandidates(run.MaxCandidates))
	}

	var reg *prometheus.Registry
	if f.metricsPath != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, envision.WithMetrics(envision.NewMetrics(reg)))
	}

	res, err := envision.Build(ctx, m, opts...)
	if reg != nil {
		if werr := writeMetrics(f.metricsPath, reg); werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return nil, nil, err
	}
	if f.stats {
		if err := report.WriteStats(a.stderr, m, res.Stats); err != nil {
			return nil, nil, err
		}
	}
	return m, res, nil
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(file, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			file.Close()
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return file.Close()
}

// emit renders doc in format to output ("" or "-" is the command's stdout).
func (a *app) emit(format, output string, doc render.Document) error {
	r, err := render.ByName(format)
	if err != nil {
		return err
	}
	return a.withOutput(output, func(w io.Writer) error { return r.Render(w, doc) })
}

func (a *app) withOutput(output string, fn func(io.Writer) error) error {
	if output == "" || output == "-" {
		return fn(a.stdout)
	}
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
