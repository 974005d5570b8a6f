package cli

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/envision/render"
)

// defaultDebounce coalesces the burst of events an editor save produces.
const defaultDebounce = 150 * time.Millisecond

func (a *app) watchCommand() *cobra.Command {
	var (
		bf             buildFlags
		format, output string
		debounce       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch MODEL",
		Short: "Rebuild and re-render whenever the model file changes",
		Long: `Build MODEL once, then rebuild it every time the file is written.
A file that fails to load or build is logged and the previous output is kept.

Examples:
  envision watch tank.yaml -o tank.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			rebuild := func() error {
				m, res, err := a.build(cmd.Context(), path, &bf)
				if err != nil {
					return err
				}
				return a.emit(format, output, render.FromGraph(m, res.Graph))
			}
			return watchFile(cmd.Context(), path, debounce, a.logger, rebuild)
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "dot", formatFlagUsage)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Quiet period before a rebuild")
	return cmd
}

// watchFile calls fn once, then again after each quiet period following a
// change to path. Errors from fn are logged, not returned. It returns nil when
// ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, fn func() error) error {
	path = filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors often replace the file by rename.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	run := func() {
		start := time.Now()
		if err := fn(); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Warn("rebuild failed", "path", path, "error", err)
			return
		}
		logger.Info("rebuilt", "path", path, "elapsed", time.Since(start))
	}
	run()

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("model changed", "path", path, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "path", path, "error", err)
		case <-timer.C:
			run()
		}
	}
}
