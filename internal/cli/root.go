// Package cli implements the envision command tree.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/envision/logging"
	"github.com/katalvlaran/envision/render"
)

// app carries the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	logLevel string
	logJSON  bool
	logger   *slog.Logger
}

// NewRootCommand returns the envision root command writing to the given streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "envision",
		Short: "Qualitative envisionment of causal models",
		Long: `envision enumerates every legal qualitative state of a causal model,
connects each state to its admissible successors and renders the resulting
state graph.

Models are YAML files; see "envision model show" for a readable dump.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.New(logging.Config{
				Level:   lvl,
				JSON:    a.logJSON,
				Writer:  a.stderr,
				Service: "envision",
			})
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn",
		"Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false,
		"Emit logs as JSON")

	root.AddCommand(
		a.runCommand(),
		a.reachCommand(),
		a.analyzeCommand(),
		a.modelCommand(),
		a.watchCommand(),
	)
	return root
}

// formatFlagUsage is shared by every command that renders a document.
var formatFlagUsage = "Output format: " + strings.Join(render.Formats, ", ")
