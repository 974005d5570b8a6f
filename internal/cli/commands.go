package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/envision/bfs"
	"github.com/katalvlaran/envision/builder"
	"github.com/katalvlaran/envision/core"
	"github.com/katalvlaran/envision/dfs"
	"github.com/katalvlaran/envision/legality"
	"github.com/katalvlaran/envision/modelfile"
	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/render"
	"github.com/katalvlaran/envision/report"
	"github.com/katalvlaran/envision/state"
)

func (a *app) runCommand() *cobra.Command {
	var (
		bf             buildFlags
		format, output string
	)
	cmd := &cobra.Command{
		Use:   "run MODEL",
		Short: "Build the full state graph of a model",
		Long: `Build the total envisionment of MODEL: every legal state and every
admissible transition, rendered as a state diagram.

Examples:
  envision run tank.yaml > tank.dot
  envision run tank.yaml --format mermaid --workers 4 --stats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, res, err := a.build(cmd.Context(), args[0], &bf)
			if err != nil {
				return err
			}
			return a.emit(format, output, render.FromGraph(m, res.Graph))
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "dot", formatFlagUsage)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func (a *app) reachCommand() *cobra.Command {
	var (
		bf             buildFlags
		format, output string
		from           string
		maxDepth       int
	)
	cmd := &cobra.Command{
		Use:   "reach MODEL --from STATE",
		Short: "Build the states attainable from an initial state",
		Long: `Build the attainable envisionment of MODEL: the part of the state graph
reachable from STATE, written as "Q=magnitude,derivative" per quantity.

Examples:
  envision reach tank.yaml --from "I=+,1 V=0,1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, res, err := a.build(cmd.Context(), args[0], &bf)
			if err != nil {
				return err
			}
			s, err := state.Parse(m, from)
			if err != nil {
				return err
			}
			start := s.Key()
			if !res.Graph.HasNode(start) {
				return fmt.Errorf("initial state %q is not legal (%s)", from, legalityStage(m, s))
			}
			sub, _, err := bfs.Envisionment(res.Graph, start,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}
			return a.emit(format, output, render.FromGraphAt(m, sub, start))
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "Initial state, e.g. \"I=+,1 V=0,1\"")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Stop after this many transitions (0 = unlimited)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", formatFlagUsage)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// legalityStage names the check that rejects s.
func legalityStage(m *quantity.Model, s state.State) string {
	c, err := legality.New(m)
	if err != nil {
		return err.Error()
	}
	return "rejected by " + c.Check(s).String()
}

func (a *app) analyzeCommand() *cobra.Command {
	var bf buildFlags
	cmd := &cobra.Command{
		Use:   "analyze MODEL",
		Short: "Summarize terminal states, steady states and DFS cycles",
		Long: `Build the total envisionment of MODEL and list its terminal states, its
steady states (self-loops) and the cycles found by depth-first search.

Only cycles closed by a DFS back edge are listed, one per back edge. A graph
can hold further elementary cycles that share those edges; they are not
enumerated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, res, err := a.build(cmd.Context(), args[0], &bf)
			if err != nil {
				return err
			}
			return a.analyze(cmd, m, res.Graph)
		},
	}
	bf.register(cmd)
	return cmd
}

func (a *app) analyze(cmd *cobra.Command, m *quantity.Model, g *core.Graph) error {
	terminals, err := dfs.Terminals(g)
	if err != nil {
		return err
	}
	steady, err := dfs.Steady(g)
	if err != nil {
		return err
	}
	_, cycles, err := dfs.DetectCycles(g, dfs.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	w := a.stdout
	fmt.Fprintf(w, "%-12s %d\n", "states", g.NodeCount())
	fmt.Fprintf(w, "%-12s %d\n", "transitions", g.EdgeCount())
	fmt.Fprintf(w, "%-12s %d\n", "terminals", len(terminals))
	writeKeys(w, m, g, terminals)
	fmt.Fprintf(w, "%-12s %d\n", "steady", len(steady))
	writeKeys(w, m, g, steady)
	fmt.Fprintf(w, "%-12s %d\n", "cycles", len(cycles))
	for _, c := range cycles {
		parts := make([]string, len(c))
		for i, k := range c {
			s, _ := g.Node(k)
			parts[i] = state.Compact(m, s)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " -> "))
	}
	return nil
}

func writeKeys(w io.Writer, m *quantity.Model, g *core.Graph, keys []state.Key) {
	for _, k := range keys {
		s, _ := g.Node(k)
		fmt.Fprintf(w, "  %s\n", state.Compact(m, s))
	}
}

func (a *app) modelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect a causal model without building it",
	}

	show := &cobra.Command{
		Use:   "show MODEL",
		Short: "Print quantities and relations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := modelfile.Load(args[0])
			if err != nil {
				return err
			}
			return report.Write(a.stdout, m)
		},
	}

	var format, output string
	plot := &cobra.Command{
		Use:   "plot MODEL",
		Short: "Render the causal-model diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := modelfile.Load(args[0])
			if err != nil {
				return err
			}
			return a.emit(format, output, render.FromModel(m))
		},
	}
	plot.Flags().StringVarP(&format, "format", "f", "dot", formatFlagUsage)
	plot.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	cmd.AddCommand(show, plot, a.genCommand())
	return cmd
}

func (a *app) genCommand() *cobra.Command {
	var (
		n      int
		p      float64
		seed   int64
		name   string
		output string
	)
	cmd := &cobra.Command{
		Use:   "gen chain|star|random",
		Short: "Generate a synthetic model file",
		Long: `Generate a model file of a given topology:

  chain   inflow, reservoir and n-2 proportional stages with a drain
  star    a hub influenced by n-1 exogenous spokes
  random  n quantities with random proportionals (probability --p)

Examples:
  envision model gen chain -n 5 -o chain5.yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"chain", "star", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var con builder.Constructor
			switch args[0] {
			case "chain":
				con = builder.Chain(n)
			case "star":
				con = builder.Star(n)
			case "random":
				con = builder.Random(n, p)
			default:
				return fmt.Errorf("unknown topology %q (want chain, star or random)", args[0])
			}
			if name == "" {
				name = fmt.Sprintf("%s%d", args[0], n)
			}
			m, err := builder.BuildModel(name, []builder.BuilderOption{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}
			data, err := modelfile.Marshal(m, modelfile.RunConfig{})
			if err != nil {
				return err
			}
			return a.withOutput(output, func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			})
		},
	}
	cmd.Flags().IntVarP(&n, "quantities", "n", 3, "Number of quantities")
	cmd.Flags().Float64Var(&p, "p", 0.5, "Relation probability (random only)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed (random only)")
	cmd.Flags().StringVar(&name, "name", "", "Model name (default topology + size)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
