// Package report prints human-readable summaries of causal models and
// envisionment runs for the console.
//
// Styling goes through a lipgloss renderer bound to the destination writer, so
// colours appear on terminals and plain text everywhere else.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/envision/envision"
	"github.com/katalvlaran/envision/legality"
	"github.com/katalvlaran/envision/quantity"
)

// Palette.
var (
	ColorTitle   = lipgloss.Color("#2CD7C7")
	ColorHeading = lipgloss.Color("#20B9B4")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorBorder  = lipgloss.Color("#16858E")
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(ColorTitle),
		heading: r.NewStyle().Bold(true).Foreground(ColorHeading),
		muted:   r.NewStyle().Foreground(ColorMuted),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
	}
}

// Write prints the quantities and relations of m.
func Write(w io.Writer, m *quantity.Model) error {
	st := newStyles(w)
	var sb strings.Builder

	sb.WriteString(st.title.Render("CAUSAL MODEL "+m.Name()) + "\n\n")

	sb.WriteString(st.heading.Render("QUANTITIES") + "\n")
	sb.WriteString(st.muted.Render(fmt.Sprintf("%-15s %-20s %-20s %s", "name", "magnitudes", "derivatives", "exogenous")) + "\n")
	for _, q := range m.Quantities() {
		exo := "no"
		if q.Exogenous {
			exo = "yes"
		}
		fmt.Fprintf(&sb, "%-15s %-20s %-20s %s\n", q.Name, list(q.MagnitudeNames()), list(q.Derivatives), exo)
	}

	sb.WriteString("\n" + st.heading.Render("INFLUENCES") + "\n")
	sb.WriteString(st.muted.Render(fmt.Sprintf("%-15s %-15s %s", "from", "to", "weight")) + "\n")
	for _, r := range m.Influences() {
		fmt.Fprintf(&sb, "%-15s %-15s %+d\n", r.Source, r.Target, r.Weight)
	}

	sb.WriteString("\n" + st.heading.Render("PROPORTIONALS") + "\n")
	sb.WriteString(st.muted.Render(fmt.Sprintf("%-15s %-15s %s", "from", "to", "weight")) + "\n")
	for _, r := range m.Proportionals() {
		fmt.Fprintf(&sb, "%-15s %-15s %+d\n", r.Source, r.Target, r.Weight)
	}

	sb.WriteString("\n" + st.heading.Render("VALUE CORRESPONDENCES") + "\n")
	for _, c := range m.Correspondences() {
		fmt.Fprintf(&sb, "%s(%s) = %s(%s)\n", c.Q1, c.M1, c.Q2, c.M2)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteStats prints a boxed summary of an envisionment run.
func WriteStats(w io.Writer, m *quantity.Model, s envision.Stats) error {
	st := newStyles(w)
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", st.title.Render("ENVISIONMENT "+m.Name()))
	fmt.Fprintf(&sb, "%-14s %s\n", "run", s.RunID)
	fmt.Fprintf(&sb, "%-14s %d\n", "candidates", s.Candidates)
	for _, stage := range legality.Stages {
		fmt.Fprintf(&sb, "%-14s %d\n", "  "+stage.String(), s.Rejected[stage])
	}
	fmt.Fprintf(&sb, "%-14s %d\n", "states", s.Nodes)
	fmt.Fprintf(&sb, "%-14s %d\n", "transitions", s.Edges)
	fmt.Fprintf(&sb, "%-14s %d\n", "terminals", s.Terminals)
	fmt.Fprintf(&sb, "%-14s %d\n", "workers", s.Workers)
	fmt.Fprintf(&sb, "%-14s %s", "duration", s.Duration.Round(time.Microsecond))

	_, err := io.WriteString(w, st.box.Render(sb.String())+"\n")
	return err
}

// list formats a slice like [a b c].
func list[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
