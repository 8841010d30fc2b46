package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slices"

	"github.com/alexshd/rootbench"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted)
)

func field(w io.Writer, label string, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label), fmt.Sprintf(format, args...))
}

func status(err error) string {
	if err == nil {
		return successStyle.Render("✓ converged")
	}
	return errorStyle.Render("✗ " + rootbench.Kind(err))
}

// renderReport prints one solve. known lists roots to measure the error against.
func renderReport(w io.Writer, r rootbench.Report, known []float64) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", r.Problem, r.Method)))
	field(w, "Status", "%s", status(r.Err))

	if r.Err == nil {
		field(w, "Root", "%.15g", r.Root)
		if len(known) > 0 {
			field(w, "Error", "%.3g", nearest(r.Root, known))
		}
	} else {
		field(w, "Reason", "%v", r.Err)
	}
	field(w, "Steps", "%d", r.Steps)
	field(w, "Duration", "%s", r.Duration)
	field(w, "Run", "%s", r.ID)

	if a := r.Analysis; a != nil {
		field(w, "Behavior", "%s", behaviorLabel(a.Behavior))
		field(w, "Rate", "%.6f", a.Rate)
		if a.Order > 0 {
			field(w, "Order", "%.3f", a.Order)
		}
		if a.Period > 1 {
			field(w, "Cycle", "period %d, amplitude %.6g", a.Period, a.Amplitude)
		}
	}
}

func behaviorLabel(b rootbench.Behavior) string {
	switch b {
	case rootbench.BehaviorMonotonic, rootbench.BehaviorOscillatory:
		return successStyle.Render(string(b))
	case rootbench.BehaviorCycle:
		return warningStyle.Render(string(b))
	case rootbench.BehaviorDivergent:
		return errorStyle.Render(string(b))
	default:
		return string(b)
	}
}

func nearest(x float64, roots []float64) float64 {
	best := math.Inf(1)
	for _, r := range roots {
		best = math.Min(best, math.Abs(x-r))
	}
	return best
}

func renderTrace(w io.Writer, trace []rootbench.BisectionStep) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-4s %-20s %-20s %-20s %s", "k", "a", "b", "m", "F(m)")))
	for _, s := range trace {
		fmt.Fprintf(w, "  %-4d %-20.15g %-20.15g %-20.15g %.3e\n", s.K, s.A, s.B, s.Mid, s.FMid)
	}
}

func renderIterates(w io.Writer, iterates []float64) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-4s %-22s %s", "k", "x_k", "x_k - x_{k-1}")))
	for k, x := range iterates {
		if k == 0 {
			fmt.Fprintf(w, "  %-4d %-22.15g\n", k, x)
			continue
		}
		fmt.Fprintf(w, "  %-4d %-22.15g %.4e\n", k, x, x-iterates[k-1])
	}
}

func renderSummary(w io.Writer, s rootbench.Summary) {
	fmt.Fprintln(w, titleStyle.Render("Summary"))
	field(w, "Problems", "%d", s.Total)
	field(w, "Converged", "%s", successStyle.Render(fmt.Sprint(s.Converged)))
	if s.Failed > 0 {
		field(w, "Failed", "%s", errorStyle.Render(fmt.Sprint(s.Failed)))

		kinds := make([]string, 0, len(s.ByKind))
		for kind, n := range s.ByKind {
			if kind != "ok" {
				kinds = append(kinds, fmt.Sprintf("%s=%d", kind, n))
			}
		}
		slices.Sort(kinds)
		field(w, "Failures", "%s", strings.Join(kinds, " "))
	}
	field(w, "Steps", "mean %.1f, median %.1f", s.MeanSteps, s.MedianSteps)
	field(w, "Duration", "mean %s, median %s, p99 %s", s.MeanDuration, s.MedianDuration, s.P99Duration)
}
