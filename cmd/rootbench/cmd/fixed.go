package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexshd/rootbench"
)

var (
	fixedFunc       string
	fixedFunctional string
	fixedK          float64
	fixedX0         float64
	fixedEps        float64
	fixedMaxIter    int
	fixedHistory    bool
)

var fixedCmd = &cobra.Command{
	Use:   "fixed",
	Short: "Find a root by fixed-point iteration",
	Long: `Iterates x_{k+1} = x_k - Γ(F)(x_k) from x0 until two iterates differ
by at most eps or max-iter iterates have been produced.

Functionals:
  identity  - Γ(F) = F
  frac      - Γ(F) = F / (2 + k)
  newton    - Γ(F) = F / F'

Examples:
  rootbench fixed --func trig --functional newton --x0 -2
  rootbench fixed --func trig --functional frac --k 0 --x0 -2 --max-iter 10 --history`,
	RunE: runFixed,
}

func init() {
	rootCmd.AddCommand(fixedCmd)

	fixedCmd.Flags().StringVarP(&fixedFunc, "func", "f", "trig", "Function name (see 'rootbench functions')")
	fixedCmd.Flags().StringVar(&fixedFunctional, "functional", string(rootbench.FunctionalNewton), "identity, frac or newton")
	fixedCmd.Flags().Float64Var(&fixedK, "k", 0, "Frac parameter")
	fixedCmd.Flags().Float64Var(&fixedX0, "x0", -2, "Starting value")
	fixedCmd.Flags().Float64Var(&fixedEps, "eps", 1e-6, "Truncation error")
	fixedCmd.Flags().IntVar(&fixedMaxIter, "max-iter", 100, "Iteration cap")
	fixedCmd.Flags().BoolVar(&fixedHistory, "history", false, "Print the iterates")
}

func runFixed(cmd *cobra.Command, args []string) error {
	entry, err := rootbench.Lookup(fixedFunc)
	if err != nil {
		return err
	}

	problem := rootbench.Problem{
		Name:       entry.Name,
		Method:     rootbench.MethodFixedPoint,
		F:          entry.F,
		DF:         entry.DF,
		Functional: rootbench.FunctionalKind(fixedFunctional),
		K:          fixedK,
		X0:         fixedX0,
		Tolerance:  fixedEps,
		MaxIter:    fixedMaxIter,
	}

	report := rootbench.Solve(problem, rootbench.DefaultAnalysisConfig())
	slog.Debug("fixed-point iteration finished", "func", entry.Name, "functional", fixedFunctional,
		"x0", fixedX0, "steps", report.Steps, "kind", rootbench.Kind(report.Err))

	out := cmd.OutOrStdout()
	renderReport(out, report, entry.Roots)

	if fixedHistory && len(report.Iterates) > 0 {
		fmt.Fprintln(out)
		renderIterates(out, report.Iterates)
	}
	return report.Err
}
