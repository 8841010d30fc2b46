package cmd

import (
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexshd/rootbench"
)

var (
	bisectFunc      string
	bisectA         float64
	bisectB         float64
	bisectEps       float64
	bisectPrecision uint
	bisectHistory   bool
)

var bisectCmd = &cobra.Command{
	Use:   "bisect",
	Short: "Find a root by interval bisection",
	Long: `Bisects [a, b] until its width is at most eps. F(a) and F(b) must
have opposite signs.

Examples:
  rootbench bisect --func trig --a -3 --b -2 --eps 1e-6
  rootbench bisect --func exp --a 0 --b 1 --eps 1e-40 --precision 200
  rootbench bisect --func polynom --a 0 --b 1 --history`,
	RunE: runBisect,
}

func init() {
	rootCmd.AddCommand(bisectCmd)

	bisectCmd.Flags().StringVarP(&bisectFunc, "func", "f", "trig", "Function name (see 'rootbench functions')")
	bisectCmd.Flags().Float64Var(&bisectA, "a", -3, "Left end of the bracket")
	bisectCmd.Flags().Float64Var(&bisectB, "b", -2, "Right end of the bracket")
	bisectCmd.Flags().Float64Var(&bisectEps, "eps", 1e-6, "Truncation error")
	bisectCmd.Flags().UintVar(&bisectPrecision, "precision", 0, "Bits of precision (0 = float64)")
	bisectCmd.Flags().BoolVar(&bisectHistory, "history", false, "Print every bisection step")
}

func runBisect(cmd *cobra.Command, args []string) error {
	entry, err := rootbench.Lookup(bisectFunc)
	if err != nil {
		return err
	}

	if bisectPrecision > 0 {
		return runBisectBig(cmd, entry)
	}

	start := time.Now()
	root, trace, err := rootbench.BisectTrace(entry.F, bisectA, bisectB, bisectEps)
	report := rootbench.Report{
		ID:       uuid.New(),
		Problem:  entry.Name,
		Method:   rootbench.MethodBisection,
		Root:     root,
		Steps:    len(trace),
		Err:      err,
		Duration: time.Since(start),
	}

	slog.Debug("bisection finished", "func", entry.Name, "a", bisectA, "b", bisectB,
		"eps", bisectEps, "steps", report.Steps, "kind", rootbench.Kind(err))

	out := cmd.OutOrStdout()
	renderReport(out, report, entry.Roots)
	if bisectHistory && len(trace) > 0 {
		fmt.Fprintln(out)
		renderTrace(out, trace)
	}
	return err
}

func runBisectBig(cmd *cobra.Command, entry rootbench.Entry) error {
	if entry.Big == nil {
		return fmt.Errorf("%s has no arbitrary-precision form", entry.Name)
	}

	prec := bisectPrecision
	a := new(big.Float).SetPrec(prec).SetFloat64(bisectA)
	b := new(big.Float).SetPrec(prec).SetFloat64(bisectB)
	eps := new(big.Float).SetPrec(prec).SetFloat64(bisectEps)

	start := time.Now()
	root, steps, err := rootbench.BisectBig(entry.Big, a, b, eps)
	elapsed := time.Since(start)

	slog.Debug("big bisection finished", "func", entry.Name, "precision", prec,
		"steps", steps, "kind", rootbench.Kind(err))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%s, %d bits)", entry.Name, rootbench.MethodBisection, prec)))
	field(out, "Status", "%s", status(err))
	if err != nil {
		field(out, "Reason", "%v", err)
		return err
	}

	// Decimal digits carried by prec bits.
	digits := int(float64(prec) * 0.30103)
	field(out, "Root", "%s", root.Text('g', digits))
	field(out, "Steps", "%d", steps)
	field(out, "Duration", "%s", elapsed)
	return nil
}
