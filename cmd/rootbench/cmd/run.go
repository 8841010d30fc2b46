package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexshd/rootbench"
	"github.com/alexshd/rootbench/internal/config"
)

var (
	runConfig  string
	runWorkers int
	runTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a problem set",
	Long: `Loads problems from a TOML or YAML file (chosen by extension) and
solves them in parallel. Exits non-zero if any problem fails.

Examples:
  rootbench run --config problems.toml
  rootbench run --config problems.yaml --workers 4 --timeout 10s`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfig, "config", "c", "", "Problem set file (.toml, .yaml, .yml)")
	runCmd.Flags().IntVarP(&runWorkers, "workers", "w", 0, "Concurrent solves (default: file setting or GOMAXPROCS)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Stop starting new problems after this long (0 = no limit)")
	_ = runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	set, err := config.Load(runConfig)
	if err != nil {
		return err
	}

	problems, err := set.Resolve(rootbench.DefaultRegistry())
	if err != nil {
		return err
	}

	cfg := rootbench.DefaultConfig()
	cfg.Logger = slog.Default()
	if set.Defaults.Workers > 0 {
		cfg.Workers = set.Defaults.Workers
	}
	if runWorkers > 0 {
		cfg.Workers = runWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runTimeout)
		defer cancel()
	}

	slog.Info("solving problem set", "file", runConfig, "problems", len(problems), "workers", cfg.Workers)

	reports, runErr := rootbench.Run(ctx, problems, cfg)

	out := cmd.OutOrStdout()
	for i, r := range reports {
		var known []float64
		if e, err := rootbench.Lookup(set.Problems[i].Function); err == nil {
			known = e.Roots
		}
		renderReport(out, r, known)
		fmt.Fprintln(out)
	}

	summary := rootbench.Summarize(reports)
	renderSummary(out, summary)

	if runErr != nil {
		return runErr
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d problems failed", summary.Failed, summary.Total)
	}
	return nil
}
