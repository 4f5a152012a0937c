package main

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/reasoner/internal/bench/report"
	"github.com/DjordjeVuckovic/reasoner/internal/bench/runner"
	"github.com/DjordjeVuckovic/reasoner/internal/bench/suite"
	"github.com/spf13/cobra"
)

type benchConfig struct {
	SuitePath string
	Warmup    int
	Runs      int
	Output    string
}

func newBenchCmd(cli *cliConfig) *cobra.Command {
	bc := &benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run an evaluation suite against the reasoner",
		Long: `Run every case of a YAML suite, check the answers and report pass rates
and latency. Exits non-zero when any case fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, cli, bc)
		},
	}

	f := cmd.Flags()
	f.StringVar(&bc.SuitePath, "suite", "configs/suites/arithmetic.yaml", "Path to suite YAML")
	f.IntVar(&bc.Warmup, "warmup", runner.DefaultWarmupRuns, "Number of warmup runs before measurement")
	f.IntVar(&bc.Runs, "runs", runner.DefaultRuns, "Number of measured runs per case")
	f.StringVar(&bc.Output, "output", "", "Output path for a JSON report, or - to print JSON instead of the table")

	return cmd
}

func runBench(cmd *cobra.Command, cli *cliConfig, bc *benchConfig) error {
	a, err := cli.load(cmd)
	if err != nil {
		return err
	}

	loaded, err := suite.LoadFromFile(bc.SuitePath)
	if err != nil {
		return err
	}

	r := runner.New(runner.Config{WarmupRuns: bc.Warmup, Runs: bc.Runs}, a.reasoner, a.logger)
	result, err := r.Run(cmd.Context(), loaded)
	if err != nil {
		return fmt.Errorf("run suite: %w", err)
	}

	rpt := report.Generate(result)
	switch bc.Output {
	case "-":
		if err := report.WriteJSON(rpt, cmd.OutOrStdout()); err != nil {
			return err
		}
	default:
		if err := report.WriteTable(rpt, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if bc.Output != "" {
			if err := report.WriteJSONFile(rpt, bc.Output); err != nil {
				return err
			}
			slog.Info("Report written", "path", bc.Output)
		}
	}

	if failed := result.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(result.Cases))
	}
	return nil
}
