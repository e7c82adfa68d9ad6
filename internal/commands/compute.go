package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/proforma-dev/proforma/internal/render"
	"github.com/proforma-dev/proforma/internal/scenario"
	"github.com/proforma-dev/proforma/internal/statement"
)

type computeOptions struct {
	dir      string
	scenario string
	sets     []string
	format   string
	noColor  bool
}

func newComputeCommand() *cobra.Command {
	var opts computeOptions

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Evaluate a scenario into a P&L and balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "scenario name or file (default: workspace baseline)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "driver override, driver=value (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return cmd
}

func runCompute(out io.Writer, opts computeOptions) error {
	cfg, err := loadWorkspaceConfig(opts.dir)
	if err != nil {
		return err
	}

	sc, err := loadScenario(scenario.NewStore(opts.dir), opts.scenario)
	if err != nil {
		return err
	}
	if err := applySets(&sc.Inputs, opts.sets); err != nil {
		return err
	}

	evaluator := statement.NewEvaluator(decimal.NewFromFloat(cfg.Evaluation.Tolerance))
	ev, everr := evaluator.Evaluate(sc.Inputs, sc.Opening)

	// An identity failure still yields full statements. Render them so
	// the imbalance is visible, then fail the command.
	var ub *statement.UnbalancedError
	if everr != nil && !errors.As(everr, &ub) {
		return everr
	}

	switch opts.format {
	case "text":
		fmt.Fprint(out, newRenderer(opts.noColor).Evaluation(ev))
	case "json":
		if err := writeJSON(out, render.NewEvaluationJSON(ev)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
	return everr
}
