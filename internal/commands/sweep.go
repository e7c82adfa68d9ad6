package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/proforma-dev/proforma/internal/model"
	"github.com/proforma-dev/proforma/internal/render"
	"github.com/proforma-dev/proforma/internal/scenario"
	"github.com/proforma-dev/proforma/internal/statement"
)

type sweepOptions struct {
	dir      string
	scenario string
	driver   string
	from     string
	to       string
	step     string
	format   string
	noColor  bool
}

func newSweepCommand() *cobra.Command {
	var opts sweepOptions

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Vary one driver across a range and tabulate the outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "scenario name or file (default: workspace baseline)")
	cmd.Flags().StringVar(&opts.driver, "driver", "provision_expense", "driver to vary")
	cmd.Flags().StringVar(&opts.from, "from", "0", "first driver value")
	cmd.Flags().StringVar(&opts.to, "to", "50000", "last driver value")
	cmd.Flags().StringVar(&opts.step, "step", "1000", "increment between values")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table, csv or json")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return cmd
}

func runSweep(out io.Writer, opts sweepOptions) error {
	cfg, err := loadWorkspaceConfig(opts.dir)
	if err != nil {
		return err
	}

	sc, err := loadScenario(scenario.NewStore(opts.dir), opts.scenario)
	if err != nil {
		return err
	}

	from, err := parseSweepBound("from", opts.from)
	if err != nil {
		return err
	}
	to, err := parseSweepBound("to", opts.to)
	if err != nil {
		return err
	}
	step, err := parseSweepBound("step", opts.step)
	if err != nil {
		return err
	}

	key := model.DriverKey(opts.driver)
	evaluator := statement.NewEvaluator(decimal.NewFromFloat(cfg.Evaluation.Tolerance))
	steps, err := evaluator.Sweep(sc.Inputs, sc.Opening, key, from, to, step)
	if err != nil {
		return err
	}

	switch opts.format {
	case "table":
		fmt.Fprint(out, newRenderer(opts.noColor).Sweep(key, steps))
	case "csv":
		return render.WriteSweepCSV(out, key, steps)
	case "json":
		return writeJSON(out, render.NewSweepJSON(key, steps))
	default:
		return fmt.Errorf("unknown format %q (want table, csv or json)", opts.format)
	}
	return nil
}

func parseSweepBound(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing --%s: %w", name, err)
	}
	return v, nil
}
