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

type compareOptions struct {
	dir              string
	before           string
	after            string
	sets             []string
	thresholdAmount  string
	thresholdPercent string
	format           string
	noColor          bool
}

func newCompareCommand() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two scenarios sharing one set of opening balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&opts.before, "before", "", "baseline scenario name or file (default: workspace baseline)")
	cmd.Flags().StringVar(&opts.after, "after", "", "adjusted scenario name or file (default: baseline plus overrides)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "driver override applied to the after scenario (repeatable)")
	cmd.Flags().StringVar(&opts.thresholdAmount, "threshold-amount", "", "flag rows whose absolute delta meets this amount")
	cmd.Flags().StringVar(&opts.thresholdPercent, "threshold-percent", "", "flag rows whose percent delta meets this value")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return cmd
}

func runCompare(out io.Writer, opts compareOptions) error {
	if opts.after == "" && len(opts.sets) == 0 {
		return errors.New("nothing to compare: provide --after or at least one --set override")
	}

	cfg, err := loadWorkspaceConfig(opts.dir)
	if err != nil {
		return err
	}

	store := scenario.NewStore(opts.dir)
	before, err := loadScenario(store, opts.before)
	if err != nil {
		return err
	}

	// The after scenario shares the before scenario's opening balances,
	// so deltas reflect driver moves alone.
	after := before
	if opts.after != "" {
		if after, err = store.LoadOne(opts.after); err != nil {
			return err
		}
	}
	if err := applySets(&after.Inputs, opts.sets); err != nil {
		return err
	}

	amount, err := parseThreshold("threshold-amount", opts.thresholdAmount, cfg.Compare.ThresholdAmount)
	if err != nil {
		return err
	}
	percent, err := parseThreshold("threshold-percent", opts.thresholdPercent, cfg.Compare.ThresholdPercent)
	if err != nil {
		return err
	}

	evaluator := statement.NewEvaluator(decimal.NewFromFloat(cfg.Evaluation.Tolerance))
	cmp, cerr := evaluator.Compare(before.Inputs, after.Inputs, before.Opening, statement.Thresholds{
		Amount:  amount,
		Percent: percent,
	})

	var ub *statement.UnbalancedError
	if cerr != nil && !errors.As(cerr, &ub) {
		return cerr
	}

	switch opts.format {
	case "text":
		fmt.Fprint(out, newRenderer(opts.noColor).Comparison(cmp))
	case "json":
		if err := writeJSON(out, render.NewComparisonJSON(cmp)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
	return cerr
}
