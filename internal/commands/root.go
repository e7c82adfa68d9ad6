package commands

import (
	"github.com/spf13/cobra"

	"github.com/proforma-dev/proforma/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "proforma",
		Short:   "Bank P&L and balance-sheet what-if analysis",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newComputeCommand())
	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newSweepCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
