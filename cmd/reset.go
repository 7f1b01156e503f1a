package cmd

import (
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command.
var resetCmd = newResetCmd()

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the ledger file",
		Long: `Delete the ledger file so the next run annotates every target file again.
Unlike "gendocs hard" no files are scanned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Reset(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
