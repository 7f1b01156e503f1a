package cmd

import (
	"github.com/spf13/cobra"

	"gendocs.dev/pkg/gendocs/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List target files and their ledger status",
		Long: `List every target file under --path and whether the ledger already
records it as annotated. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanArgs: scanArgs(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
