package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayLedgerReset reports the outcome of a ledger reset.
func (s *SimpleUI) DisplayLedgerReset(ctx context.Context, ledger m.Path, removed bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if removed {
		s.printf("Removed ledger file: %s\n", ledger)
		return
	}

	s.printf("No ledger file at %s\n", ledger)
}

// DisplaySkipped reports a file that the ledger already lists.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", skippedMessage(path))
}

// DisplayAnnotated reports a rewritten file.
func (s *SimpleUI) DisplayAnnotated(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", annotatedMessage(result))
}

// DisplayDiff prints the unified diff of a dry run.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("No changes for %s\n", path)
		return
	}

	s.printf("%s", diff)
}

// DisplaySummary prints the totals of a run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(summary))
}

// DisplayFileStatuses prints the target files with their ledger status.
func (s *SimpleUI) DisplayFileStatuses(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(results) == 0 {
		s.printf("No target files found\n")
		return nil
	}

	s.printf("\n%s", renderStatusTable(results))

	return nil
}

func skippedMessage(path m.Path) string {
	return fmt.Sprintf("Skipping already annotated file: %s", path)
}

func annotatedMessage(result m.FileResult) string {
	return fmt.Sprintf("Annotated %s (%d declarations, %d members)", result.Path, result.Declarations, result.Members)
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Result", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"annotated files", fmt.Sprintf("%d", summary.Annotated)})
	table.Append([]string{"skipped files", fmt.Sprintf("%d", summary.Skipped)})

	if summary.Previewed > 0 {
		table.Append([]string{"previewed files", fmt.Sprintf("%d", summary.Previewed)})
	}

	table.Append([]string{"declaration comments", fmt.Sprintf("%d", summary.Declarations)})
	table.Append([]string{"member comments", fmt.Sprintf("%d", summary.Members)})

	table.Render()

	return tableBuffer.String()
}

func renderStatusTable(results []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	pending := 0

	for _, result := range results {
		table.Append([]string{string(result.Path), string(result.Status)})

		if result.Status == m.StatusPending {
			pending++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d pending", pending),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
