// Package controller provides the output adapters for annotation runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAnnotate StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithAnnotateMode sets the UI to report an annotation run.
func WithAnnotateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnnotate
	}
}

// WithListMode sets the UI to show the target file list.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeAnnotate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting annotation progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayLedgerReset(ctx context.Context, ledger m.Path, removed bool)
	DisplaySkipped(ctx context.Context, path m.Path)
	DisplayAnnotated(ctx context.Context, result m.FileResult)
	DisplayDiff(ctx context.Context, path m.Path, diff string)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayFileStatuses(ctx context.Context, results []m.FileResult) error
}

// NewUI returns the interactive TUI when useTTY is set and the plain
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
