package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"gendocs.dev/pkg/gendocs/internal/adapter"
	"gendocs.dev/pkg/gendocs/internal/controller"
	m "gendocs.dev/pkg/gendocs/internal/model"
)

// ScanArgs selects the files a command works on.
type ScanArgs struct {
	Root       m.Path
	Extensions []string
	UseLedger  bool
}

// AnnotateArgs contains the arguments for an annotation run.
type AnnotateArgs struct {
	ScanArgs
	Hard   bool
	DryRun bool
}

// ListArgs contains the arguments for listing target files.
type ListArgs struct {
	ScanArgs
}

// Workflow drives the annotation of a source tree.
type Workflow interface {
	Annotate(ctx context.Context, args AnnotateArgs) error
	List(ctx context.Context, args ListArgs) error
	Reset(ctx context.Context) error
}

type workflow struct {
	fs          adapter.SourceFSAdapter
	ledgerStore adapter.LedgerStore
	ui          controller.UI
	annotator   Annotator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ledgerStore adapter.LedgerStore,
	ui controller.UI,
	annotator Annotator,
) Workflow {
	return &workflow{
		fs:          fsAdapter,
		ledgerStore: ledgerStore,
		ui:          ui,
		annotator:   annotator,
	}
}

// Annotate rewrites every target file under args.Root that the ledger does not
// list yet. The first filesystem error aborts the run.
func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	if err := w.validateRoot(ctx, args.Root); err != nil {
		slog.Error("Invalid scan root", "root", args.Root, "error", err)
		return err
	}

	if args.Hard && !args.DryRun {
		if err := w.Reset(ctx); err != nil {
			return err
		}
	}

	ledger, files, err := w.collect(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	// A dry run previews a hard reset without removing the ledger file.
	if args.Hard && args.DryRun {
		slog.Debug("Ignoring ledger for hard dry run", "entries", ledger.Len())
		ledger = m.NewLedger()
	}

	if err := w.ui.Start(ctx, controller.WithAnnotateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	ledger, summary, err := w.annotateFiles(ctx, files, ledger, args)
	if err != nil {
		slog.Error("Annotation aborted", "error", err, "ledgerEntries", ledger.Len())
		return err
	}

	slog.Info("Annotation finished",
		"files", summary.Files,
		"annotated", summary.Annotated,
		"skipped", summary.Skipped,
		"ledgerEntries", ledger.Len(),
	)
	w.ui.DisplaySummary(ctx, summary)

	return nil
}

// annotateFiles processes files in order against the ledger value it is given
// and returns the ledger extended with every file it wrote.
func (w *workflow) annotateFiles(ctx context.Context, files []m.Path, ledger m.Ledger, args AnnotateArgs) (m.Ledger, m.Summary, error) {
	ledger = ledger.Clone()

	var summary m.Summary

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return ledger, summary, err
		}

		if args.UseLedger && ledger.Contains(string(file)) {
			slog.Debug("Skipping ledgered file", "path", file)
			w.ui.DisplaySkipped(ctx, file)
			summary.Add(m.FileResult{Path: file, Status: m.StatusSkipped})

			continue
		}

		result, err := w.annotateFile(ctx, file, args.DryRun)
		if err != nil {
			return ledger, summary, err
		}

		if !args.DryRun && args.UseLedger {
			if err := w.ledgerStore.Append(ctx, file); err != nil {
				return ledger, summary, fmt.Errorf("append ledger: %w", err)
			}

			ledger.Add(string(file))
		}

		summary.Add(result)
	}

	return ledger, summary, nil
}

func (w *workflow) annotateFile(ctx context.Context, file m.Path, dryRun bool) (m.FileResult, error) {
	content, err := w.fs.ReadFile(ctx, file)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", file, err)
	}

	annotation, err := w.annotator.Annotate(ctx, string(content))
	if err != nil {
		return m.FileResult{}, fmt.Errorf("annotate %s: %w", file, err)
	}

	result := m.FileResult{
		Path:         file,
		Status:       m.StatusAnnotated,
		Declarations: len(annotation.Declarations),
		Members:      len(annotation.Members),
	}

	if dryRun {
		diff, err := RenderDiff(file, string(content), annotation.Content)
		if err != nil {
			return m.FileResult{}, fmt.Errorf("diff %s: %w", file, err)
		}

		result.Status = m.StatusPreviewed
		w.ui.DisplayDiff(ctx, file, diff)

		return result, nil
	}

	if err := w.fs.WriteFile(ctx, file, []byte(annotation.Content)); err != nil {
		return m.FileResult{}, fmt.Errorf("write %s: %w", file, err)
	}

	slog.Debug("Annotated file", "path", file, "declarations", result.Declarations, "members", result.Members)
	w.ui.DisplayAnnotated(ctx, result)

	return result, nil
}

// List shows every target file under args.Root with its ledger status.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.validateRoot(ctx, args.Root); err != nil {
		slog.Error("Invalid scan root", "root", args.Root, "error", err)
		return err
	}

	ledger, files, err := w.collect(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	results := make([]m.FileResult, 0, len(files))

	for _, file := range files {
		status := m.StatusPending
		if args.UseLedger && ledger.Contains(string(file)) {
			status = m.StatusAnnotated
		}

		results = append(results, m.FileResult{Path: file, Status: status})
	}

	if err := w.ui.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.ui.DisplayFileStatuses(ctx, results); err != nil {
		w.ui.Close(ctx)
		slog.Error("Failed to display file statuses", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

// Reset deletes the persisted ledger so the next run annotates every file.
func (w *workflow) Reset(ctx context.Context) error {
	removed, err := w.ledgerStore.Reset(ctx)
	if err != nil {
		slog.Error("Failed to reset ledger", "path", w.ledgerStore.Path(), "error", err)
		return fmt.Errorf("reset ledger: %w", err)
	}

	w.ui.DisplayLedgerReset(ctx, w.ledgerStore.Path(), removed)

	return nil
}

// collect loads the ledger (when enabled) and lists the target files.
func (w *workflow) collect(ctx context.Context, args ScanArgs) (m.Ledger, []m.Path, error) {
	var ledger m.Ledger

	if args.UseLedger {
		loaded, err := w.ledgerStore.Load(ctx)
		if err != nil {
			slog.Error("Failed to load ledger", "error", err)
			return m.Ledger{}, nil, fmt.Errorf("load ledger: %w", err)
		}

		ledger = loaded
	}

	files, err := w.fs.ListFiles(ctx, args.Root, args.Extensions)
	if err != nil {
		slog.Error("Failed to list target files", "root", args.Root, "error", err)
		return m.Ledger{}, nil, fmt.Errorf("list files under %s: %w", args.Root, err)
	}

	slog.Debug("Collected target files", "root", args.Root, "count", len(files), "ledgerEntries", ledger.Len())

	return ledger, files, nil
}

func (w *workflow) validateRoot(ctx context.Context, root m.Path) error {
	info, err := w.fs.FileInfo(ctx, root)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrInvalidRoot, root)
	}

	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	return nil
}
