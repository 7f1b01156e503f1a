package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	annotatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hunkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TUI implements UI with styled line output for annotation runs and an
// interactive, paginated Bubble Tea view for the file list.
type TUI struct {
	*SimpleUI

	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Start launches the interactive program in list mode. Annotation runs only
// print lines and need no program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if resolveStartConfig(options).mode != ModeList {
		return nil
	}

	program := tea.NewProgram(
		newListModel(initialPerPage(t.cmd.OutOrStdout())),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithContext(ctx),
	)

	group := &errgroup.Group{}
	group.Go(func() error {
		_, err := program.Run()
		return err
	})

	t.program = program
	t.group = group

	return nil
}

// initialPerPage sizes the first page from the terminal height. Later
// WindowSizeMsg updates take over once the program runs.
func initialPerPage(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultPerPage
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || height-reservedLines < 1 {
		return defaultPerPage
	}

	return height - reservedLines
}

// Wait blocks until the user quits the interactive program.
func (t *TUI) Wait(_ context.Context) {
	if t.group == nil {
		return
	}

	if err := t.group.Wait(); err != nil {
		slog.Debug("TUI program stopped", "error", err)
	}
}

// Close stops the interactive program if it is still running.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	t.Wait(ctx)

	t.program = nil
	t.group = nil
}

// DisplaySkipped prints a faint skip notice.
func (t *TUI) DisplaySkipped(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", dimStyle.Render(skippedMessage(path)))
}

// DisplayAnnotated prints a highlighted notice for a rewritten file.
func (t *TUI) DisplayAnnotated(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s %s\n", annotatedStyle.Render("✓"), annotatedMessage(result))
}

// DisplayDiff prints the dry-run diff with added and removed lines colored.
func (t *TUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		t.SimpleUI.DisplayDiff(ctx, path, diff)
		return
	}

	t.printf("%s", colorizeDiff(diff))
}

// DisplayFileStatuses hands the file list to the running program, or prints
// it when no program was started.
func (t *TUI) DisplayFileStatuses(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.program == nil {
		return t.SimpleUI.DisplayFileStatuses(ctx, results)
	}

	t.program.Send(fileStatusesMsg(results))

	return nil
}

func colorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		text := strings.TrimSuffix(line, "\n")
		newline := line[len(text):]

		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			b.WriteString(titleStyle.Render(text))
		case strings.HasPrefix(text, "@@"):
			b.WriteString(hunkStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(addedStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(removedStyle.Render(text))
		default:
			b.WriteString(text)
		}

		b.WriteString(newline)
	}

	return b.String()
}

// fileStatusesMsg delivers the scanned files to the list model.
type fileStatusesMsg []m.FileResult

const (
	defaultPerPage = 10
	// reservedLines is the room taken by the title, blank lines and footer.
	reservedLines = 6
)

// listModel is the Bubble Tea model that pages through the target files.
type listModel struct {
	results   []m.FileResult
	paginator paginator.Model
	loaded    bool
	quitting  bool
}

func newListModel(perPage int) listModel {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = perPage

	return listModel{paginator: p}
}

func (lm listModel) Init() tea.Cmd {
	return nil
}

func (lm listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileStatusesMsg:
		lm.results = msg
		lm.loaded = true
		lm.resize(lm.paginator.PerPage)

		return lm, nil

	case tea.WindowSizeMsg:
		lm.resize(msg.Height - reservedLines)
		return lm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			lm.quitting = true
			return lm, tea.Quit
		}
	}

	var cmd tea.Cmd

	lm.paginator, cmd = lm.paginator.Update(msg)

	return lm, cmd
}

// resize sets the page size and keeps the current page in range.
func (lm *listModel) resize(perPage int) {
	if perPage < 1 {
		perPage = 1
	}

	lm.paginator.PerPage = perPage
	lm.paginator.TotalPages = 1
	lm.paginator.SetTotalPages(len(lm.results))

	if lm.paginator.Page >= lm.paginator.TotalPages {
		lm.paginator.Page = lm.paginator.TotalPages - 1
	}
}

func (lm listModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gendocs - target files"))
	b.WriteString("\n\n")

	if !lm.loaded {
		b.WriteString(dimStyle.Render("  scanning..."))
		b.WriteString("\n")

		return b.String()
	}

	if len(lm.results) == 0 {
		b.WriteString("  No target files found\n")
		return b.String()
	}

	start, end := lm.paginator.GetSliceBounds(len(lm.results))
	for _, result := range lm.results[start:end] {
		fmt.Fprintf(&b, "  %s  %s\n", renderStatus(result.Status), result.Path)
	}

	if lm.quitting {
		return b.String()
	}

	b.WriteString("\n  ")
	b.WriteString(lm.paginator.View())
	b.WriteString(dimStyle.Render("  ←/→ page • q quit"))
	b.WriteString("\n")

	return b.String()
}

func renderStatus(status m.FileStatus) string {
	label := fmt.Sprintf("%-9s", status)

	switch status {
	case m.StatusAnnotated:
		return annotatedStyle.Render(label)
	case m.StatusPending:
		return pendingStyle.Render(label)
	case m.StatusSkipped, m.StatusPreviewed:
		return dimStyle.Render(label)
	}

	return label
}
