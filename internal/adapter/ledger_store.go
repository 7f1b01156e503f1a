package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

// DefaultLedgerFile is the sentinel file that records annotated paths.
const DefaultLedgerFile = ".gen_doc_his"

// DefaultIgnoreFile is the project ignore list that receives the ledger rule.
const DefaultIgnoreFile = ".gitignore"

// LedgerStore persists the set of already annotated files.
type LedgerStore interface {
	// Load reads the ledger. A missing ledger file yields an empty ledger.
	Load(ctx context.Context) (m.Ledger, error)

	// Append records path. Creating the ledger file also adds an ignore rule
	// for it to the project ignore list, once.
	Append(ctx context.Context, path m.Path) error

	// Reset deletes the ledger file and reports whether one existed.
	Reset(ctx context.Context) (bool, error)

	// Path returns the location of the ledger file.
	Path() m.Path
}

// LocalLedgerStore keeps the ledger as one path per line in a local file.
type LocalLedgerStore struct {
	path       m.Path
	ignoreFile m.Path
}

// NewLocalLedgerStore creates a store for the given ledger and ignore-list
// files. Empty arguments fall back to the defaults in the working directory.
func NewLocalLedgerStore(path, ignoreFile m.Path) *LocalLedgerStore {
	if strings.TrimSpace(string(path)) == "" {
		path = DefaultLedgerFile
	}

	if strings.TrimSpace(string(ignoreFile)) == "" {
		ignoreFile = DefaultIgnoreFile
	}

	return &LocalLedgerStore{path: path, ignoreFile: ignoreFile}
}

// Path returns the ledger file location.
func (s *LocalLedgerStore) Path() m.Path {
	return s.path
}

// Load implements LedgerStore.
func (s *LocalLedgerStore) Load(_ context.Context) (m.Ledger, error) {
	content, err := os.ReadFile(string(s.path))
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("ledger not found", "path", s.path)
		return m.Ledger{}, nil
	}

	if err != nil {
		return m.Ledger{}, fmt.Errorf("read ledger %s: %w", s.path, err)
	}

	var ledger m.Ledger

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ledger.Add(line)
	}

	if err := scanner.Err(); err != nil {
		return m.Ledger{}, fmt.Errorf("scan ledger %s: %w", s.path, err)
	}

	slog.Debug("loaded ledger", "path", s.path, "entries", ledger.Len())

	return ledger, nil
}

// Append implements LedgerStore.
func (s *LocalLedgerStore) Append(_ context.Context, path m.Path) (err error) {
	_, statErr := os.Stat(string(s.path))
	created := errors.Is(statErr, os.ErrNotExist)

	// #nosec G304 - the ledger location comes from configuration
	file, err := os.OpenFile(string(s.path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", s.path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close ledger %s: %w", s.path, closeErr)
		}
	}()

	if created {
		if err := s.ensureIgnoreRule(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(file, path); err != nil {
		return fmt.Errorf("write ledger %s: %w", s.path, err)
	}

	return nil
}

// Reset implements LedgerStore.
func (s *LocalLedgerStore) Reset(_ context.Context) (bool, error) {
	err := os.Remove(string(s.path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("remove ledger %s: %w", s.path, err)
	}

	slog.Info("removed ledger", "path", s.path)

	return true, nil
}

// ensureIgnoreRule appends the ledger rule block to an existing ignore list
// unless a line already names the ledger file.
func (s *LocalLedgerStore) ensureIgnoreRule() error {
	content, err := os.ReadFile(string(s.ignoreFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("read ignore file %s: %w", s.ignoreFile, err)
	}

	rule := s.ignoreRule()
	if hasIgnoreRule(content, rule) {
		return nil
	}

	// #nosec G304 - the ignore file location comes from configuration
	file, err := os.OpenFile(string(s.ignoreFile), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ignore file %s: %w", s.ignoreFile, err)
	}

	defer func() { _ = file.Close() }()

	if _, err := file.WriteString(ignoreBlock(rule)); err != nil {
		return fmt.Errorf("write ignore file %s: %w", s.ignoreFile, err)
	}

	slog.Info("added ledger to ignore file", "ignoreFile", s.ignoreFile, "rule", rule)

	return nil
}

// ignoreRule is the ledger path relative to the ignore file's directory.
func (s *LocalLedgerStore) ignoreRule() string {
	absLedger, err := filepath.Abs(string(s.path))
	if err != nil {
		return filepath.ToSlash(string(s.path))
	}

	absIgnoreDir, err := filepath.Abs(filepath.Dir(string(s.ignoreFile)))
	if err != nil {
		return filepath.ToSlash(string(s.path))
	}

	rel, err := filepath.Rel(absIgnoreDir, absLedger)
	if err != nil {
		return filepath.ToSlash(string(s.path))
	}

	return filepath.ToSlash(rel)
}

func hasIgnoreRule(content []byte, rule string) bool {
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == rule {
			return true
		}
	}

	return false
}

func ignoreBlock(rule string) string {
	return "\n# The history file for the `gendocs` command.\n" +
		"# If you want to know details, please access 'https://gendocs.dev'.\n" +
		rule + "\n"
}
