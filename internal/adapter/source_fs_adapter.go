// Package adapter contains the filesystem adapters used by the annotation workflow.
package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a source tree. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ListFiles returns every regular file under root whose extension is one of
	// extensions, descending into subdirectories.
	ListFiles(ctx context.Context, root m.Path, extensions []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the contents of an existing file, keeping its mode.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ListFiles collects target files under root in lexical walk order.
func (a *LocalSourceFSAdapter) ListFiles(ctx context.Context, root m.Path, extensions []string) ([]m.Path, error) {
	var files []m.Path

	err := a.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.Mode().IsRegular() || !hasExtension(path, extensions) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// hasExtension reports whether path ends in one of extensions. Extensions may
// be given with or without the leading dot.
func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}

	for _, want := range extensions {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}

		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}

		if ext == want {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from walking the user's own source tree
	return os.ReadFile(string(path))
}

// WriteFile writes content to path, reusing the mode of the existing file.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
