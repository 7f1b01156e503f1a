package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.rs"), "fn main() {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.rs"), "pub fn child() {}\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.rs")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "main.rs")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.rs")
		writeTestFile(t, child, "pub fn child() {}\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), true, func(string, os.FileInfo, error) error {
			return nil
		})
		if err == nil {
			t.Fatalf("Walk() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_ListFiles(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "lib.rs"), "pub struct A;\n")
	writeTestFile(t, filepath.Join(root, "README.md"), "# readme\n")
	writeTestFile(t, filepath.Join(root, "rs"), "no extension\n")

	nestedDir := filepath.Join(root, "model")
	mustMkdir(t, nestedDir)
	writeTestFile(t, filepath.Join(nestedDir, "point.rs"), "pub struct Point;\n")

	// A directory named like a source file is not a target.
	mustMkdir(t, filepath.Join(root, "dir.rs"))

	files, err := adapter.ListFiles(context.Background(), m.Path(root), []string{".rs"})
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(root, "lib.rs")),
		m.Path(filepath.Join(nestedDir, "point.rs")),
	}

	if len(files) != len(want) {
		t.Fatalf("ListFiles() = %v, want %v", files, want)
	}

	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("ListFiles()[%d] = %s, want %s", i, files[i], want[i])
		}
	}

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := adapter.ListFiles(context.Background(), m.Path(filepath.Join(root, "missing")), []string{".rs"})
		if err == nil {
			t.Fatalf("ListFiles() expected error for missing root")
		}
	})
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		path       string
		extensions []string
		want       bool
	}{
		{"src/main.rs", []string{".rs"}, true},
		{"src/main.rs", []string{"rs"}, true},
		{"src/main.rs", []string{" .rs "}, true},
		{"src/main.go", []string{".rs"}, false},
		{"src/Makefile", []string{".rs", ""}, false},
		{"src/main.rs", nil, false},
	}

	for _, tt := range tests {
		if got := hasExtension(tt.path, tt.extensions); got != tt.want {
			t.Errorf("hasExtension(%q, %v) = %v, want %v", tt.path, tt.extensions, got, tt.want)
		}
	}
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.rs")
	writeTestFile(t, path, "fn main() {}\n")

	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	content := "/// WIP_main_function_description\npub fn main() {}\n"
	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte(content)); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if info.Mode().Perm() != 0o600 {
		t.Fatalf("WriteFile() changed mode to %v", info.Mode().Perm())
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.rs")
	writeTestFile(t, path, "fn main() {}\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
