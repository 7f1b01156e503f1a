package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writtenConfig mirrors the parts of gendocs.yaml that init must populate.
type writtenConfig struct {
	Scan struct {
		Path       string   `yaml:"path"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"scan"`
	Ledger struct {
		File       string `yaml:"file"`
		IgnoreFile string `yaml:"ignore_file"`
		Disabled   bool   `yaml:"disabled"`
	} `yaml:"ledger"`
}

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func runInit(t *testing.T) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesDefaultConfig(t *testing.T) {
	tempDir := chdirTemp(t)

	out, err := runInit(t)
	require.NoError(t, err)

	assert.Equal(t, "Wrote "+filepath.Join(configFolderPath, configFileName)+"\n", out)

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var cfg writtenConfig
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	assert.Equal(t, "src", cfg.Scan.Path)
	assert.Equal(t, []string{".rs"}, cfg.Scan.Extensions)
	assert.Equal(t, ".gen_doc_his", cfg.Ledger.File)
	assert.Equal(t, ".gitignore", cfg.Ledger.IgnoreFile)
	assert.False(t, cfg.Ledger.Disabled)
}

func TestInitCmd_KeepsExistingConfig(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("scan:\n  path: crates\n"), 0o644))

	out, err := runInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
	assert.NotContains(t, out, "Wrote ")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "scan:\n  path: crates\n", string(contents))
}
