package domain_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gendocs.dev/pkg/gendocs/internal/adapter"
	"gendocs.dev/pkg/gendocs/internal/controller"
	domain "gendocs.dev/pkg/gendocs/internal/domain"
	m "gendocs.dev/pkg/gendocs/internal/model"
)

const pointSource = "pub struct Point {\n    pub x: i32,\n    pub y: i32,\n}\n"

const pointAnnotated = "/// WIP_Point_struct_description\n" +
	"pub struct Point {\n" +
	"    /// WIP_x_field_description\n" +
	"    pub x: i32,\n" +
	"    /// WIP_y_field_description\n" +
	"    pub y: i32,\n" +
	"}\n"

type integrationEnv struct {
	root   string
	ledger string
	out    *bytes.Buffer
	wf     domain.Workflow
}

func newIntegrationEnv(t *testing.T) integrationEnv {
	t.Helper()

	dir := t.TempDir()
	root := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ledger := filepath.Join(dir, adapter.DefaultLedgerFile)
	store := adapter.NewLocalLedgerStore(m.Path(ledger), m.Path(filepath.Join(dir, adapter.DefaultIgnoreFile)))

	wf := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		store,
		controller.NewSimpleUI(cmd),
		domain.NewAnnotator(),
	)

	return integrationEnv{root: root, ledger: ledger, out: out, wf: wf}
}

func (e integrationEnv) write(t *testing.T, rel, content string) string {
	t.Helper()

	path := filepath.Join(e.root, rel)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readString(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func TestWorkflowIntegration_AnnotateIsIdempotentWithLedger(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	point := env.write(t, "point.rs", pointSource)
	notes := env.write(t, "notes.txt", "pub struct NotRust;\n")

	args := domain.AnnotateArgs{ScanArgs: domain.ScanArgs{
		Root:       m.Path(env.root),
		Extensions: []string{".rs"},
		UseLedger:  true,
	}}

	require.NoError(t, env.wf.Annotate(ctx, args))
	assert.Equal(t, pointAnnotated, readString(t, point))
	assert.Equal(t, "pub struct NotRust;\n", readString(t, notes))
	assert.Equal(t, point+"\n", readString(t, env.ledger))

	env.out.Reset()

	require.NoError(t, env.wf.Annotate(ctx, args))
	assert.Equal(t, pointAnnotated, readString(t, point))
	assert.Contains(t, env.out.String(), "Skipping already annotated file: "+point)
	assert.Equal(t, point+"\n", readString(t, env.ledger))
}

func TestWorkflowIntegration_HardReprocessesFiles(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	point := env.write(t, "nested/point.rs", pointSource)

	args := domain.AnnotateArgs{ScanArgs: domain.ScanArgs{
		Root:       m.Path(env.root),
		Extensions: []string{".rs"},
		UseLedger:  true,
	}}

	require.NoError(t, env.wf.Annotate(ctx, args))

	args.Hard = true
	require.NoError(t, env.wf.Annotate(ctx, args))

	// Placeholders are not recognized as existing documentation.
	twice := readString(t, point)
	assert.Contains(t, twice, "/// WIP_Point_struct_description\n/// WIP_Point_struct_description\npub struct Point {\n")
	assert.Equal(t, point+"\n", readString(t, env.ledger))
}

func TestWorkflowIntegration_DryRunWritesNothing(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	point := env.write(t, "point.rs", pointSource)

	args := domain.AnnotateArgs{
		ScanArgs: domain.ScanArgs{
			Root:       m.Path(env.root),
			Extensions: []string{".rs"},
			UseLedger:  true,
		},
		DryRun: true,
	}

	require.NoError(t, env.wf.Annotate(ctx, args))

	assert.Equal(t, pointSource, readString(t, point))
	assert.NoFileExists(t, env.ledger)
	assert.Contains(t, env.out.String(), "+/// WIP_Point_struct_description")
}

func TestWorkflowIntegration_HardDryRunKeepsLedger(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	point := env.write(t, "point.rs", pointSource)

	args := domain.AnnotateArgs{ScanArgs: domain.ScanArgs{
		Root:       m.Path(env.root),
		Extensions: []string{".rs"},
		UseLedger:  true,
	}}

	require.NoError(t, env.wf.Annotate(ctx, args))
	before := readString(t, env.ledger)

	env.out.Reset()

	args.Hard = true
	args.DryRun = true
	require.NoError(t, env.wf.Annotate(ctx, args))

	assert.FileExists(t, env.ledger)
	assert.Equal(t, before, readString(t, env.ledger))
	assert.Equal(t, pointAnnotated, readString(t, point))
	assert.Contains(t, env.out.String(), "+/// WIP_Point_struct_description")
	assert.NotContains(t, env.out.String(), "Removed ledger file")
	assert.NotContains(t, env.out.String(), "Skipping already annotated file")
}

func TestWorkflowIntegration_WithoutLedger(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	point := env.write(t, "point.rs", pointSource)

	args := domain.AnnotateArgs{ScanArgs: domain.ScanArgs{
		Root:       m.Path(env.root),
		Extensions: []string{".rs"},
	}}

	require.NoError(t, env.wf.Annotate(ctx, args))

	assert.Equal(t, pointAnnotated, readString(t, point))
	assert.NoFileExists(t, env.ledger)
}

func TestWorkflowIntegration_InvalidRoot(t *testing.T) {
	env := newIntegrationEnv(t)

	args := domain.AnnotateArgs{ScanArgs: domain.ScanArgs{
		Root:       m.Path(filepath.Join(env.root, "missing")),
		Extensions: []string{".rs"},
		UseLedger:  true,
	}}

	err := env.wf.Annotate(context.Background(), args)

	require.ErrorIs(t, err, domain.ErrInvalidRoot)
	assert.NoFileExists(t, env.ledger)
}

func TestWorkflowIntegration_ListAndReset(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	point := env.write(t, "point.rs", pointSource)
	pending := env.write(t, "nested/color.rs", "pub enum Color {\n    Red,\n}\n")

	require.NoError(t, os.WriteFile(env.ledger, []byte(point+"\n"), 0o644))

	scan := domain.ScanArgs{Root: m.Path(env.root), Extensions: []string{".rs"}, UseLedger: true}

	require.NoError(t, env.wf.List(ctx, domain.ListArgs{ScanArgs: scan}))
	assert.Contains(t, env.out.String(), point)
	assert.Contains(t, env.out.String(), pending)
	assert.Contains(t, env.out.String(), string(m.StatusPending))
	assert.Contains(t, env.out.String(), string(m.StatusAnnotated))

	env.out.Reset()

	require.NoError(t, env.wf.Reset(ctx))
	assert.NoFileExists(t, env.ledger)
	assert.Contains(t, env.out.String(), "Removed ledger file: "+env.ledger)
}

// copyTree copies the fixture crate at src into dst so the test can rewrite it.
func copyTree(t *testing.T, src, dst string) {
	t.Helper()

	err := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(target, content, 0o644)
	})
	require.NoError(t, err)
}

func TestWorkflowIntegration_ShapesCrate(t *testing.T) {
	env := newIntegrationEnv(t)
	ctx := context.Background()
	crate := filepath.Join(filepath.Dir(env.root), "shapes")

	copyTree(t, "../../examples/shapes", crate)

	args := domain.AnnotateArgs{ScanArgs: domain.ScanArgs{
		Root:       m.Path(filepath.Join(crate, "src")),
		Extensions: []string{".rs"},
		UseLedger:  true,
	}}

	require.NoError(t, env.wf.Annotate(ctx, args))

	assert.Equal(t, readString(t, "testdata/shapes/lib.rs.golden"),
		readString(t, filepath.Join(crate, "src", "lib.rs")))
	assert.Equal(t, readString(t, "testdata/shapes/geometry_mod.rs.golden"),
		readString(t, filepath.Join(crate, "src", "geometry", "mod.rs")))
	assert.Equal(t, readString(t, "../../examples/shapes/Cargo.toml"),
		readString(t, filepath.Join(crate, "Cargo.toml")))

	assert.Contains(t, env.out.String(), "Annotated "+filepath.Join(crate, "src", "lib.rs")+" (4 declarations, 4 members)")
	assert.Contains(t, env.out.String(), "(4 declarations, 2 members)")

	ledger := readString(t, env.ledger)
	assert.Contains(t, ledger, filepath.Join(crate, "src", "lib.rs")+"\n")
	assert.Contains(t, ledger, filepath.Join(crate, "src", "geometry", "mod.rs")+"\n")
}
