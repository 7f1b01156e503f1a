package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

// diffContextLines is the number of unchanged lines shown around each hunk.
const diffContextLines = 3

// RenderDiff returns a unified diff between the original and annotated text
// of path. It is empty when both are equal.
func RenderDiff(path m.Path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path),
		ToFile:   string(path) + " (annotated)",
		Context:  diffContextLines,
	})
}
