// Package domain contains the annotation workflow and its building blocks.
package domain

import (
	"context"

	"gendocs.dev/pkg/gendocs/internal/domain/annotators"
	m "gendocs.dev/pkg/gendocs/internal/model"
)

// Annotator turns the text of a source file into its annotated form.
type Annotator interface {
	Annotate(ctx context.Context, content string) (m.Annotation, error)
}

type annotator struct{}

// NewAnnotator creates the default Annotator: the declaration pass followed
// by the struct/enum member pass.
func NewAnnotator() Annotator {
	return &annotator{}
}

func (a *annotator) Annotate(ctx context.Context, content string) (m.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return m.Annotation{}, err
	}

	return annotators.Annotate(content), nil
}
