package annotators

import (
	m "gendocs.dev/pkg/gendocs/internal/model"
)

// ScanDeclarations returns every struct, enum, trait and public function
// header found in text, in line order.
func ScanDeclarations(text string) []m.Declaration {
	lines, _ := splitLines(text)
	return scanDeclarationLines(lines)
}

func scanDeclarationLines(lines []string) []m.Declaration {
	var declarations []m.Declaration

	for i, line := range lines {
		decl, ok := matchDeclaration(line)
		if !ok {
			continue
		}

		start := i
		if decl.Kind != m.KindFunction {
			start = decoratorStart(lines, i)
		}

		decl.StartLine = start
		decl.EndLine = i
		decl.Indent = leadingWhitespace(lines[start])

		declarations = append(declarations, decl)
	}

	return declarations
}

// decoratorStart walks up from the header at index i over attribute lines
// (blank lines between them are allowed) and returns the first line of the span.
func decoratorStart(lines []string, i int) int {
	start := i

	for j := i - 1; j >= 0; j-- {
		if isBlank(lines[j]) {
			continue
		}

		if !isAttribute(lines[j]) {
			break
		}

		start = j
	}

	return start
}

// AnnotateDeclarations inserts a placeholder doc comment above every
// declaration span, indented like the first line of the span.
func AnnotateDeclarations(text string) string {
	annotated, _ := annotateDeclarations(text)
	return annotated
}

func annotateDeclarations(text string) (string, []m.Declaration) {
	lines, trailing := splitLines(text)
	declarations := scanDeclarationLines(lines)

	if len(declarations) == 0 {
		return joinLines(lines, trailing), nil
	}

	out := make([]string, 0, len(lines)+len(declarations))
	next := 0

	for i, line := range lines {
		for next < len(declarations) && declarations[next].StartLine == i {
			out = append(out, declarations[next].Placeholder())
			next++
		}

		out = append(out, line)
	}

	return joinLines(out, trailing), declarations
}
