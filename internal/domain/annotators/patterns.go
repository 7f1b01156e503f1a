// Package annotators recognizes Rust declarations line by line and synthesizes
// the placeholder doc comments inserted above them.
package annotators

import (
	"regexp"
	"strings"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

// visibility matches `pub` and its restricted forms such as `pub(crate)`.
const visibility = `pub(?:\s*\([^)]*\))?`

var (
	structPattern = typePattern("struct")
	enumPattern   = typePattern("enum")
	traitPattern  = typePattern("trait")
	// functionPattern accepts `<` after the name on purpose so generic
	// functions such as `pub fn parse<T>(` get a placeholder too. Keep it.
	functionPattern = regexp.MustCompile(`^(\s*)pub\s+fn\s+(\w+)\s*[(<]`)

	attributePattern = regexp.MustCompile(`^\s*#\[.*\]\s*$`)
	fieldPattern     = regexp.MustCompile(`^\s+` + visibility + `\s+(\w+):`)
	variantPattern   = regexp.MustCompile(`^\s+(\w+),`)
)

// typePattern builds the header pattern for a type-like keyword. Attributes
// written on the same line as the header are allowed.
func typePattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*)(?:#\[.*\]\s*)*(?:` + visibility + `\s+)?` + keyword + `\s+(\w+)`)
}

type declarationPattern struct {
	kind    m.DeclarationKind
	pattern *regexp.Regexp
}

// declarationPatterns are tried in order; the first match wins.
var declarationPatterns = []declarationPattern{
	{kind: m.KindStruct, pattern: structPattern},
	{kind: m.KindEnum, pattern: enumPattern},
	{kind: m.KindTrait, pattern: traitPattern},
	{kind: m.KindFunction, pattern: functionPattern},
}

// matchDeclaration reports the declaration header found on line, if any.
func matchDeclaration(line string) (m.Declaration, bool) {
	for _, dp := range declarationPatterns {
		groups := dp.pattern.FindStringSubmatch(line)
		if groups == nil {
			continue
		}

		return m.Declaration{
			Kind:   dp.kind,
			Name:   groups[2],
			Indent: groups[1],
		}, true
	}

	return m.Declaration{}, false
}

func isAttribute(line string) bool {
	return attributePattern.MatchString(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// splitLines splits text into lines the way the annotators see them: `\n`
// separated, a trailing `\r` removed, and no empty entry after a final
// newline. The second result reports whether text ended with a newline.
func splitLines(text string) ([]string, bool) {
	if text == "" {
		return nil, false
	}

	trailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, trailing
}

func joinLines(lines []string, trailing bool) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder

	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(line)
	}

	if trailing {
		b.WriteByte('\n')
	}

	return b.String()
}
