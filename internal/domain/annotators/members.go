package annotators

import (
	"strings"

	m "gendocs.dev/pkg/gendocs/internal/model"
)

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeStruct
	scopeEnum
)

// scope is the body the scanner is currently inside, with the running
// brace depth counted since its header line.
type scope struct {
	kind  scopeKind
	depth int
}

// step advances the scope over one line. The returned scope is the one the
// line's members belong to.
func (s scope) step(line string) scope {
	switch {
	case structPattern.MatchString(line):
		s = scope{kind: scopeStruct}
	case enumPattern.MatchString(line):
		s = scope{kind: scopeEnum}
	}

	if s.kind == scopeNone {
		return s
	}

	s.depth += strings.Count(line, "{") - strings.Count(line, "}")
	if s.depth == 0 && strings.Contains(line, "}") {
		return scope{}
	}

	return s
}

// member reports the member declared on line for the current scope.
func (s scope) member(line string, index int) (m.Member, bool) {
	var (
		kind   m.MemberKind
		groups []string
	)

	switch s.kind {
	case scopeStruct:
		kind, groups = m.MemberField, fieldPattern.FindStringSubmatch(line)
	case scopeEnum:
		kind, groups = m.MemberVariant, variantPattern.FindStringSubmatch(line)
	case scopeNone:
		return m.Member{}, false
	}

	if groups == nil {
		return m.Member{}, false
	}

	return m.Member{Kind: kind, Name: groups[1], Line: index}, true
}

// ScanMembers returns the struct fields and enum variants found in text.
// Body boundaries come from brace counting alone, so braces inside field
// types or defaults can close a body early or late.
func ScanMembers(text string) []m.Member {
	lines, _ := splitLines(text)
	return scanMemberLines(lines)
}

func scanMemberLines(lines []string) []m.Member {
	var (
		members []m.Member
		current scope
	)

	for i, line := range lines {
		current = current.step(line)

		if member, ok := current.member(line, i); ok {
			members = append(members, member)
		}
	}

	return members
}

// AnnotateMembers inserts a placeholder above every field of a struct body and
// every comma-terminated variant of an enum body. Every output line ends with
// exactly one newline.
func AnnotateMembers(text string) string {
	annotated, _ := annotateMembers(text)
	return annotated
}

func annotateMembers(text string) (string, []m.Member) {
	lines, _ := splitLines(text)
	members := scanMemberLines(lines)

	var b strings.Builder

	b.Grow(len(text) + len(members)*40)

	next := 0

	for i, line := range lines {
		if next < len(members) && members[next].Line == i {
			b.WriteString(members[next].Placeholder())
			b.WriteByte('\n')

			next++
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), members
}

// Annotate runs the declaration pass followed by the member pass.
func Annotate(text string) m.Annotation {
	intermediate, declarations := annotateDeclarations(text)
	content, members := annotateMembers(intermediate)

	return m.Annotation{
		Content:      content,
		Declarations: declarations,
		Members:      members,
	}
}
