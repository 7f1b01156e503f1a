package model

import "fmt"

// DeclarationKind is the category of a recognized top-level declaration.
type DeclarationKind string

const (
	// KindStruct is a `struct` declaration.
	KindStruct DeclarationKind = "struct"
	// KindEnum is an `enum` declaration.
	KindEnum DeclarationKind = "enum"
	// KindTrait is a `trait` declaration.
	KindTrait DeclarationKind = "trait"
	// KindFunction is a public `fn` declaration.
	KindFunction DeclarationKind = "function"
)

// MemberKind is the category of a recognized struct field or enum variant.
type MemberKind string

const (
	// MemberField is a named struct field.
	MemberField MemberKind = "field"
	// MemberVariant is an enum variant.
	MemberVariant MemberKind = "variant"
)

// MemberIndent is the indentation used for every member placeholder.
const MemberIndent = "    "

// Declaration is a recognized declaration header. StartLine and EndLine are
// 0-based and span the decorator lines plus the declaration line itself.
type Declaration struct {
	Kind      DeclarationKind
	Name      string
	Indent    string
	StartLine int
	EndLine   int
}

// Placeholder renders the comment line inserted above the declaration.
func (d Declaration) Placeholder() string {
	return d.Indent + PlaceholderText(d.Name, string(d.Kind))
}

// Member is a recognized field or variant inside a struct or enum body.
type Member struct {
	Kind MemberKind
	Name string
	Line int
}

// Placeholder renders the comment line inserted above the member.
func (mb Member) Placeholder() string {
	return MemberIndent + PlaceholderText(mb.Name, string(mb.Kind))
}

// PlaceholderText returns the unindented `/// WIP_<name>_<kind>_description` line.
func PlaceholderText(name, kind string) string {
	return fmt.Sprintf("/// WIP_%s_%s_description", name, kind)
}

// Annotation is the result of annotating one text.
type Annotation struct {
	Content      string
	Declarations []Declaration
	Members      []Member
}
