// Package typesys holds the small, dependency-free vocabulary shared by
// internal/ast and internal/semantic: the primitive/composite type codes
// and identifier-table entry kinds from spec §3.4. It exists only to break
// the import cycle that would otherwise form between ast (which carries a
// type annotation on every expression node) and semantic (which computes
// those annotations while walking the AST) — both import typesys instead
// of one importing the other.
package typesys

// Code is a primitive type code, OR — only on a named-type IDT entry's
// type field — a composite-kind tag. The numeric overlap (STRING and
// ARRAY both being 5) is the spec's own design (§3.4, §GLOSSARY
// "Primitive code"); callers disambiguate using the entry/expression kind
// they're looking at, never by value alone.
type Code int

const (
	NONE Code = iota
	INT
	REAL
	BOOL
	CHAR
	STRING
)

// Composite tags, aliased onto the same numeric space as the primitives
// above (spec §3.4: "5 = ARRAY, 6 = RECORD" on a TYPE entry's type field).
const (
	ARRAY  Code = 5
	RECORD Code = 6
)

// NAMED is a transient sentinel resolveType returns for "an IDT index
// (>K) to a user TYPE" (spec §4.3 "Type resolution"): it is never stored
// as a final Expr annotation or IDT entry type. Callers chase it once,
// via the referenced TYPE entry's own already-normalized Type/Ref, before
// attaching it anywhere — spec §4.3's "follow it once to its underlying
// primitive or composite".
const NAMED Code = -1

func (c Code) String() string {
	switch c {
	case NONE:
		return "none"
	case INT:
		return "integer"
	case REAL:
		return "real"
	case BOOL:
		return "boolean"
	case CHAR:
		return "char"
	case STRING:
		return "string"
	default:
		return "composite"
	}
}

// IsNumeric reports whether c is INT or REAL — the operand class the
// arithmetic operators accept (spec §4.3 "Expression typing").
func (c Code) IsNumeric() bool {
	return c == INT || c == REAL
}

// EntryKind is the IDT entry's declaration kind (spec §3.4).
type EntryKind int

const (
	KindNone EntryKind = iota
	CONST
	VAR
	TYPE
	PROC
	FUNC
	PROGRAM
	PARAM
)

func (k EntryKind) String() string {
	switch k {
	case CONST:
		return "CONST"
	case VAR:
		return "VAR"
	case TYPE:
		return "TYPE"
	case PROC:
		return "PROC"
	case FUNC:
		return "FUNC"
	case PROGRAM:
		return "PROGRAM"
	case PARAM:
		return "PARAM"
	default:
		return "NONE"
	}
}

// Ref is a resolved type: a Code plus the context-dependent reference the
// spec attaches to it — 0, an ART index (array), a BLT index (record), or
// an IDT index (named type, chased once to its underlying representation
// where the caller needs that). It is the shape both IDT.type/IDT.ref and
// an expression's post-analysis type_index take (spec §3.4, §3.6).
type Ref struct {
	Code Code
	Ref  int
}

// Undefined is the zero Ref: spec §3.6's "every reachable Expr carries a
// non-undefined type_index after analysis" is checked against this.
var Undefined = Ref{}

// IsDefined reports whether this Ref was ever assigned by the analyzer.
func (r Ref) IsDefined() bool {
	return r != Undefined
}

// IsComposite reports whether r is an ARRAY/RECORD composite rather than a
// primitive. STRING and ARRAY share the code 5, so the code alone does not
// decide it: a composite Ref always carries a nonzero ART or BLT index
// (ART[0] is a sentinel, and record blocks follow BLT[0] and BLT[1]),
// while a primitive Ref carries 0.
func (r Ref) IsComposite() bool {
	return (r.Code == ARRAY || r.Code == RECORD) && r.Ref != 0
}
