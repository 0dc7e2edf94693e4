package semantic

import "github.com/rangkaian/kompilator/internal/typesys"

// IDTEntry is one row of the identifier table (spec §3.4). Index 0 is the
// reserved "null" sentinel every fresh chain search terminates on.
type IDTEntry struct {
	Name   string
	Kind   typesys.EntryKind
	Type   typesys.Code
	Ref    int
	Normal bool // true for value-holding entries; false for by-ref params and constants
	Level  int
	Addr   int
	Link   int // IDT index of the previous entry in the same block, 0 at chain end

	// ParamTypes/ParamIsVar are populated only for PROC/FUNC entries, one
	// slot per formal parameter in declaration order.
	ParamTypes []typesys.Code
	ParamIsVar []bool
}

// BLTEntry is one lexical scope (spec §3.4).
type BLTEntry struct {
	Last int // IDT index of the most recently declared name in this block
	Lpar int // IDT index of the last parameter, 0 if none
	Psze int // parameter count
	Vsze int // total local-variable/field footprint

	// paramFloor is the Last value this block carried the instant before
	// parameter entries started being added — i.e. the inherited tail the
	// first parameter's Link points to. It bounds the parameter-only scan
	// enter() runs for level > 0 (spec §4.3 enter() step 2): exactly the
	// entries between Lpar and paramFloor are parameters. It isn't one of
	// the spec's named BLT fields because it's a bookkeeping detail of
	// duplicate checking, not part of the table's externally observable
	// shape.
	paramFloor int
}

// ARTEntry is one materialized array type (spec §3.4).
type ARTEntry struct {
	InxTyp typesys.Code // INT or CHAR
	ElTyp  typesys.Code // element primitive code, or ARRAY/RECORD composite tag
	ElRef  int          // 0, or ART index (nested array), or IDT/BLT ref (named element type)
	Low    int
	High   int
	ElSize int
	Size   int

	// CharBase is the ordinal of the declared lower bound for a CHAR-indexed
	// array (e.g. 'a' in larik['a'..'c']), unused (0) for an INT index. Low
	// and High are already normalized to 1-based (spec §4.3 "Array
	// construction"); CharBase lets a later character-literal index be
	// normalized the same way before it's range-checked.
	CharBase int
}
