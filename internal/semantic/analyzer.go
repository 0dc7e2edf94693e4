// Package semantic walks the AST internal/lower produces and builds the
// three linked symbol tables spec §3.4 describes: the identifier table
// (IDT), the block table (BLT), and the array table (ART). It resolves
// every name through a lexically scoped display vector and annotates
// every expression node with its computed type.
package semantic

import (
	"strings"

	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/config"
	"github.com/rangkaian/kompilator/internal/typesys"
	"github.com/rangkaian/kompilator/pkg/token"
)

// MaxLevel bounds the display vector (spec §3.5, §9 "a small fixed-
// capacity vector of BLT indices"). Subprogram nesting beyond this depth
// is not a realistic program for this language's feature set.
const MaxLevel = 32

// Analyzer holds the three tables, the display, and the current lexical
// level. It is used once per compilation (spec §5).
type Analyzer struct {
	IDT []IDTEntry
	BLT []BLTEntry
	ART []ARTEntry

	display [MaxLevel + 1]int
	level   int

	// k is the index of the last preloaded reserved word, i.e. the
	// reserved span is IDT[1..k] (spec §3.4).
	k int

	reserved map[string]bool

	// Policy controls whether a non-boolean if/while/repeat condition
	// (spec §7's NonBooleanConditionError) is a hard error or a warning
	// that still lets analysis continue. The zero value behaves as
	// config.PolicyError.
	Policy config.BooleanContextPolicy

	// Warnings accumulates messages for conditions Policy tolerated
	// instead of rejecting.
	Warnings []string
}

// New builds an Analyzer with the reserved-word span preloaded into IDT
// and BLT[0] established (spec §4.3 "Initialization").
func New() *Analyzer {
	a := &Analyzer{reserved: make(map[string]bool, len(token.ReservedWords))}

	// Index 0: the null sentinel every chain walk terminates on.
	a.IDT = append(a.IDT, IDTEntry{Name: "", Kind: typesys.KindNone})

	// ART is 1-based too (spec §4.3 "Append ART entry; return its 1-based
	// index"): index 0 is never a real materialized array.
	a.ART = append(a.ART, ARTEntry{})

	for _, word := range token.ReservedWords {
		a.reserved[word] = true
		entry := IDTEntry{Name: word, Kind: typesys.CONST, Type: typesys.NONE, Level: 0}
		if word == "string" {
			entry.Kind = typesys.TYPE
			entry.Type = typesys.STRING
		}
		entry.Link = a.prevLink()
		a.IDT = append(a.IDT, entry)
	}
	a.k = len(a.IDT) - 1

	a.BLT = append(a.BLT, BLTEntry{Last: a.k, Lpar: 0, Psze: 0, Vsze: 0, paramFloor: 0})
	a.display[0] = 0
	a.level = 0
	return a
}

// prevLink returns the link a newly appended reserved-word entry should
// carry: the index of the entry most recently appended (0 for the first).
func (a *Analyzer) prevLink() int {
	return len(a.IDT) - 1
}

func (a *Analyzer) currentBlock() *BLTEntry {
	return &a.BLT[a.display[a.level]]
}

// Analyze is the entry point (spec §4.3 "Program entry"). It mutates the
// AST in place (annotation fields only) and returns the first semantic
// error encountered, or nil.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	a.level = 1
	outer := a.BLT[a.display[0]]
	a.BLT = append(a.BLT, BLTEntry{Last: outer.Last, Lpar: 0, Psze: 0, Vsze: 0, paramFloor: outer.Last})
	a.display[1] = len(a.BLT) - 1

	if _, err := a.enter(prog.Name, typesys.PROGRAM, typesys.Ref{}, true, 0); err != nil {
		return err
	}

	if err := a.analyzeDecls(prog.Decls); err != nil {
		return err
	}
	return a.analyzeCompound(prog.Body)
}

// enter implements spec §4.3's enter() operation.
func (a *Analyzer) enter(name string, kind typesys.EntryKind, typ typesys.Ref, normal bool, addr int) (int, error) {
	block := a.currentBlock()

	if a.reserved[name] {
		return 0, &ReservedWordRedeclarationError{Name: name}
	}

	for i := block.Last; i != 0 && i != block.Lpar; i = a.IDT[i].Link {
		if a.IDT[i].Name == name {
			return 0, &DuplicateDeclarationError{Name: name}
		}
	}

	if a.level > 0 && block.Lpar != 0 {
		for i := block.Lpar; i != 0 && i != block.paramFloor; i = a.IDT[i].Link {
			if a.IDT[i].Name == name {
				return 0, &DuplicateDeclarationError{Name: name}
			}
		}
	}

	entry := IDTEntry{
		Name:   name,
		Kind:   kind,
		Type:   typ.Code,
		Ref:    typ.Ref,
		Normal: normal,
		Level:  a.level,
		Addr:   addr,
		Link:   block.Last,
	}
	a.IDT = append(a.IDT, entry)
	idx := len(a.IDT) - 1
	block.Last = idx
	return idx, nil
}

// lookup implements spec §4.3's lookup() operation: walk levels from
// current down to 0, and within each, walk its block's last→link chain.
func (a *Analyzer) lookup(name string) (int, *IDTEntry) {
	for lvl := a.level; lvl >= 0; lvl-- {
		block := a.BLT[a.display[lvl]]
		for i := block.Last; i != 0; i = a.IDT[i].Link {
			if a.IDT[i].Name == name {
				return i, &a.IDT[i]
			}
		}
	}
	return 0, nil
}

// lookupInBlock walks a single block's chain (used for record field
// lookup, spec §4.3 "Field-access evaluation").
func (a *Analyzer) lookupInBlock(bltIndex int, name string) (int, *IDTEntry) {
	block := a.BLT[bltIndex]
	for i := block.Last; i != 0; i = a.IDT[i].Link {
		if a.IDT[i].Name == name {
			return i, &a.IDT[i]
		}
	}
	return 0, nil
}

// resolveType implements spec §4.3's "Type resolution". It never chases a
// named type — callers needing the normalized underlying representation
// call chase afterward.
func (a *Analyzer) resolveType(def ast.TypeDef) (typesys.Ref, error) {
	switch t := def.(type) {
	case *ast.NamedType:
		name := strings.ToLower(t.Name)
		if code, ok := token.PrimitiveTypeNames[name]; ok {
			return typesys.Ref{Code: typesys.Code(code)}, nil
		}
		idx, entry := a.lookup(t.Name)
		if idx == 0 || entry.Kind != typesys.TYPE {
			return typesys.Ref{}, &UndefinedTypeError{Name: t.Name}
		}
		return typesys.Ref{Code: typesys.NAMED, Ref: idx}, nil
	case *ast.ArrayType:
		artIdx, err := a.constructArray(t)
		if err != nil {
			return typesys.Ref{}, err
		}
		return typesys.Ref{Code: typesys.ARRAY, Ref: artIdx}, nil
	case *ast.RecordType:
		bltIdx, _, err := a.constructRecord(t)
		if err != nil {
			return typesys.Ref{}, err
		}
		return typesys.Ref{Code: typesys.RECORD, Ref: bltIdx}, nil
	}
	panic("semantic: unknown TypeDef variant")
}

// chase follows a typesys.NAMED reference once to the underlying IDT
// TYPE entry's already-normalized representation (spec §4.3: "follow it
// once to its underlying primitive or composite").
func (a *Analyzer) chase(ref typesys.Ref) typesys.Ref {
	if ref.Code != typesys.NAMED {
		return ref
	}
	entry := a.IDT[ref.Ref]
	return typesys.Ref{Code: entry.Type, Ref: entry.Ref}
}

// resolveAndChase resolves a type-definition straight to its normalized,
// storable representation — what every declaration site (var, field,
// param, return type) actually needs.
func (a *Analyzer) resolveAndChase(def ast.TypeDef) (typesys.Ref, error) {
	ref, err := a.resolveType(def)
	if err != nil {
		return typesys.Ref{}, err
	}
	return a.chase(ref), nil
}

// sizeOf returns the storage footprint of a normalized type: 1 for every
// primitive, the materialized ART/BLT size for a composite.
func (a *Analyzer) sizeOf(ref typesys.Ref) int {
	switch ref.Code {
	case typesys.ARRAY:
		return a.ART[ref.Ref].Size
	case typesys.RECORD:
		return a.BLT[ref.Ref].Vsze
	default:
		return 1
	}
}

// addrOf returns the "addr" value a TYPE entry aliasing ref should carry
// (spec §3.6 invariant: addr equals the composite's size for ARRAY/RECORD
// type entries, 0 for a primitive alias).
func (a *Analyzer) addrOf(ref typesys.Ref) int {
	switch ref.Code {
	case typesys.ARRAY, typesys.RECORD:
		return a.sizeOf(ref)
	default:
		return 0
	}
}
