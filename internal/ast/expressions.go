package ast

// IntLit, RealLit, CharLit, StrLit, BoolLit are the five literal kinds
// (spec §3.3).
type IntLit struct {
	exprBase
	Value int64
}

func (*IntLit) astNode()  {}
func (*IntLit) exprNode() {}

type RealLit struct {
	exprBase
	Value float64
}

func (*RealLit) astNode()  {}
func (*RealLit) exprNode() {}

type CharLit struct {
	exprBase
	Value rune
}

func (*CharLit) astNode()  {}
func (*CharLit) exprNode() {}

type StrLit struct {
	exprBase
	Value string
}

func (*StrLit) astNode()  {}
func (*StrLit) exprNode() {}

type BoolLit struct {
	exprBase
	Value bool
}

func (*BoolLit) astNode()  {}
func (*BoolLit) exprNode() {}

// VarRef is a bare identifier used as an expression (spec §3.3). Index is
// the annotation spec §5 calls "tab_index": the resolved IDT index, filled
// in by the analyzer.
type VarRef struct {
	exprBase
	Name  string
	Index int
}

func (*VarRef) astNode()    {}
func (*VarRef) exprNode()   {}
func (*VarRef) lvalueNode() {}

// AccessStep is one link of a FieldAccess chain: either ".Field" or
// "[Index]" (spec §3.3 — "each step either .field or [indexExpr]").
type AccessStep struct {
	Field   string // set when this step is ".field"
	Index   Expr   // set when this step is "[expr]"
	IsIndex bool
}

// FieldAccess is an access chain: a head identifier followed by zero or
// more steps (spec §3.3). HeadIndex is the resolved IDT index of Head.
type FieldAccess struct {
	exprBase
	Head      string
	HeadIndex int
	Steps     []AccessStep
}

func (*FieldAccess) astNode()    {}
func (*FieldAccess) exprNode()   {}
func (*FieldAccess) lvalueNode() {}

// Call is a function/procedure invocation, usable either as an expression
// (function call) or wrapped in CallStmt (procedure call). Index is the
// resolved IDT index of the callee.
type Call struct {
	exprBase
	Name  string
	Args  []Expr
	Index int
}

func (*Call) astNode()  {}
func (*Call) exprNode() {}

// Op carries an operator's canonical lexeme, shared by Unary and Binary
// (spec §4.2: "Operators ... lower to an Op{lexeme} payload").
type Op struct {
	Lexeme string
}

// Unary is a prefix operator application: unary +/-, or "tidak" (spec
// §4.2 asymmetry notes).
type Unary struct {
	exprBase
	Op Op
	X  Expr
}

func (*Unary) astNode()  {}
func (*Unary) exprNode() {}

// Binary is an infix operator application (relational, additive,
// multiplicative).
type Binary struct {
	exprBase
	Op   Op
	L, R Expr
}

func (*Binary) astNode()  {}
func (*Binary) exprNode() {}
