// Package ast defines the closed AST node family lowering produces from
// the CST (spec §3.3). It is a tagged sum of concrete struct types behind
// small marker interfaces, not a class hierarchy — spec §9 "Polymorphic
// AST" is explicit about preferring this shape, and it is how the
// teacher's own AST package (github.com/cwbudde/go-dws/internal/ast) is
// built: one struct per node kind implementing a shared marker method.
//
// Lowering (internal/lower) builds these nodes; the semantic analyzer
// (internal/semantic) walks them read-mostly and writes back only the
// annotation fields spec §5 calls out — Type on every Expr, and Index on
// the name-resolving variants (VarRef, Call, the head of a FieldAccess).
package ast

import "github.com/rangkaian/kompilator/internal/typesys"

// Node is the marker every AST node implements.
type Node interface{ astNode() }

// Stmt is the marker for statement-shaped nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the marker for expression-shaped nodes. Every Expr carries a
// mutable type annotation the analyzer fills in.
type Expr interface {
	Node
	exprNode()
	Annotation() *typesys.Ref
}

// exprBase factors out the annotation storage and Annotation() accessor
// so each concrete Expr variant only declares its own payload fields.
type exprBase struct {
	Type typesys.Ref
}

func (e *exprBase) Annotation() *typesys.Ref { return &e.Type }

// Program is the root node (spec §3.3).
type Program struct {
	Name  string
	Decls *DeclBlock
	Body  *Compound
}

func (*Program) astNode() {}

// Block is a nested lexical unit — a procedure/function body (spec §3.3).
type Block struct {
	Decls *DeclBlock
	Body  *Compound
}

func (*Block) astNode() {}

// DeclBlock groups one scope's declarations in source order (spec §3.3).
type DeclBlock struct {
	Consts      []*ConstItem
	Types       []*TypeItem
	Vars        []*VarItem
	Subprograms []Subprogram
}

func (*DeclBlock) astNode() {}

// Subprogram is the marker Procedure and Function both implement.
type Subprogram interface {
	Node
	subprogramNode()
	SubName() string
}
