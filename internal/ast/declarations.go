package ast

import "github.com/rangkaian/kompilator/internal/typesys"

// ConstItem is a single "ident = value;" declaration (spec §3.3).
type ConstItem struct {
	Name         string
	Value        Expr
	InferredType typesys.Code // primitive code inferred from Value's literal kind
}

func (*ConstItem) astNode() {}

// TypeItem is a single "ident = type-definition;" declaration.
type TypeItem struct {
	Name string
	Def  TypeDef
}

func (*TypeItem) astNode() {}

// TypeDef is the marker for the three type-definition shapes a name or a
// var/field/param can reference (spec §3.3: named/array/record).
type TypeDef interface {
	Node
	typeDefNode()
}

// NamedType references a primitive keyword or a previously declared
// type identifier, resolved later by semantic.Analyzer.resolveType.
type NamedType struct {
	Name string
}

func (*NamedType) astNode()     {}
func (*NamedType) typeDefNode() {}

// ArrayType is "larik [ lo..hi ] dari element" (spec §3.3).
type ArrayType struct {
	Lo, Hi Expr
	Elem   TypeDef
}

func (*ArrayType) astNode()     {}
func (*ArrayType) typeDefNode() {}

// RecordType is "rekaman field-groups selesai" (spec §3.3).
type RecordType struct {
	Fields []*FieldGroup
}

func (*RecordType) astNode()     {}
func (*RecordType) typeDefNode() {}

// FieldGroup is one "ident-list : type" line inside a record (spec §3.3).
type FieldGroup struct {
	Names []string
	Type  TypeDef
}

func (*FieldGroup) astNode() {}

// VarItem is one "ident-list : type;" declaration (spec §3.3).
type VarItem struct {
	Names []string
	Type  TypeDef
}

func (*VarItem) astNode() {}

// ParamGroup is one formal-parameter group (spec §3.3).
type ParamGroup struct {
	IsVar bool
	Names []string
	Type  TypeDef
}

func (*ParamGroup) astNode() {}
