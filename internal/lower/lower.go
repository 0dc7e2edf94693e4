// Package lower collapses the grammar-driven CST into the semantically
// oriented AST (spec §4.2). It is a pure function of the CST: it never
// touches symbol tables, and it does not fail — a CST that came from a
// successful cst.Parse is by construction shaped the way these functions
// expect.
//
// The visitor structure mirrors original_source/src/ast_transformer.py's
// ASTTransformer (one visit_* method per CST node kind, reading children
// by fixed index) translated into one lower* function per non-terminal,
// since Go has no convenient open-ended method-name dispatch to match the
// Python transformer's getattr(self, f"visit_{name}") trick.
package lower

import (
	"strconv"

	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/cst"
	"github.com/rangkaian/kompilator/pkg/token"
)

// Program lowers a successfully parsed Program CST root into an AST.
func Program(root *cst.Node) *ast.Program {
	header := root.Child(0)
	decls := root.Child(1)
	body := root.Child(2)

	return &ast.Program{
		Name:  header.Token(1).Lexeme,
		Decls: declarationPart(decls),
		Body:  compoundStatement(body),
	}
}

func declarationPart(n *cst.Node) *ast.DeclBlock {
	return &ast.DeclBlock{
		Consts:      constSection(n.Child(0)),
		Types:       typeSection(n.Child(1)),
		Vars:        varSection(n.Child(2)),
		Subprograms: subprogramSection(n.Child(3)),
	}
}

func block(n *cst.Node) *ast.Block {
	return &ast.Block{
		Decls: declarationPart(n.Child(0)),
		Body:  compoundStatement(n.Child(1)),
	}
}

// --- const section ---

func constSection(n *cst.Node) []*ast.ConstItem {
	if len(n.Children) == 0 {
		return nil
	}
	decl := n.Child(0) // ConstDeclaration
	items := constItem(decl.Child(1))
	items = append(items, constItemTail(decl.Child(2))...)
	return append(items, constSection(n.Child(1))...)
}

func constItem(n *cst.Node) []*ast.ConstItem {
	name := n.Token(0).Lexeme
	value := value(n.Child(2))
	return []*ast.ConstItem{{Name: name, Value: value}}
}

func constItemTail(n *cst.Node) []*ast.ConstItem {
	if len(n.Children) == 0 {
		return nil
	}
	items := constItem(n.Child(0))
	return append(items, constItemTail(n.Child(1))...)
}

// --- type section ---

func typeSection(n *cst.Node) []*ast.TypeItem {
	if len(n.Children) == 0 {
		return nil
	}
	decl := n.Child(0)
	items := []*ast.TypeItem{typeItem(decl.Child(1))}
	items = append(items, typeItemTail(decl.Child(2))...)
	return append(items, typeSection(n.Child(1))...)
}

func typeItem(n *cst.Node) *ast.TypeItem {
	return &ast.TypeItem{
		Name: n.Token(0).Lexeme,
		Def:  typeDefinition(n.Child(2)),
	}
}

func typeItemTail(n *cst.Node) []*ast.TypeItem {
	if len(n.Children) == 0 {
		return nil
	}
	items := []*ast.TypeItem{typeItem(n.Child(0))}
	return append(items, typeItemTail(n.Child(1))...)
}

func typeDefinition(n *cst.Node) ast.TypeDef {
	child := n.Child(0)
	switch child.Kind {
	case cst.NTType:
		return typeNode(child)
	case cst.NTArrayType:
		return arrayType(child)
	case cst.NTRecordType:
		return recordType(child)
	}
	panic("lower: unexpected TypeDefinition shape " + string(child.Kind))
}

func typeNode(n *cst.Node) ast.TypeDef {
	first := n.Children[0]
	if tok, ok := first.(token.Token); ok {
		return &ast.NamedType{Name: tok.Lexeme}
	}
	// Sole non-terminal alternative: ArrayType.
	return arrayType(first.(*cst.Node))
}

func arrayType(n *cst.Node) *ast.ArrayType {
	rng := n.Child(2)
	elem := typeDefinition(n.Child(5))
	return &ast.ArrayType{
		Lo:   expression(rng.Child(0)),
		Hi:   expression(rng.Child(2)),
		Elem: elem,
	}
}

func recordType(n *cst.Node) *ast.RecordType {
	return &ast.RecordType{Fields: fieldList(n.Child(1))}
}

func fieldList(n *cst.Node) []*ast.FieldGroup {
	names := identifierList(n.Child(0))
	typ := typeDefinition(n.Child(2))
	groups := []*ast.FieldGroup{{Names: names, Type: typ}}
	tail := n.Child(3)
	if len(tail.Children) == 2 { // SEMICOLON FieldList
		groups = append(groups, fieldList(tail.Child(1))...)
	}
	return groups
}

// --- var section ---

func varSection(n *cst.Node) []*ast.VarItem {
	if len(n.Children) == 0 {
		return nil
	}
	decl := n.Child(0)
	items := []*ast.VarItem{varItem(decl.Child(1))}
	items = append(items, varItemTail(decl.Child(2))...)
	return append(items, varSection(n.Child(1))...)
}

func varItem(n *cst.Node) *ast.VarItem {
	return &ast.VarItem{
		Names: identifierList(n.Child(0)),
		Type:  typeDefinition(n.Child(2)),
	}
}

func varItemTail(n *cst.Node) []*ast.VarItem {
	if len(n.Children) == 0 {
		return nil
	}
	items := []*ast.VarItem{varItem(n.Child(0))}
	return append(items, varItemTail(n.Child(1))...)
}

func identifierList(n *cst.Node) []string {
	names := []string{n.Token(0).Lexeme}
	return append(names, identifierListTail(n.Child(1))...)
}

func identifierListTail(n *cst.Node) []string {
	if len(n.Children) == 0 {
		return nil
	}
	names := []string{n.Token(1).Lexeme}
	return append(names, identifierListTail(n.Child(2))...)
}

// --- subprograms ---

func subprogramSection(n *cst.Node) []ast.Subprogram {
	if len(n.Children) == 0 {
		return nil
	}
	decl := n.Child(0).Child(0) // SubprogramDeclaration -> Procedure|Function decl
	var sub ast.Subprogram
	switch decl.Kind {
	case cst.NTProcedureDeclaration:
		sub = procedureDeclaration(decl)
	case cst.NTFunctionDeclaration:
		sub = functionDeclaration(decl)
	default:
		panic("lower: unexpected SubprogramDeclaration shape " + string(decl.Kind))
	}
	return append([]ast.Subprogram{sub}, subprogramSection(n.Child(1))...)
}

func procedureDeclaration(n *cst.Node) *ast.Procedure {
	name := n.Token(1).Lexeme
	if len(n.Children) == 6 { // prosedur IDENT ( params ) ; Block ;
		return &ast.Procedure{
			Name:   name,
			Params: formalParameterList(n.Child(2)),
			Body:   block(n.Child(4)),
		}
	}
	// prosedur IDENT ; Block ;
	return &ast.Procedure{Name: name, Body: block(n.Child(3))}
}

func functionDeclaration(n *cst.Node) *ast.Function {
	name := n.Token(1).Lexeme
	if len(n.Children) == 8 { // fungsi IDENT ( params ) : Type ; Block ;
		return &ast.Function{
			Name:       name,
			Params:     formalParameterList(n.Child(2)),
			ReturnType: typeNode(n.Child(4)),
			Body:       block(n.Child(6)),
		}
	}
	// fungsi IDENT : Type ; Block ;
	return &ast.Function{
		Name:       name,
		ReturnType: typeNode(n.Child(3)),
		Body:       block(n.Child(5)),
	}
}

func formalParameterList(n *cst.Node) []*ast.ParamGroup {
	groups := []*ast.ParamGroup{parameterGroup(n.Child(1))}
	return append(groups, parameterGroupTail(n.Child(2))...)
}

func parameterGroup(n *cst.Node) *ast.ParamGroup {
	isVar := len(n.Child(0).Children) > 0
	return &ast.ParamGroup{
		IsVar: isVar,
		Names: identifierList(n.Child(1)),
		Type:  typeNode(n.Child(3)),
	}
}

func parameterGroupTail(n *cst.Node) []*ast.ParamGroup {
	if len(n.Children) != 3 { // SEMICOLON alone, or empty
		return nil
	}
	groups := []*ast.ParamGroup{parameterGroup(n.Child(1))}
	return append(groups, parameterGroupTail(n.Child(2))...)
}

// --- statements ---

func compoundStatement(n *cst.Node) *ast.Compound {
	return &ast.Compound{Stmts: statementList(n.Child(1))}
}

func statementList(n *cst.Node) []ast.Stmt {
	stmts := []ast.Stmt{statement(n.Child(0))}
	return append(stmts, statementListTail(n.Child(1))...)
}

func statementListTail(n *cst.Node) []ast.Stmt {
	if len(n.Children) == 0 {
		return nil
	}
	stmts := []ast.Stmt{statement(n.Child(1))}
	return append(stmts, statementListTail(n.Child(2))...)
}

func statement(n *cst.Node) ast.Stmt {
	child := n.Child(0)
	switch child.Kind {
	case cst.NTAssignmentStatement:
		return assignmentStatement(child)
	case cst.NTIfStatement:
		return ifStatement(child)
	case cst.NTWhileStatement:
		return whileStatement(child)
	case cst.NTForStatement:
		return forStatement(child)
	case cst.NTRepeatStatement:
		return repeatStatement(child)
	case cst.NTCaseStatement:
		return caseStatement(child)
	case cst.NTCompoundStatement:
		return compoundStatement(child)
	case cst.NTExpressionStatement:
		return expressionStatement(child)
	case cst.NTEmptyStatement:
		return &ast.Empty{}
	}
	panic("lower: unexpected Statement shape " + string(child.Kind))
}

func assignmentStatement(n *cst.Node) *ast.Assign {
	if tok, ok := n.Children[0].(token.Token); ok {
		return &ast.Assign{
			Target: &ast.VarRef{Name: tok.Lexeme},
			Value:  expression(n.Child(2)),
		}
	}
	target := fieldAccess(n.Child(0))
	return &ast.Assign{Target: target.(ast.LValue), Value: expression(n.Child(2))}
}

func ifStatement(n *cst.Node) *ast.If {
	stmt := &ast.If{
		Cond: expression(n.Child(1)),
		Then: statement(n.Child(3)),
	}
	if len(n.Children) == 6 {
		stmt.Else = statement(n.Child(5))
	}
	return stmt
}

func whileStatement(n *cst.Node) *ast.While {
	return &ast.While{Cond: expression(n.Child(1)), Body: statement(n.Child(3))}
}

func forStatement(n *cst.Node) *ast.For {
	return &ast.For{
		Var:  n.Token(1).Lexeme,
		From: expression(n.Child(3)),
		Down: n.Token(4).Lexeme == "turun-ke",
		To:   expression(n.Child(5)),
		Body: statement(n.Child(7)),
	}
}

func repeatStatement(n *cst.Node) *ast.Repeat {
	return &ast.Repeat{
		Body:  statementList(n.Child(1)),
		Until: expression(n.Child(3)),
	}
}

func caseStatement(n *cst.Node) *ast.Case {
	return &ast.Case{
		Subject: expression(n.Child(1)),
		Arms:    caseList(n.Child(3)),
	}
}

func caseList(n *cst.Node) []*ast.CaseArm {
	arms := []*ast.CaseArm{caseElement(n.Child(0))}
	return append(arms, caseListTail(n.Child(1))...)
}

func caseListTail(n *cst.Node) []*ast.CaseArm {
	if len(n.Children) != 3 { // SEMICOLON alone, or empty
		return nil
	}
	arms := []*ast.CaseArm{caseElement(n.Child(1))}
	return append(arms, caseListTail(n.Child(2))...)
}

func caseElement(n *cst.Node) *ast.CaseArm {
	return &ast.CaseArm{Value: expression(n.Child(0)), Body: statement(n.Child(2))}
}

func expressionStatement(n *cst.Node) ast.Stmt {
	return &ast.ExprStmt{Expr: expression(n.Child(0))}
}

// --- expressions ---

func expression(n *cst.Node) ast.Expr {
	if len(n.Children) == 3 {
		left := simpleExpression(n.Child(0))
		op := n.Child(1).Tokens()[0]
		right := simpleExpression(n.Child(2))
		return &ast.Binary{Op: ast.Op{Lexeme: op.Lexeme}, L: left, R: right}
	}
	return simpleExpression(n.Child(0))
}

func simpleExpression(n *cst.Node) ast.Expr {
	if len(n.Children) == 3 {
		sign := n.Token(0).Lexeme
		base := term(n.Child(1))
		unary := &ast.Unary{Op: ast.Op{Lexeme: sign}, X: base}
		return foldSimpleExpressionTail(unary, n.Child(2))
	}
	base := term(n.Child(0))
	return foldSimpleExpressionTail(base, n.Child(1))
}

func foldSimpleExpressionTail(base ast.Expr, tail *cst.Node) ast.Expr {
	if len(tail.Children) == 0 {
		return base
	}
	op := additiveOperatorLexeme(tail.Child(0))
	right := term(tail.Child(1))
	combined := &ast.Binary{Op: ast.Op{Lexeme: op}, L: base, R: right}
	return foldSimpleExpressionTail(combined, tail.Child(2))
}

func additiveOperatorLexeme(n *cst.Node) string {
	return n.Tokens()[0].Lexeme
}

func term(n *cst.Node) ast.Expr {
	base := factor(n.Child(0))
	return foldTermTail(base, n.Child(1))
}

func foldTermTail(base ast.Expr, tail *cst.Node) ast.Expr {
	if len(tail.Children) == 0 {
		return base
	}
	op := tail.Child(0).Tokens()[0].Lexeme
	right := factor(tail.Child(1))
	combined := &ast.Binary{Op: ast.Op{Lexeme: op}, L: base, R: right}
	return foldTermTail(combined, tail.Child(2))
}

func factor(n *cst.Node) ast.Expr {
	first := n.Children[0]
	if tok, ok := first.(token.Token); ok {
		if tok.Kind == token.LPAREN {
			return expression(n.Child(1))
		}
		// "tidak" Factor
		return &ast.Unary{Op: ast.Op{Lexeme: tok.Lexeme}, X: factor(n.Child(1))}
	}
	child := first.(*cst.Node)
	switch child.Kind {
	case cst.NTCall:
		return call(child)
	case cst.NTValue:
		return value(child)
	}
	panic("lower: unexpected Factor shape " + string(child.Kind))
}

func call(n *cst.Node) *ast.Call {
	name := n.Token(0).Lexeme
	if len(n.Children) == 4 {
		return &ast.Call{Name: name, Args: parameterList(n.Child(2))}
	}
	return &ast.Call{Name: name}
}

func parameterList(n *cst.Node) []ast.Expr {
	args := []ast.Expr{expression(n.Child(0))}
	return append(args, parameterListTail(n.Child(1))...)
}

func parameterListTail(n *cst.Node) []ast.Expr {
	if len(n.Children) == 0 {
		return nil
	}
	args := []ast.Expr{expression(n.Child(1))}
	return append(args, parameterListTail(n.Child(2))...)
}

func value(n *cst.Node) ast.Expr {
	switch c := n.Children[0].(type) {
	case *cst.Node:
		switch c.Kind {
		case cst.NTFieldAccess:
			return fieldAccess(c)
		case cst.NTNumber:
			return number(c)
		}
		panic("lower: unexpected Value shape " + string(c.Kind))
	case token.Token:
		switch c.Kind {
		case token.CHAR_LITERAL:
			r := []rune(c.Lexeme)
			var v rune
			if len(r) > 0 {
				v = r[0]
			}
			return &ast.CharLit{Value: v}
		case token.STRING_LITERAL:
			return &ast.StrLit{Value: c.Lexeme}
		case token.KEYWORD:
			if c.Lexeme == "benar" {
				return &ast.BoolLit{Value: true}
			}
			return &ast.BoolLit{Value: false}
		case token.IDENTIFIER:
			return &ast.VarRef{Name: c.Lexeme}
		}
	}
	panic("lower: unrecognized Value child")
}

func number(n *cst.Node) ast.Expr {
	if len(n.Children) == 3 {
		whole := n.Token(0).Lexeme
		frac := n.Token(2).Lexeme
		f, _ := strconv.ParseFloat(whole+"."+frac, 64)
		return &ast.RealLit{Value: f}
	}
	i, _ := strconv.ParseInt(n.Token(0).Lexeme, 10, 64)
	return &ast.IntLit{Value: i}
}

func fieldAccess(n *cst.Node) ast.Expr {
	head := n.Token(0).Lexeme
	var steps []ast.AccessStep
	var tail *cst.Node
	if n.Token(1).Kind == token.DOT {
		steps = append(steps, ast.AccessStep{Field: n.Token(2).Lexeme})
		tail = n.Child(3)
	} else {
		steps = append(steps, ast.AccessStep{Index: expression(n.Child(2)), IsIndex: true})
		tail = n.Child(4)
	}
	steps = append(steps, fieldAccessTail(tail)...)
	return &ast.FieldAccess{Head: head, Steps: steps}
}

func fieldAccessTail(n *cst.Node) []ast.AccessStep {
	if len(n.Children) == 0 {
		return nil
	}
	first := n.Children[0].(token.Token)
	if first.Kind == token.DOT {
		step := ast.AccessStep{Field: n.Token(1).Lexeme}
		return append([]ast.AccessStep{step}, fieldAccessTail(n.Child(2))...)
	}
	step := ast.AccessStep{Index: expression(n.Child(1)), IsIndex: true}
	return append([]ast.AccessStep{step}, fieldAccessTail(n.Child(3))...)
}
