package semantic

import (
	"fmt"

	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/config"
	"github.com/rangkaian/kompilator/internal/typesys"
)

func (a *Analyzer) analyzeCompound(c *ast.Compound) error {
	for _, s := range c.Stmts {
		if err := a.analyzeStatement(s); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeStatement(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.Assign:
		return a.analyzeAssign(st)
	case *ast.If:
		return a.analyzeIf(st)
	case *ast.While:
		return a.analyzeWhile(st)
	case *ast.For:
		return a.analyzeFor(st)
	case *ast.Repeat:
		return a.analyzeRepeat(st)
	case *ast.Case:
		return a.analyzeCase(st)
	case *ast.Compound:
		return a.analyzeCompound(st)
	case *ast.ExprStmt:
		return a.analyzeExprStmt(st)
	case *ast.Empty:
		return nil
	}
	panic("semantic: unknown Stmt variant")
}

// assignTargetType resolves an assignment (or for-loop counter) target's
// type, rejecting CONST targets (spec §4.3 "Assignment checking").
func (a *Analyzer) assignTargetType(target ast.LValue) (typesys.Ref, error) {
	var headName string
	switch t := target.(type) {
	case *ast.VarRef:
		headName = t.Name
	case *ast.FieldAccess:
		headName = t.Head
	}
	if idx, entry := a.lookup(headName); idx != 0 && entry.Kind == typesys.CONST {
		return typesys.Ref{}, &AssignToConstantError{Name: headName}
	}
	return a.typeExpr(target)
}

func (a *Analyzer) analyzeAssign(s *ast.Assign) error {
	targetType, err := a.assignTargetType(s.Target)
	if err != nil {
		return err
	}
	valueType, err := a.typeExpr(s.Value)
	if err != nil {
		return err
	}
	if targetType.Code == valueType.Code {
		return nil
	}
	if targetType.Code == typesys.REAL && valueType.Code == typesys.INT {
		return nil
	}
	return &TypeMismatchError{Target: targetType.Code, Value: valueType.Code}
}

func (a *Analyzer) requireBoolean(e ast.Expr) error {
	ref, err := a.typeExpr(e)
	if err != nil {
		return err
	}
	if ref.Code != typesys.BOOL {
		if a.Policy == config.PolicyWarning {
			a.Warnings = append(a.Warnings, fmt.Sprintf("condition must be boolean, got %s", ref.Code))
			return nil
		}
		return &NonBooleanConditionError{Got: ref.Code}
	}
	return nil
}

func (a *Analyzer) analyzeIf(s *ast.If) error {
	if err := a.requireBoolean(s.Cond); err != nil {
		return err
	}
	if err := a.analyzeStatement(s.Then); err != nil {
		return err
	}
	if s.Else != nil {
		return a.analyzeStatement(s.Else)
	}
	return nil
}

func (a *Analyzer) analyzeWhile(s *ast.While) error {
	if err := a.requireBoolean(s.Cond); err != nil {
		return err
	}
	return a.analyzeStatement(s.Body)
}

func (a *Analyzer) analyzeFor(s *ast.For) error {
	idx, entry := a.lookup(s.Var)
	if idx == 0 {
		return &UndeclaredIdentifierError{Name: s.Var}
	}
	if entry.Kind == typesys.CONST {
		return &AssignToConstantError{Name: s.Var}
	}
	varType := entry.Type

	fromType, err := a.typeExpr(s.From)
	if err != nil {
		return err
	}
	if fromType.Code != varType {
		return &TypeMismatchError{Target: varType, Value: fromType.Code}
	}
	toType, err := a.typeExpr(s.To)
	if err != nil {
		return err
	}
	if toType.Code != varType {
		return &TypeMismatchError{Target: varType, Value: toType.Code}
	}
	return a.analyzeStatement(s.Body)
}

func (a *Analyzer) analyzeRepeat(s *ast.Repeat) error {
	for _, stmt := range s.Body {
		if err := a.analyzeStatement(stmt); err != nil {
			return err
		}
	}
	return a.requireBoolean(s.Until)
}

func (a *Analyzer) analyzeCase(s *ast.Case) error {
	subjectType, err := a.typeExpr(s.Subject)
	if err != nil {
		return err
	}
	for _, arm := range s.Arms {
		armType, err := a.typeExpr(arm.Value)
		if err != nil {
			return err
		}
		if armType.Code != subjectType.Code {
			return &TypeMismatchError{Target: subjectType.Code, Value: armType.Code}
		}
		if err := a.analyzeStatement(arm.Body); err != nil {
			return err
		}
	}
	return nil
}

// analyzeExprStmt enforces the statement-position restriction spec §3.3's
// ExpressionStatement variant documents in internal/ast: syntactically any
// expression, semantically only a call.
func (a *Analyzer) analyzeExprStmt(s *ast.ExprStmt) error {
	call, ok := s.Expr.(*ast.Call)
	if !ok {
		return &NotCallableError{Name: "<expression>"}
	}
	entry, err := a.checkCall(call)
	if err != nil {
		return err
	}
	if entry != nil {
		*call.Annotation() = typesys.Ref{Code: entry.Type, Ref: entry.Ref}
	}
	return nil
}
