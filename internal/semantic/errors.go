package semantic

import (
	"fmt"

	"github.com/rangkaian/kompilator/internal/typesys"
)

// Error is the marker every semantic error variant implements, mirroring
// spec §7's closed list. Analysis aborts on the first one raised.
type Error interface {
	error
	semanticError()
}

type base struct{}

func (base) semanticError() {}

// DuplicateDeclarationError is raised when a name is entered twice in the
// same block (spec §4.3 enter() step 1).
type DuplicateDeclarationError struct {
	base
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("duplicate declaration: %q", e.Name)
}

// ReservedWordRedeclarationError is raised when a program tries to
// redeclare one of the preloaded reserved words, at any level.
type ReservedWordRedeclarationError struct {
	base
	Name string
}

func (e *ReservedWordRedeclarationError) Error() string {
	return fmt.Sprintf("cannot redeclare reserved word %q", e.Name)
}

// UndefinedTypeError is raised when a type name resolves to nothing, or to
// an IDT entry that isn't kind TYPE.
type UndefinedTypeError struct {
	base
	Name string
}

func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("undefined type %q", e.Name)
}

// UndeclaredIdentifierError is raised when lookup finds nothing for a
// referenced name.
type UndeclaredIdentifierError struct {
	base
	Name string
}

func (e *UndeclaredIdentifierError) Error() string {
	return fmt.Sprintf("undeclared identifier %q", e.Name)
}

// NotCallableError is raised when a Call's resolved callee isn't PROC or
// FUNC.
type NotCallableError struct {
	base
	Name string
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("%q is not callable", e.Name)
}

// NonFunctionInExpressionError is raised when a PROC is called from
// expression position.
type NonFunctionInExpressionError struct {
	base
	Name string
}

func (e *NonFunctionInExpressionError) Error() string {
	return fmt.Sprintf("%q is a procedure, not a function, and cannot be used in an expression", e.Name)
}

// TypeMismatchError carries the two sides of a failed compatibility check
// (spec §7: "TypeMismatch{target,value}").
type TypeMismatchError struct {
	base
	Target typesys.Code
	Value  typesys.Code
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: target %s, value %s", e.Target, e.Value)
}

// AssignToConstantError is raised when the LHS of an assignment resolves
// to a CONST entry.
type AssignToConstantError struct {
	base
	Name string
}

func (e *AssignToConstantError) Error() string {
	return fmt.Sprintf("cannot assign to constant %q", e.Name)
}

// WrongArgCountError is raised when a call's actual-argument count doesn't
// match the callee's declared parameter count.
type WrongArgCountError struct {
	base
	Name     string
	Expected int
	Got      int
}

func (e *WrongArgCountError) Error() string {
	return fmt.Sprintf("%q expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

// NonLValueForVarParamError is raised when a by-reference formal parameter
// receives an actual argument that isn't an l-value.
type NonLValueForVarParamError struct {
	base
	Name string
	Pos  int
}

func (e *NonLValueForVarParamError) Error() string {
	return fmt.Sprintf("argument %d to %q must be a variable (by-reference parameter)", e.Pos, e.Name)
}

// IndexOutOfBoundsError is raised when a statically evaluable array index
// falls outside its ART entry's low..high range.
type IndexOutOfBoundsError struct {
	base
	Low, High, Index int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds [%d..%d]", e.Index, e.Low, e.High)
}

// NonArrayIndexedError is raised when a `[expr]` access step is applied to
// a non-array type.
type NonArrayIndexedError struct {
	base
	Name string
}

func (e *NonArrayIndexedError) Error() string {
	return fmt.Sprintf("%q is not an array and cannot be indexed", e.Name)
}

// NonRecordFieldAccessError is raised when a `.field` access step is
// applied to a non-record type.
type NonRecordFieldAccessError struct {
	base
	Name string
}

func (e *NonRecordFieldAccessError) Error() string {
	return fmt.Sprintf("%q is not a record and has no fields", e.Name)
}

// UnknownFieldError is raised when a `.field` step names a field the
// record type doesn't declare.
type UnknownFieldError struct {
	base
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// NonBooleanConditionError is raised when an If/While/Repeat condition
// doesn't type as BOOL.
type NonBooleanConditionError struct {
	base
	Got typesys.Code
}

func (e *NonBooleanConditionError) Error() string {
	return fmt.Sprintf("condition must be boolean, got %s", e.Got)
}
