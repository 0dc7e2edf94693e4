package semantic

import (
	"strings"

	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/typesys"
)

// typeExpr implements spec §4.3 "Expression typing": every Expr node's
// annotation is set before returning, on both the success and (where
// possible) the error path, so a partially analyzed tree still satisfies
// as much of spec §3.6's "every reachable Expr carries a type_index"
// invariant as the error allows.
func (a *Analyzer) typeExpr(e ast.Expr) (typesys.Ref, error) {
	var ref typesys.Ref
	var err error

	switch n := e.(type) {
	case *ast.IntLit:
		ref = typesys.Ref{Code: typesys.INT}
	case *ast.RealLit:
		ref = typesys.Ref{Code: typesys.REAL}
	case *ast.CharLit:
		ref = typesys.Ref{Code: typesys.CHAR}
	case *ast.StrLit:
		ref = typesys.Ref{Code: typesys.STRING}
	case *ast.BoolLit:
		ref = typesys.Ref{Code: typesys.BOOL}
	case *ast.VarRef:
		ref, err = a.typeVarRef(n)
	case *ast.FieldAccess:
		ref, err = a.typeFieldAccess(n)
	case *ast.Call:
		ref, err = a.typeCallExpr(n)
	case *ast.Unary:
		ref, err = a.typeUnary(n)
	case *ast.Binary:
		ref, err = a.typeBinary(n)
	default:
		panic("semantic: unknown Expr variant")
	}

	*e.Annotation() = ref
	return ref, err
}

func (a *Analyzer) typeVarRef(n *ast.VarRef) (typesys.Ref, error) {
	idx, entry := a.lookup(n.Name)
	if idx == 0 {
		return typesys.Ref{}, &UndeclaredIdentifierError{Name: n.Name}
	}
	n.Index = idx
	if entry.Kind == typesys.PROC || entry.Kind == typesys.FUNC || entry.Kind == typesys.TYPE {
		return typesys.Ref{}, &NotCallableError{Name: n.Name}
	}
	return typesys.Ref{Code: entry.Type, Ref: entry.Ref}, nil
}

// typeFieldAccess implements spec §4.3 "Field-access evaluation".
func (a *Analyzer) typeFieldAccess(n *ast.FieldAccess) (typesys.Ref, error) {
	idx, entry := a.lookup(n.Head)
	if idx == 0 {
		return typesys.Ref{}, &UndeclaredIdentifierError{Name: n.Head}
	}
	n.HeadIndex = idx
	cur := a.chase(typesys.Ref{Code: entry.Type, Ref: entry.Ref})

	for _, step := range n.Steps {
		if step.IsIndex {
			if cur.Code != typesys.ARRAY {
				return typesys.Ref{}, &NonArrayIndexedError{Name: n.Head}
			}
			art := a.ART[cur.Ref]
			idxType, err := a.typeExpr(step.Index)
			if err != nil {
				return typesys.Ref{}, err
			}
			if idxType.Code != art.InxTyp {
				return typesys.Ref{}, &TypeMismatchError{Target: art.InxTyp, Value: idxType.Code}
			}
			if iv, ok := staticIndexOrdinal(step.Index, art); ok {
				if iv < art.Low || iv > art.High {
					return typesys.Ref{}, &IndexOutOfBoundsError{Low: art.Low, High: art.High, Index: iv}
				}
			}
			cur = a.chase(typesys.Ref{Code: art.ElTyp, Ref: art.ElRef})
		} else {
			if cur.Code != typesys.RECORD {
				return typesys.Ref{}, &NonRecordFieldAccessError{Name: n.Head}
			}
			fidx, fentry := a.lookupInBlock(cur.Ref, step.Field)
			if fidx == 0 {
				return typesys.Ref{}, &UnknownFieldError{Field: step.Field}
			}
			cur = a.chase(typesys.Ref{Code: fentry.Type, Ref: fentry.Ref})
		}
	}
	return cur, nil
}

func (a *Analyzer) typeUnary(n *ast.Unary) (typesys.Ref, error) {
	x, err := a.typeExpr(n.X)
	if err != nil {
		return typesys.Ref{}, err
	}
	switch n.Op.Lexeme {
	case "+", "-":
		if !x.Code.IsNumeric() {
			return typesys.Ref{}, &TypeMismatchError{Target: typesys.INT, Value: x.Code}
		}
		return x, nil
	case "tidak":
		if x.Code != typesys.BOOL {
			return typesys.Ref{}, &TypeMismatchError{Target: typesys.BOOL, Value: x.Code}
		}
		return x, nil
	}
	panic("semantic: unknown unary operator " + n.Op.Lexeme)
}

func (a *Analyzer) typeBinary(n *ast.Binary) (typesys.Ref, error) {
	l, err := a.typeExpr(n.L)
	if err != nil {
		return typesys.Ref{}, err
	}
	r, err := a.typeExpr(n.R)
	if err != nil {
		return typesys.Ref{}, err
	}

	switch n.Op.Lexeme {
	case "+", "-", "*":
		if !l.Code.IsNumeric() || !r.Code.IsNumeric() {
			return typesys.Ref{}, &TypeMismatchError{Target: l.Code, Value: r.Code}
		}
		if l.Code == typesys.REAL || r.Code == typesys.REAL {
			return typesys.Ref{Code: typesys.REAL}, nil
		}
		return typesys.Ref{Code: typesys.INT}, nil
	case "/":
		if !l.Code.IsNumeric() || !r.Code.IsNumeric() {
			return typesys.Ref{}, &TypeMismatchError{Target: l.Code, Value: r.Code}
		}
		return typesys.Ref{Code: typesys.REAL}, nil
	case "bagi", "mod":
		if l.Code != typesys.INT || r.Code != typesys.INT {
			return typesys.Ref{}, &TypeMismatchError{Target: typesys.INT, Value: r.Code}
		}
		return typesys.Ref{Code: typesys.INT}, nil
	case "dan", "atau":
		if l.Code != typesys.BOOL || r.Code != typesys.BOOL {
			return typesys.Ref{}, &TypeMismatchError{Target: typesys.BOOL, Value: r.Code}
		}
		return typesys.Ref{Code: typesys.BOOL}, nil
	case "=", "<>", "<", ">", "<=", ">=":
		if l.Code == r.Code || (l.Code.IsNumeric() && r.Code.IsNumeric()) {
			return typesys.Ref{Code: typesys.BOOL}, nil
		}
		return typesys.Ref{}, &TypeMismatchError{Target: l.Code, Value: r.Code}
	}
	panic("semantic: unknown binary operator " + n.Op.Lexeme)
}

// typeCallExpr types a Call appearing in expression position: the callee
// must be a FUNC (spec §4.3 "Call checking" / "Expression typing").
func (a *Analyzer) typeCallExpr(n *ast.Call) (typesys.Ref, error) {
	entry, err := a.checkCall(n)
	if err != nil {
		return typesys.Ref{}, err
	}
	if entry == nil { // write/writeln, tolerated unresolved
		return typesys.Ref{}, nil
	}
	if entry.Kind == typesys.PROC {
		return typesys.Ref{}, &NonFunctionInExpressionError{Name: n.Name}
	}
	return typesys.Ref{Code: entry.Type, Ref: entry.Ref}, nil
}

// checkCall implements spec §4.3 "Call checking" independent of the
// calling position (expression vs. statement). It returns the resolved
// callee entry, or nil for a tolerated write/writeln.
func (a *Analyzer) checkCall(n *ast.Call) (*IDTEntry, error) {
	lower := strings.ToLower(n.Name)
	if lower == "write" || lower == "writeln" {
		for _, arg := range n.Args {
			if _, err := a.typeExpr(arg); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	idx, entry := a.lookup(n.Name)
	if idx == 0 {
		return nil, &UndeclaredIdentifierError{Name: n.Name}
	}
	if entry.Kind != typesys.PROC && entry.Kind != typesys.FUNC {
		return nil, &NotCallableError{Name: n.Name}
	}
	n.Index = idx

	if len(n.Args) != len(entry.ParamTypes) {
		return nil, &WrongArgCountError{Name: n.Name, Expected: len(entry.ParamTypes), Got: len(n.Args)}
	}

	for i, arg := range n.Args {
		argType, err := a.typeExpr(arg)
		if err != nil {
			return nil, err
		}
		if entry.ParamIsVar[i] {
			if _, ok := arg.(ast.LValue); !ok {
				return nil, &NonLValueForVarParamError{Name: n.Name, Pos: i + 1}
			}
		}
		formal := entry.ParamTypes[i]
		if !(argType.Code == formal || (formal == typesys.REAL && argType.Code == typesys.INT)) {
			return nil, &TypeMismatchError{Target: formal, Value: argType.Code}
		}
	}
	return entry, nil
}
