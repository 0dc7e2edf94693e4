package semantic

import (
	"fmt"

	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/typesys"
)

// evalStatic folds the deliberately narrow constant-expression subset spec
// §9 calls out for array bounds: numeric literals, unary minus, parenthesized
// expressions (already flattened away by lowering), character literals as
// ordinals, and identifiers bound to integer or char CONST entries.
// Anything else errors.
func (a *Analyzer) evalStatic(e ast.Expr) (int, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return int(n.Value), nil
	case *ast.CharLit:
		return int(n.Value), nil
	case *ast.Unary:
		if n.Op.Lexeme != "-" && n.Op.Lexeme != "+" {
			return 0, fmt.Errorf("semantic: non-constant expression in static context")
		}
		v, err := a.evalStatic(n.X)
		if err != nil {
			return 0, err
		}
		if n.Op.Lexeme == "-" {
			return -v, nil
		}
		return v, nil
	case *ast.VarRef:
		idx, entry := a.lookup(n.Name)
		if idx == 0 {
			return 0, &UndeclaredIdentifierError{Name: n.Name}
		}
		if entry.Kind != typesys.CONST {
			return 0, fmt.Errorf("semantic: %q is not a constant", n.Name)
		}
		if entry.Type != typesys.INT && entry.Type != typesys.CHAR {
			return 0, fmt.Errorf("semantic: constant %q is not an integer or char", n.Name)
		}
		n.Index = idx
		return entry.Addr, nil
	default:
		return 0, fmt.Errorf("semantic: non-constant expression in static context")
	}
}

// isCharLiteral reports whether an already-lowered bound expression is
// literally a character literal — used to pick ART's index type (spec
// §4.3 "Array construction": "If either bound is a character literal").
func isCharLiteral(e ast.Expr) bool {
	_, ok := e.(*ast.CharLit)
	return ok
}

// staticIndexOrdinal returns a statically evaluable index expression's
// position in art's normalized Low..High range (spec §4.3 "Field-access
// evaluation": "if statically evaluable, range-check against low..high"),
// normalizing a character literal through art.CharBase the same way the
// declared bounds were. ok is false for anything not statically known.
func staticIndexOrdinal(e ast.Expr, art ARTEntry) (int, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return int(n.Value), true
	case *ast.CharLit:
		return int(n.Value) - art.CharBase + 1, true
	default:
		return 0, false
	}
}
