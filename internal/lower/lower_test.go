package lower_test

import (
	"testing"

	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/cst"
	"github.com/rangkaian/kompilator/internal/lexer"
	"github.com/rangkaian/kompilator/internal/lower"
)

// lowerSource takes source text all the way through the lexer and parser
// into an *ast.Program, failing the test immediately on any earlier-stage
// error so lowering itself is the only thing under test.
func lowerSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lexer.Scan() error = %v", err)
	}
	node, _, err := cst.ParseProgram(toks)
	if err != nil {
		t.Fatalf("cst.ParseProgram() error = %v", err)
	}
	return lower.Program(node)
}

func TestLowerProgramName(t *testing.T) {
	prog := lowerSource(t, "program contoh; mulai selesai.")
	if prog.Name != "contoh" {
		t.Errorf("Name = %q, want %q", prog.Name, "contoh")
	}
	if prog.Decls == nil {
		t.Fatal("Decls is nil")
	}
	if len(prog.Body.Stmts) != 1 {
		t.Fatalf("Body has %d statements, want 1 (the empty statement)", len(prog.Body.Stmts))
	}
}

func TestLowerVarSection(t *testing.T) {
	prog := lowerSource(t, "program contoh; variabel a, b : integer; c : real; mulai selesai.")
	vars := prog.Decls.Vars
	if len(vars) != 2 {
		t.Fatalf("Decls.Vars has %d items, want 2", len(vars))
	}
	if got := vars[0].Names; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Vars[0].Names = %v, want [a b]", got)
	}
	if _, ok := vars[0].Type.(*ast.NamedType); !ok {
		t.Errorf("Vars[0].Type = %T, want *ast.NamedType", vars[0].Type)
	}
	if got := vars[1].Names; len(got) != 1 || got[0] != "c" {
		t.Errorf("Vars[1].Names = %v, want [c]", got)
	}
}

func TestLowerConstSection(t *testing.T) {
	prog := lowerSource(t, "program contoh; konstanta batas = 10; mulai selesai.")
	consts := prog.Decls.Consts
	if len(consts) != 1 {
		t.Fatalf("Decls.Consts has %d items, want 1", len(consts))
	}
	if consts[0].Name != "batas" {
		t.Errorf("Consts[0].Name = %q, want %q", consts[0].Name, "batas")
	}
	lit, ok := consts[0].Value.(*ast.IntLit)
	if !ok {
		t.Fatalf("Consts[0].Value = %T, want *ast.IntLit", consts[0].Value)
	}
	if lit.Value != 10 {
		t.Errorf("Consts[0].Value.Value = %d, want 10", lit.Value)
	}
}

func TestLowerArrayType(t *testing.T) {
	prog := lowerSource(t, "program contoh; tipe vektor = larik[1..10] dari integer; mulai selesai.")
	types := prog.Decls.Types
	if len(types) != 1 {
		t.Fatalf("Decls.Types has %d items, want 1", len(types))
	}
	arr, ok := types[0].Def.(*ast.ArrayType)
	if !ok {
		t.Fatalf("Types[0].Def = %T, want *ast.ArrayType", types[0].Def)
	}
	lo, ok := arr.Lo.(*ast.IntLit)
	if !ok || lo.Value != 1 {
		t.Errorf("ArrayType.Lo = %v, want IntLit(1)", arr.Lo)
	}
	hi, ok := arr.Hi.(*ast.IntLit)
	if !ok || hi.Value != 10 {
		t.Errorf("ArrayType.Hi = %v, want IntLit(10)", arr.Hi)
	}
	if _, ok := arr.Elem.(*ast.NamedType); !ok {
		t.Errorf("ArrayType.Elem = %T, want *ast.NamedType", arr.Elem)
	}
}

func TestLowerAssignmentAndBinaryExpression(t *testing.T) {
	prog := lowerSource(t, "program contoh; variabel x : integer; mulai x := 1 + 2 selesai.")
	assign, ok := prog.Body.Stmts[0].(*ast.Assign)
	if !ok {
		t.Fatalf("Stmts[0] = %T, want *ast.Assign", prog.Body.Stmts[0])
	}
	target, ok := assign.Target.(*ast.VarRef)
	if !ok || target.Name != "x" {
		t.Errorf("Assign.Target = %v, want VarRef(x)", assign.Target)
	}
	bin, ok := assign.Value.(*ast.Binary)
	if !ok {
		t.Fatalf("Assign.Value = %T, want *ast.Binary", assign.Value)
	}
	if bin.Op.Lexeme != "+" {
		t.Errorf("Binary.Op.Lexeme = %q, want %q", bin.Op.Lexeme, "+")
	}
}

func TestLowerFieldAccessIndexing(t *testing.T) {
	prog := lowerSource(t, "program contoh; variabel v : integer; mulai v[1] := 2 selesai.")
	assign, ok := prog.Body.Stmts[0].(*ast.Assign)
	if !ok {
		t.Fatalf("Stmts[0] = %T, want *ast.Assign", prog.Body.Stmts[0])
	}
	access, ok := assign.Target.(*ast.FieldAccess)
	if !ok {
		t.Fatalf("Assign.Target = %T, want *ast.FieldAccess", assign.Target)
	}
	if access.Head != "v" {
		t.Errorf("FieldAccess.Head = %q, want %q", access.Head, "v")
	}
	if len(access.Steps) != 1 || !access.Steps[0].IsIndex {
		t.Fatalf("FieldAccess.Steps = %v, want a single index step", access.Steps)
	}
}

func TestLowerIfStatementWithElse(t *testing.T) {
	prog := lowerSource(t, "program contoh; variabel x : integer; mulai jika benar maka x := 1 selain-itu x := 2 selesai.")
	ifStmt, ok := prog.Body.Stmts[0].(*ast.If)
	if !ok {
		t.Fatalf("Stmts[0] = %T, want *ast.If", prog.Body.Stmts[0])
	}
	if ifStmt.Else == nil {
		t.Error("If.Else is nil, want the selain-itu branch")
	}
}

func TestLowerProcedureDeclaration(t *testing.T) {
	prog := lowerSource(t, `
program contoh;
prosedur p(x : integer);
mulai
selesai;
mulai
selesai.
`)
	if len(prog.Decls.Subprograms) != 1 {
		t.Fatalf("Decls.Subprograms has %d items, want 1", len(prog.Decls.Subprograms))
	}
	proc, ok := prog.Decls.Subprograms[0].(*ast.Procedure)
	if !ok {
		t.Fatalf("Subprograms[0] = %T, want *ast.Procedure", prog.Decls.Subprograms[0])
	}
	if proc.SubName() != "p" {
		t.Errorf("SubName() = %q, want %q", proc.SubName(), "p")
	}
	if len(proc.Params) != 1 || len(proc.Params[0].Names) != 1 || proc.Params[0].Names[0] != "x" {
		t.Errorf("Params = %v, want one group with name x", proc.Params)
	}
}
