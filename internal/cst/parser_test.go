package cst_test

import (
	"testing"

	"github.com/rangkaian/kompilator/internal/cst"
	"github.com/rangkaian/kompilator/internal/lexer"
	"github.com/rangkaian/kompilator/pkg/token"
)

// parseSource is the shared helper every test below uses to go straight
// from source text to a parsed CST, checking the full-consumption rule
// along the way (spec §4.1).
func parseSource(t *testing.T, src string) *cst.Node {
	t.Helper()
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lexer.Scan() error = %v", err)
	}
	node, _, err := cst.ParseProgram(toks)
	if err != nil {
		t.Fatalf("cst.ParseProgram() error = %v", err)
	}
	return node
}

func TestParseProgramMinimal(t *testing.T) {
	node := parseSource(t, "program contoh; mulai selesai.")
	if node.Kind != cst.NTProgram {
		t.Fatalf("root Kind = %v, want NTProgram", node.Kind)
	}
	if len(node.Children) != 4 {
		t.Fatalf("root has %d children, want 4 (header, decls, compound, dot)", len(node.Children))
	}
}

func TestParseProgramWithDeclarations(t *testing.T) {
	src := `
program contoh;
konstanta
  batas = 10;
tipe
  vektor = larik[1..10] dari integer;
variabel
  i : integer;
  v : vektor;
mulai
  i := 1;
  v[i] := batas
selesai.
`
	node := parseSource(t, src)
	if node.Kind != cst.NTProgram {
		t.Fatalf("root Kind = %v, want NTProgram", node.Kind)
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	toks, err := lexer.Scan("program contoh; mulai selesai. lagi")
	if err != nil {
		t.Fatalf("lexer.Scan() error = %v", err)
	}
	_, _, err = cst.ParseProgram(toks)
	if err == nil {
		t.Fatal("ParseProgram() error = nil, want an incomplete-parse error")
	}
	if _, ok := err.(*cst.IncompleteParseError); !ok {
		t.Errorf("ParseProgram() error type = %T, want *cst.IncompleteParseError", err)
	}
}

func TestParseReportsDeepestSyntaxError(t *testing.T) {
	toks, err := lexer.Scan("program contoh; mulai x := selesai.")
	if err != nil {
		t.Fatalf("lexer.Scan() error = %v", err)
	}
	_, ctx, err := cst.ParseProgram(toks)
	if err == nil {
		t.Fatal("ParseProgram() error = nil, want a syntax error")
	}
	syn, ok := err.(*cst.SyntaxError)
	if !ok {
		t.Fatalf("ParseProgram() error type = %T, want *cst.SyntaxError", err)
	}
	if !syn.Ctx.HasError() {
		t.Error("ErrorContext.HasError() = false after a failed parse")
	}
	if ctx != syn.Ctx {
		t.Error("returned ErrorContext is not the same one embedded in the SyntaxError")
	}
}

func TestErrorContextKeepsDeepestReport(t *testing.T) {
	ctx := cst.NewErrorContext()
	if ctx.HasError() {
		t.Fatal("fresh ErrorContext already reports an error")
	}
	tok := token.Token{Kind: token.IDENTIFIER, Lexeme: "x"}
	ctx.Report(2, cst.T(token.IDENTIFIER), tok, cst.NonTerminal("A"))
	ctx.Report(5, cst.T(token.IDENTIFIER), tok, cst.NonTerminal("B"))
	ctx.Report(1, cst.T(token.IDENTIFIER), tok, cst.NonTerminal("C"))

	if ctx.MaxIndex != 5 {
		t.Errorf("MaxIndex = %d, want 5 (the deepest report wins)", ctx.MaxIndex)
	}
	if ctx.Rule != cst.NonTerminal("B") {
		t.Errorf("Rule = %v, want B", ctx.Rule)
	}
}
