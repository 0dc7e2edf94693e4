package pipeline

import (
	"strings"
	"testing"

	"github.com/rangkaian/kompilator/internal/typesys"
)

const sampleSource = `
program contoh;
variabel
  x : integer;
mulai
  x := 1 + 2
selesai.
`

func TestAnalyzeHappyPath(t *testing.T) {
	res, err := Analyze(sampleSource)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Analyzer == nil {
		t.Fatal("Analyze() did not populate Analyzer")
	}

	var found bool
	for _, e := range res.Analyzer.IDT {
		if e.Name == "x" {
			found = true
			if e.Type != typesys.INT {
				t.Errorf("x has type %v, want INT", e.Type)
			}
		}
	}
	if !found {
		t.Fatal("variable x was not entered into the IDT")
	}
}

func TestLexStageAlone(t *testing.T) {
	res, err := Lex(sampleSource)
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if res.AST != nil || res.CST != nil {
		t.Error("Lex() should not populate CST/AST")
	}
	if len(res.Tokens) == 0 {
		t.Error("Lex() produced no tokens")
	}
}

func TestParseStagePropagatesSyntaxError(t *testing.T) {
	_, err := Parse("program contoh; mulai x := selesai.")
	if err == nil {
		t.Fatal("Parse() error = nil, want a syntax error for a missing expression")
	}
	if !strings.Contains(err.Error(), "syntax") && !strings.Contains(err.Error(), "parse") {
		t.Errorf("Parse() error = %v, want a syntax-shaped error", err)
	}
}

func TestAnalyzeRejectsUndeclaredIdentifier(t *testing.T) {
	_, err := Analyze("program contoh; mulai y := 1 selesai.")
	if err == nil {
		t.Fatal("Analyze() error = nil, want an undeclared-identifier error")
	}
}
