package diagnostics

import (
	"strings"
	"testing"

	"github.com/rangkaian/kompilator/internal/cst"
	"github.com/rangkaian/kompilator/pkg/token"
)

func TestNewSyntaxErrorContextWindow(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.KEYWORD, Lexeme: "mulai"},
		{Kind: token.IDENTIFIER, Lexeme: "x"},
		{Kind: token.ASSIGN_OPERATOR, Lexeme: ":="},
		{Kind: token.IDENTIFIER, Lexeme: "y"},
		{Kind: token.SEMICOLON, Lexeme: ";"},
	}
	ctx := cst.NewErrorContext()
	ctx.Report(2, cst.TL(token.ASSIGN_OPERATOR, ":="), tokens[2], cst.NonTerminal("Statement"))

	err := NewSyntaxError(&cst.SyntaxError{Ctx: ctx, Tokens: tokens})
	if err.Kind != "syntax" {
		t.Fatalf("Kind = %q, want syntax", err.Kind)
	}
	if err.Index != 2 {
		t.Fatalf("Index = %d, want 2", err.Index)
	}
	formatted := err.Format(false)
	if !strings.Contains(formatted, "[:=]") {
		t.Errorf("Format() = %q, want it to mark the offending token", formatted)
	}
	if !strings.Contains(formatted, "Rule     : Statement") {
		t.Errorf("Format() = %q, want the failing rule named", formatted)
	}
}

func TestNewSyntaxErrorIncompleteParse(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.DOT, Lexeme: "."},
		{Kind: token.IDENTIFIER, Lexeme: "sisa"},
	}
	err := NewSyntaxError(&cst.IncompleteParseError{Index: 1, Tokens: tokens})
	if !strings.Contains(err.Message, "sisa") {
		t.Errorf("Message = %q, want it to name the trailing token", err.Message)
	}
}

func TestContextWindowTruncatesWithEllipsis(t *testing.T) {
	tokens := make([]token.Token, 12)
	for i := range tokens {
		tokens[i] = token.Token{Kind: token.IDENTIFIER, Lexeme: "t"}
	}
	e := &CompilerError{Kind: "syntax", Tokens: tokens, Index: 6}
	window := e.contextWindow(false)
	if !strings.HasPrefix(window, "...") || !strings.HasSuffix(window, "...") {
		t.Errorf("contextWindow() = %q, want leading and trailing ellipsis", window)
	}
}
