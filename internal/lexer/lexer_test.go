package lexer

import (
	"testing"

	"github.com/rangkaian/kompilator/pkg/token"
)

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, err := Scan("program x mulai")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []token.Token{
		{Kind: token.KEYWORD, Lexeme: "program"},
		{Kind: token.IDENTIFIER, Lexeme: "x"},
		{Kind: token.KEYWORD, Lexeme: "mulai"},
		token.EOFToken,
	}
	if len(toks) != len(want) {
		t.Fatalf("Scan() returned %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok != want[i] {
			t.Errorf("toks[%d] = %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestScanHyphenatedReservedWords(t *testing.T) {
	toks, err := Scan("selain-itu turun-ke")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if toks[0].Kind != token.KEYWORD || toks[0].Lexeme != "selain-itu" {
		t.Errorf("toks[0] = %+v, want KEYWORD(selain-itu)", toks[0])
	}
	if toks[1].Kind != token.KEYWORD || toks[1].Lexeme != "turun-ke" {
		t.Errorf("toks[1] = %+v, want KEYWORD(turun-ke)", toks[1])
	}
}

func TestScanHyphenFollowedByNonKeywordStaysSeparate(t *testing.T) {
	toks, err := Scan("a-b")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	// "a-b" is not a reserved compound, so it must lex as three tokens:
	// IDENTIFIER(a), ADDITIVE_OPERATOR(-), IDENTIFIER(b).
	if len(toks) != 4 { // plus EOF
		t.Fatalf("Scan() returned %d tokens, want 4: %v", len(toks), toks)
	}
	if toks[0].Kind != token.IDENTIFIER || toks[0].Lexeme != "a" {
		t.Errorf("toks[0] = %+v, want IDENTIFIER(a)", toks[0])
	}
	if toks[1].Kind != token.ADDITIVE_OPERATOR || toks[1].Lexeme != "-" {
		t.Errorf("toks[1] = %+v, want ADDITIVE_OPERATOR(-)", toks[1])
	}
	if toks[2].Kind != token.IDENTIFIER || toks[2].Lexeme != "b" {
		t.Errorf("toks[2] = %+v, want IDENTIFIER(b)", toks[2])
	}
}

func TestScanNumberAndRealLiteralSplit(t *testing.T) {
	toks, err := Scan("10 3.14")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []token.Token{
		{Kind: token.NUMBER, Lexeme: "10"},
		{Kind: token.NUMBER, Lexeme: "3"},
		{Kind: token.DOT, Lexeme: "."},
		{Kind: token.NUMBER, Lexeme: "14"},
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("toks[%d] = %+v, want %+v", i, toks[i], w)
		}
	}
}

func TestScanCharLiteral(t *testing.T) {
	toks, err := Scan("'x'")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if toks[0].Kind != token.CHAR_LITERAL || toks[0].Lexeme != "x" {
		t.Errorf("toks[0] = %+v, want CHAR_LITERAL(x)", toks[0])
	}
}

func TestScanUnterminatedCharLiteralErrors(t *testing.T) {
	if _, err := Scan("'x"); err == nil {
		t.Fatal("Scan() error = nil, want an error for an unterminated char literal")
	}
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := Scan(`"halo dunia"`)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if toks[0].Kind != token.STRING_LITERAL || toks[0].Lexeme != "halo dunia" {
		t.Errorf("toks[0] = %+v, want STRING_LITERAL(halo dunia)", toks[0])
	}
}

func TestScanUnterminatedStringLiteralErrors(t *testing.T) {
	if _, err := Scan(`"halo`); err == nil {
		t.Fatal("Scan() error = nil, want an error for an unterminated string literal")
	}
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{":=", token.ASSIGN_OPERATOR},
		{"<>", token.RELATIONAL_OPERATOR},
		{"<=", token.RELATIONAL_OPERATOR},
		{">=", token.RELATIONAL_OPERATOR},
		{"..", token.RANGE_OPERATOR},
		{":", token.COLON},
		{"=", token.RELATIONAL_OPERATOR},
		{"<", token.RELATIONAL_OPERATOR},
		{">", token.RELATIONAL_OPERATOR},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks, err := Scan(tt.src)
			if err != nil {
				t.Fatalf("Scan(%q) error = %v", tt.src, err)
			}
			if toks[0].Kind != tt.kind || toks[0].Lexeme != tt.src {
				t.Errorf("Scan(%q)[0] = %+v, want Kind=%v Lexeme=%q", tt.src, toks[0], tt.kind, tt.src)
			}
		})
	}
}

func TestScanUnrecognizedCharacterErrors(t *testing.T) {
	_, err := Scan("@")
	if err == nil {
		t.Fatal("Scan() error = nil, want an error for an unrecognized character")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if lexErr.Ch != '@' {
		t.Errorf("Error.Ch = %q, want '@'", lexErr.Ch)
	}
}
