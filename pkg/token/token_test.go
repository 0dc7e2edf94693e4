package token

import "testing"

func TestKindStringRoundTripsThroughKindFromName(t *testing.T) {
	kinds := []Kind{ILLEGAL, EOF, KEYWORD, IDENTIFIER, NUMBER, CHAR_LITERAL,
		STRING_LITERAL, RELATIONAL_OPERATOR, ADDITIVE_OPERATOR,
		MULTIPLICATIVE_OPERATOR, LOGICAL_OPERATOR, ASSIGN_OPERATOR,
		RANGE_OPERATOR, COLON, SEMICOLON, COMMA, DOT, LBRACKET, RBRACKET,
		LPAREN, RPAREN}

	for _, k := range kinds {
		name := k.String()
		got, ok := KindFromName(name)
		if !ok {
			t.Errorf("KindFromName(%q) not found for Kind %d", name, k)
			continue
		}
		if got != k {
			t.Errorf("KindFromName(%q) = %d, want %d", name, got, k)
		}
	}
}

func TestTokenStringFormatsLexeme(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"with lexeme", Token{Kind: IDENTIFIER, Lexeme: "x"}, "IDENTIFIER(x)"},
		{"bare kind", Token{Kind: EOF}, "EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReservedWordsCountDrivesIDTPreload(t *testing.T) {
	if len(ReservedWords) == 0 {
		t.Fatal("ReservedWords is empty")
	}
	seen := make(map[string]bool, len(ReservedWords))
	for _, w := range ReservedWords {
		if seen[w] {
			t.Errorf("ReservedWords contains duplicate %q", w)
		}
		seen[w] = true
	}
	if !seen["string"] {
		t.Error(`ReservedWords missing "string", which IDT preload classifies as a TYPE entry`)
	}
}

func TestPrimitiveTypeNamesCodes(t *testing.T) {
	want := map[string]int{"integer": 1, "real": 2, "boolean": 3, "char": 4, "string": 5}
	for name, code := range want {
		if got := PrimitiveTypeNames[name]; got != code {
			t.Errorf("PrimitiveTypeNames[%q] = %d, want %d", name, got, code)
		}
	}
}

func TestIsBooleanLiteral(t *testing.T) {
	if !IsBooleanLiteral("benar") || !IsBooleanLiteral("salah") {
		t.Error("IsBooleanLiteral() = false for benar/salah")
	}
	if IsBooleanLiteral("integer") {
		t.Error("IsBooleanLiteral(\"integer\") = true, want false")
	}
}
