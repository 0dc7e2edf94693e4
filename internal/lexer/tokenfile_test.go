package lexer

import (
	"strings"
	"testing"

	"github.com/rangkaian/kompilator/pkg/token"
)

func TestLoadTokenFileRoundTripsScan(t *testing.T) {
	src := "program contoh; mulai x := 1 selesai."
	scanned, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var sb strings.Builder
	for _, tok := range scanned {
		sb.WriteString(tok.String())
		sb.WriteByte('\n')
	}

	loaded, err := LoadTokenFile(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("LoadTokenFile() error = %v", err)
	}
	if len(loaded) != len(scanned) {
		t.Fatalf("LoadTokenFile() returned %d tokens, want %d", len(loaded), len(scanned))
	}
	for i := range scanned {
		if loaded[i] != scanned[i] {
			t.Errorf("loaded[%d] = %+v, want %+v", i, loaded[i], scanned[i])
		}
	}
}

func TestLoadTokenFileSkipsBlankLines(t *testing.T) {
	toks, err := LoadTokenFile(strings.NewReader("IDENTIFIER(x)\n\nSEMICOLON(;)\n"))
	if err != nil {
		t.Fatalf("LoadTokenFile() error = %v", err)
	}
	want := []token.Token{
		{Kind: token.IDENTIFIER, Lexeme: "x"},
		{Kind: token.SEMICOLON, Lexeme: ";"},
		token.EOFToken,
	}
	if len(toks) != len(want) {
		t.Fatalf("LoadTokenFile() returned %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("toks[%d] = %+v, want %+v", i, toks[i], w)
		}
	}
}

func TestLoadTokenFileUnknownKindErrors(t *testing.T) {
	if _, err := LoadTokenFile(strings.NewReader("NOPE(x)\n")); err == nil {
		t.Fatal("LoadTokenFile() error = nil, want an error for an unknown kind")
	}
}

func TestLoadTokenFileMalformedLineErrors(t *testing.T) {
	if _, err := LoadTokenFile(strings.NewReader("IDENTIFIER(x\n")); err == nil {
		t.Fatal("LoadTokenFile() error = nil, want an error for a missing closing paren")
	}
}
