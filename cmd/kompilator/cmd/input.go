package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rangkaian/kompilator/internal/lexer"
	"github.com/rangkaian/kompilator/pkg/token"
)

// loadTokens implements the dual input handling SPEC_FULL.md's
// supplemented feature 2 describes: a ".txt" file is a pre-tokenized
// "KIND(lexeme)"-per-line stream (original_source's load_tokens_from_file
// format), read via internal/lexer.LoadTokenFile; anything else is raw
// ".pas" source text, scanned with internal/lexer.Scan.
func loadTokens(path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".txt") {
		return lexer.LoadTokenFile(f)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lexer.Scan(string(raw))
}

// loadSource reads raw source text, rejecting the pre-tokenized ".txt"
// form — used by stages that need to re-lex (parse/analyze/compile run
// the whole pipeline from source rather than accepting a token file).
func loadSource(path string) (string, error) {
	if strings.HasSuffix(path, ".txt") {
		return "", fmt.Errorf("%s: pre-tokenized .txt input is only accepted by lex", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}
