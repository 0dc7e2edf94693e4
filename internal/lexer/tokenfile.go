package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rangkaian/kompilator/pkg/token"
)

// LoadTokenFile reads a pre-tokenized ".txt" file, one "KIND(lexeme)" per
// line (a bare "KIND" line means an empty lexeme), and returns the decoded
// token stream terminated by token.EOFToken. A trailing "EOF" line in the
// file serves as that terminator; it is not doubled.
//
// This mirrors original_source/src/lexer.py's print_tokens output format,
// which the original driver's "--lexer-only" milestone writes and the
// ".txt" input path reads back (original_source/src/compiler.py's
// load_tokens_from_file) — see SPEC_FULL.md's supplemented-feature 2.
func LoadTokenFile(r io.Reader) ([]token.Token, error) {
	var toks []token.Token
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tok, err := parseTokenLine(line)
		if err != nil {
			return nil, fmt.Errorf("tokenfile: line %d: %w", lineNo, err)
		}
		toks = append(toks, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(toks, token.EOFToken)
	}
	return toks, nil
}

func parseTokenLine(line string) (token.Token, error) {
	open := strings.IndexByte(line, '(')
	if open == -1 {
		kind, ok := token.KindFromName(line)
		if !ok {
			return token.Token{}, fmt.Errorf("unknown token kind %q", line)
		}
		return token.Token{Kind: kind}, nil
	}
	if !strings.HasSuffix(line, ")") {
		return token.Token{}, fmt.Errorf("malformed token line %q", line)
	}
	name := line[:open]
	lexeme := line[open+1 : len(line)-1]
	kind, ok := token.KindFromName(name)
	if !ok {
		return token.Token{}, fmt.Errorf("unknown token kind %q", name)
	}
	return token.Token{Kind: kind, Lexeme: lexeme}, nil
}
