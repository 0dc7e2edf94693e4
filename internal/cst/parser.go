package cst

import "github.com/rangkaian/kompilator/pkg/token"

// tokenAt returns tokens[idx], or the EOF token if idx has run past the
// stream — the stream is always EOF-terminated (lexer.Scan/LoadTokenFile
// guarantee it), but a pathological grammar rule could in principle walk
// past that terminator, so this stays a defensive lookup rather than a
// direct index.
func tokenAt(tokens []token.Token, idx int) token.Token {
	if idx < 0 || idx >= len(tokens) {
		return token.EOFToken
	}
	return tokens[idx]
}

// Parse attempts to match non-terminal nt starting at tokens[start],
// trying each of its alternatives in declared order (spec §4.1 "Matching
// algorithm"). On success it returns the committed node and the index
// just past the consumed tokens. On failure every alternative was
// exhausted; errCtx holds the deepest failure reached while trying, and
// the returned index is unchanged (== start).
func Parse(nt NonTerminal, tokens []token.Token, start int, errCtx *ErrorContext) (bool, *Node, int) {
	alternatives, ok := grammar[nt]
	if !ok {
		panic("cst: unknown non-terminal " + string(nt))
	}

	for _, alt := range alternatives {
		cur := start
		children := make([]any, 0, len(alt))
		failed := false

		for _, el := range alt {
			switch e := el.(type) {
			case Terminal:
				tok := tokenAt(tokens, cur)
				if tok.Kind == e.Kind && (e.Lexeme == "" || tok.Lexeme == e.Lexeme) {
					children = append(children, tok)
					cur++
				} else {
					errCtx.Report(cur, e, tok, nt)
					failed = true
				}
			case NonTerminal:
				childOK, child, next := Parse(e, tokens, cur, errCtx)
				if childOK {
					children = append(children, child)
					cur = next
				} else {
					failed = true
				}
			default:
				panic("cst: grammar element is neither Terminal nor NonTerminal")
			}
			if failed {
				break
			}
		}

		if !failed {
			return true, &Node{Kind: nt, Children: children}, cur
		}
	}

	return false, nil, start
}

// ParseProgram parses the whole token stream as NTProgram and enforces the
// full-consumption rule (spec §4.1): success requires every token before
// the EOF marker to have been matched; the EOF token itself is not
// consumed, so the match must end exactly at its index. Trailing
// tokens are reported as "parsing incomplete" even though the grammar
// itself matched successfully up to that point.
func ParseProgram(tokens []token.Token) (*Node, *ErrorContext, error) {
	errCtx := NewErrorContext()
	ok, node, next := Parse(NTProgram, tokens, 0, errCtx)

	lastRealIndex := len(tokens) - 1 // index of the EOF token
	if ok && next == lastRealIndex {
		return node, errCtx, nil
	}
	if ok {
		return nil, errCtx, &IncompleteParseError{Index: next, Tokens: tokens}
	}
	return nil, errCtx, &SyntaxError{Ctx: errCtx, Tokens: tokens}
}
