package cst

import "github.com/rangkaian/kompilator/pkg/token"

// ErrorContext is threaded by reference through the whole parse: every
// terminal mismatch at an index at least as deep as any previously seen
// overwrites it, so once parsing fails it holds the deepest point the
// parser ever reached (spec §4.1 "Error reporting", §7 "Syntax").
type ErrorContext struct {
	MaxIndex int
	Expected Element
	Found    token.Token
	Rule     NonTerminal
	started  bool
}

// NewErrorContext returns a context with no error recorded yet.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{MaxIndex: -1}
}

// Report records a mismatch at index against expected/found, discarding it
// only if a strictly deeper mismatch was already recorded; an equally deep
// one is replaced by the newer report.
func (e *ErrorContext) Report(index int, expected Element, found token.Token, rule NonTerminal) {
	if !e.started || index >= e.MaxIndex {
		e.started = true
		e.MaxIndex = index
		e.Expected = expected
		e.Found = found
		e.Rule = rule
	}
}

// HasError reports whether any mismatch was ever recorded.
func (e *ErrorContext) HasError() bool {
	return e.started
}

// SyntaxError is returned when every alternative at the grammar root was
// exhausted without a match (spec §7 "Syntax"). Ctx.Found/Expected/Rule
// describe the deepest point reached; Tokens is the full stream so a
// renderer can build a context window around Ctx.MaxIndex.
type SyntaxError struct {
	Ctx    *ErrorContext
	Tokens []token.Token
}

func (e *SyntaxError) Error() string {
	return "syntax error: parse failed"
}

// IncompleteParseError is returned when the grammar matched a prefix of
// the token stream but tokens remained afterward (spec §4.1 "Full-
// consumption rule").
type IncompleteParseError struct {
	Index  int
	Tokens []token.Token
}

func (e *IncompleteParseError) Error() string {
	return "parsing incomplete"
}
