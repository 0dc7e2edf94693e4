// Package diagnostics renders the two disjoint error families spec §7
// defines — syntax and semantic — into human-readable messages. It follows
// the teacher's errors package (CompilerError / Format(color bool)), with
// one adaptation: this language has no line/column tracking (spec §9's
// "no source-position tracking beyond token index" limitation, already
// reflected in pkg/token.Token carrying no position field), so the context
// window is rendered over token lexemes rather than source lines, exactly
// the way original_source/src/compiler.py's run_syntax_analysis builds its
// "... a b [ERROR] c d ..." window around the deepest failure index.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/rangkaian/kompilator/internal/cst"
	"github.com/rangkaian/kompilator/internal/semantic"
	"github.com/rangkaian/kompilator/pkg/token"
)

// contextRadius is the number of tokens shown on either side of the
// offending token, matching original_source's ±4 window.
const contextRadius = 4

// CompilerError is a single diagnostic: a message plus, for syntax errors,
// a token-context window to render around the failure point.
type CompilerError struct {
	Kind     string // "syntax" or "semantic"
	Message  string
	Expected string
	Found    string
	Rule     string

	Tokens []token.Token
	Index  int // index into Tokens the error is anchored on, -1 if none
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic the way the teacher's CompilerError.Format
// does: a header, then a context block, then the message. If color is
// true, the offending token and message are wrapped in ANSI codes.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s error\n", strings.ToUpper(e.Kind[:1])+e.Kind[1:])

	if e.Index >= 0 && e.Index <= len(e.Tokens) {
		sb.WriteString("Context  : ")
		sb.WriteString(e.contextWindow(color))
		sb.WriteString("\n")
	}
	if e.Expected != "" {
		fmt.Fprintf(&sb, "Expected : %s\n", e.Expected)
	}
	if e.Found != "" {
		fmt.Fprintf(&sb, "Found    : %s\n", e.Found)
	}
	if e.Rule != "" {
		fmt.Fprintf(&sb, "Rule     : %s\n", e.Rule)
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// contextWindow renders the ±contextRadius token window around e.Index,
// matching original_source's start_dots/prefix/error/suffix/end_dots shape.
func (e *CompilerError) contextWindow(color bool) string {
	n := len(e.Tokens)
	start := e.Index - contextRadius
	if start < 0 {
		start = 0
	}
	end := e.Index + contextRadius + 1
	if end > n {
		end = n
	}

	var parts []string
	if start > 0 {
		parts = append(parts, "...")
	}
	for _, t := range e.Tokens[start:e.Index] {
		parts = append(parts, tokenText(t))
	}

	errTok := "EOF"
	if e.Index < n {
		errTok = tokenText(e.Tokens[e.Index])
	}
	if color {
		errTok = "\033[1;31m" + errTok + "\033[0m"
	} else {
		errTok = "[" + errTok + "]"
	}
	parts = append(parts, errTok)

	if e.Index+1 < n {
		for _, t := range e.Tokens[e.Index+1 : end] {
			parts = append(parts, tokenText(t))
		}
	}
	if end < n {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}

func tokenText(t token.Token) string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Kind.String()
}

// NewSyntaxError builds a CompilerError from a failed parse (spec §7
// "Syntax"): either every grammar alternative at the root was exhausted
// (*cst.SyntaxError) or the grammar matched a strict prefix of the token
// stream (*cst.IncompleteParseError).
func NewSyntaxError(err error) *CompilerError {
	switch e := err.(type) {
	case *cst.SyntaxError:
		expected := elementText(e.Ctx.Expected)
		found := tokenText(e.Ctx.Found)
		return &CompilerError{
			Kind:     "syntax",
			Message:  fmt.Sprintf("expected %s, found %s", expected, found),
			Expected: expected,
			Found:    found,
			Rule:     string(e.Ctx.Rule),
			Tokens:   e.Tokens,
			Index:    e.Ctx.MaxIndex,
		}
	case *cst.IncompleteParseError:
		found := "EOF"
		if e.Index < len(e.Tokens) {
			found = tokenText(e.Tokens[e.Index])
		}
		return &CompilerError{
			Kind:    "syntax",
			Message: fmt.Sprintf("unexpected %s after a complete program", found),
			Found:   found,
			Tokens:  e.Tokens,
			Index:   e.Index,
		}
	default:
		return &CompilerError{Kind: "syntax", Message: err.Error(), Index: -1}
	}
}

// elementText renders a grammar cst.Element the way
// original_source/src/compiler.py's get_readable_value does: a literal
// terminal prints its lexeme, a kind-only terminal prints "any <kind>",
// and a non-terminal prints its name.
func elementText(el cst.Element) string {
	switch e := el.(type) {
	case cst.Terminal:
		if e.Lexeme != "" {
			return e.Lexeme
		}
		return "any " + e.Kind.String()
	case cst.NonTerminal:
		return string(e)
	default:
		return fmt.Sprintf("%v", el)
	}
}

// NewSemanticError wraps one of the internal/semantic error types (spec
// §7's semantic family) into the shared diagnostic shape. Semantic errors
// carry no token index — the AST they run over discards it after lowering
// (spec §9's position-tracking limitation applies doubly here) — so the
// diagnostic names the offending identifier instead of windowing tokens.
func NewSemanticError(err error) *CompilerError {
	return &CompilerError{Kind: "semantic", Message: err.Error(), Index: -1}
}

// IsSemantic reports whether err is one of the internal/semantic error
// types, letting a caller choose between NewSyntaxError and
// NewSemanticError without importing internal/semantic itself.
func IsSemantic(err error) bool {
	_, ok := err.(semantic.Error)
	return ok
}
