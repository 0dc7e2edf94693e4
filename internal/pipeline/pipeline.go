// Package pipeline wires internal/lexer, internal/cst, internal/lower, and
// internal/semantic into the single entry point cmd/kompilator and the
// package-level integration tests call, the way the teacher's own
// cmd/dwscript commands chain lexer -> parser -> interpreter by hand in
// each RunE rather than through a shared driver — kompilator factors that
// chain out once since every subcommand needs a prefix of it.
package pipeline

import (
	"github.com/rangkaian/kompilator/internal/ast"
	"github.com/rangkaian/kompilator/internal/config"
	"github.com/rangkaian/kompilator/internal/cst"
	"github.com/rangkaian/kompilator/internal/lexer"
	"github.com/rangkaian/kompilator/internal/lower"
	"github.com/rangkaian/kompilator/internal/semantic"
	"github.com/rangkaian/kompilator/pkg/token"
)

// Option configures the Analyzer an Analyze/Compile run builds, for the
// ambient settings .kompilator.yaml controls (SPEC_FULL.md's AMBIENT
// STACK section).
type Option func(*semantic.Analyzer)

// WithBooleanContextPolicy sets whether a non-boolean if/while/repeat
// condition is a hard error or a tolerated warning.
func WithBooleanContextPolicy(p config.BooleanContextPolicy) Option {
	return func(a *semantic.Analyzer) { a.Policy = p }
}

// Result accumulates whatever each stage produced, so a caller that only
// asked for the "parse" stage still gets its tokens back, and a caller
// that ran the whole pipeline gets everything (the `dump` subcommand
// needs this: it dumps whichever stage the user asked for).
type Result struct {
	Tokens   []token.Token
	CST      *cst.Node
	AST      *ast.Program
	Analyzer *semantic.Analyzer
}

// Lex runs only the lexical stage.
func Lex(src string) (*Result, error) {
	toks, err := lexer.Scan(src)
	if err != nil {
		return nil, err // a *lexer.Error
	}
	return &Result{Tokens: toks}, nil
}

// Parse runs lexing followed by parsing, producing a concrete syntax
// tree. The returned error is either a *lexer.Error or one of
// *cst.SyntaxError / *cst.IncompleteParseError, both renderable by
// internal/diagnostics.NewSyntaxError.
func Parse(src string) (*Result, error) {
	res, err := Lex(src)
	if err != nil {
		return nil, err
	}
	node, _, err := cst.ParseProgram(res.Tokens)
	if err != nil {
		return res, err
	}
	res.CST = node
	return res, nil
}

// Lower runs lexing, parsing, and CST-to-AST lowering.
func Lower(src string) (*Result, error) {
	res, err := Parse(src)
	if err != nil {
		return res, err
	}
	res.AST = lower.Program(res.CST)
	return res, nil
}

// Analyze runs the complete pipeline through semantic analysis. The
// returned Analyzer carries the final IDT/BLT/ART tables regardless of
// whether analysis succeeded, since a partially built table is still
// useful for diagnosing where it failed.
func Analyze(src string, opts ...Option) (*Result, error) {
	res, err := Lower(src)
	if err != nil {
		return res, err
	}
	res.Analyzer = semantic.New()
	for _, opt := range opts {
		opt(res.Analyzer)
	}
	if err := res.Analyzer.Analyze(res.AST); err != nil {
		return res, err // a semantic.Error; internal/diagnostics type-switches on it directly
	}
	return res, nil
}

// Compile is an alias for Analyze: spec §5 scopes this front end's output
// at "a validated AST plus populated tables", with no codegen stage to
// run afterward (§1 Non-goals).
func Compile(src string, opts ...Option) (*Result, error) {
	return Analyze(src, opts...)
}
