// Package fluxfmt is the pure core entry point: given source text and
// Options, it produces semantically-equivalent, normalized source text. The
// pipeline is:
//
//	Lex -> Parse -> Attach trivia -> Build format document -> Lay out
//
// Every stage is synchronous and allocation-bounded by input size: there is
// no I/O other than the include-path existence check (used only for
// warnings), no shared mutable state, and no suspension point, so a caller can
// run one Format per worker goroutine without coordination.
package fluxfmt

import (
	"fmt"
	"regexp"

	"github.com/fluxfmt/fluxfmt/config"
	"github.com/fluxfmt/fluxfmt/cst"
	"github.com/fluxfmt/fluxfmt/docfmt"
	"github.com/fluxfmt/fluxfmt/layout"
	"github.com/fluxfmt/fluxfmt/token"
)

// ErrorKind tags which error kind an Error carries: one of the five kinds
// below, or a parser error kind passed through unchanged by toFormatError
// (such as "ambiguous-operator").
type ErrorKind string

const (
	LexError            ErrorKind = "lex-error"
	ParseFailure        ErrorKind = "parse-failure"
	UnexpectedEOF       ErrorKind = "unexpected-eof"
	CommentUnattachable ErrorKind = "comment-unattachable"
	Internal            ErrorKind = "internal"
)

// Error is the core's own error type: each layer returns its error upward
// without wrapping it into some other family, so a driver can switch on
// Kind directly.
type Error struct {
	Kind    ErrorKind
	Span    token.Span
	Message string
}

func (e *Error) Error() string {
	if e.Span.IsDetached() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span, e.Message)
}

// Result is what Format produces. FellBackToSource is set when
// allow_partial_failure recovered from a parse failure by returning the
// original source verbatim; Warnings carries non-fatal notices (unresolved
// include directives, in addition to any fallback notice).
type Result struct {
	Text             string
	Warnings         []string
	FellBackToSource bool
}

// Format runs the full pipeline over source and produces formatted text
// per opts. It is a pure function of its two inputs: no global state, no
// I/O beyond the include-path existence check used only to produce
// warnings.
func Format(source string, opts config.Options) (Result, error) {
	lexer := token.NewLexer(source)
	toks, lexErr := lexer.Tokenize()
	if lexErr != nil {
		return fallbackOr(source, opts, &Error{
			Kind:    LexError,
			Span:    lexErr.Span,
			Message: lexErr.Message,
		})
	}

	stream := token.NewStream(toks, source)
	root, parseErrors := cst.ParseModule(stream)
	if err := firstFatal(parseErrors); err != nil {
		return fallbackOr(source, opts, err)
	}

	if triviaErrors := cst.AttachTrivia(stream, root); len(triviaErrors) > 0 {
		return fallbackOr(source, opts, toFormatError(triviaErrors[0]))
	}

	if internalErrors := cst.Validate(root); len(internalErrors) > 0 {
		return Result{}, toFormatError(internalErrors[0])
	}

	if root.Erroneous() {
		// A bare error leaf with no accompanying ParseError would be an
		// internal inconsistency; treat it the same as a surfaced
		// parse-failure so the Non-goal "no partial formatting of
		// syntactically invalid input" holds even if some future
		// production forgets to record one.
		return fallbackOr(source, opts, &Error{
			Kind:    ParseFailure,
			Message: "syntax tree contains an unrecovered error node",
		})
	}

	doc := docfmt.Build(root)
	text := layout.Run(doc, layout.Options{
		MaxLineWidth: opts.MaxLineWidth,
		IndentUnit:   opts.IndentUnit,
	})

	warnings := checkIncludes(root, opts.IncludePaths)
	return Result{Text: text, Warnings: warnings}, nil
}

// firstFatal returns the first parser error, or nil if parsing produced
// none. Every recorded parser error is fatal, even when the parser recovered
// a complete tree around it.
func firstFatal(errs []*cst.ParseError) *Error {
	if len(errs) == 0 {
		return nil
	}
	return toFormatError(errs[0])
}

func toFormatError(e *cst.ParseError) *Error {
	return &Error{Kind: ErrorKind(e.Kind), Span: e.Span, Message: e.Message}
}

// fallbackOr implements the allow_partial_failure branch: with it set, a
// parse failure returns the original source verbatim and a warning flag
// instead of surfacing the error.
func fallbackOr(source string, opts config.Options, err *Error) (Result, error) {
	if !opts.AllowPartialFailure {
		return Result{}, err
	}
	return Result{
		Text:             source,
		Warnings:         []string{fmt.Sprintf("returned source unchanged: %s", err.Error())},
		FellBackToSource: true,
	}, nil
}

// includeDirective matches a -include("path"). top-level form so its target
// can be checked against IncludePaths. The directive's token text is
// preserved verbatim regardless (macro directives are never expanded);
// this only produces a warning.
var includeDirective = regexp.MustCompile(`^-include\s*\(\s*"([^"]*)"\s*\)\s*\.`)

func checkIncludes(root *cst.Node, paths []string) []string {
	var warnings []string
	walkMacroDirectives(root, func(n *cst.Node) {
		m := includeDirective.FindStringSubmatch(n.Text())
		if m == nil {
			return
		}
		if _, ok := config.ResolveInclude(paths, m[1]); !ok {
			warnings = append(warnings, fmt.Sprintf("include directive %q not found in include_paths", m[1]))
		}
	})
	return warnings
}

func walkMacroDirectives(n *cst.Node, visit func(*cst.Node)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		if n.Kind() == token.MacroDirective {
			visit(n)
		}
		return
	}
	for _, c := range n.Children() {
		walkMacroDirectives(c, visit)
	}
}
