package layout

import (
	"testing"

	"github.com/fluxfmt/fluxfmt/cst"
	"github.com/fluxfmt/fluxfmt/docfmt"
	"github.com/fluxfmt/fluxfmt/token"
)

// callNode hand-builds the cst shape of `f(args...)` the way cst.ParseModule
// would, without going through the parser: a call expression in isolation
// doesn't need a whole function definition wrapped around it, so the fixture
// is built directly from cst's exported Leaf/Inner constructors instead of
// wrapping it in a throwaway clause.
func callNode(name string, args ...string) *cst.Node {
	children := []*cst.Node{
		cst.Leaf(token.Atom, name, token.Detached),
		cst.Leaf(token.LParen, "(", token.Detached),
	}
	for i, a := range args {
		if i > 0 {
			children = append(children, cst.Leaf(token.Comma, ",", token.Detached))
		}
		children = append(children, cst.Leaf(token.Variable, a, token.Detached))
	}
	children = append(children, cst.Leaf(token.RParen, ")", token.Detached))
	return cst.Inner(token.ExprCall, children)
}

// TestFlatFits checks a call that fits entirely on one line renders flat.
func TestFlatFits(t *testing.T) {
	doc := docfmt.Build(callNode("f", "A", "B", "C"))
	got := Run(doc, Options{MaxLineWidth: 100, IndentUnit: 4})
	want := "f(A, B, C)\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

// TestBreakOnOverflow checks that overlong arguments hug the opening
// delimiter and align under the first argument rather than dropping to a
// freshly-indented line.
func TestBreakOnOverflow(t *testing.T) {
	doc := docfmt.Build(callNode("f", "AAAAAAAAAA", "BBBBBBBBBB", "CCCCCCCCCC"))
	got := Run(doc, Options{MaxLineWidth: 20, IndentUnit: 2})
	want := "f(AAAAAAAAAA,\n  BBBBBBBBBB,\n  CCCCCCCCCC)\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

// clauseNode builds a `Pattern -> atom` case/if/receive clause, the shape
// cst's parseCaseExpr et al. produce.
func clauseNode(pattern, body string) *cst.Node {
	return cst.Inner(token.Clause, []*cst.Node{
		cst.Leaf(token.Integer, pattern, token.Detached),
		cst.Leaf(token.Arrow, "->", token.Detached),
		cst.Inner(token.ExprBlock, []*cst.Node{cst.Leaf(token.Atom, body, token.Detached)}),
	})
}

// TestCaseClausesEachOnOwnLine checks that a short clause body stays on the
// arrow's line, and every clause lines up at one indent level under
// `case ... of`, with `end` aligned back under `case`.
func TestCaseClausesEachOnOwnLine(t *testing.T) {
	caseNode := cst.Inner(token.ExprCase, []*cst.Node{
		cst.Leaf(token.KwCase, "case", token.Detached),
		cst.Leaf(token.Variable, "X", token.Detached),
		cst.Leaf(token.KwOf, "of", token.Detached),
		clauseNode("1", "ok"),
		cst.Leaf(token.Semicolon, ";", token.Detached),
		clauseNode("2", "err"),
		cst.Leaf(token.KwEnd, "end", token.Detached),
	})
	doc := docfmt.Build(caseNode)
	got := Run(doc, Options{MaxLineWidth: 100, IndentUnit: 4})
	want := "case X of\n    1 -> ok;\n    2 -> err\nend\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestEmptyContainerStaysFlatRegardlessOfWidth(t *testing.T) {
	doc := docfmt.Build(callNode("f"))
	got := Run(doc, Options{MaxLineWidth: 1, IndentUnit: 4})
	want := "f()\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestCommentForcesEnclosingGroupBroken(t *testing.T) {
	// A trailing comment forces its enclosing group broken even though the
	// flat text alone would easily fit.
	doc := docfmt.Group(docfmt.Concat(
		docfmt.TextOf("f"),
		docfmt.TextOf("("),
		docfmt.Align(docfmt.Concat(
			docfmt.TextOf("A"),
			docfmt.TextOf(" "),
			docfmt.Comment("% note", docfmt.CommentLine),
		)),
		docfmt.TextOf(")"),
	))
	got := Run(doc, Options{MaxLineWidth: 100, IndentUnit: 4})
	want := "f(A % note\n)\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestBlankLinesCollapseToOne(t *testing.T) {
	doc := docfmt.Concat(
		docfmt.TextOf("a"),
		docfmt.HardBreak(),
		docfmt.HardBreak(),
		docfmt.HardBreak(),
		docfmt.HardBreak(),
		docfmt.TextOf("b"),
	)
	got := Run(doc, Options{MaxLineWidth: 100, IndentUnit: 4})
	want := "a\n\nb\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestOutputEndsWithExactlyOneNewline(t *testing.T) {
	doc := docfmt.Concat(docfmt.TextOf("a"), docfmt.HardBreak(), docfmt.HardBreak())
	got := Run(doc, Options{MaxLineWidth: 100, IndentUnit: 4})
	want := "a\n"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}
