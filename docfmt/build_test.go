package docfmt_test

import (
	"testing"

	"github.com/fluxfmt/fluxfmt/cst"
	"github.com/fluxfmt/fluxfmt/docfmt"
	"github.com/fluxfmt/fluxfmt/layout"
	"github.com/fluxfmt/fluxfmt/token"
)

// render builds the format document for n and lays it out, the same
// two-step pipeline fluxfmt.Format runs after parsing and trivia
// attachment, but isolated from the parser: every fixture here is a
// hand-built cst.Node tree, the same approach layout's own tests use for
// constructs that don't need a whole function wrapped around them.
func render(n *cst.Node, width, unit int) string {
	doc := docfmt.Build(n)
	return layout.Run(doc, layout.Options{MaxLineWidth: width, IndentUnit: unit})
}

func leaf(k token.Kind, text string) *cst.Node {
	return cst.Leaf(k, text, token.Detached)
}

// TestMatchNeverBreaksBeforeEquals checks that a long left-hand side still
// keeps '=' glued to it, breaking only after the '=' when the whole match
// doesn't fit flat.
func TestMatchNeverBreaksBeforeEquals(t *testing.T) {
	n := cst.Inner(token.ExprMatch, []*cst.Node{
		leaf(token.Variable, "AReasonablyLongVariableName"),
		leaf(token.Match, "="),
		leaf(token.Integer, "12345"),
	})
	got := render(n, 20, 4)
	want := "AReasonablyLongVariableName =\n    12345\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestMatchFlatFits checks the same construct stays on one line when it
// fits the width budget.
func TestMatchFlatFits(t *testing.T) {
	n := cst.Inner(token.ExprMatch, []*cst.Node{
		leaf(token.Variable, "X"),
		leaf(token.Match, "="),
		leaf(token.Integer, "1"),
	})
	got := render(n, 100, 4)
	want := "X = 1\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// guardSeq builds a GuardSequence node of comma- or semicolon-joined
// expressions, the shape cst.parseGuardSequence produces.
func guardSeq(parts ...*cst.Node) *cst.Node {
	return cst.Inner(token.GuardSequence, parts)
}

// TestGuardConjunctionNeverBreaks checks a comma-joined guard (conjunction)
// stays on one line even past the width budget: spec §4.3 says commas in a
// guard sequence never break.
func TestGuardConjunctionNeverBreaks(t *testing.T) {
	n := guardSeq(
		leaf(token.Variable, "AAAAAAAAAA"),
		leaf(token.Comma, ","),
		leaf(token.Variable, "BBBBBBBBBB"),
	)
	got := render(n, 5, 4)
	want := "AAAAAAAAAA, BBBBBBBBBB\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestGuardDisjunctionBreaksOnOverflow checks a semicolon-joined guard
// (disjunction) prefers to break when it doesn't fit.
func TestGuardDisjunctionBreaksOnOverflow(t *testing.T) {
	n := guardSeq(
		leaf(token.Variable, "AAAAAAAAAA"),
		leaf(token.Semicolon, ";"),
		leaf(token.Variable, "BBBBBBBBBB"),
	)
	got := render(n, 5, 4)
	want := "AAAAAAAAAA;\nBBBBBBBBBB\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestRecordPunningOmitsEquals checks that a record field written without
// "= Value" (field punning) renders as the bare field name, matching
// SPEC_FULL.md's supplemental record-punning rule.
func TestRecordPunningOmitsEquals(t *testing.T) {
	n := cst.Inner(token.ExprRecord, []*cst.Node{
		leaf(token.Hash, "#"),
		leaf(token.Atom, "point"),
		leaf(token.LBrace, "{"),
		leaf(token.Atom, "x"),
		leaf(token.RBrace, "}"),
	})
	got := render(n, 100, 4)
	want := "#point{x}\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestBinaryComprehensionJoinsWithGenerators checks `<< X || X <- L >>`
// renders with the "||" generator separator spaced on both sides.
func TestBinaryComprehensionJoinsWithGenerators(t *testing.T) {
	n := cst.Inner(token.ExprBinary, []*cst.Node{
		leaf(token.DoubleLAngle, "<<"),
		leaf(token.Variable, "X"),
		leaf(token.BarBar, "||"),
		leaf(token.Variable, "X"),
		leaf(token.LArrow, "<-"),
		leaf(token.Variable, "L"),
		leaf(token.DoubleRAngle, ">>"),
	})
	got := render(n, 100, 4)
	want := "<<X || X <- L>>\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestUnaryNotKeepsSpaceBeforeOperand checks the keyword-like "not" operator
// keeps a space before its operand, unlike the symbolic unary "-"/"+".
func TestUnaryNotKeepsSpaceBeforeOperand(t *testing.T) {
	n := cst.Inner(token.ExprUnaryOp, []*cst.Node{
		leaf(token.OpNot, "not"),
		leaf(token.Variable, "X"),
	})
	got := render(n, 100, 4)
	want := "not X\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestUnaryMinusHugsOperand checks the symbolic unary operator has no space
// before its operand.
func TestUnaryMinusHugsOperand(t *testing.T) {
	n := cst.Inner(token.ExprUnaryOp, []*cst.Node{
		leaf(token.OpMinus, "-"),
		leaf(token.Integer, "1"),
	})
	got := render(n, 100, 4)
	want := "-1\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

// TestTrailingCommentGluedByOneSpace checks a leaf carrying trailing trivia
// renders the comment glued to the previous token by exactly one literal
// space, never a breakable separator.
func TestTrailingCommentGluedByOneSpace(t *testing.T) {
	dot := leaf(token.Dot, ".")
	dot.Trailing = append(dot.Trailing, cst.Trivia{Kind: token.LineComment, Text: "% note", Span: token.Detached})
	got := render(dot, 100, 4)
	want := ". % note\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}
