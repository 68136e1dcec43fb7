package cst

import (
	"testing"

	"github.com/fluxfmt/fluxfmt/token"
)

func parseAndAttach(t *testing.T, src string) (*Node, []*ParseError) {
	t.Helper()
	lx := token.NewLexer(src)
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("lex(%q): %v", src, err)
	}
	stream := token.NewStream(toks, src)
	root, perrs := ParseModule(stream)
	if len(perrs) != 0 {
		t.Fatalf("parse(%q) errors: %v", src, perrs)
	}
	terrs := AttachTrivia(stream, root)
	return root, terrs
}

func TestTrailingCommentSameLine(t *testing.T) {
	root, errs := parseAndAttach(t, "f() -> ok. % trailing note\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected trivia errors: %v", errs)
	}
	leaves := collectLeaves(root)
	last := leaves[len(leaves)-1]
	if len(last.Trailing) != 1 || !last.Trailing[0].IsComment() {
		t.Fatalf("last leaf trailing = %+v, want one trailing comment", last.Trailing)
	}
}

func TestLeadingCommentNextLine(t *testing.T) {
	root, errs := parseAndAttach(t, "% about f\nf() -> ok.")
	if len(errs) != 0 {
		t.Fatalf("unexpected trivia errors: %v", errs)
	}
	leaves := collectLeaves(root)
	first := leaves[0]
	if len(first.Leading) != 1 || !first.Leading[0].IsComment() {
		t.Fatalf("first leaf leading = %+v, want one leading comment", first.Leading)
	}
}

func TestBlankLineBetweenFormsIsMarked(t *testing.T) {
	root, errs := parseAndAttach(t, "f() -> a.\n\n\ng() -> b.")
	if len(errs) != 0 {
		t.Fatalf("unexpected trivia errors: %v", errs)
	}
	leaves := collectLeaves(root)
	var found bool
	for _, lv := range leaves {
		for _, lead := range lv.Leading {
			if lead.Span.IsDetached() && lead.Kind == token.Newline {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected a blank-line marker on the leaf after the gap")
	}
}

func TestCommentUnattachableOnEmptyModule(t *testing.T) {
	lx := token.NewLexer("% only a comment\n")
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	stream := token.NewStream(toks, "% only a comment\n")
	root, perrs := ParseModule(stream)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	errs := AttachTrivia(stream, root)
	if len(errs) != 1 || errs[0].Kind != "comment-unattachable" {
		t.Fatalf("AttachTrivia = %v, want one comment-unattachable", errs)
	}
}

func TestValidateCatchesOverlappingTrivia(t *testing.T) {
	root, errs := parseAndAttach(t, "f() -> ok.")
	if len(errs) != 0 {
		t.Fatalf("unexpected trivia errors: %v", errs)
	}
	leaves := collectLeaves(root)
	dup := Trivia{Kind: token.LineComment, Text: "% x", Span: token.Span{Start: 100, End: 103}}
	leaves[0].Trailing = append(leaves[0].Trailing, dup)
	leaves[len(leaves)-1].Leading = append(leaves[len(leaves)-1].Leading, dup)

	verrs := Validate(root)
	if len(verrs) == 0 {
		t.Fatal("expected Validate to flag the duplicated trivia span")
	}
}
