package cst

import "github.com/fluxfmt/fluxfmt/token"

// AttachTrivia runs a second pass over the finished tree: every leaf has two
// distinct trivia edges (leading and trailing), so trivia has to be
// assigned after the fact by walking the tree once and matching it back
// against the raw token stream rather than attaching it inline while
// parsing.
//
// The rule: a line comment attaches as trailing trivia to the leaf
// immediately before it if no newline separates them; otherwise it attaches
// as leading trivia to the leaf immediately after it. A comment past the last
// token has no leaf after it and attaches as trailing trivia to the last
// leaf, even when a newline separates them. Only a module with no leaf at
// all raises comment-unattachable for its comments.
func AttachTrivia(stream *token.Stream, root *Node) []*ParseError {
	leaves := collectLeaves(root)

	if len(leaves) == 0 {
		for i := 0; i < stream.Len(); i++ {
			if stream.Kind(i) == token.LineComment {
				return []*ParseError{{
					Kind:    "comment-unattachable",
					Span:    stream.At(i).Span,
					Message: "comment has no node to attach to in an empty module",
				}}
			}
		}
		return nil
	}

	leafIdx := 0 // index into leaves, tracks which leaf owns the run we're scanning before
	runStart := 0

	for i := 0; i < stream.Len(); i++ {
		if stream.IsTrivia(i) {
			continue
		}
		// [runStart, i) is the trivia run immediately before significant
		// token i, which belongs to leaves[leafIdx].
		var before *Node
		if leafIdx > 0 {
			before = leaves[leafIdx-1]
		}
		attachRun(stream, runStart, i, before, leaves[leafIdx])
		runStart = i + 1
		leafIdx++
		if leafIdx >= len(leaves) {
			break
		}
	}
	// Trailing run after the last leaf (up to but excluding the stream's
	// final EOF token, which carries no trivia of its own).
	if runStart < stream.Len() {
		attachRun(stream, runStart, stream.Len(), leaves[len(leaves)-1], nil)
	}

	return nil
}

// collectLeaves walks the tree in source order and returns every leaf
// (including error leaves, which still occupy a position comments can
// attach around).
func collectLeaves(n *Node) []*Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.children {
		out = append(out, collectLeaves(c)...)
	}
	return out
}

// attachRun assigns the trivia tokens in stream[lo:hi) to before's trailing
// edge or after's leading edge. The run splits at the first Newline: trivia
// up to (not including) that newline stays on the same line as `before` and
// becomes trailing; everything from the newline onward becomes leading on
// `after`. A run with two or more Newline tokens (counted across the whole
// run, comments or not) marks a blank line, preserved as a single Newline
// trivia entry with empty text, added after the run's comments, so
// the format builder can re-insert exactly one blank line, never more,
// between top-level forms.
func attachRun(stream *token.Stream, lo, hi int, before, after *Node) {
	sawNewline := false
	blankLine := false
	newlineCount := 0

	for i := lo; i < hi; i++ {
		tok := stream.At(i)
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.Newline:
			newlineCount++
			if newlineCount >= 2 {
				blankLine = true
			}
			sawNewline = true
		case token.LineComment:
			trivia := Trivia{Kind: tok.Kind, Text: tok.Text, Span: tok.Span}
			if !sawNewline && before != nil {
				before.Trailing = append(before.Trailing, trivia)
			} else if after != nil {
				after.Leading = append(after.Leading, trivia)
			} else if before != nil {
				before.Trailing = append(before.Trailing, trivia)
			}
		}
	}

	if blankLine {
		marker := Trivia{Kind: token.Newline, Text: "", Span: token.Detached}
		if after != nil {
			after.Leading = append(after.Leading, marker)
		} else if before != nil {
			before.Trailing = append(before.Trailing, marker)
		}
	}
}
