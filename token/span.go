// Package token wraps the language's lexer, classifying each token as
// significant or trivia and exposing a restartable, random-access cursor
// over the resulting stream.
package token

import "fmt"

// Span is a byte range in the source text, paired with the line and column
// of its start. Columns are 0-based rune counts from the start of the line;
// callers that need display width go through layout.Width instead.
type Span struct {
	Start, End   int
	Line, Column int
}

// Detached is the span used for synthesized tokens that do not correspond to
// any source range.
var Detached = Span{Start: -1, End: -1, Line: -1, Column: -1}

// IsDetached reports whether the span points into no source range.
func (s Span) IsDetached() bool {
	return s.Start < 0
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Cover returns the smallest span covering both s and other. A detached
// operand is ignored; covering two detached spans yields Detached.
func (s Span) Cover(other Span) Span {
	if s.IsDetached() {
		return other
	}
	if other.IsDetached() {
		return s
	}
	start, line, col := s.Start, s.Line, s.Column
	if other.Start < start {
		start, line, col = other.Start, other.Line, other.Column
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end, Line: line, Column: col}
}

func (s Span) String() string {
	if s.IsDetached() {
		return "Span(detached)"
	}
	return fmt.Sprintf("%d:%d[%d..%d]", s.Line, s.Column, s.Start, s.End)
}
