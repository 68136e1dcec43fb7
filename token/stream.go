package token

// Stream adapts a flat token slice (however produced — by Lexer or by an
// embedder's own tokenizer) into the restartable, random-access cursor the
// parser consumes: O(1) random access, stable trivia classification, byte
// offsets that round-trip through SpanText, and a sentinel EOF kind past the
// last index rather than a panic.
type Stream struct {
	tokens []Token
	source string
}

// NewStream wraps tokens, which must end with a single EOF token, and the
// full source text they were lexed from (used by SpanText).
func NewStream(tokens []Token, source string) *Stream {
	return &Stream{tokens: tokens, source: source}
}

// Len returns the number of tokens, including the trailing EOF.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at index i, or the EOF sentinel if i is out of range.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.tokens) {
		return eofToken
	}
	return s.tokens[i]
}

// Kind returns the kind of the token at index i.
func (s *Stream) Kind(i int) Kind {
	return s.At(i).Kind
}

// IsTrivia reports whether the token at index i is trivia.
func (s *Stream) IsTrivia(i int) bool {
	return s.At(i).Kind.IsTrivia()
}

// NextSignificant returns the index of the first significant (non-trivia)
// token at or after i. Returns Len()-1 (the EOF index) if none remains.
func (s *Stream) NextSignificant(i int) int {
	for i >= 0 && i < len(s.tokens) {
		if !s.IsTrivia(i) {
			return i
		}
		i++
	}
	return len(s.tokens) - 1
}

// SpanText returns the exact source substring from the start of span lo
// through the end of span hi, both spans included. Round-trips through the
// source exactly since token spans never overlap or gap.
func (s *Stream) SpanText(lo, hi Span) string {
	if lo.Start < 0 || hi.End > len(s.source) || lo.Start > hi.End {
		return ""
	}
	return s.source[lo.Start:hi.End]
}
