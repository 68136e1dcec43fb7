package token

import "testing"

func TestLexerBasic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
	}{
		{"empty", "", []Kind{EOF}},
		{"atom", "foo", []Kind{Atom, EOF}},
		{"variable", "X", []Kind{Variable, EOF}},
		{"integer", "42", []Kind{Integer, EOF}},
		{"float", "3.14", []Kind{Float, EOF}},
		{"string", `"hi"`, []Kind{String, EOF}},
		{"char", "$a", []Kind{Char, EOF}},
		{"comment", "% note", []Kind{LineComment, EOF}},
		{"call", "f(A,B)", []Kind{Atom, LParen, Variable, Comma, Variable, RParen, EOF}},
		{"keyword case", "case X of", []Kind{KwCase, Whitespace, Variable, Whitespace, KwOf, EOF}},
		{"macro use", "?MACRO", []Kind{MacroUse, EOF}},
		{"arrow", "->", []Kind{Arrow, EOF}},
		{"send", "Pid ! msg", []Kind{Variable, Whitespace, OpSend, Whitespace, Atom, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := NewLexer(tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if len(toks) != len(tt.kinds) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d (%v)", tt.input, len(toks), len(tt.kinds), toks)
			}
			for i, k := range tt.kinds {
				if toks[i].Kind != k {
					t.Errorf("token[%d].Kind = %v, want %v", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestLexerDirectiveAtLineStart(t *testing.T) {
	toks, err := NewLexer("-module(foo).\n").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != MacroDirective {
		t.Fatalf("first token kind = %v, want MacroDirective", toks[0].Kind)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := NewLexer(`"unterminated`).Tokenize()
	if err == nil {
		t.Fatal("expected lex error for unterminated string")
	}
}

func TestStreamSpanTextRoundTrips(t *testing.T) {
	src := "f(A, B)."
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	stream := NewStream(toks, src)
	first, last := toks[0], toks[len(toks)-2]
	got := stream.SpanText(first.Span, last.Span)
	if got != src {
		t.Errorf("SpanText = %q, want %q", got, src)
	}
}

func TestStreamOutOfRangeNeverPanics(t *testing.T) {
	stream := NewStream([]Token{eofToken}, "")
	if k := stream.Kind(100); k != EOF {
		t.Errorf("Kind(100) = %v, want EOF", k)
	}
	if stream.At(-1).Kind != EOF {
		t.Errorf("At(-1) did not return EOF sentinel")
	}
}
