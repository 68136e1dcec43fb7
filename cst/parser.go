package cst

import (
	"fmt"

	"github.com/fluxfmt/fluxfmt/token"
)

// MaxDepth bounds expression nesting so recovery and recursion stay linear.
const MaxDepth = 256

// MaxLookahead is the bounded lookahead the parser is allowed.
const MaxLookahead = 3

// ParseError is one of the error kinds the parser itself can raise.
type ParseError struct {
	Kind    string // "parse-failure", "unexpected-eof", "ambiguous-operator", "internal"
	Span    token.Span
	Message string
	Expected []string
}

func (e *ParseError) Error() string { return e.Message }

// Parser is a recursive-descent, marker/wrap engine over a significant-token
// cursor. There is no incremental reparse and so nothing to memoize across
// edits: a run is parsed once, start to finish.
type Parser struct {
	stream *token.Stream
	sig    []int // indices into stream of significant tokens, EOF last
	pos    int   // index into sig

	nodes []*Node // flat list being assembled; wrap() groups a suffix

	errors []*ParseError
	depth  int
}

// NewParser builds a parser over stream, precomputing the significant-token
// cursor once (O(n), matches the Token Stream Adapter's O(1)-random-access
// guarantee for everything built on top of it).
func NewParser(stream *token.Stream) *Parser {
	p := &Parser{stream: stream}
	for i := 0; i < stream.Len(); i++ {
		if !stream.IsTrivia(i) {
			p.sig = append(p.sig, i)
		}
	}
	if len(p.sig) == 0 {
		p.sig = []int{stream.Len() - 1}
	}
	return p
}

// Marker is a position in the flat node list, recorded before parsing a
// construct and later passed to wrap to group everything parsed since.
type Marker int

func (p *Parser) marker() Marker { return Marker(len(p.nodes)) }

// wrap groups every node pushed since m into a single inner node of kind,
// replacing them in the flat list.
func (p *Parser) wrap(m Marker, kind token.Kind) *Node {
	children := make([]*Node, len(p.nodes)-int(m))
	copy(children, p.nodes[m:])
	node := Inner(kind, children)
	p.nodes = append(p.nodes[:m], node)
	return node
}

// push appends an already-built node to the flat list (used for leaves and
// for sub-results returned by a parseX helper that already wrapped).
func (p *Parser) push(n *Node) { p.nodes = append(p.nodes, n) }

// Checkpoint captures enough state to undo a failed speculative parse.
type Checkpoint struct {
	nodesLen int
	pos      int
	errsLen  int
}

func (p *Parser) checkpoint() Checkpoint {
	return Checkpoint{nodesLen: len(p.nodes), pos: p.pos, errsLen: len(p.errors)}
}

func (p *Parser) restore(cp Checkpoint) {
	p.nodes = p.nodes[:cp.nodesLen]
	p.pos = cp.pos
	p.errors = p.errors[:cp.errsLen]
}

// cur returns the token at the cursor without consuming it.
func (p *Parser) cur() token.Token {
	return p.stream.At(p.sig[p.pos])
}

// peek looks ahead n significant tokens (n=0 is cur()); bounded to
// MaxLookahead by convention of callers, never by this method. Past either
// end it returns the final (EOF) token.
func (p *Parser) peek(n int) token.Token {
	i := p.pos + n
	if i < 0 || i >= len(p.sig) {
		return p.stream.At(p.sig[len(p.sig)-1])
	}
	return p.stream.At(p.sig[i])
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atSet(set token.Set) bool { return set.Contains(p.cur().Kind) }

func (p *Parser) end() bool { return p.at(token.EOF) }

// eat consumes the current token, pushes it as a leaf, and advances.
func (p *Parser) eat() *Node {
	tok := p.cur()
	n := Leaf(tok.Kind, tok.Text, tok.Span)
	p.push(n)
	if p.pos < len(p.sig)-1 {
		p.pos++
	}
	return n
}

// eatIf consumes and pushes the current token only if it has kind k.
func (p *Parser) eatIf(k token.Kind) bool {
	if p.at(k) {
		p.eat()
		return true
	}
	return false
}

// expect consumes a token of kind k or records a parse-failure and pushes a
// synthetic error leaf so the tree stays complete: the parser never produces
// a partial tree, only a complete module tree (possibly erroneous) or an
// error, so the caller can still decide whether to surface the error or use
// allow_partial_failure.
func (p *Parser) expect(k token.Kind) *Node {
	if p.at(k) {
		return p.eat()
	}
	return p.unexpected(k.String())
}

// unexpected records a parse-failure at the current token, consumes it into
// an error leaf, and returns that leaf. Consuming (rather than leaving the
// cursor in place) guarantees every recovery loop in the grammar makes
// forward progress instead of re-reporting the same token forever.
func (p *Parser) unexpected(expected string) *Node {
	tok := p.cur()
	p.errors = append(p.errors, &ParseError{
		Kind:    "parse-failure",
		Span:    tok.Span,
		Message: fmt.Sprintf("expected %s, found %s", expected, tok.Kind),
		Expected: []string{expected},
	})
	n := ErrorLeaf(tok.Text, tok.Span, fmt.Sprintf("expected %s", expected))
	if p.end() {
		p.push(n)
		return n
	}
	p.pos++
	p.push(n)
	return n
}

func (p *Parser) unexpectedEOF(expected string) {
	p.errors = append(p.errors, &ParseError{
		Kind:    "unexpected-eof",
		Span:    p.cur().Span,
		Message: fmt.Sprintf("unexpected end of input, expected %s", expected),
		Expected: []string{expected},
	})
}

// Errors returns the parse errors accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }
