// Package cst implements the recursive-descent parser and concrete syntax
// tree: a tagged variant tree whose nodes retain references to their
// originating token spans, with trivia attached to node edges after a
// separate pass (trivia.go).
//
// The node representation is a leaf/inner/error trichotomy with no
// clone/spanless-equality machinery: there is no mid-file cancellation or
// incremental reparse to support, so nodes here are built once, attached to
// trivia once, and then read-only.
package cst

import "github.com/fluxfmt/fluxfmt/token"

// Node is a node in the concrete syntax tree: either a leaf wrapping a
// single token, or an inner node with a kind and ordered children.
// Token indices stay non-decreasing and every consumed token becomes
// exactly one leaf by construction: the parser only ever appends children
// in token order.
type Node struct {
	kind     token.Kind
	span     token.Span
	text     string   // set for leaves only
	children []*Node  // set for inner nodes only
	err      string   // set for error nodes only; kind is token.Error

	// Trivia attached to this node's leading/trailing edge by the second
	// pass (trivia.go). A leaf's trailing trivia is trivia on the same
	// physical line as that leaf (for the last leaf of the tree, also any
	// comment after it on later lines); its leading trivia is everything since
	// the previous significant token that wasn't claimed as somebody
	// else's trailing trivia.
	Leading  []Trivia
	Trailing []Trivia
}

// Trivia is a single whitespace/comment/macro-directive run attached to one
// node edge.
type Trivia struct {
	Kind token.Kind
	Text string
	Span token.Span
}

// IsComment reports whether this trivia span carries a comment.
func (t Trivia) IsComment() bool {
	return t.Kind == token.LineComment
}

// Leaf builds a leaf node wrapping a single token's text.
func Leaf(kind token.Kind, text string, span token.Span) *Node {
	return &Node{kind: kind, text: text, span: span}
}

// ErrorLeaf builds an error node carrying the malformed text and message
// (a parse-failure or unexpected-eof recorded at the leaf level).
func ErrorLeaf(text string, span token.Span, message string) *Node {
	return &Node{kind: token.Error, text: text, span: span, err: message}
}

// Inner builds an inner node of the given kind from already-built children.
// The span is the cover of the first and last child's spans.
func Inner(kind token.Kind, children []*Node) *Node {
	n := &Node{kind: kind, children: children}
	for _, c := range children {
		n.span = n.span.Cover(c.span)
	}
	return n
}

// Kind returns the node's variant tag.
func (n *Node) Kind() token.Kind { return n.kind }

// Span returns the node's source range.
func (n *Node) Span() token.Span { return n.span }

// Text returns a leaf's literal text, or "" for inner nodes.
func (n *Node) Text() string { return n.text }

// Children returns an inner node's children, or nil for a leaf.
func (n *Node) Children() []*Node { return n.children }

// IsLeaf reports whether n wraps a single token rather than children.
func (n *Node) IsLeaf() bool { return n.children == nil }

// IsError reports whether n is an error node (the leaves the parser records
// on parse-failure, unexpected-eof or excessive nesting surface this way;
// comment-unattachable is reported as a ParseError, not as a node).
func (n *Node) IsError() bool { return n.kind == token.Error }

// Erroneous reports whether n or any descendant is an error node.
func (n *Node) Erroneous() bool {
	if n.IsError() {
		return true
	}
	for _, c := range n.children {
		if c.Erroneous() {
			return true
		}
	}
	return false
}

// FirstToken and LastToken return the leaf nodes of the first and last
// significant token covered by n (n itself when n is a leaf).
func (n *Node) FirstToken() *Node {
	if n.IsLeaf() {
		return n
	}
	for _, c := range n.children {
		if c != nil {
			return c.FirstToken()
		}
	}
	return n
}

func (n *Node) LastToken() *Node {
	if n.IsLeaf() {
		return n
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i] != nil {
			return n.children[i].LastToken()
		}
	}
	return n
}

// Bindings returns the variable names a pattern subtree introduces, in
// source order, the variables a destructuring pattern binds. The
// formatter itself never needs this
// (it never reorders or renames anything), but it is the natural query a
// caller building on top of cst — a linter flagging unused bindings, a
// rename tool — would want from a parsed pattern.
func (n *Node) Bindings() []string {
	if n == nil {
		return nil
	}
	var out []string
	n.collectBindings(&out)
	return out
}

func (n *Node) collectBindings(out *[]string) {
	if n.IsLeaf() {
		if n.kind == token.Variable {
			*out = append(*out, n.text)
		}
		return
	}
	for _, c := range n.children {
		c.collectBindings(out)
	}
}
