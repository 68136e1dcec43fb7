// Package docfmt traverses the concrete syntax tree and emits a format
// document: a small, closed tree of layout primitives the layout engine
// later renders to text. The primitive set is intentionally closed — a
// sealed interface with one struct per variant — rather than an open
// interface{} tree, so the layout engine's switch over variants stays
// exhaustive.
package docfmt

// Doc is any node of a format document. The interface is sealed: every
// implementation lives in this file, and isDoc is unexported so no other
// package can add a variant.
type Doc interface {
	isDoc()
}

// Text is an atomic, non-breakable run of characters.
type Text struct {
	S string
}

func (Text) isDoc() {}

// Space is a single, always-literal space: unlike Line, it never turns into
// a newline when some enclosing Group breaks. The builder reaches for it to
// glue fixed punctuation together (the space before `->`, around a guard's
// `when`, a map's `=>`) that must stay on one physical line regardless of
// what an enclosing construct decides (see DESIGN.md, "Space vs. Line").
type SpaceDoc struct{}

func (SpaceDoc) isDoc() {}

// HardBreakDoc is an unconditional newline.
type HardBreakDoc struct{}

func (HardBreakDoc) isDoc() {}

// SoftBreakDoc is a newline only if the enclosing group is broken;
// otherwise it renders as nothing.
type SoftBreakDoc struct{}

func (SoftBreakDoc) isDoc() {}

// LineDoc is a newline if the enclosing group is broken, else a single
// space.
type LineDoc struct{}

func (LineDoc) isDoc() {}

// GroupDoc is a scope in which the engine chooses flat or broken atomically.
type GroupDoc struct {
	Doc Doc
}

func (GroupDoc) isDoc() {}

// IndentDoc adds N indent units to the current indent level within Doc.
type IndentDoc struct {
	N   int
	Doc Doc
}

func (IndentDoc) isDoc() {}

// AlignDoc sets indent to the current column within Doc, for aligning to a
// preceding token such as `->` or `|`.
type AlignDoc struct {
	Doc Doc
}

func (AlignDoc) isDoc() {}

// IfBrokenDoc selects Then or Else depending on the enclosing group's
// break decision.
type IfBrokenDoc struct {
	Then, Else Doc
}

func (IfBrokenDoc) isDoc() {}

// CommentKind distinguishes comment forms; this language only has line
// comments (`%...`), but the field exists because kind determines whether a
// following break is mandatory.
type CommentKind int

const (
	CommentLine CommentKind = iota
)

// CommentDoc is a preserved comment. A line comment always forces its
// enclosing group broken: flattening a line comment would pull whatever
// follows it onto the same physical line as commented-out text.
type CommentDoc struct {
	Text string
	Kind CommentKind
}

func (CommentDoc) isDoc() {}

// ConcatDoc sequences several docs. It is structural glue, not a layout
// primitive in its own right: a tree representation in Go needs something
// to express "this group's content is itself a sequence of primitives".
type ConcatDoc struct {
	Items []Doc
}

func (ConcatDoc) isDoc() {}

// Concat builds a ConcatDoc, flattening nested ConcatDocs and dropping nil
// entries so callers can build sequences incrementally without bookkeeping.
func Concat(docs ...Doc) Doc {
	var items []Doc
	for _, d := range docs {
		if d == nil {
			continue
		}
		if c, ok := d.(ConcatDoc); ok {
			items = append(items, c.Items...)
			continue
		}
		items = append(items, d)
	}
	if len(items) == 1 {
		return items[0]
	}
	return ConcatDoc{Items: items}
}

func TextOf(s string) Doc    { return Text{S: s} }
func Space() Doc             { return SpaceDoc{} }
func HardBreak() Doc         { return HardBreakDoc{} }
func SoftBreak() Doc         { return SoftBreakDoc{} }
func Line() Doc              { return LineDoc{} }
func Group(d Doc) Doc        { return GroupDoc{Doc: d} }
func Indent(n int, d Doc) Doc {
	if n == 0 {
		return d
	}
	return IndentDoc{N: n, Doc: d}
}
func Align(d Doc) Doc                 { return AlignDoc{Doc: d} }
func IfBroken(then, els Doc) Doc      { return IfBrokenDoc{Then: then, Else: els} }
func Comment(text string, kind CommentKind) Doc { return CommentDoc{Text: text, Kind: kind} }
