package layout

import (
	"strings"

	"github.com/fluxfmt/fluxfmt/docfmt"
)

// Options configures the layout engine: the two knobs that change how a
// document renders (max_line_width, indent_unit). The rest of
// config.Options (include_paths, allow_partial_failure) belongs to layers
// above this one.
type Options struct {
	MaxLineWidth int
	IndentUnit   int
}

// Printer is the layout engine's mutable state while rendering one document:
// the current column, the current indent (in columns, not levels, since
// Align sets it to an arbitrary column), the stack of enclosing groups'
// flat/broken decisions, and the output buffer.
type Printer struct {
	buf         strings.Builder
	col         int
	indent      int
	atLineStart bool
	broken      []bool

	maxWidth int
	unit     int
}

// Run renders doc to its final text under opts. The layout engine is total
// over any well-formed format document: there is no error return here, only
// the text.
func Run(doc docfmt.Doc, opts Options) string {
	p := &Printer{maxWidth: opts.MaxLineWidth, unit: opts.IndentUnit}
	p.render(doc)
	return p.finish()
}

func (p *Printer) topBroken() bool {
	if len(p.broken) == 0 {
		return false
	}
	return p.broken[len(p.broken)-1]
}

func (p *Printer) render(d docfmt.Doc) {
	switch v := d.(type) {
	case nil:
	case docfmt.Text:
		p.write(v.S)
	case docfmt.SpaceDoc:
		// Space is always a literal space, never a break point: the
		// builder reaches for it to glue fixed punctuation together
		// (a clause's `when`, a map's `=>`, the space before `->`) that
		// must stay on one physical line regardless of whether some
		// enclosing Group breaks elsewhere. Line is the primitive that
		// actually participates in a Group's flat/broken choice; see
		// DESIGN.md for why Space and Line are not interchangeable here.
		p.write(" ")
	case docfmt.LineDoc:
		if p.topBroken() {
			p.newline()
		} else {
			p.write(" ")
		}
	case docfmt.SoftBreakDoc:
		if p.topBroken() {
			p.newline()
		}
	case docfmt.HardBreakDoc:
		p.newline()
	case docfmt.CommentDoc:
		p.write(v.Text)
		// A line comment forces a hard break after it unless the cursor is
		// already at column 0 (nothing would follow it on this line either way).
		if p.col != 0 {
			p.newline()
		}
	case docfmt.GroupDoc:
		broken := p.decide(v.Doc)
		p.broken = append(p.broken, broken)
		p.render(v.Doc)
		p.broken = p.broken[:len(p.broken)-1]
	case docfmt.IndentDoc:
		old := p.indent
		p.indent += v.N * p.unit
		p.render(v.Doc)
		p.indent = old
	case docfmt.AlignDoc:
		old := p.indent
		p.indent = p.col
		p.render(v.Doc)
		p.indent = old
	case docfmt.IfBrokenDoc:
		if p.topBroken() {
			p.render(v.Then)
		} else {
			p.render(v.Else)
		}
	case docfmt.ConcatDoc:
		for _, item := range v.Items {
			p.render(item)
		}
	}
}

// decide is the Group decision rule: measure the flat width of d bounded by
// the remaining line budget; flat only if it fits and d contains no forced
// break (a HardBreak or a Comment, both treated as if the group decided
// broken).
func (p *Printer) decide(d docfmt.Doc) bool {
	budget := p.maxWidth - p.col
	w := 0
	forced := measureFlat(d, budget, &w)
	return forced || w > budget
}

// measureFlat accumulates the flat width of d into *w, bounded by budget:
// once *w exceeds budget the group is already decided broken, so further
// accumulation stops early. It returns true as soon as it finds an
// unconditional break.
func measureFlat(d docfmt.Doc, budget int, w *int) bool {
	if *w > budget {
		return false
	}
	switch v := d.(type) {
	case nil:
		return false
	case docfmt.Text:
		*w += Width(v.S)
		return false
	case docfmt.SpaceDoc, docfmt.LineDoc:
		*w++
		return false
	case docfmt.SoftBreakDoc:
		return false
	case docfmt.HardBreakDoc:
		return true
	case docfmt.CommentDoc:
		return true
	case docfmt.GroupDoc:
		return measureFlat(v.Doc, budget, w)
	case docfmt.IndentDoc:
		return measureFlat(v.Doc, budget, w)
	case docfmt.AlignDoc:
		return measureFlat(v.Doc, budget, w)
	case docfmt.IfBrokenDoc:
		// Measuring as-if-flat: the flat branch is Else (Then renders when
		// the enclosing group breaks, Else when it stays flat).
		return measureFlat(v.Else, budget, w)
	case docfmt.ConcatDoc:
		for _, item := range v.Items {
			if measureFlat(item, budget, w) {
				return true
			}
			if *w > budget {
				return false
			}
		}
		return false
	}
	return false
}

// write appends s to the buffer, first materializing any pending indent
// (deferred since the last newline so blank lines carry no trailing
// whitespace).
func (p *Printer) write(s string) {
	if s == "" {
		return
	}
	if p.atLineStart {
		if p.indent > 0 {
			p.buf.WriteString(strings.Repeat(" ", p.indent))
		}
		p.col = p.indent
		p.atLineStart = false
	}
	p.buf.WriteString(s)
	p.col += Width(s)
}

// newline emits a break, collapsing runs of blank lines to at most one (no
// runs of three or more consecutive LFs in the output). Indent is not
// written here; write() materializes it lazily so a genuinely blank line
// stays empty.
func (p *Printer) newline() {
	s := p.buf.String()
	trailing := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		trailing++
	}
	if trailing >= 2 {
		p.col = 0
		p.atLineStart = true
		return
	}
	p.buf.WriteByte('\n')
	p.col = 0
	p.atLineStart = true
}

// finish normalizes the output to end with exactly one trailing LF.
func (p *Printer) finish() string {
	s := strings.TrimRight(p.buf.String(), " \t\n")
	return s + "\n"
}
