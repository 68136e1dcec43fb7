package docfmt

import (
	"github.com/fluxfmt/fluxfmt/cst"
	"github.com/fluxfmt/fluxfmt/token"
)

// Build walks a fully-parsed, trivia-attached concrete syntax tree and
// produces the format document for it. Callers must not call Build on a
// tree with root.Erroneous() == true: the core never formats syntactically
// invalid input, so the caller surfaces the parse error (or, under
// allow_partial_failure, the source verbatim) before reaching here.
func Build(root *cst.Node) Doc {
	var b builder
	return b.build(root)
}

// builder holds no state; it exists so the per-kind methods read as a
// table-dispatch group, one function per node kind, rather than one giant
// switch.
type builder struct{}

type buildFn func(*builder, *cst.Node) Doc

var dispatch map[token.Kind]buildFn

func init() {
	dispatch = map[token.Kind]buildFn{
		token.Module:         (*builder).buildModule,
		token.FunctionDef:    (*builder).buildFunctionDef,
		token.FunctionClause: (*builder).buildFunctionClause,
		token.GuardSequence:  (*builder).buildGuardSequence,
		token.ExprBinaryOp:   (*builder).buildBinaryOp,
		token.ExprUnaryOp:    (*builder).buildUnaryOp,
		token.ExprCatch:      (*builder).buildCatch,
		token.ExprCall:       (*builder).buildCall,
		token.ExprList:       (*builder).buildList,
		token.ExprTuple:      (*builder).buildTuple,
		token.ExprMap:        (*builder).buildMap,
		token.ExprRecord:     (*builder).buildRecord,
		token.ExprBinary:     (*builder).buildBinaryLiteral,
		token.ExprFun:        (*builder).buildFun,
		token.ExprIf:         (*builder).buildIf,
		token.ExprCase:       (*builder).buildCase,
		token.ExprTry:        (*builder).buildTry,
		token.ExprReceive:    (*builder).buildReceive,
		token.ExprBeginEnd:   (*builder).buildBeginEnd,
		token.ExprBlock:      (*builder).buildBlock,
		token.ExprMatch:      (*builder).buildMatch,
		token.ExprMacroUse:   (*builder).buildMacroUse,
		token.Clause:         (*builder).buildClause,
		token.PatternNode:    (*builder).buildPatternNode,
	}
}

// build dispatches on node kind. A leaf renders through leaf(); an inner
// node with no registered builder (only TypeAnnotation today — no
// production constructs one yet) falls back to concatenating its built
// children, which stays correct as long as the kind's children are already
// in source order.
func (b *builder) build(n *cst.Node) Doc {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return b.leaf(n)
	}
	if fn, ok := dispatch[n.Kind()]; ok {
		return fn(b, n)
	}
	var parts []Doc
	for _, c := range n.Children() {
		parts = append(parts, b.build(c))
	}
	return Concat(parts...)
}

// leaf renders one token's leading trivia, its own text, and its trailing
// trivia. Every leaf in the tree goes through here, which is what lets
// comments and blank-line markers surface correctly no matter which
// container the leaf happens to sit in.
// leaf renders one token's leading trivia, its own text, and its trailing
// trivia. Every leaf in the tree goes through here, which is what lets
// comments and blank-line markers surface correctly no matter which
// container the leaf happens to sit in. A Comment's own forced break is the
// layout engine's job, not the builder's, so no HardBreak
// follows it here.
func (b *builder) leaf(n *cst.Node) Doc {
	var parts []Doc
	for _, t := range n.Leading {
		if t.Kind == token.Newline && t.Span.IsDetached() {
			parts = append(parts, HardBreak())
			continue
		}
		if t.IsComment() {
			parts = append(parts, Comment(t.Text, CommentLine))
		}
	}
	parts = append(parts, TextOf(n.Text()))
	for _, t := range n.Trailing {
		if t.IsComment() {
			// A literal space written as Text: trailing trivia is defined
			// as sharing the previous significant token's physical line,
			// so the separator is plain content rather than the Space
			// primitive, and does not depend on how the layout engine
			// treats Space inside the group this comment forces broken.
			parts = append(parts, TextOf(" "), Comment(t.Text, CommentLine))
		}
	}
	return Concat(parts...)
}

func (b *builder) buildModule(n *cst.Node) Doc {
	var parts []Doc
	for _, c := range n.Children() {
		parts = append(parts, b.build(c))
		if c.Kind() == token.MacroDirective {
			parts = append(parts, HardBreak())
		}
	}
	return Concat(parts...)
}

// buildFunctionDef renders `;`-separated clauses terminated by `.`, each
// followed by a hard break.
func (b *builder) buildFunctionDef(n *cst.Node) Doc {
	children := n.Children()
	var parts []Doc
	i := 0
	for {
		parts = append(parts, b.build(children[i]))
		i++
		if i < len(children) && children[i].Kind() == token.Semicolon {
			parts = append(parts, b.leaf(children[i]), HardBreak())
			i++
			continue
		}
		break
	}
	parts = append(parts, b.leaf(children[i]), HardBreak()) // the terminating '.'
	return Concat(parts...)
}

// buildFunctionClause renders `[name](Params) [when Guard] -> Body`. The
// header is a single logical line but its parameter list still uses the
// function-call container rule, so a long parameter list may itself break
// (the same container-breaking rule a call's argument list uses).
func (b *builder) buildFunctionClause(n *cst.Node) Doc {
	children := n.Children()
	i := 0
	var open []Doc
	if children[i].Kind() == token.Atom {
		open = append(open, b.leaf(children[i]))
		i++
	}
	open = append(open, b.leaf(children[i])) // '('
	i++
	start := i
	for children[i].Kind() != token.RParen {
		i++
	}
	mid := children[start:i]
	closeParen := b.leaf(children[i])
	i++
	params := b.container(open, mid, closeParen)

	var guard Doc
	if children[i].Kind() == token.KwWhen {
		whenLeaf := children[i]
		i++
		g := b.build(children[i])
		i++
		guard = Concat(Space(), b.leaf(whenLeaf), Space(), Align(g))
	}
	arrow := b.leaf(children[i])
	i++
	body := children[i]

	header := Concat(params, guard, Space(), arrow)
	return Concat(header, Indent(1, Concat(HardBreak(), b.build(body))))
}

// buildGuardSequence renders comma-joined conjunctions (never break) and
// semicolon-joined disjunctions (prefer to break), aligned under the first
// guard (the column just after `when `) by the caller wrapping the result in
// Align.
func (b *builder) buildGuardSequence(n *cst.Node) Doc {
	var parts []Doc
	for _, c := range n.Children() {
		switch c.Kind() {
		case token.Comma:
			parts = append(parts, b.leaf(c), Space())
		case token.Semicolon:
			parts = append(parts, b.leaf(c), Line())
		default:
			parts = append(parts, b.build(c))
		}
	}
	return Group(Concat(parts...))
}

// buildBinaryOp flattens a left-associative same-precedence chain into one
// Group: each additional operand adds a Line, the operator, a space, then
// the operand. A right operand built at tighter precedence renders through
// its own nested Group, as it should.
func (b *builder) buildBinaryOp(n *cst.Node) Doc {
	operands, ops := flattenChain(n)
	parts := []Doc{b.build(operands[0])}
	for i, op := range ops {
		parts = append(parts, Line(), b.leaf(op), Space(), b.build(operands[i+1]))
	}
	return Group(Concat(parts...))
}

func flattenChain(n *cst.Node) (operands, ops []*cst.Node) {
	children := n.Children()
	left, op, right := children[0], children[1], children[2]
	if left.Kind() == token.ExprBinaryOp {
		leftOp := left.Children()[1]
		lp, _, lok := cst.Precedence(leftOp.Kind())
		tp, _, tok := cst.Precedence(op.Kind())
		if lok && tok && lp == tp {
			operands, ops = flattenChain(left)
			operands = append(operands, right)
			ops = append(ops, op)
			return
		}
	}
	return []*cst.Node{left, right}, []*cst.Node{op}
}

func (b *builder) buildUnaryOp(n *cst.Node) Doc {
	children := n.Children()
	op, operand := children[0], children[1]
	if op.Kind() == token.OpNot {
		return Concat(b.leaf(op), Space(), b.build(operand))
	}
	return Concat(b.leaf(op), b.build(operand))
}

func (b *builder) buildCatch(n *cst.Node) Doc {
	children := n.Children()
	return Concat(b.leaf(children[0]), Space(), b.build(children[1]))
}

func (b *builder) buildCall(n *cst.Node) Doc {
	children := n.Children()
	open := []Doc{b.leaf(children[0]), b.leaf(children[1])}
	mid := children[2 : len(children)-1]
	closeDoc := b.leaf(children[len(children)-1])
	return b.container(open, mid, closeDoc)
}

func (b *builder) buildList(n *cst.Node) Doc {
	children := n.Children()
	open := []Doc{b.leaf(children[0])}
	mid := children[1 : len(children)-1]
	closeDoc := b.leaf(children[len(children)-1])
	return b.container(open, mid, closeDoc)
}

func (b *builder) buildTuple(n *cst.Node) Doc { return b.buildList(n) }

func (b *builder) buildMap(n *cst.Node) Doc {
	children := n.Children()
	open := []Doc{b.leaf(children[0]), b.leaf(children[1])}
	mid := children[2 : len(children)-1]
	closeDoc := b.leaf(children[len(children)-1])
	return b.container(open, mid, closeDoc)
}

func (b *builder) buildRecord(n *cst.Node) Doc {
	children := n.Children()
	open := []Doc{b.leaf(children[0]), b.leaf(children[1]), b.leaf(children[2])}
	mid := children[3 : len(children)-1]
	closeDoc := b.leaf(children[len(children)-1])
	return b.container(open, mid, closeDoc)
}

func (b *builder) buildBinaryLiteral(n *cst.Node) Doc {
	children := n.Children()
	open := []Doc{b.leaf(children[0])}
	mid := children[1 : len(children)-1]
	closeDoc := b.leaf(children[len(children)-1])
	return b.container(open, mid, closeDoc)
}

// container renders `open mid close` as a call/list/tuple/map-style group:
// flat joins elements with ", "; broken hugs the first element against the
// opening delimiter and aligns every following element under it, rather
// than dropping to a fresh indented line right after
// the delimiter. Align (the primitive for aligning to a preceding token) is
// the primitive that gives this: by the time it's entered, the column sits
// right after `open`, so the continuation lines land under the first
// argument instead of under the container's own indent level. Empty
// containers render flat regardless of width, since there is then no Line
// for the engine to ever choose to break on.
func (b *builder) container(open []Doc, mid []*cst.Node, closeDoc Doc) Doc {
	if len(mid) == 0 {
		parts := append(append([]Doc{}, open...), closeDoc)
		return Group(Concat(parts...))
	}
	parts := append(append([]Doc{}, open...), Align(b.joinMiddle(mid)), closeDoc)
	return Group(Concat(parts...))
}

// joinMiddle renders the elements between a container's delimiters,
// breaking after each comma and spacing the other connective tokens a
// container can contain (the list-tail `|`, the map `=>`, the bitstring
// segment-size `:`, the match `=` of a pattern, the comprehension `||` and
// its generators' `<-`).
func (b *builder) joinMiddle(mid []*cst.Node) Doc {
	var parts []Doc
	for _, c := range mid {
		switch c.Kind() {
		case token.Comma:
			parts = append(parts, b.leaf(c), Line())
		case token.Pipe, token.MapArrow, token.Match, token.BarBar, token.LArrow:
			parts = append(parts, Space(), b.leaf(c), Space())
		case token.Colon:
			parts = append(parts, b.leaf(c))
		default:
			parts = append(parts, b.build(c))
		}
	}
	return Concat(parts...)
}

func (b *builder) buildFun(n *cst.Node) Doc {
	children := n.Children()
	if len(children) == 4 && children[1].Kind() == token.Atom {
		return Concat(b.leaf(children[0]), Space(), b.leaf(children[1]), b.leaf(children[2]), b.leaf(children[3]))
	}
	kwFun := children[0]
	kwEnd := children[len(children)-1]
	mid := children[1 : len(children)-1]
	return Concat(b.leaf(kwFun), Indent(1, b.buildClauseList(mid)), HardBreak(), b.leaf(kwEnd))
}

func (b *builder) buildIf(n *cst.Node) Doc {
	children := n.Children()
	kwIf := children[0]
	kwEnd := children[len(children)-1]
	mid := children[1 : len(children)-1]
	return Concat(b.leaf(kwIf), Indent(1, b.buildClauseList(mid)), HardBreak(), b.leaf(kwEnd))
}

func (b *builder) buildCase(n *cst.Node) Doc {
	children := n.Children()
	kwCase, scrutinee, kwOf := children[0], children[1], children[2]
	kwEnd := children[len(children)-1]
	mid := children[3 : len(children)-1]
	head := Concat(b.leaf(kwCase), Space(), b.build(scrutinee), Space(), b.leaf(kwOf))
	return Concat(head, Indent(1, b.buildClauseList(mid)), HardBreak(), b.leaf(kwEnd))
}

func (b *builder) buildTry(n *cst.Node) Doc {
	children := n.Children()
	i := 0
	kwTry := children[i]
	i++
	body := children[i]
	i++
	parts := []Doc{b.leaf(kwTry), Indent(1, Concat(HardBreak(), b.build(body)))}

	if children[i].Kind() == token.KwCatch {
		kwCatch := children[i]
		i++
		start := i
		for children[i].Kind() != token.KwAfter && children[i].Kind() != token.KwEnd {
			i++
		}
		mid := children[start:i]
		parts = append(parts, HardBreak(), b.leaf(kwCatch), Indent(1, b.buildClauseList(mid)))
	}
	if children[i].Kind() == token.KwAfter {
		kwAfter := children[i]
		i++
		afterBody := children[i]
		i++
		parts = append(parts, HardBreak(), b.leaf(kwAfter), Indent(1, Concat(HardBreak(), b.build(afterBody))))
	}
	kwEnd := children[i]
	parts = append(parts, HardBreak(), b.leaf(kwEnd))
	return Concat(parts...)
}

// buildReceive keeps the timeout clause indented alongside the ordinary
// pattern clauses, unlike try's catch/after sections
// which are their own headers aligned with try.
func (b *builder) buildReceive(n *cst.Node) Doc {
	children := n.Children()
	i := 1 // skip 'receive'
	start := i
	for children[i].Kind() != token.KwAfter && children[i].Kind() != token.KwEnd {
		i++
	}
	mid := children[start:i]
	body := b.buildClauseList(mid)
	if children[i].Kind() == token.KwAfter {
		kwAfter := children[i]
		i++
		afterClause := children[i]
		i++
		body = Concat(body, HardBreak(), b.leaf(kwAfter), Space(), b.build(afterClause))
	}
	kwEnd := children[i]
	return Concat(b.leaf(children[0]), Indent(1, body), HardBreak(), b.leaf(kwEnd))
}

// buildClauseList renders a `;`-separated run of Clause nodes, one per
// line, preserving the semicolon token on the line it ends.
func (b *builder) buildClauseList(mid []*cst.Node) Doc {
	var parts []Doc
	for _, c := range mid {
		if c.Kind() == token.Semicolon {
			parts = append(parts, b.leaf(c))
			continue
		}
		parts = append(parts, HardBreak(), b.build(c))
	}
	return Concat(parts...)
}

func (b *builder) buildBeginEnd(n *cst.Node) Doc {
	children := n.Children()
	kwBegin, body, kwEnd := children[0], children[1], children[2]
	return Concat(b.leaf(kwBegin), Indent(1, Concat(HardBreak(), b.build(body))), HardBreak(), b.leaf(kwEnd))
}

// buildBlock renders a comma-joined statement sequence, one statement per
// line.
func (b *builder) buildBlock(n *cst.Node) Doc {
	var parts []Doc
	for _, c := range n.Children() {
		if c.Kind() == token.Comma {
			parts = append(parts, b.leaf(c), HardBreak())
			continue
		}
		parts = append(parts, b.build(c))
	}
	return Concat(parts...)
}

// buildMatch never breaks before `=`; it may break after, indented one
// unit.
func (b *builder) buildMatch(n *cst.Node) Doc {
	children := n.Children()
	lhs, eq, rhs := children[0], children[1], children[2]
	return Group(Concat(b.build(lhs), Space(), b.leaf(eq), Indent(1, Concat(Line(), b.build(rhs)))))
}

func (b *builder) buildMacroUse(n *cst.Node) Doc {
	children := n.Children()
	if len(children) == 1 {
		return b.leaf(children[0])
	}
	open := []Doc{b.leaf(children[0]), b.leaf(children[1])}
	mid := children[2 : len(children)-1]
	closeDoc := b.leaf(children[len(children)-1])
	return b.container(open, mid, closeDoc)
}

// buildClause renders `Head [: Class] [when Guard] -> Body`, covering
// plain case/if/receive clauses and try/catch's extra exception-class form.
func (b *builder) buildClause(n *cst.Node) Doc {
	children := n.Children()
	i := 0
	head := b.build(children[i])
	i++
	if i < len(children) && children[i].Kind() == token.Colon {
		colon := children[i]
		i++
		class := b.build(children[i])
		i++
		head = Concat(head, b.leaf(colon), class)
	}
	var guard Doc
	if i < len(children) && children[i].Kind() == token.KwWhen {
		whenLeaf := children[i]
		i++
		g := b.build(children[i])
		i++
		guard = Concat(Space(), b.leaf(whenLeaf), Space(), Align(g))
	}
	arrow := b.leaf(children[i])
	i++
	body := children[i]
	line := Concat(head, guard, Space(), arrow)
	// Unlike a function clause (always one body-per-line), a case/if/try/
	// receive clause is itself a Group: a short body stays on
	// the arrow's line, a long or multi-statement one breaks onto its own
	// line indented one further unit. buildBlock's internal HardBreak
	// between comma-joined statements still forces this Group broken for
	// any multi-statement body, same as a trailing Comment would.
	return Group(Concat(line, Indent(1, Concat(Line(), b.build(body)))))
}

// buildPatternNode covers both shapes PatternNode wraps: a signed integer
// literal pattern (`-1`) and a binding alias (`Pat = Pat`).
func (b *builder) buildPatternNode(n *cst.Node) Doc {
	children := n.Children()
	if len(children) == 2 {
		return Concat(b.leaf(children[0]), b.leaf(children[1]))
	}
	return Concat(b.build(children[0]), Space(), b.leaf(children[1]), Space(), b.build(children[2]))
}
