package cst

import "github.com/fluxfmt/fluxfmt/token"

// parseExpr parses one full expression, including the low-precedence match
// operator (`Pat = Expr`, which never breaks before `=` when rendered).
func (p *Parser) parseExpr() *Node {
	if p.depth >= MaxDepth {
		return p.depthError()
	}
	p.depth++
	defer func() { p.depth-- }()

	m := p.marker()
	p.parseBinary(0)
	if p.at(token.Match) {
		p.eat()
		p.parseExpr()
		return p.wrap(m, token.ExprMatch)
	}
	if len(p.nodes) > 0 {
		return p.nodes[len(p.nodes)-1]
	}
	return nil
}

// parseBinary is the Pratt loop: parse a unary/primary operand, then fold in
// infix operators whose precedence is >= minPower. Equal-precedence,
// non-associative operators chained together (e.g. `A == B == C`) raise
// ambiguous-operator.
func (p *Parser) parseBinary(minPower int) *Node {
	m := p.marker()
	p.parseUnary()

	for {
		info, ok := binaryPrecedence[p.cur().Kind]
		if !ok || info.power < minPower {
			break
		}
		p.eat() // operator

		next := info.power + 1
		if info.assoc == AssocRight {
			next = info.power
		}
		p.parseBinary(next)

		if info.assoc == AssocNone {
			if np, ok := binaryPrecedence[p.cur().Kind]; ok && np.power == info.power && np.assoc == AssocNone {
				p.errors = append(p.errors, &ParseError{
					Kind:    "ambiguous-operator",
					Span:    p.cur().Span,
					Message: "ambiguous non-associative operator chain: parenthesize to disambiguate",
				})
			}
		}
		p.wrap(m, token.ExprBinaryOp)
	}

	if len(p.nodes) > 0 {
		return p.nodes[len(p.nodes)-1]
	}
	return nil
}

func (p *Parser) parseUnary() *Node {
	if isUnaryOp(p.cur().Kind) {
		m := p.marker()
		p.eat()
		p.parseBinary(unaryPower)
		return p.wrap(m, token.ExprUnaryOp)
	}
	if p.at(token.KwCatch) {
		m := p.marker()
		p.eat()
		p.parseBinary(unaryPower)
		return p.wrap(m, token.ExprCatch)
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() *Node {
	switch p.cur().Kind {
	case token.Integer, token.Float, token.String, token.Char, token.Variable:
		return p.eat()
	case token.Atom:
		return p.parseAtomOrCall()
	case token.MacroUse:
		return p.parseMacroUse()
	case token.LParen:
		return p.parseParenthesized()
	case token.LBracket:
		return p.parseList()
	case token.LBrace:
		return p.parseTuple()
	case token.Hash:
		return p.parseMapOrRecord()
	case token.DoubleLAngle:
		return p.parseBinaryLiteral()
	case token.KwFun:
		return p.parseFunExpr()
	case token.KwIf:
		return p.parseIfExpr()
	case token.KwCase:
		return p.parseCaseExpr()
	case token.KwTry:
		return p.parseTryExpr()
	case token.KwReceive:
		return p.parseReceiveExpr()
	case token.KwBegin:
		return p.parseBeginEnd()
	default:
		if p.end() {
			p.unexpectedEOF("expression")
			return ErrorLeaf("", p.cur().Span, "unexpected end of input")
		}
		return p.unexpected("expression")
	}
}

func (p *Parser) parseAtomOrCall() *Node {
	m := p.marker()
	p.eat() // atom
	if p.at(token.LParen) {
		p.parseArgList()
		return p.wrap(m, token.ExprCall)
	}
	return p.nodes[len(p.nodes)-1]
}

func (p *Parser) parseMacroUse() *Node {
	m := p.marker()
	p.eat()
	if p.at(token.LParen) {
		p.parseArgList()
	}
	return p.wrap(m, token.ExprMacroUse)
}

// parseArgList parses `(` Expr,* `)` and pushes it flat onto the node list;
// the caller wraps the whole construct (atom+args, or macro-use+args).
func (p *Parser) parseArgList() {
	p.eat() // (
	for !p.at(token.RParen) && !p.end() {
		p.parseExpr()
		if !p.at(token.RParen) {
			if !p.eatIf(token.Comma) {
				p.unexpected(", or )")
				break
			}
		}
	}
	p.expect(token.RParen)
}

func (p *Parser) parseParenthesized() *Node {
	p.eat() // (
	inner := p.parseExpr()
	p.expect(token.RParen)
	return inner
}

// parseList parses `[` (Expr,* (| Expr)?)? `]`. Empty lists render flat
// regardless of width.
func (p *Parser) parseList() *Node {
	m := p.marker()
	p.eat() // [
	for !p.at(token.RBracket) && !p.end() {
		p.parseExpr()
		if p.eatIf(token.Pipe) {
			p.parseExpr()
			break
		}
		if !p.at(token.RBracket) {
			if !p.eatIf(token.Comma) {
				p.unexpected(", | or ]")
				break
			}
		}
	}
	p.expect(token.RBracket)
	return p.wrap(m, token.ExprList)
}

func (p *Parser) parseTuple() *Node {
	m := p.marker()
	p.eat() // {
	for !p.at(token.RBrace) && !p.end() {
		p.parseExpr()
		if !p.at(token.RBrace) {
			if !p.eatIf(token.Comma) {
				p.unexpected(", or }")
				break
			}
		}
	}
	p.expect(token.RBrace)
	return p.wrap(m, token.ExprTuple)
}

// parseMapOrRecord distinguishes `#{ ... }` (map) from `#name{ ... }`
// (record) by looking one token past the `#` for `{` vs an atom.
func (p *Parser) parseMapOrRecord() *Node {
	m := p.marker()
	p.eat() // #
	if p.at(token.LBrace) {
		p.eat()
		for !p.at(token.RBrace) && !p.end() {
			p.parseExpr()
			p.expect(token.MapArrow)
			p.parseExpr()
			if !p.at(token.RBrace) {
				if !p.eatIf(token.Comma) {
					p.unexpected(", or }")
					break
				}
			}
		}
		p.expect(token.RBrace)
		return p.wrap(m, token.ExprMap)
	}

	p.expect(token.Atom)
	p.expect(token.LBrace)
	for !p.at(token.RBrace) && !p.end() {
		p.eat() // field name
		if p.eatIf(token.Match) {
			p.parseExpr()
		} // else: field punning, shorthand for Field = Field
		if !p.at(token.RBrace) {
			if !p.eatIf(token.Comma) {
				p.unexpected(", or }")
				break
			}
		}
	}
	p.expect(token.RBrace)
	return p.wrap(m, token.ExprRecord)
}

// parseBinaryLiteral parses `<<` elements `>>`, where each element is either
// a plain expression, a sized segment `Expr : Size`, or (if `||` follows the
// first element) a comprehension `Expr || Generator (, Generator)*`.
func (p *Parser) parseBinaryLiteral() *Node {
	m := p.marker()
	p.eat() // <<
	first := true
	for !p.at(token.DoubleRAngle) && !p.end() {
		p.parseExpr()
		if p.eatIf(token.Colon) {
			p.parseExpr()
		}
		if first && p.eatIf(token.BarBar) {
			p.parseGenerators()
			break
		}
		first = false
		if !p.at(token.DoubleRAngle) {
			if !p.eatIf(token.Comma) {
				p.unexpected(", or >>")
				break
			}
		}
	}
	p.expect(token.DoubleRAngle)
	return p.wrap(m, token.ExprBinary)
}

func (p *Parser) parseGenerators() {
	for {
		p.parsePattern()
		p.expect(token.LArrow)
		p.parseExpr()
		if !p.eatIf(token.Comma) {
			break
		}
	}
}

func (p *Parser) parseFunExpr() *Node {
	m := p.marker()
	p.eat() // fun
	if p.at(token.Atom) && p.peek(1).Kind == token.OpSlash {
		p.eat()
		p.eat()
		p.eat() // arity integer
		return p.wrap(m, token.ExprFun)
	}
	for {
		p.parseClauseHead(false)
		if !p.eatIf(token.Semicolon) {
			break
		}
	}
	p.expect(token.KwEnd)
	return p.wrap(m, token.ExprFun)
}

func (p *Parser) parseIfExpr() *Node {
	m := p.marker()
	p.eat() // if
	for {
		cm := p.marker()
		p.parseGuardSequence()
		p.expect(token.Arrow)
		p.parseBody()
		p.wrap(cm, token.Clause)
		if !p.eatIf(token.Semicolon) {
			break
		}
	}
	p.expect(token.KwEnd)
	return p.wrap(m, token.ExprIf)
}

func (p *Parser) parseCaseExpr() *Node {
	m := p.marker()
	p.eat() // case
	p.parseExpr()
	p.expect(token.KwOf)
	for {
		cm := p.marker()
		p.parsePattern()
		if p.eatIf(token.KwWhen) {
			p.parseGuardSequence()
		}
		p.expect(token.Arrow)
		p.parseBody()
		p.wrap(cm, token.Clause)
		if !p.eatIf(token.Semicolon) {
			break
		}
	}
	p.expect(token.KwEnd)
	return p.wrap(m, token.ExprCase)
}

func (p *Parser) parseTryExpr() *Node {
	m := p.marker()
	p.eat() // try
	p.parseBody()
	if p.eatIf(token.KwCatch) {
		for {
			cm := p.marker()
			p.parsePattern()
			if p.eatIf(token.Colon) {
				p.parsePattern()
			}
			if p.eatIf(token.KwWhen) {
				p.parseGuardSequence()
			}
			p.expect(token.Arrow)
			p.parseBody()
			p.wrap(cm, token.Clause)
			if !p.eatIf(token.Semicolon) {
				break
			}
		}
	}
	if p.eatIf(token.KwAfter) {
		p.parseBody()
	}
	p.expect(token.KwEnd)
	return p.wrap(m, token.ExprTry)
}

func (p *Parser) parseReceiveExpr() *Node {
	m := p.marker()
	p.eat() // receive
	for !p.at(token.KwAfter) && !p.at(token.KwEnd) && !p.end() {
		cm := p.marker()
		p.parsePattern()
		if p.eatIf(token.KwWhen) {
			p.parseGuardSequence()
		}
		p.expect(token.Arrow)
		p.parseBody()
		p.wrap(cm, token.Clause)
		if !p.eatIf(token.Semicolon) {
			break
		}
	}
	if p.eatIf(token.KwAfter) {
		am := p.marker()
		p.parseExpr()
		p.expect(token.Arrow)
		p.parseBody()
		p.wrap(am, token.Clause)
	}
	p.expect(token.KwEnd)
	return p.wrap(m, token.ExprReceive)
}

func (p *Parser) parseBeginEnd() *Node {
	m := p.marker()
	p.eat() // begin
	p.parseBody()
	p.expect(token.KwEnd)
	return p.wrap(m, token.ExprBeginEnd)
}

// parseBody parses a comma-joined sequence of expressions, the body of a
// clause/try-section/begin-end block: the material between
// `->`/`begin`/`try` and the next section keyword.
func (p *Parser) parseBody() *Node {
	m := p.marker()
	p.parseExpr()
	for p.eatIf(token.Comma) {
		p.parseExpr()
	}
	return p.wrap(m, token.ExprBlock)
}

// parseGuardSequence parses `,`-joined guards (conjunction) separated by
// `;` (disjunction): commas mean conjunction and never break; semicolons
// mean disjunction and prefer to break.
func (p *Parser) parseGuardSequence() *Node {
	m := p.marker()
	p.parseExpr()
	for p.eatIf(token.Comma) {
		p.parseExpr()
	}
	for p.eatIf(token.Semicolon) {
		p.parseExpr()
		for p.eatIf(token.Comma) {
			p.parseExpr()
		}
	}
	return p.wrap(m, token.GuardSequence)
}

func (p *Parser) depthError() *Node {
	tok := p.cur()
	p.errors = append(p.errors, &ParseError{
		Kind:    "internal",
		Span:    tok.Span,
		Message: "expression nesting exceeds MaxDepth",
	})
	return ErrorLeaf(tok.Text, tok.Span, "nesting too deep")
}
