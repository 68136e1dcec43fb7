package cst

import "github.com/fluxfmt/fluxfmt/token"

// parsePattern parses a binding pattern: literal, variable, wildcard, tuple,
// list (with `|` tail), map, record (with field punning), binary, a
// parenthesized sub-pattern, an opaque macro-use, or an alias `Pat = Pat`.
// Every variant renders with the same container rules as the matching
// expression form, so the shapes below mirror parseExpr's
// container parsing deliberately.
func (p *Parser) parsePattern() *Node {
	m := p.marker()
	p.parsePatternPrimary()
	if p.at(token.Match) {
		p.eat()
		p.parsePattern()
		return p.wrap(m, token.PatternNode)
	}
	if len(p.nodes) > 0 {
		return p.nodes[len(p.nodes)-1]
	}
	return nil
}

func (p *Parser) parsePatternPrimary() *Node {
	switch p.cur().Kind {
	case token.Variable, token.Atom, token.Integer, token.Float, token.String, token.Char:
		return p.eat()
	case token.OpMinus, token.OpPlus:
		m := p.marker()
		p.eat()
		p.expect(token.Integer)
		return p.wrap(m, token.PatternNode)
	case token.MacroUse:
		return p.parseMacroUse()
	case token.LParen:
		p.eat()
		inner := p.parsePattern()
		p.expect(token.RParen)
		return inner
	case token.LBracket:
		return p.parseListPattern()
	case token.LBrace:
		return p.parseTuplePattern()
	case token.Hash:
		return p.parseMapOrRecordPattern()
	case token.DoubleLAngle:
		return p.parseBinaryPattern()
	default:
		if p.end() {
			p.unexpectedEOF("pattern")
			return ErrorLeaf("", p.cur().Span, "unexpected end of input")
		}
		return p.unexpected("pattern")
	}
}

func (p *Parser) parseListPattern() *Node {
	m := p.marker()
	p.eat() // [
	for !p.at(token.RBracket) && !p.end() {
		p.parsePattern()
		if p.eatIf(token.Pipe) {
			p.parsePattern()
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

func (p *Parser) parseTuplePattern() *Node {
	m := p.marker()
	p.eat() // {
	for !p.at(token.RBrace) && !p.end() {
		p.parsePattern()
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

func (p *Parser) parseMapOrRecordPattern() *Node {
	m := p.marker()
	p.eat() // #
	if p.at(token.LBrace) {
		p.eat()
		for !p.at(token.RBrace) && !p.end() {
			p.parsePattern()
			p.expect(token.MapArrow)
			p.parsePattern()
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
			p.parsePattern()
		} // field punning: bare field name binds a same-named variable
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

func (p *Parser) parseBinaryPattern() *Node {
	m := p.marker()
	p.eat() // <<
	for !p.at(token.DoubleRAngle) && !p.end() {
		p.parsePattern()
		if p.eatIf(token.Colon) {
			p.parseExpr() // segment size is an ordinary (non-binding) expression
		}
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
