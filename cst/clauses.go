package cst

import "github.com/fluxfmt/fluxfmt/token"

// parseClauseHead parses `(Params) [when Guard] -> Body`, optionally
// preceded by a name (named=true for a top-level function clause, false for
// an anonymous `fun` clause).
func (p *Parser) parseClauseHead(named bool) *Node {
	m := p.marker()
	if named {
		p.expect(token.Atom)
	}
	p.eat() // (
	for !p.at(token.RParen) && !p.end() {
		p.parsePattern()
		if !p.at(token.RParen) {
			if !p.eatIf(token.Comma) {
				p.unexpected(", or )")
				break
			}
		}
	}
	p.expect(token.RParen)
	if p.eatIf(token.KwWhen) {
		p.parseGuardSequence()
	}
	p.expect(token.Arrow)
	p.parseBody()
	return p.wrap(m, token.FunctionClause)
}

// parseFunctionDef parses one or more `;`-separated clauses for the same
// function name, terminated by `.`.
func (p *Parser) parseFunctionDef() *Node {
	m := p.marker()
	for {
		p.parseClauseHead(true)
		if !p.eatIf(token.Semicolon) {
			break
		}
	}
	p.expect(token.Dot)
	return p.wrap(m, token.FunctionDef)
}

// parseMacroDirective consumes a whole "-name(...)." directive line as one
// opaque leaf: the core never expands macros, so a directive's internal
// structure is not parsed, only preserved.
func (p *Parser) parseMacroDirective() *Node {
	return p.eat()
}

// topLevelStarts is the stop set a bad top-level token gets skipped forward
// to: the next atom (a function clause head) or macro directive.
var topLevelStarts = token.SetOf(token.Atom, token.MacroDirective)

// ParseModule parses an entire source file: a sequence of function
// definitions and macro directives.
func ParseModule(stream *token.Stream) (*Node, []*ParseError) {
	p := NewParser(stream)
	m := p.marker()
	for !p.end() {
		switch p.cur().Kind {
		case token.MacroDirective:
			p.parseMacroDirective()
		case token.Atom:
			p.parseFunctionDef()
		default:
			p.unexpected("function definition or macro directive")
			// Recovery: skip to the next top-level starting point so one bad
			// token doesn't cascade into every remaining form failing too.
			for !p.end() && !p.atSet(topLevelStarts) {
				p.eat()
			}
		}
	}
	root := p.wrap(m, token.Module)
	return root, p.errors
}
