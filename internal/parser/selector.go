package parser

import (
	"uvss/internal/diag"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// Selector tokens are consumed without trailing trivia: whitespace
// between two parts is the descendant combinator, so it has to stay on
// the token that follows it.

func startsSelector(k token.Kind) bool {
	switch k {
	case token.Ident, token.Star, token.Hash, token.Dot, token.Colon:
		return true
	}
	return false
}

// glued reports whether the next token directly follows the previous one.
func (p *Parser) glued() bool {
	return !p.lx.Peek().HasLeadingTrivia()
}

// parseRuleSet parses selector-list block.
func (p *Parser) parseRuleSet() *syntax.RuleSet {
	selectors := p.parseSelectorList()
	body := p.parseBlock(ctxRuleSet)
	return syntax.NewRuleSet(selectors, body)
}

// parseSelectorList parses selectors separated by commas.
func (p *Parser) parseSelectorList() *syntax.List {
	items := []syntax.Element{p.parseSelectorWithNavigation()}
	for p.at(token.Comma) {
		items = append(items, p.advance())
		items = append(items, p.parseSelectorWithNavigation())
	}
	return syntax.NewList(items...)
}

func (p *Parser) parseSelectorWithNavigation() *syntax.SelectorWithNavigation {
	sel := p.parseSelector()
	var nav *syntax.NavigationExpression
	if p.at(token.Pipe) {
		nav = p.parseNavigation()
	}
	return syntax.NewSelectorWithNavigation(sel, nav)
}

// parseSelector parses parts joined by combinators. A part preceded by
// trivia and no explicit combinator is a descendant.
func (p *Parser) parseSelector() *syntax.Selector {
	comps := []syntax.Element{p.parseSelectorPart()}
	for {
		next := p.lx.Peek().Kind
		switch {
		case next.IsCombinator():
			comps = append(comps, p.advanceGlued(), p.parseSelectorPart())
		case startsSelector(next):
			comps = append(comps, p.parseSelectorPart())
		default:
			return syntax.NewSelector(syntax.NewList(comps...))
		}
	}
}

// parseSelectorPart parses a compound: sub-parts with no trivia between them.
func (p *Parser) parseSelectorPart() *syntax.SelectorPart {
	subs := []syntax.Element{p.parseSubPart()}
	for p.glued() && p.atOr(token.Hash, token.Dot, token.Colon) {
		subs = append(subs, p.parseSubPart())
	}
	return syntax.NewSelectorPart(syntax.NewList(subs...))
}

func (p *Parser) parseSubPart() *syntax.SelectorSubPart {
	switch p.lx.Peek().Kind {
	case token.Ident:
		name := p.advanceGlued()
		var suffix *syntax.Token
		if p.glued() && p.at(token.Bang) {
			suffix = p.advanceGlued()
		}
		return syntax.NewSelectorSubPart(nil, name, suffix)
	case token.Star:
		return syntax.NewSelectorSubPart(nil, p.advanceGlued(), nil)
	case token.Hash, token.Dot, token.Colon:
		prefix := p.advanceGlued()
		var name *syntax.Token
		if p.glued() && isName(p.lx.Peek().Kind) {
			name = p.advanceGlued()
		} else {
			name = p.missing(token.Ident)
		}
		return syntax.NewSelectorSubPart(prefix, name, nil)
	default:
		return syntax.NewSelectorSubPart(nil, p.missing(token.Ident), nil)
	}
}

// parseSelectorWithParens parses '(' selector ')'.
func (p *Parser) parseSelectorWithParens() *syntax.SelectorWithParens {
	open := p.advance()
	sel := p.parseSelector()
	closeParen := p.expect(token.RParen)
	return syntax.NewSelectorWithParens(open, sel, closeParen)
}

// parseNavigation parses "| property [index] as Type".
func (p *Parser) parseNavigation() *syntax.NavigationExpression {
	pipe := p.advance()
	prop := p.parsePropertyName()
	var idx *syntax.Indexer
	if p.at(token.LBracket) {
		idx = p.parseIndexer()
	}
	as := p.expect(token.KwAs)
	// the type name ends the selector, so whitespace after it stays
	// visible to a following part
	typeName := p.expectGlued(token.Ident)
	return syntax.NewNavigationExpression(pipe, prop, idx, as, typeName)
}

func (p *Parser) parseIndexer() *syntax.Indexer {
	open := p.advance()
	num := p.expect(token.Number)
	closeBracket := p.expect(token.RBracket)
	idx := syntax.NewIndexer(open, num, closeBracket)
	if num.IsMissing() {
		return idx
	}
	if _, ok := idx.Value(); !ok {
		syntax.Attach(idx, syntax.Error(diag.SynIndexMustBeIntegerValue,
			idx.Width(), "indexer value must be a non-negative integer"))
	}
	return idx
}

func isName(k token.Kind) bool {
	return k == token.Ident || (k.IsKeyword() && k != token.KwImportant)
}
