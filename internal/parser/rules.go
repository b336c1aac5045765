package parser

import (
	"uvss/internal/lexer"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// parsePropertyName parses "name", "Owner.name", "[name]" or
// "[Owner.name]". Inside brackets keywords are plain names.
func (p *Parser) parsePropertyName() *syntax.PropertyName {
	if p.at(token.LBracket) {
		open := p.advance()
		owner, period, name := p.parseQualified(p.expectName)
		closeBracket := p.expect(token.RBracket)
		return syntax.NewPropertyName(open, owner, period, name, closeBracket)
	}
	owner, period, name := p.parseQualified(func() *syntax.Token { return p.expect(token.Ident) })
	return syntax.NewPropertyName(nil, owner, period, name, nil)
}

// parseQualified parses name or owner '.' name.
func (p *Parser) parseQualified(name func() *syntax.Token) (owner, period, last *syntax.Token) {
	first := name()
	if first.IsMissing() || !p.at(token.Dot) {
		return nil, nil, first
	}
	period = p.advance()
	return first, period, name()
}

func (p *Parser) expectName() *syntax.Token {
	if isName(p.lx.Peek().Kind) {
		return p.advance()
	}
	return p.missing(token.Ident)
}

// parseRule parses name ':' value ['!important'] ';'.
func (p *Parser) parseRule() *syntax.Rule {
	name := p.parsePropertyName()
	colon := p.expect(token.Colon)
	value := syntax.NewPropertyValue(p.parseValue(lexer.ValueRule, !colon.IsMissing()))
	important := p.optional(token.KwImportant)
	semi := p.expect(token.Semicolon)
	return syntax.NewRule(name, colon, value, important, semi)
}

// parseTransition parses transition '(' args ')' ':' value ['!important'] ';'.
func (p *Parser) parseTransition() *syntax.Transition {
	kw := p.advance()
	args := p.parseArgumentList()
	colon := p.expect(token.Colon)
	value := syntax.NewPropertyValue(p.parseValue(lexer.ValueRule, !colon.IsMissing()))
	important := p.optional(token.KwImportant)
	semi := p.expect(token.Semicolon)
	return syntax.NewTransition(kw, args, colon, value, important, semi)
}

// parseArgumentList parses '(' name {',' name} ')'. Without '(' both
// parentheses are missing and only the first is reported.
func (p *Parser) parseArgumentList() *syntax.ArgumentList {
	if !p.at(token.LParen) {
		open := p.missing(token.LParen)
		return syntax.NewArgumentList(open, syntax.NewList(), missingSilent(token.RParen))
	}
	open := p.advance()
	var items []syntax.Element
	for {
		items = append(items, p.expectName())
		if !p.at(token.Comma) {
			break
		}
		items = append(items, p.advance())
	}
	closeParen := p.expect(token.RParen)
	return syntax.NewArgumentList(open, syntax.NewList(items...), closeParen)
}
