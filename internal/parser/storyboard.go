package parser

import (
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// parseStoryboard parses '@' name [loop] block.
func (p *Parser) parseStoryboard() *syntax.Storyboard {
	at := p.advance()
	name := p.expect(token.Ident)
	loop := p.optional(token.Ident)
	body := p.parseBlock(ctxStoryboard)
	return syntax.NewStoryboard(at, name, loop, body)
}

// parseStoryboardTarget parses target [Type] ['(' selector ')'] block.
func (p *Parser) parseStoryboardTarget() *syntax.StoryboardTarget {
	kw := p.advance()
	typeName := p.optional(token.Ident)
	sel := p.optionalSelectorWithParens()
	body := p.parseBlock(ctxTarget)
	return syntax.NewStoryboardTarget(kw, typeName, sel, body)
}

// parseAnimation parses animation property [navigation] block.
func (p *Parser) parseAnimation() *syntax.Animation {
	kw := p.advance()
	prop := p.parsePropertyName()
	var nav *syntax.NavigationExpression
	if p.at(token.Pipe) {
		nav = p.parseNavigation()
	}
	body := p.parseBlock(ctxAnimation)
	return syntax.NewAnimation(kw, prop, nav, body)
}

// parseKeyframe parses keyframe time [easing] '{' value '}'.
func (p *Parser) parseKeyframe() *syntax.AnimationKeyframe {
	kw := p.advance()
	time := p.expect(token.Number)
	easing := p.optional(token.Ident)
	value := p.parseBracedValue()
	return syntax.NewAnimationKeyframe(kw, time, easing, value)
}
