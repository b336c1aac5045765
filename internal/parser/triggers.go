package parser

import (
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// parsePropertyTrigger parses
// trigger property cond {',' cond} ['!important'] block.
func (p *Parser) parsePropertyTrigger() *syntax.PropertyTrigger {
	trigger := p.advance()
	property := p.expect(token.KwProperty)
	conds := []syntax.Element{p.parseCondition()}
	for p.at(token.Comma) {
		conds = append(conds, p.advance(), p.parseCondition())
	}
	important := p.optional(token.KwImportant)
	body := p.parseBlock(ctxTrigger)
	return syntax.NewPropertyTrigger(trigger, property, syntax.NewList(conds...), important, body)
}

// parseCondition parses name op '{' value '}'.
func (p *Parser) parseCondition() *syntax.PropertyTriggerCondition {
	name := p.parsePropertyName()
	var op *syntax.Token
	if p.lx.Peek().Kind.IsComparison() {
		op = p.advance()
	} else {
		op = p.missing(token.Assign)
	}
	value := p.parseBracedValue()
	return syntax.NewPropertyTriggerCondition(name, op, value)
}

// parseEventTrigger parses
// trigger event [Owner '.'] name ['(' args ')'] ['!important'] block.
func (p *Parser) parseEventTrigger() *syntax.EventTrigger {
	trigger := p.advance()
	event := p.advance()
	owner, period, name := p.parseQualified(func() *syntax.Token { return p.expect(token.Ident) })
	eventName := syntax.NewEventName(owner, period, name)
	var args *syntax.ArgumentList
	if p.at(token.LParen) {
		args = p.parseArgumentList()
	}
	important := p.optional(token.KwImportant)
	body := p.parseBlock(ctxTrigger)
	return syntax.NewEventTrigger(trigger, event, eventName, args, important, body)
}

// parseSetAction parses set property ['(' selector ')'] '{' value '}'.
func (p *Parser) parseSetAction() *syntax.SetTriggerAction {
	kw := p.advance()
	prop := p.parsePropertyName()
	sel := p.optionalSelectorWithParens()
	value := p.parseBracedValue()
	return syntax.NewSetTriggerAction(kw, prop, sel, value)
}

func (p *Parser) parsePlayStoryboardAction() *syntax.PlayStoryboardTriggerAction {
	kw := p.advance()
	sel := p.optionalSelectorWithParens()
	value := p.parseBracedValue()
	return syntax.NewPlayStoryboardTriggerAction(kw, sel, value)
}

func (p *Parser) parsePlaySfxAction() *syntax.PlaySfxTriggerAction {
	kw := p.advance()
	value := p.parseBracedValue()
	return syntax.NewPlaySfxTriggerAction(kw, value)
}

func (p *Parser) optionalSelectorWithParens() *syntax.SelectorWithParens {
	if p.at(token.LParen) {
		return p.parseSelectorWithParens()
	}
	return nil
}
