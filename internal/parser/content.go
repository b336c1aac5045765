package parser

import (
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/lexer"
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// blockContext names the construct whose content is being parsed; it
// decides which tokens may start an item.
type blockContext uint8

const (
	ctxDocument blockContext = iota
	ctxRuleSet
	ctxTrigger
	ctxStoryboard
	ctxTarget
	ctxAnimation
)

func canStart(ctx blockContext, k token.Kind) bool {
	switch ctx {
	case ctxDocument:
		return startsSelector(k) || k == token.At || k == token.Directive
	case ctxRuleSet:
		return k == token.Ident || k == token.LBracket || k == token.KwTrigger || k == token.KwTransition
	case ctxTrigger:
		return k == token.KwSet || k == token.KwPlayStoryboard || k == token.KwPlaySfx
	case ctxStoryboard:
		return k == token.KwTarget
	case ctxTarget:
		return k == token.KwAnimation
	case ctxAnimation:
		return k == token.KwKeyframe
	}
	return false
}

// parseContent parses one item of ctx. It always consumes at least one
// token; tokens that cannot start an item are gathered into an empty
// statement.
func (p *Parser) parseContent(ctx blockContext) syntax.Element {
	k := p.lx.Peek().Kind
	if !canStart(ctx, k) {
		return p.parseSkipped(ctx)
	}
	switch ctx {
	case ctxDocument:
		switch k {
		case token.At:
			return p.parseStoryboard()
		case token.Directive:
			return p.parseDirective()
		default:
			return p.parseRuleSet()
		}
	case ctxRuleSet:
		switch k {
		case token.KwTrigger:
			if p.lx.Peek2().Kind == token.KwEvent {
				return p.parseEventTrigger()
			}
			return p.parsePropertyTrigger()
		case token.KwTransition:
			return p.parseTransition()
		default:
			return p.parseRule()
		}
	case ctxTrigger:
		switch k {
		case token.KwSet:
			return p.parseSetAction()
		case token.KwPlayStoryboard:
			return p.parsePlayStoryboardAction()
		default:
			return p.parsePlaySfxAction()
		}
	case ctxStoryboard:
		return p.parseStoryboardTarget()
	case ctxTarget:
		return p.parseAnimation()
	default:
		return p.parseKeyframe()
	}
}

// parseSkipped gathers a run of tokens that cannot start an item of ctx
// into one empty statement. Inside a block the run stops before '}'.
func (p *Parser) parseSkipped(ctx blockContext) *syntax.EmptyStatement {
	var toks []*syntax.Token
	for {
		toks = append(toks, p.advance())
		k := p.lx.Peek().Kind
		if k == token.EOF || canStart(ctx, k) || (ctx != ctxDocument && k == token.RBrace) {
			break
		}
	}
	msg := fmt.Sprintf("unexpected %q", toks[0].Text())
	return syntax.NewSkippedWithError(diag.SynUnexpectedToken, msg, toks...)
}

// parseBlock parses '{' content '}'. Without '{' the block is empty and
// both braces are missing; only the first is reported.
func (p *Parser) parseBlock(ctx blockContext) *syntax.Block {
	if !p.at(token.LBrace) {
		open := p.missing(token.LBrace)
		return syntax.NewBlock(open, syntax.NewList(), missingSilent(token.RBrace))
	}
	open := p.advance()
	var items []syntax.Element
	for !p.atOr(token.RBrace, token.EOF) {
		items = append(items, p.parseContent(ctx))
	}
	closeBrace := p.expect(token.RBrace)
	return syntax.NewBlock(open, syntax.NewList(items...), closeBrace)
}

// parseBracedValue parses '{' raw-value '}'.
func (p *Parser) parseBracedValue() *syntax.PropertyValueWithBraces {
	if !p.at(token.LBrace) {
		open := p.missing(token.LBrace)
		return syntax.NewPropertyValueWithBraces(open, missingSilent(token.Value), missingSilent(token.RBrace))
	}
	open := p.advance()
	value := p.parseValue(lexer.ValueBraced, true)
	closeBrace := p.expect(token.RBrace)
	return syntax.NewPropertyValueWithBraces(open, value, closeBrace)
}
