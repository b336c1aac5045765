package syntax

import (
	"fmt"

	"uvss/internal/diag"
	"uvss/internal/source"
	"uvss/internal/token"
)

// The constructors below are shared by the parser, the normalizer and
// tests. They check slot shapes and panic on contract violations; they
// never see user input directly.

func need[T any, PT interface {
	*T
	Element
}](p PT, what string) {
	if p == nil {
		panic("syntax: missing " + what)
	}
}

func needToken(t *Token, what string, kinds ...token.Kind) {
	if t == nil {
		panic("syntax: missing " + what)
	}
	checkToken(t, what, kinds)
}

func optToken(t *Token, what string, kinds ...token.Kind) {
	if t != nil {
		checkToken(t, what, kinds)
	}
}

func checkToken(t *Token, what string, kinds []token.Kind) {
	for _, k := range kinds {
		if t.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("syntax: %s: unexpected %s token", what, t.kind))
}

var nameKinds = []token.Kind{
	token.Ident,
	token.KwTrigger, token.KwProperty, token.KwEvent, token.KwSet,
	token.KwPlayStoryboard, token.KwPlaySfx, token.KwTransition,
	token.KwTarget, token.KwAnimation, token.KwKeyframe, token.KwAs,
}

// NewDocument builds a document that is not bound to a file.
func NewDocument(content *List, eof *Token) *Document {
	return NewDocumentInFile(0, content, eof)
}

// NewDocumentInFile builds a document whose diagnostics resolve into file.
func NewDocumentInFile(file source.FileID, content *List, eof *Token) *Document {
	need(content, "document content")
	needToken(eof, "end of file", token.EOF)
	d := &Document{content: content, eof: eof, file: file}
	d.init(d, KindDocument, content, eof)
	return d
}

func NewBlock(open *Token, content *List, closeBrace *Token) *Block {
	needToken(open, "block open brace", token.LBrace)
	need(content, "block content")
	needToken(closeBrace, "block close brace", token.RBrace)
	b := &Block{open: open, content: content, close: closeBrace}
	b.init(b, KindBlock, open, content, closeBrace)
	return b
}

// NewEmptyStatement wraps an Empty token, usually carrying skipped tokens.
func NewEmptyStatement(empty *Token) *EmptyStatement {
	needToken(empty, "empty statement token", token.Empty)
	e := &EmptyStatement{empty: empty}
	e.init(e, KindEmptyStatement, empty)
	return e
}

// NewSkipped builds an empty statement around skipped tokens.
func NewSkipped(tokens ...*Token) *EmptyStatement {
	return NewEmptyStatement(NewToken(token.Empty, "", nil, []Trivia{SkippedTokens(tokens...)}, nil))
}

// NewSkippedWithError builds an empty statement around skipped tokens with
// an error covering their text. The statement's own position is after the
// skipped trivia, so the diagnostic reaches back over it.
func NewSkippedWithError(code diag.Code, msg string, tokens ...*Token) *EmptyStatement {
	stmt := NewSkipped(tokens...)
	total := 0
	for _, t := range tokens {
		total += t.FullWidth()
	}
	lead, trail := 0, 0
	if len(tokens) > 0 {
		lead = triviaWidth(tokens[0].leading)
		trail = triviaWidth(tokens[len(tokens)-1].trailing)
	}
	return Attach(stmt, Diagnostic{
		Code:     code,
		Severity: diag.SevError,
		Message:  msg,
		Offset:   lead - total,
		Width:    max(total-lead-trail, 0),
	})
}

func NewCultureDirective(directive, culture *Token) *CultureDirective {
	needToken(directive, "culture directive", token.Directive)
	needToken(culture, "culture name", token.String)
	c := &CultureDirective{directive: directive, culture: culture}
	c.init(c, KindCultureDirective, directive, culture)
	return c
}

func NewUnknownDirective(directive *Token) *UnknownDirective {
	needToken(directive, "directive", token.Directive)
	u := &UnknownDirective{directive: directive}
	u.init(u, KindUnknownDirective, directive)
	return u
}

func NewRuleSet(selectors *List, body *Block) *RuleSet {
	need(selectors, "selector list")
	need(body, "rule set body")
	r := &RuleSet{selectors: selectors, body: body}
	r.init(r, KindRuleSet, selectors, body)
	return r
}

func NewSelectorWithNavigation(sel *Selector, nav *NavigationExpression) *SelectorWithNavigation {
	need(sel, "selector")
	s := &SelectorWithNavigation{selector: sel, navigation: nav}
	s.init(s, KindSelectorWithNavigation, sel, optional(nav))
	return s
}

func NewSelector(components *List) *Selector {
	need(components, "selector components")
	s := &Selector{components: components}
	s.init(s, KindSelector, components)
	return s
}

func NewSelectorPart(subParts *List) *SelectorPart {
	need(subParts, "selector sub-parts")
	p := &SelectorPart{subParts: subParts}
	p.init(p, KindSelectorPart, subParts)
	return p
}

// NewSelectorSubPart builds a sub-part. With a prefix ('#', '.', ':') the
// name may be any identifier or keyword; without one it is a type name or
// '*', and a type name may carry the exact-type '!' suffix.
func NewSelectorSubPart(prefix, name, suffix *Token) *SelectorSubPart {
	optToken(prefix, "selector prefix", token.Hash, token.Dot, token.Colon)
	if prefix != nil {
		needToken(name, "selector name", nameKinds...)
	} else {
		needToken(name, "selector type", token.Ident, token.Star)
	}
	optToken(suffix, "selector suffix", token.Bang)
	s := &SelectorSubPart{prefix: prefix, name: name, suffix: suffix}
	s.init(s, KindSelectorSubPart, optional(prefix), name, optional(suffix))
	return s
}

func NewSelectorWithParens(open *Token, sel *Selector, closeParen *Token) *SelectorWithParens {
	needToken(open, "selector open paren", token.LParen)
	need(sel, "selector")
	needToken(closeParen, "selector close paren", token.RParen)
	s := &SelectorWithParens{open: open, selector: sel, close: closeParen}
	s.init(s, KindSelectorWithParens, open, sel, closeParen)
	return s
}

func NewNavigationExpression(pipe *Token, prop *PropertyName, idx *Indexer, as, typeName *Token) *NavigationExpression {
	needToken(pipe, "navigation pipe", token.Pipe)
	need(prop, "navigation property")
	needToken(as, "navigation 'as'", token.KwAs)
	needToken(typeName, "navigation type", token.Ident)
	n := &NavigationExpression{pipe: pipe, property: prop, indexer: idx, as: as, typeName: typeName}
	n.init(n, KindNavigationExpression, pipe, prop, optional(idx), as, typeName)
	return n
}

func NewIndexer(open, number, closeBracket *Token) *Indexer {
	needToken(open, "indexer open bracket", token.LBracket)
	needToken(number, "indexer value", token.Number)
	needToken(closeBracket, "indexer close bracket", token.RBracket)
	i := &Indexer{open: open, number: number, close: closeBracket}
	i.init(i, KindIndexer, open, number, closeBracket)
	return i
}

// NewPropertyName builds "name", "owner.name" or their bracketed forms.
// Owner and period come together.
func NewPropertyName(openBracket, owner, period, name, closeBracket *Token) *PropertyName {
	optToken(openBracket, "property open bracket", token.LBracket)
	kinds := []token.Kind{token.Ident}
	if openBracket != nil {
		kinds = nameKinds
		needToken(closeBracket, "property close bracket", token.RBracket)
	} else if closeBracket != nil {
		panic("syntax: property close bracket without open bracket")
	}
	optToken(owner, "property owner", kinds...)
	if (owner == nil) != (period == nil) {
		panic("syntax: property owner and period must come together")
	}
	optToken(period, "property period", token.Dot)
	needToken(name, "property name", kinds...)
	p := &PropertyName{openBracket: openBracket, owner: owner, period: period, name: name, closeBracket: closeBracket}
	p.init(p, KindPropertyName, optional(openBracket), optional(owner), optional(period), name, optional(closeBracket))
	return p
}

func NewPropertyValue(content *Token) *PropertyValue {
	needToken(content, "property value", token.Value)
	v := &PropertyValue{content: content}
	v.init(v, KindPropertyValue, content)
	return v
}

func NewPropertyValueWithBraces(open, content, closeBrace *Token) *PropertyValueWithBraces {
	needToken(open, "value open brace", token.LBrace)
	needToken(content, "property value", token.Value)
	needToken(closeBrace, "value close brace", token.RBrace)
	v := &PropertyValueWithBraces{open: open, content: content, close: closeBrace}
	v.init(v, KindPropertyValueWithBraces, open, content, closeBrace)
	return v
}

func NewRule(name *PropertyName, colon *Token, value *PropertyValue, important, semicolon *Token) *Rule {
	need(name, "rule name")
	needToken(colon, "rule colon", token.Colon)
	need(value, "rule value")
	optToken(important, "rule qualifier", token.KwImportant)
	needToken(semicolon, "rule semicolon", token.Semicolon)
	r := &Rule{name: name, colon: colon, value: value, important: important, semicolon: semicolon}
	r.init(r, KindRule, name, colon, value, optional(important), semicolon)
	return r
}

func NewTransition(kw *Token, args *ArgumentList, colon *Token, value *PropertyValue, important, semicolon *Token) *Transition {
	needToken(kw, "transition keyword", token.KwTransition)
	need(args, "transition arguments")
	needToken(colon, "transition colon", token.Colon)
	need(value, "transition value")
	optToken(important, "transition qualifier", token.KwImportant)
	needToken(semicolon, "transition semicolon", token.Semicolon)
	t := &Transition{keyword: kw, args: args, colon: colon, value: value, important: important, semicolon: semicolon}
	t.init(t, KindTransition, kw, args, colon, value, optional(important), semicolon)
	return t
}

// NewArgumentList builds "(" args ")"; args interleaves identifiers and commas.
func NewArgumentList(open *Token, args *List, closeParen *Token) *ArgumentList {
	needToken(open, "argument list open paren", token.LParen)
	need(args, "arguments")
	for _, it := range args.Items() {
		t, ok := it.(*Token)
		if !ok {
			panic("syntax: argument lists hold tokens only")
		}
		checkToken(t, "argument", append([]token.Kind{token.Comma}, nameKinds...))
	}
	needToken(closeParen, "argument list close paren", token.RParen)
	a := &ArgumentList{open: open, args: args, close: closeParen}
	a.init(a, KindArgumentList, open, args, closeParen)
	return a
}

func NewPropertyTrigger(trigger, property *Token, conditions *List, important *Token, body *Block) *PropertyTrigger {
	needToken(trigger, "trigger keyword", token.KwTrigger)
	needToken(property, "property keyword", token.KwProperty)
	need(conditions, "trigger conditions")
	optToken(important, "trigger qualifier", token.KwImportant)
	need(body, "trigger body")
	p := &PropertyTrigger{trigger: trigger, property: property, conditions: conditions, important: important, body: body}
	p.init(p, KindPropertyTrigger, trigger, property, conditions, optional(important), body)
	return p
}

func NewPropertyTriggerCondition(name *PropertyName, op *Token, value *PropertyValueWithBraces) *PropertyTriggerCondition {
	need(name, "condition property")
	needToken(op, "condition operator", token.Assign, token.NotEq, token.Lt, token.LtEq, token.Gt, token.GtEq)
	need(value, "condition value")
	c := &PropertyTriggerCondition{name: name, op: op, value: value}
	c.init(c, KindPropertyTriggerCondition, name, op, value)
	return c
}

func NewEventTrigger(trigger, event *Token, name *EventName, args *ArgumentList, important *Token, body *Block) *EventTrigger {
	needToken(trigger, "trigger keyword", token.KwTrigger)
	needToken(event, "event keyword", token.KwEvent)
	need(name, "event name")
	optToken(important, "trigger qualifier", token.KwImportant)
	need(body, "trigger body")
	e := &EventTrigger{trigger: trigger, event: event, name: name, args: args, important: important, body: body}
	e.init(e, KindEventTrigger, trigger, event, name, optional(args), optional(important), body)
	return e
}

func NewEventName(owner, period, name *Token) *EventName {
	optToken(owner, "event owner", token.Ident)
	if (owner == nil) != (period == nil) {
		panic("syntax: event owner and period must come together")
	}
	optToken(period, "event period", token.Dot)
	needToken(name, "event name", token.Ident)
	e := &EventName{owner: owner, period: period, name: name}
	e.init(e, KindEventName, optional(owner), optional(period), name)
	return e
}

func NewSetTriggerAction(kw *Token, prop *PropertyName, sel *SelectorWithParens, value *PropertyValueWithBraces) *SetTriggerAction {
	needToken(kw, "set keyword", token.KwSet)
	need(prop, "set property")
	need(value, "set value")
	s := &SetTriggerAction{keyword: kw, property: prop, selector: sel, value: value}
	s.init(s, KindSetTriggerAction, kw, prop, optional(sel), value)
	return s
}

func NewPlayStoryboardTriggerAction(kw *Token, sel *SelectorWithParens, value *PropertyValueWithBraces) *PlayStoryboardTriggerAction {
	needToken(kw, "play-storyboard keyword", token.KwPlayStoryboard)
	need(value, "storyboard name")
	p := &PlayStoryboardTriggerAction{keyword: kw, selector: sel, value: value}
	p.init(p, KindPlayStoryboardTriggerAction, kw, optional(sel), value)
	return p
}

func NewPlaySfxTriggerAction(kw *Token, value *PropertyValueWithBraces) *PlaySfxTriggerAction {
	needToken(kw, "play-sfx keyword", token.KwPlaySfx)
	need(value, "sound effect")
	p := &PlaySfxTriggerAction{keyword: kw, value: value}
	p.init(p, KindPlaySfxTriggerAction, kw, value)
	return p
}

func NewStoryboard(at, name, loop *Token, body *Block) *Storyboard {
	needToken(at, "storyboard '@'", token.At)
	needToken(name, "storyboard name", token.Ident)
	optToken(loop, "storyboard loop behavior", token.Ident)
	need(body, "storyboard body")
	s := &Storyboard{at: at, name: name, loop: loop, body: body}
	s.init(s, KindStoryboard, at, name, optional(loop), body)
	return s
}

func NewStoryboardTarget(kw, typeName *Token, sel *SelectorWithParens, body *Block) *StoryboardTarget {
	needToken(kw, "target keyword", token.KwTarget)
	optToken(typeName, "target type", token.Ident)
	need(body, "target body")
	t := &StoryboardTarget{keyword: kw, typeName: typeName, selector: sel, body: body}
	t.init(t, KindStoryboardTarget, kw, optional(typeName), optional(sel), body)
	return t
}

func NewAnimation(kw *Token, prop *PropertyName, nav *NavigationExpression, body *Block) *Animation {
	needToken(kw, "animation keyword", token.KwAnimation)
	need(prop, "animated property")
	need(body, "animation body")
	a := &Animation{keyword: kw, property: prop, navigation: nav, body: body}
	a.init(a, KindAnimation, kw, prop, optional(nav), body)
	return a
}

func NewAnimationKeyframe(kw, time, easing *Token, value *PropertyValueWithBraces) *AnimationKeyframe {
	needToken(kw, "keyframe keyword", token.KwKeyframe)
	needToken(time, "keyframe time", token.Number)
	optToken(easing, "keyframe easing", token.Ident)
	need(value, "keyframe value")
	k := &AnimationKeyframe{keyword: kw, time: time, easing: easing, value: value}
	k.init(k, KindAnimationKeyframe, kw, time, optional(easing), value)
	return k
}
