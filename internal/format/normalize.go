package format

import (
	"uvss/internal/syntax"
	"uvss/internal/token"
)

// Normalize returns a copy of n laid out canonically. Node kinds, slots,
// token texts and diagnostics are unchanged; only trivia is replaced.
// Normalizing a normalized tree yields the same text.
func Normalize(n syntax.Element) syntax.Element {
	return NormalizeWith(n, Options{})
}

// NormalizeDocument is Normalize for a document root.
func NormalizeDocument(doc *syntax.Document) *syntax.Document {
	out, ok := Normalize(doc).(*syntax.Document)
	if !ok {
		panic("format: document rebuilt as a different kind")
	}
	return out
}

func NormalizeWith(n syntax.Element, opt Options) syntax.Element {
	if n == nil {
		return nil
	}
	p := planner{}
	p.walk(n, 0, line(0))
	trivia := p.render(opt.withDefaults())
	return syntax.Rewrite(n, func(t *syntax.Token) *syntax.Token {
		tr := trivia[t]
		if t.TokenKind() == token.EOF {
			return t.WithTrivia(nil, tr)
		}
		return t.WithTrivia(tr, nil)
	})
}

type placed struct {
	tok *syntax.Token
	sep sep
}

// planner records, in document order, the separator each token wants.
type planner struct {
	toks []placed
}

func (p *planner) put(t *syntax.Token, s sep) {
	if t != nil {
		p.toks = append(p.toks, placed{tok: t, sep: s})
	}
}

// walk lays out e; first is the separator of its first token, every later
// token gets the separator its production prescribes.
func (p *planner) walk(e syntax.Element, indent int, first sep) {
	switch n := e.(type) {
	case nil:
	case *syntax.Token:
		p.put(n, first)
	case *syntax.Document:
		p.content(n.Content(), indent)
		p.put(n.EndOfFile(), line(0))
	case *syntax.Block:
		p.block(n, indent, first)
	case *syntax.EmptyStatement:
		p.put(n.Empty(), first)
	case *syntax.CultureDirective:
		p.put(n.Directive(), first)
		p.put(n.CultureToken(), space())
	case *syntax.RuleSet:
		p.selectorList(n.Selectors(), indent, first)
		p.block(n.Body(), indent, space())
	case *syntax.SelectorWithNavigation:
		p.walk(n.Selector(), indent, first)
		if n.Navigation() != nil {
			p.walk(n.Navigation(), indent, space())
		}
	case *syntax.Selector:
		s := first
		for _, c := range n.Components().Items() {
			p.walk(c, indent, s)
			s = space()
		}
	case *syntax.SelectorPart:
		s := first
		for _, sp := range n.SubPartList().Items() {
			p.walk(sp, indent, s)
			s = none()
		}
	case *syntax.SelectorWithParens:
		p.put(n.OpenParen(), first)
		p.walk(n.Selector(), indent, none())
		p.put(n.CloseParen(), none())
	case *syntax.NavigationExpression:
		p.put(n.Pipe(), first)
		p.walk(n.Property(), indent, space())
		if n.Indexer() != nil {
			p.walk(n.Indexer(), indent, none())
		}
		p.put(n.As(), space())
		p.put(n.TypeName(), space())
	case *syntax.PropertyValueWithBraces:
		p.put(n.OpenBrace(), first)
		p.put(n.Content(), space())
		p.put(n.CloseBrace(), space())
	case *syntax.Rule:
		p.walk(n.Name(), indent, first)
		p.put(n.Colon(), none())
		p.walk(n.Value(), indent, space())
		p.put(n.Important(), space())
		p.put(n.Semicolon(), none())
	case *syntax.Transition:
		p.put(n.Keyword(), first)
		p.walk(n.Arguments(), indent, space())
		p.put(n.Colon(), none())
		p.walk(n.Value(), indent, space())
		p.put(n.Important(), space())
		p.put(n.Semicolon(), none())
	case *syntax.ArgumentList:
		p.put(n.OpenParen(), first)
		s := none()
		for _, a := range n.List().Items() {
			if t, ok := a.(*syntax.Token); ok && t.TokenKind() == token.Comma {
				p.put(t, none())
				s = space()
				continue
			}
			p.walk(a, indent, s)
			s = space()
		}
		p.put(n.CloseParen(), none())
	case *syntax.PropertyTrigger:
		p.put(n.Trigger(), first)
		p.put(n.Property(), space())
		p.commaList(n.Conditions(), indent, space())
		p.put(n.Important(), space())
		p.block(n.Body(), indent, space())
	case *syntax.PropertyTriggerCondition:
		p.walk(n.Name(), indent, first)
		p.put(n.Operator(), space())
		p.walk(n.Value(), indent, space())
	case *syntax.EventTrigger:
		p.put(n.Trigger(), first)
		p.put(n.Event(), space())
		p.walk(n.Name(), indent, space())
		if n.Arguments() != nil {
			p.walk(n.Arguments(), indent, space())
		}
		p.put(n.Important(), space())
		p.block(n.Body(), indent, space())
	case *syntax.SetTriggerAction:
		p.put(n.Keyword(), first)
		p.walk(n.Property(), indent, space())
		if n.Selector() != nil {
			p.walk(n.Selector(), indent, space())
		}
		p.walk(n.Value(), indent, space())
	case *syntax.PlayStoryboardTriggerAction:
		p.put(n.Keyword(), first)
		if n.Selector() != nil {
			p.walk(n.Selector(), indent, space())
		}
		p.walk(n.Value(), indent, space())
	case *syntax.PlaySfxTriggerAction:
		p.put(n.Keyword(), first)
		p.walk(n.Value(), indent, space())
	case *syntax.Storyboard:
		p.put(n.At(), first)
		p.put(n.Name(), none())
		p.put(n.Loop(), space())
		p.block(n.Body(), indent, space())
	case *syntax.StoryboardTarget:
		p.put(n.Keyword(), first)
		p.put(n.TypeName(), space())
		if n.Selector() != nil {
			p.walk(n.Selector(), indent, space())
		}
		p.block(n.Body(), indent, space())
	case *syntax.Animation:
		p.put(n.Keyword(), first)
		p.walk(n.Property(), indent, space())
		if n.Navigation() != nil {
			p.walk(n.Navigation(), indent, space())
		}
		p.block(n.Body(), indent, space())
	case *syntax.AnimationKeyframe:
		p.put(n.Keyword(), first)
		p.put(n.Time(), space())
		p.put(n.Easing(), space())
		p.walk(n.Value(), indent, space())
	case *syntax.List:
		p.content(n, indent)
	case syntax.Node:
		// names, values, indexers and selector parts: tokens are glued
		s := first
		for i := range n.SlotCount() {
			if c := n.Slot(i); c != nil {
				p.walk(c, indent, s)
				s = none()
			}
		}
	}
}

// block lays out '{' content '}': content one level deeper, the closing
// brace on its own line at the level of the construct.
func (p *planner) block(b *syntax.Block, indent int, first sep) {
	p.put(b.OpenBrace(), first)
	p.content(b.Content(), indent+1)
	closing := line(indent)
	closing.commentIndent = indent + 1
	p.put(b.CloseBrace(), closing)
}

// content lays out items one per line; a blank line separates siblings
// unless both are line-level items.
func (p *planner) content(l *syntax.List, indent int) {
	var prev syntax.Element
	for _, it := range l.Items() {
		s := line(indent)
		if prev != nil && !(lineLevel(prev) && lineLevel(it)) {
			s.blank = true
		}
		p.walk(it, indent, s)
		prev = it
	}
}

// selectorList joins selectors with ", ".
func (p *planner) selectorList(l *syntax.List, indent int, first sep) {
	p.commaList(l, indent, first)
}

func (p *planner) commaList(l *syntax.List, indent int, first sep) {
	s := first
	for _, it := range l.Items() {
		if t, ok := it.(*syntax.Token); ok && t.TokenKind() == token.Comma {
			p.put(t, none())
			s = space()
			continue
		}
		p.walk(it, indent, s)
		s = space()
	}
}

func lineLevel(e syntax.Element) bool {
	switch e.(type) {
	case *syntax.Rule, *syntax.Transition,
		*syntax.SetTriggerAction, *syntax.PlayStoryboardTriggerAction, *syntax.PlaySfxTriggerAction,
		*syntax.AnimationKeyframe, *syntax.EmptyStatement,
		*syntax.CultureDirective, *syntax.UnknownDirective:
		return true
	}
	return false
}
