package syntax

import (
	"strings"

	"uvss/internal/token"
)

// RuleSet is a selector list followed by a block of rules, triggers and
// transitions.
type RuleSet struct {
	nodeBase
	selectors *List
	body      *Block
}

// Selectors is the comma separated selector list.
func (r *RuleSet) Selectors() *List { return r.selectors }
func (r *RuleSet) Body() *Block { return r.body }

// SelectorItems returns the selectors without separators.
func (r *RuleSet) SelectorItems() []*SelectorWithNavigation {
	return listOf[*SelectorWithNavigation](r.selectors)
}

func (r *RuleSet) Rules() []*Rule { return listOf[*Rule](r.body.content) }

func (r *RuleSet) rebuild(slots []Element) Node {
	return NewRuleSet(slotAs[*List](slots, 0), slotAs[*Block](slots, 1))
}

// SelectorWithNavigation is a selector optionally followed by a
// navigation expression.
type SelectorWithNavigation struct {
	nodeBase
	selector   *Selector
	navigation *NavigationExpression
}

func (s *SelectorWithNavigation) Selector() *Selector { return s.selector }

// Navigation is nil when absent.
func (s *SelectorWithNavigation) Navigation() *NavigationExpression { return s.navigation }

func (s *SelectorWithNavigation) rebuild(slots []Element) Node {
	return NewSelectorWithNavigation(slotAs[*Selector](slots, 0), slotAs[*NavigationExpression](slots, 1))
}

// Selector is a sequence of parts. Two parts without a combinator token
// between them are related by the descendant combinator.
type Selector struct {
	nodeBase
	components *List
}

// Components holds parts interleaved with '>' and '>>' tokens.
func (s *Selector) Components() *List { return s.components }
func (s *Selector) Parts() []*SelectorPart { return listOf[*SelectorPart](s.components) }
func (s *Selector) Combinators() []*Token { return s.components.Separators() }

func (s *Selector) rebuild(slots []Element) Node {
	return NewSelector(slotAs[*List](slots, 0))
}

// SelectorPart is a run of sub-parts with no whitespace between them,
// such as "Button#ok.primary:hover".
type SelectorPart struct {
	nodeBase
	subParts *List
}

func (p *SelectorPart) SubParts() []*SelectorSubPart { return listOf[*SelectorSubPart](p.subParts) }
func (p *SelectorPart) SubPartList() *List { return p.subParts }

// TypeName returns the type sub-part, if any.
func (p *SelectorPart) TypeName() *SelectorSubPart {
	for _, sp := range p.SubParts() {
		if sp.SubPartKind() == SubPartType || sp.SubPartKind() == SubPartUniversal {
			return sp
		}
	}
	return nil
}

func (p *SelectorPart) rebuild(slots []Element) Node {
	return NewSelectorPart(slotAs[*List](slots, 0))
}

// SubPartKind distinguishes selector sub-parts.
type SubPartKind uint8

const (
	SubPartType        SubPartKind = iota // Button, Button!
	SubPartUniversal                      // *
	SubPartID                             // #name
	SubPartClass                          // .name
	SubPartPseudoClass                    // :name
)

func (k SubPartKind) String() string {
	switch k {
	case SubPartType:
		return "Type"
	case SubPartUniversal:
		return "Universal"
	case SubPartID:
		return "ID"
	case SubPartClass:
		return "Class"
	case SubPartPseudoClass:
		return "PseudoClass"
	}
	return "SubPartKind(?)"
}

// SelectorSubPart is one of: a type name with an optional exact-type '!',
// '*', "#name", ".name" or ":name".
type SelectorSubPart struct {
	nodeBase
	prefix *Token
	name   *Token
	suffix *Token
}

// Prefix is '#', '.', ':' or nil.
func (s *SelectorSubPart) Prefix() *Token { return s.prefix }
func (s *SelectorSubPart) Name() *Token { return s.name }

// Suffix is the exact-type '!' or nil.
func (s *SelectorSubPart) Suffix() *Token { return s.suffix }

func (s *SelectorSubPart) SubPartKind() SubPartKind {
	if s.prefix != nil {
		switch s.prefix.kind {
		case token.Hash:
			return SubPartID
		case token.Dot:
			return SubPartClass
		default:
			return SubPartPseudoClass
		}
	}
	if s.name.kind == token.Star {
		return SubPartUniversal
	}
	return SubPartType
}

// IsExactType reports whether a type sub-part ends with '!'.
func (s *SelectorSubPart) IsExactType() bool { return s.suffix != nil }

func (s *SelectorSubPart) rebuild(slots []Element) Node {
	return NewSelectorSubPart(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2))
}

// SelectorWithParens is "(" selector ")".
type SelectorWithParens struct {
	nodeBase
	open     *Token
	selector *Selector
	close    *Token
}

func (s *SelectorWithParens) OpenParen() *Token { return s.open }
func (s *SelectorWithParens) Selector() *Selector { return s.selector }
func (s *SelectorWithParens) CloseParen() *Token { return s.close }

func (s *SelectorWithParens) rebuild(slots []Element) Node {
	return NewSelectorWithParens(slotAs[*Token](slots, 0), slotAs[*Selector](slots, 1), slotAs[*Token](slots, 2))
}

// NavigationExpression is "| property [index] as Type".
type NavigationExpression struct {
	nodeBase
	pipe     *Token
	property *PropertyName
	indexer  *Indexer
	as       *Token
	typeName *Token
}

func (n *NavigationExpression) Pipe() *Token { return n.pipe }
func (n *NavigationExpression) Property() *PropertyName { return n.property }

// Indexer is nil when absent.
func (n *NavigationExpression) Indexer() *Indexer { return n.indexer }
func (n *NavigationExpression) As() *Token { return n.as }
func (n *NavigationExpression) TypeName() *Token { return n.typeName }

func (n *NavigationExpression) rebuild(slots []Element) Node {
	return NewNavigationExpression(slotAs[*Token](slots, 0), slotAs[*PropertyName](slots, 1),
		slotAs[*Indexer](slots, 2), slotAs[*Token](slots, 3), slotAs[*Token](slots, 4))
}

// Indexer is "[" number "]".
type Indexer struct {
	nodeBase
	open   *Token
	number *Token
	close  *Token
}

func (i *Indexer) OpenBracket() *Token { return i.open }
func (i *Indexer) Number() *Token { return i.number }
func (i *Indexer) CloseBracket() *Token { return i.close }

// Value returns the index when the literal is a non-negative integer.
func (i *Indexer) Value() (int, bool) {
	v, ok := i.number.Number()
	if !ok || v < 0 || v != float64(int(v)) || strings.Contains(i.number.text, ".") {
		return 0, false
	}
	return int(v), true
}

func (i *Indexer) rebuild(slots []Element) Node {
	return NewIndexer(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2))
}
