package syntax

import "uvss/internal/token"

// PropertyName is "name", "Owner.name" or the escaped "[name]" form,
// which allows keywords as names.
type PropertyName struct {
	nodeBase
	openBracket  *Token
	owner        *Token
	period       *Token
	name         *Token
	closeBracket *Token
}

func (p *PropertyName) OpenBracket() *Token { return p.openBracket }
func (p *PropertyName) Owner() *Token { return p.owner }
func (p *PropertyName) Period() *Token { return p.period }
func (p *PropertyName) Name() *Token { return p.name }
func (p *PropertyName) CloseBracket() *Token { return p.closeBracket }

// IsEscaped reports whether the name is written in brackets.
func (p *PropertyName) IsEscaped() bool { return p.openBracket != nil }

// QualifiedName returns "Owner.name" or "name" without brackets or trivia.
func (p *PropertyName) QualifiedName() string {
	if p.owner != nil {
		return p.owner.text + "." + p.name.text
	}
	return p.name.text
}

func (p *PropertyName) rebuild(slots []Element) Node {
	return NewPropertyName(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2),
		slotAs[*Token](slots, 3), slotAs[*Token](slots, 4))
}

// PropertyValue wraps raw value text.
type PropertyValue struct {
	nodeBase
	content *Token
}

func (v *PropertyValue) Content() *Token { return v.content }

// Value returns the raw value text.
func (v *PropertyValue) Value() string { return v.content.text }

func (v *PropertyValue) rebuild(slots []Element) Node {
	return NewPropertyValue(slotAs[*Token](slots, 0))
}

// PropertyValueWithBraces is "{" value "}".
type PropertyValueWithBraces struct {
	nodeBase
	open    *Token
	content *Token
	close   *Token
}

func (v *PropertyValueWithBraces) OpenBrace() *Token { return v.open }
func (v *PropertyValueWithBraces) Content() *Token { return v.content }
func (v *PropertyValueWithBraces) CloseBrace() *Token { return v.close }
func (v *PropertyValueWithBraces) Value() string { return v.content.text }

func (v *PropertyValueWithBraces) rebuild(slots []Element) Node {
	return NewPropertyValueWithBraces(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2))
}

// Rule is "name: value [!important];".
type Rule struct {
	nodeBase
	name      *PropertyName
	colon     *Token
	value     *PropertyValue
	important *Token
	semicolon *Token
}

func (r *Rule) Name() *PropertyName { return r.name }
func (r *Rule) Colon() *Token { return r.colon }
func (r *Rule) Value() *PropertyValue { return r.value }
func (r *Rule) Important() *Token { return r.important }
func (r *Rule) Semicolon() *Token { return r.semicolon }
func (r *Rule) IsImportant() bool { return r.important != nil && !r.important.missing }

func (r *Rule) rebuild(slots []Element) Node {
	return NewRule(slotAs[*PropertyName](slots, 0), slotAs[*Token](slots, 1), slotAs[*PropertyValue](slots, 2),
		slotAs[*Token](slots, 3), slotAs[*Token](slots, 4))
}

// Transition is "transition (group, from, to): value [!important];".
type Transition struct {
	nodeBase
	keyword   *Token
	args      *ArgumentList
	colon     *Token
	value     *PropertyValue
	important *Token
	semicolon *Token
}

func (t *Transition) Keyword() *Token { return t.keyword }
func (t *Transition) Arguments() *ArgumentList { return t.args }
func (t *Transition) Colon() *Token { return t.colon }
func (t *Transition) Value() *PropertyValue { return t.value }
func (t *Transition) Important() *Token { return t.important }
func (t *Transition) Semicolon() *Token { return t.semicolon }

func (t *Transition) rebuild(slots []Element) Node {
	return NewTransition(slotAs[*Token](slots, 0), slotAs[*ArgumentList](slots, 1), slotAs[*Token](slots, 2),
		slotAs[*PropertyValue](slots, 3), slotAs[*Token](slots, 4), slotAs[*Token](slots, 5))
}

// ArgumentList is "(" ident ("," ident)* ")".
type ArgumentList struct {
	nodeBase
	open  *Token
	args  *List
	close *Token
}

func (a *ArgumentList) OpenParen() *Token { return a.open }
func (a *ArgumentList) List() *List { return a.args }
func (a *ArgumentList) CloseParen() *Token { return a.close }

// Arguments returns the argument tokens without separators.
func (a *ArgumentList) Arguments() []*Token {
	var out []*Token
	for _, t := range a.args.Separators() {
		if t.kind != token.Comma {
			out = append(out, t)
		}
	}
	return out
}

func (a *ArgumentList) rebuild(slots []Element) Node {
	return NewArgumentList(slotAs[*Token](slots, 0), slotAs[*List](slots, 1), slotAs[*Token](slots, 2))
}

// PropertyTrigger fires its actions while all conditions hold.
type PropertyTrigger struct {
	nodeBase
	trigger    *Token
	property   *Token
	conditions *List
	important  *Token
	body       *Block
}

func (p *PropertyTrigger) Trigger() *Token { return p.trigger }
func (p *PropertyTrigger) Property() *Token { return p.property }

// Conditions is the comma separated condition list.
func (p *PropertyTrigger) Conditions() *List { return p.conditions }
func (p *PropertyTrigger) Important() *Token { return p.important }
func (p *PropertyTrigger) Body() *Block { return p.body }

func (p *PropertyTrigger) ConditionItems() []*PropertyTriggerCondition {
	return listOf[*PropertyTriggerCondition](p.conditions)
}

func (p *PropertyTrigger) rebuild(slots []Element) Node {
	return NewPropertyTrigger(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*List](slots, 2),
		slotAs[*Token](slots, 3), slotAs[*Block](slots, 4))
}

// PropertyTriggerCondition is "name op { value }".
type PropertyTriggerCondition struct {
	nodeBase
	name  *PropertyName
	op    *Token
	value *PropertyValueWithBraces
}

func (c *PropertyTriggerCondition) Name() *PropertyName { return c.name }
func (c *PropertyTriggerCondition) Operator() *Token { return c.op }
func (c *PropertyTriggerCondition) Value() *PropertyValueWithBraces { return c.value }

func (c *PropertyTriggerCondition) rebuild(slots []Element) Node {
	return NewPropertyTriggerCondition(slotAs[*PropertyName](slots, 0), slotAs[*Token](slots, 1),
		slotAs[*PropertyValueWithBraces](slots, 2))
}

// EventTrigger fires its actions when a routed event is raised.
type EventTrigger struct {
	nodeBase
	trigger   *Token
	event     *Token
	name      *EventName
	args      *ArgumentList
	important *Token
	body      *Block
}

func (e *EventTrigger) Trigger() *Token { return e.trigger }
func (e *EventTrigger) Event() *Token { return e.event }
func (e *EventTrigger) Name() *EventName { return e.name }
func (e *EventTrigger) Arguments() *ArgumentList { return e.args }
func (e *EventTrigger) Important() *Token { return e.important }
func (e *EventTrigger) Body() *Block { return e.body }

func (e *EventTrigger) rebuild(slots []Element) Node {
	return NewEventTrigger(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*EventName](slots, 2),
		slotAs[*ArgumentList](slots, 3), slotAs[*Token](slots, 4), slotAs[*Block](slots, 5))
}

// EventName is "name" or "Owner.name".
type EventName struct {
	nodeBase
	owner  *Token
	period *Token
	name   *Token
}

func (e *EventName) Owner() *Token { return e.owner }
func (e *EventName) Period() *Token { return e.period }
func (e *EventName) Name() *Token { return e.name }

func (e *EventName) rebuild(slots []Element) Node {
	return NewEventName(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2))
}

// SetTriggerAction is "set name [(selector)] { value }".
type SetTriggerAction struct {
	nodeBase
	keyword  *Token
	property *PropertyName
	selector *SelectorWithParens
	value    *PropertyValueWithBraces
}

func (s *SetTriggerAction) Keyword() *Token { return s.keyword }
func (s *SetTriggerAction) Property() *PropertyName { return s.property }
func (s *SetTriggerAction) Selector() *SelectorWithParens { return s.selector }
func (s *SetTriggerAction) Value() *PropertyValueWithBraces { return s.value }

func (s *SetTriggerAction) rebuild(slots []Element) Node {
	return NewSetTriggerAction(slotAs[*Token](slots, 0), slotAs[*PropertyName](slots, 1),
		slotAs[*SelectorWithParens](slots, 2), slotAs[*PropertyValueWithBraces](slots, 3))
}

// PlayStoryboardTriggerAction is "play-storyboard [(selector)] { name }".
type PlayStoryboardTriggerAction struct {
	nodeBase
	keyword  *Token
	selector *SelectorWithParens
	value    *PropertyValueWithBraces
}

func (p *PlayStoryboardTriggerAction) Keyword() *Token { return p.keyword }
func (p *PlayStoryboardTriggerAction) Selector() *SelectorWithParens { return p.selector }
func (p *PlayStoryboardTriggerAction) Value() *PropertyValueWithBraces { return p.value }

func (p *PlayStoryboardTriggerAction) rebuild(slots []Element) Node {
	return NewPlayStoryboardTriggerAction(slotAs[*Token](slots, 0), slotAs[*SelectorWithParens](slots, 1),
		slotAs[*PropertyValueWithBraces](slots, 2))
}

// PlaySfxTriggerAction is "play-sfx { name }".
type PlaySfxTriggerAction struct {
	nodeBase
	keyword *Token
	value   *PropertyValueWithBraces
}

func (p *PlaySfxTriggerAction) Keyword() *Token { return p.keyword }
func (p *PlaySfxTriggerAction) Value() *PropertyValueWithBraces { return p.value }

func (p *PlaySfxTriggerAction) rebuild(slots []Element) Node {
	return NewPlaySfxTriggerAction(slotAs[*Token](slots, 0), slotAs[*PropertyValueWithBraces](slots, 1))
}
