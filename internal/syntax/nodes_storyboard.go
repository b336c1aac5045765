package syntax

// Storyboard is "@name [loop] { targets }".
type Storyboard struct {
	nodeBase
	at   *Token
	name *Token
	loop *Token
	body *Block
}

func (s *Storyboard) At() *Token { return s.at }
func (s *Storyboard) Name() *Token { return s.name }

// Loop is the optional loop behavior identifier.
func (s *Storyboard) Loop() *Token { return s.loop }
func (s *Storyboard) Body() *Block { return s.body }

func (s *Storyboard) Targets() []*StoryboardTarget { return listOf[*StoryboardTarget](s.body.content) }

func (s *Storyboard) rebuild(slots []Element) Node {
	return NewStoryboard(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2),
		slotAs[*Block](slots, 3))
}

// StoryboardTarget is "target [Type] [(selector)] { animations }".
type StoryboardTarget struct {
	nodeBase
	keyword  *Token
	typeName *Token
	selector *SelectorWithParens
	body     *Block
}

func (t *StoryboardTarget) Keyword() *Token { return t.keyword }
func (t *StoryboardTarget) TypeName() *Token { return t.typeName }
func (t *StoryboardTarget) Selector() *SelectorWithParens { return t.selector }
func (t *StoryboardTarget) Body() *Block { return t.body }

func (t *StoryboardTarget) Animations() []*Animation { return listOf[*Animation](t.body.content) }

func (t *StoryboardTarget) rebuild(slots []Element) Node {
	return NewStoryboardTarget(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1),
		slotAs[*SelectorWithParens](slots, 2), slotAs[*Block](slots, 3))
}

// Animation is "animation Property [navigation] { keyframes }".
type Animation struct {
	nodeBase
	keyword    *Token
	property   *PropertyName
	navigation *NavigationExpression
	body       *Block
}

func (a *Animation) Keyword() *Token { return a.keyword }
func (a *Animation) Property() *PropertyName { return a.property }
func (a *Animation) Navigation() *NavigationExpression { return a.navigation }
func (a *Animation) Body() *Block { return a.body }

func (a *Animation) Keyframes() []*AnimationKeyframe { return listOf[*AnimationKeyframe](a.body.content) }

func (a *Animation) rebuild(slots []Element) Node {
	return NewAnimation(slotAs[*Token](slots, 0), slotAs[*PropertyName](slots, 1),
		slotAs[*NavigationExpression](slots, 2), slotAs[*Block](slots, 3))
}

// AnimationKeyframe is "keyframe time [easing] { value }".
type AnimationKeyframe struct {
	nodeBase
	keyword *Token
	time    *Token
	easing  *Token
	value   *PropertyValueWithBraces
}

func (k *AnimationKeyframe) Keyword() *Token { return k.keyword }
func (k *AnimationKeyframe) Time() *Token { return k.time }
func (k *AnimationKeyframe) Easing() *Token { return k.easing }
func (k *AnimationKeyframe) Value() *PropertyValueWithBraces { return k.value }

func (k *AnimationKeyframe) rebuild(slots []Element) Node {
	return NewAnimationKeyframe(slotAs[*Token](slots, 0), slotAs[*Token](slots, 1), slotAs[*Token](slots, 2),
		slotAs[*PropertyValueWithBraces](slots, 3))
}
