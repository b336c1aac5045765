package syntax

// List holds repeated children. Separated lists interleave their
// separator tokens with the items.
type List struct {
	nodeBase
}

// NewList builds a list; nil items are not allowed.
func NewList(items ...Element) *List {
	for _, it := range items {
		if it == nil {
			panic("syntax: nil list item")
		}
	}
	l := &List{}
	l.init(l, KindList, items...)
	return l
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.slots)
}

func (l *List) At(i int) Element { return l.slots[i] }

// Items returns all children, separators included.
func (l *List) Items() []Element {
	if l == nil {
		return nil
	}
	return l.slots
}

// Nodes returns the children that are not tokens.
func (l *List) Nodes() []Node {
	if l == nil {
		return nil
	}
	out := make([]Node, 0, len(l.slots))
	for _, s := range l.slots {
		if n, ok := s.(Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// Separators returns the token children.
func (l *List) Separators() []*Token {
	if l == nil {
		return nil
	}
	var out []*Token
	for _, s := range l.slots {
		if t, ok := s.(*Token); ok {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) rebuild(slots []Element) Node { return NewList(slots...) }

// listOf collects the nodes of l that have type T.
func listOf[T Node](l *List) []T {
	var out []T
	for _, n := range l.Nodes() {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
