package syntax

import (
	"strings"

	"uvss/internal/diag"
)

// Element is implemented by *Token and by every node.
type Element interface {
	Kind() Kind
	// FullWidth is the number of bytes covered, trivia included.
	FullWidth() int
	// Parent is nil for roots and for tokens inside skipped-token trivia.
	Parent() Node
	// Index is the slot the element occupies in its parent.
	Index() int
	SlotCount() int
	// Slot returns nil for absent optional children.
	Slot(i int) Element
	// Diagnostics returns the diagnostics attached to this element only.
	Diagnostics() []Diagnostic

	Position() int
	FullPosition() int
	Width() int
	// ToFullString is the exact source text, trivia included.
	ToFullString() string
	// String is the source text without the outer trivia.
	String() string
	GetLeadingTrivia() []Trivia
	GetTrailingTrivia() []Trivia
	// GetDiagnostics resolves the subtree's diagnostics to absolute spans.
	GetDiagnostics() []diag.Diagnostic

	writeTo(b *strings.Builder)
	setParent(p Node, index int)
	addDiagnostics(d []Diagnostic)
}

// Node is an element with children.
type Node interface {
	Element
	base() *nodeBase
	rebuild(slots []Element) Node
}

type nodeBase struct {
	self      Node
	kind      Kind
	fullWidth int
	slots     []Element
	diags     []Diagnostic
	parent    Node
	index     int
}

// init records the slots of self and adopts them.
func (n *nodeBase) init(self Node, kind Kind, slots ...Element) {
	n.self = self
	n.kind = kind
	n.slots = slots
	for i, s := range slots {
		if s == nil {
			continue
		}
		n.fullWidth += s.FullWidth()
		s.setParent(self, i)
	}
}

func (n *nodeBase) base() *nodeBase { return n }
func (n *nodeBase) Kind() Kind { return n.kind }
func (n *nodeBase) FullWidth() int { return n.fullWidth }
func (n *nodeBase) Parent() Node { return n.parent }
func (n *nodeBase) Index() int { return n.index }
func (n *nodeBase) SlotCount() int { return len(n.slots) }
func (n *nodeBase) Diagnostics() []Diagnostic { return n.diags }

func (n *nodeBase) Slot(i int) Element {
	if i < 0 || i >= len(n.slots) {
		return nil
	}
	return n.slots[i]
}

func (n *nodeBase) writeTo(b *strings.Builder) {
	for _, s := range n.slots {
		if s != nil {
			s.writeTo(b)
		}
	}
}

func (n *nodeBase) setParent(p Node, index int) {
	if n.parent != nil {
		panic("syntax: " + n.kind.String() + " already has a parent")
	}
	n.parent = p
	n.index = index
}

func (n *nodeBase) addDiagnostics(d []Diagnostic) {
	if n.parent != nil {
		panic("syntax: diagnostics must be attached before the element is placed")
	}
	n.diags = append(n.diags, d...)
}

// Position is the offset of the first byte of e after its leading trivia.
func (n *nodeBase) Position() int { return Position(n.self) }

// FullPosition is the offset of the first byte of e including trivia.
func (n *nodeBase) FullPosition() int { return FullPosition(n.self) }

// Width is the full width minus leading and trailing trivia.
func (n *nodeBase) Width() int { return Width(n.self) }

func (n *nodeBase) ToFullString() string { return ToFullString(n.self) }
func (n *nodeBase) String() string { return Text(n.self) }
func (n *nodeBase) GetLeadingTrivia() []Trivia { return LeadingTrivia(n.self) }
func (n *nodeBase) GetTrailingTrivia() []Trivia { return TrailingTrivia(n.self) }

// optional converts a possibly nil child pointer into an Element that is
// nil when absent, so Slot never returns a typed nil.
func optional[T any, PT interface {
	*T
	Element
}](p PT) Element {
	if p == nil {
		return nil
	}
	return p
}

// slotAs returns the slot converted to T, or the zero T when absent.
func slotAs[T Element](slots []Element, i int) T {
	var zero T
	if i >= len(slots) || slots[i] == nil {
		return zero
	}
	t, ok := slots[i].(T)
	if !ok {
		return zero
	}
	return t
}

// Root returns the topmost ancestor of e.
func Root(e Element) Element {
	for {
		p := e.Parent()
		if p == nil {
			return e
		}
		e = p
	}
}

// FullPosition returns the absolute offset of e including its leading trivia.
func FullPosition(e Element) int {
	pos := 0
	for {
		p := e.Parent()
		if p == nil {
			return pos
		}
		for i := 0; i < e.Index(); i++ {
			if s := p.Slot(i); s != nil {
				pos += s.FullWidth()
			}
		}
		e = p
	}
}

// Position returns the absolute offset of e excluding its leading trivia.
func Position(e Element) int {
	return FullPosition(e) + triviaWidth(LeadingTrivia(e))
}

// Width returns the width of e without its leading and trailing trivia.
func Width(e Element) int {
	w := e.FullWidth() - triviaWidth(LeadingTrivia(e)) - triviaWidth(TrailingTrivia(e))
	return max(w, 0)
}

// FirstToken returns the first token of e that is not missing, or nil.
func FirstToken(e Element) *Token {
	if e == nil {
		return nil
	}
	if t, ok := e.(*Token); ok {
		if t.missing {
			return nil
		}
		return t
	}
	for i := 0; i < e.SlotCount(); i++ {
		if t := FirstToken(e.Slot(i)); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the last token of e that is not missing, or nil.
func LastToken(e Element) *Token {
	if e == nil {
		return nil
	}
	if t, ok := e.(*Token); ok {
		if t.missing {
			return nil
		}
		return t
	}
	for i := e.SlotCount() - 1; i >= 0; i-- {
		if t := LastToken(e.Slot(i)); t != nil {
			return t
		}
	}
	return nil
}

// LeadingTrivia returns the leading trivia of the first present token of e.
func LeadingTrivia(e Element) []Trivia {
	if t := FirstToken(e); t != nil {
		return t.leading
	}
	return nil
}

// TrailingTrivia returns the trailing trivia of the last present token of e.
func TrailingTrivia(e Element) []Trivia {
	if t := LastToken(e); t != nil {
		return t.trailing
	}
	return nil
}

// ToFullString returns the exact source text of e, trivia included.
func ToFullString(e Element) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(e.FullWidth())
	e.writeTo(&b)
	return b.String()
}

// Text returns the source text of e without its outer trivia.
func Text(e Element) string {
	full := ToFullString(e)
	lead := triviaWidth(LeadingTrivia(e))
	trail := triviaWidth(TrailingTrivia(e))
	if lead+trail > len(full) {
		return ""
	}
	return full[lead : len(full)-trail]
}

func triviaWidth(list []Trivia) int {
	w := 0
	for _, tr := range list {
		w += len(tr.Text)
	}
	return w
}
