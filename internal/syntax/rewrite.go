package syntax

// Rewrite rebuilds the tree rooted at e, passing every token through fn.
// fn must return a token; returning the input (or any token that already
// has a parent) is fine, it is copied. Diagnostics on nodes are carried
// over unchanged. The original tree is not modified.
func Rewrite(e Element, fn func(*Token) *Token) Element {
	switch e := e.(type) {
	case nil:
		return nil
	case *Token:
		out := fn(e)
		if out == nil {
			panic("syntax: Rewrite callback returned nil")
		}
		if out == e || out.parent != nil {
			out = out.clone()
		}
		return out
	case Node:
		slots := make([]Element, e.SlotCount())
		for i := range slots {
			slots[i] = Rewrite(e.Slot(i), fn)
		}
		n := e.rebuild(slots)
		if d := e.Diagnostics(); len(d) > 0 {
			n.base().diags = append([]Diagnostic(nil), d...)
		}
		return n
	}
	panic("syntax: unknown element type")
}

// Inspect walks the tree in document order. If visit returns false the
// children of that element are skipped. Tokens inside skipped-token trivia
// are not visited.
func Inspect(e Element, visit func(Element) bool) {
	if e == nil || !visit(e) {
		return
	}
	for i := 0; i < e.SlotCount(); i++ {
		if s := e.Slot(i); s != nil {
			Inspect(s, visit)
		}
	}
}

// Tokens returns all tokens of e in document order, missing ones included.
func Tokens(e Element) []*Token {
	var out []*Token
	Inspect(e, func(el Element) bool {
		if t, ok := el.(*Token); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
