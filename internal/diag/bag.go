package diag

import (
	"cmp"
	"slices"
)

// Bag is a bounded, ordered collection of diagnostics.
type Bag struct {
	items []Diagnostic
	limit int
}

// NewBag returns a bag that holds at most limit diagnostics.
func NewBag(limit int) *Bag {
	limit = max(limit, 0)
	return &Bag{items: make([]Diagnostic, 0, min(limit, 64)), limit: limit}
}

// Add appends d and reports whether it fit under the limit.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.limit }
func (b *Bag) Len() int { return len(b.items) }

// Items returns the backing slice. Do not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Counts returns the number of errors and warnings.
func (b *Bag) Counts() (errors, warnings int) {
	for _, d := range b.items {
		switch {
		case d.Severity >= SevError:
			errors++
		case d.Severity == SevWarning:
			warnings++
		}
	}
	return errors, warnings
}

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

func (b *Bag) HasWarnings() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevWarning })
}

// Merge appends every diagnostic of other, raising the limit when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
	b.limit = max(b.limit, len(b.items))
}

// Filter keeps the diagnostics for which keep returns true.
func (b *Bag) Filter(keep func(Diagnostic) bool) {
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool { return !keep(d) })
}

// Transform replaces every diagnostic with fn(d).
func (b *Bag) Transform(fn func(Diagnostic) Diagnostic) {
	for i, d := range b.items {
		b.items[i] = fn(d)
	}
}

// Sort orders by file and span; at the same span errors come first.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
