// Package syntax holds the full-fidelity syntax tree.
//
// Every byte of the source lives in exactly one token: either in its Text
// or in one of its trivia. Nodes only aggregate children, so the full text
// of a tree is the in-order concatenation of its tokens and
// ToFullString(Parse(s)) == s for any input.
//
// Trees are immutable once built. An element gets its parent exactly once,
// when it is placed into a node; absolute positions are never stored and
// are derived from parent links and the full widths of preceding siblings.
// Transformations such as normalization build new trees with Rewrite.
//
// Diagnostics are attached to the element that caused them with offsets
// relative to that element, and resolved to absolute spans on demand.
package syntax
