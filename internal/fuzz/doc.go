// Package fuzztests houses Go fuzz harnesses for the style sheet front end
// (source -> lexer -> parser -> normalizer). They check that arbitrary
// input never panics or hangs and that the tree invariants of
// internal/testkit hold for it.
package fuzztests
