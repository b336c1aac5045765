// Package format normalizes syntax trees: it rebuilds a tree with every
// whitespace trivia replaced by canonical layout (tabs, CRLF, fixed
// spacing) while keeping comments and skipped tokens.
package format
