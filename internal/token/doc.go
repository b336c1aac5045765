// Package token defines lexical token kinds and trivia for uvss style sheets.
// Invariants:
//   - Token.Text is the exact source slice for the token (no copies, no unescaping).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace, line breaks and comments never appear in the token stream;
//     they are carried as Leading trivia of the following token, or as
//     Trailing trivia of the EOF token at the end of the input.
//   - Keywords are recognized only on an exact identifier match, so
//     "set-handled" is an identifier while "set" is KwSet.
//   - Property values are raw text; the lexer produces a single Value token
//     only when the parser asks for one (lexer.ScanValue).
package token
