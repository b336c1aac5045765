// Package diag holds the diagnostic records produced while lexing and
// parsing style sheets, together with the small containers that collect
// them.
//
// A Diagnostic has a Severity, a Code with a stable textual ID (LEX1xxx,
// SYN2xxx, SEM3xxx, IO4xxx, OBS6xxx), a message, a primary span and
// optional notes and fixes. A missing token is reported with an empty span
// at the point where it was expected, and its fix inserts the token there.
//
// Producers hand diagnostics to a Reporter; a Bag stores them up to a
// limit. Nothing here prints: see internal/diagfmt.
package diag
