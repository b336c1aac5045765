package format

// Options controls the rendered layout. The zero value selects the
// canonical layout: one tab per level and CRLF line breaks.
type Options struct {
	// Indent is repeated once per nesting level.
	Indent string
	// Newline terminates every line.
	Newline string
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = "\t"
	}
	if o.Newline == "" {
		o.Newline = "\r\n"
	}
	return o
}
