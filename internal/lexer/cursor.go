package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"uvss/internal/source"
)

// Cursor walks the bytes of one file. Reads past Limit yield zero bytes.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
}

func NewCursor(f *source.File) Cursor {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("%s: content too large: %w", f.Path, err))
	}
	return Cursor{File: f, Limit: n}
}

// Rest is the unread input.
func (c *Cursor) Rest() []byte { return c.File.Content[c.Off:c.Limit] }

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// At looks k bytes ahead without moving.
func (c *Cursor) At(k uint32) (byte, bool) {
	if c.Off+k >= c.Limit {
		return 0, false
	}
	return c.File.Content[c.Off+k], true
}

func (c *Cursor) Peek() byte {
	b, _ := c.At(0)
	return b
}

// Peek2 fails unless two bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if b1, ok = c.At(1); !ok {
		return 0, 0, false
	}
	return c.File.Content[c.Off], b1, true
}

func (c *Cursor) HasPrefix(s string) bool { return bytes.HasPrefix(c.Rest(), []byte(s)) }

// Bump consumes one byte and returns it, or 0 at EOF.
func (c *Cursor) Bump() byte {
	b, ok := c.At(0)
	if ok {
		c.Off++
	}
	return b
}

// BumpN consumes up to n bytes.
func (c *Cursor) BumpN(n uint32) { c.Off = min(c.Off+n, c.Limit) }

// Eat consumes b when it is next.
func (c *Cursor) Eat(b byte) bool {
	if next, ok := c.At(0); ok && next == b {
		c.Off++
		return true
	}
	return false
}

// Mark remembers an offset for SpanFrom and Reset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}
