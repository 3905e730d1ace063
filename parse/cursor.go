package parse

import "bytes"

// cursor is a forward only reader over one protocol line. Stages
// consume bytes left to right and never re-read what an earlier stage
// consumed; pos doubles as the byte offset reported in errors.
type cursor struct {
	buf []byte
	pos int
}

// rest returns the unconsumed remainder of the line.
func (c *cursor) rest() []byte {
	return c.buf[c.pos:]
}

// empty reports whether the line is exhausted.
func (c *cursor) empty() bool {
	return c.pos >= len(c.buf)
}

// peek returns the next byte without consuming it, or false when the
// line is exhausted.
func (c *cursor) peek() (byte, bool) {
	if c.empty() {
		return 0, false
	}
	return c.buf[c.pos], true
}

// skip consumes a single byte.
func (c *cursor) skip() {
	c.pos++
}

// until returns the bytes before the first occurrence of delim and
// consumes through the delimiter. The leading slice is empty when the
// delimiter comes first. Returns false without consuming anything when
// the delimiter never occurs.
func (c *cursor) until(delim byte) ([]byte, bool) {
	i := bytes.IndexByte(c.rest(), delim)
	if i < 0 {
		return nil, false
	}
	tok := c.buf[c.pos : c.pos+i]
	c.pos += i + 1
	return tok, true
}

// word returns the longest run of bytes before the next single space,
// consuming the space as well.
func (c *cursor) word() ([]byte, bool) {
	return c.until(' ')
}
