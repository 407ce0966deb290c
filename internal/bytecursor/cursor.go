package bytecursor

import "bytes"

// Cursor is a forward-only view over a byte buffer. It never copies: every
// operation reslices the shared backing storage, so anything taken off the
// cursor stays alive as long as somebody references it.
type Cursor struct {
	data []byte
}

func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// AdvanceByte consumes b and reports true if the cursor starts with it,
// otherwise leaves the cursor untouched.
func (c *Cursor) AdvanceByte(b byte) bool {
	if len(c.data) == 0 || c.data[0] != b {
		return false
	}

	c.data = c.data[1:]
	return true
}

// AdvanceBytes consumes prefix and reports true if the cursor starts with it,
// otherwise leaves the cursor untouched.
func (c *Cursor) AdvanceBytes(prefix []byte) bool {
	if !bytes.HasPrefix(c.data, prefix) {
		return false
	}

	c.data = c.data[len(prefix):]
	return true
}

// AdvanceString is AdvanceBytes for string literals.
func (c *Cursor) AdvanceString(prefix string) bool {
	if len(c.data) < len(prefix) || string(c.data[:len(prefix)]) != prefix {
		return false
	}

	c.data = c.data[len(prefix):]
	return true
}

// AdvanceWhile consumes the maximal prefix satisfying pred and returns the
// number of bytes consumed.
func (c *Cursor) AdvanceWhile(pred func(byte) bool) (n int) {
	for n < len(c.data) && pred(c.data[n]) {
		n++
	}

	c.data = c.data[n:]
	return n
}

// TakeOne consumes and returns the next byte. The bool is false on an
// exhausted cursor.
func (c *Cursor) TakeOne() (byte, bool) {
	if len(c.data) == 0 {
		return 0, false
	}

	b := c.data[0]
	c.data = c.data[1:]
	return b, true
}

// Take consumes the first n bytes and returns them as a view into the
// backing storage. n must not exceed Len.
func (c *Cursor) Take(n int) []byte {
	taken := c.data[:n]
	c.data = c.data[n:]
	return taken
}

// TakeWhile consumes the maximal prefix satisfying pred and returns it as a
// view into the backing storage.
func (c *Cursor) TakeWhile(pred func(byte) bool) []byte {
	n := 0
	for n < len(c.data) && pred(c.data[n]) {
		n++
	}

	return c.Take(n)
}

// TakeWhileMax is TakeWhile with the prefix capped at max bytes.
func (c *Cursor) TakeWhileMax(pred func(byte) bool, max int) []byte {
	n := 0
	for n < len(c.data) && n < max && pred(c.data[n]) {
		n++
	}

	return c.Take(n)
}

// At returns the byte at offset i without consuming anything.
func (c *Cursor) At(i int) byte {
	return c.data[i]
}

// Rest returns the remaining bytes without consuming them.
func (c *Cursor) Rest() []byte {
	return c.data
}

func (c *Cursor) Len() int {
	return len(c.data)
}

func (c *Cursor) Empty() bool {
	return len(c.data) == 0
}
