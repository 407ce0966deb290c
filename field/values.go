package field

import (
	"iter"

	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/utils/ft"
	"github.com/indigo-web/utils/uf"
)

// Values is the ordered collection of one or more values sharing a field
// name: a single header line's comma-list, or several repeated occurrences
// of the name, in the order encountered.
type Values struct {
	first Value
	extra []Value
	cfg   Config
}

// NewValues wraps a builder-supplied value verbatim.
func NewValues(value string, cfg Config) *Values {
	return &Values{first: newValue(uf.S2B(value), cfg), cfg: cfg}
}

// Push appends another occurrence.
func (vs *Values) Push(value string) {
	vs.extra = append(vs.extra, newValue(uf.S2B(value), vs.cfg))
}

// PushValue appends an already constructed value, e.g. one built by FromRaw.
func (vs *Values) PushValue(v Value) {
	vs.extra = append(vs.extra, v)
}

func parseValues(c *bytecursor.Cursor, cfg Config, maxLen int) (*Values, error) {
	skipSpaces(c)

	first, err := parseValue(c, cfg, maxLen)
	if err != nil {
		return nil, err
	}

	vs := &Values{first: first, cfg: cfg}
	if c.AdvanceByte(',') {
		if err = vs.extendFromCursor(c, maxLen); err != nil {
			return nil, err
		}
	}

	return vs, nil
}

// extendFromCursor parses one more comma-list off the cursor, appending
// every member. Used both after a leading comma and for a repeated field
// name.
func (vs *Values) extendFromCursor(c *bytecursor.Cursor, maxLen int) error {
	for {
		skipSpaces(c)

		v, err := parseValue(c, vs.cfg, maxLen)
		if err != nil {
			return err
		}

		vs.extra = append(vs.extra, v)

		if !c.AdvanceByte(',') {
			return nil
		}
	}
}

// First returns the value guaranteed to exist.
func (vs *Values) First() Value {
	return vs.first
}

// Extra returns the values past the first one, possibly none.
func (vs *Values) Extra() []Value {
	return vs.extra
}

// IsSingle reports whether there is exactly one value.
func (vs *Values) IsSingle() bool {
	return len(vs.extra) == 0
}

// Count returns the number of values, always at least 1.
func (vs *Values) Count() int {
	return len(vs.extra) + 1
}

// Iter yields every value in order, the first one included.
func (vs *Values) Iter() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if !yield(vs.first) {
			return
		}

		for _, v := range vs.extra {
			if !yield(v) {
				return
			}
		}
	}
}

// Slices returns every value's wire bytes in order.
func (vs *Values) Slices() [][]byte {
	return append([][]byte{vs.first.Bytes()}, ft.Map(Value.Bytes, vs.extra)...)
}

// AppendTo writes the wire form: values verbatim, joined by ", ".
func (vs *Values) AppendTo(buff []byte) []byte {
	buff = append(buff, vs.first.raw...)
	for _, v := range vs.extra {
		buff = append(buff, ", "...)
		buff = append(buff, v.raw...)
	}

	return buff
}

// Serialize allocates the wire form of the whole list.
func (vs *Values) Serialize() []byte {
	size := len(vs.first.raw)
	for _, v := range vs.extra {
		size += len(v.raw) + 2
	}

	return vs.AppendTo(make([]byte, 0, size))
}

func skipSpaces(c *bytecursor.Cursor) {
	c.AdvanceWhile(func(b byte) bool { return b == ' ' })
}
