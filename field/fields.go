package field

import (
	"iter"

	"github.com/indigo-web/httpwire/chars"
	"github.com/indigo-web/httpwire/config"
	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type entry struct {
	name   string
	values *Values
}

// Fields is an ordered mapping from a field name to its values, used for
// both headers and trailers. Insertion order is preserved and reproduced by
// serialization. Names are compared byte-exact: no case folding, which is a
// deliberate deviation from RFC 9110. Lookups use linear search, which beats
// a map on the entry counts real messages carry.
type Fields struct {
	entries []entry
}

func NewFields() *Fields {
	return new(Fields)
}

// Parse reads the field section off the cursor, the terminating blank line
// included. Values of a name met repeatedly are appended to the earlier
// entry, keeping its position.
func Parse(c *bytecursor.Cursor, limits config.Fields) (*Fields, error) {
	fields := NewFields()

	for !c.Empty() && isAlnum(c.At(0)) {
		name := c.TakeWhileMax(isTchar, limits.MaxNameLength)
		if len(name) == 0 {
			return nil, ErrNameMissing
		}

		if !c.AdvanceByte(':') {
			return nil, ErrMalformed
		}

		c.AdvanceByte(' ')

		cfg := ForName(uf.B2S(name))
		if existing, found := fields.Get(uf.B2S(name)); found {
			if err := existing.extendFromCursor(c, limits.MaxValueLength); err != nil {
				return nil, err
			}
		} else {
			values, err := parseValues(c, cfg, limits.MaxValueLength)
			if err != nil {
				return nil, err
			}

			fields.entries = append(fields.entries, entry{name: uf.B2S(name), values: values})
		}

		if !c.AdvanceString(chars.CRLF) {
			return nil, ErrMalformed
		}
	}

	if !c.AdvanceString(chars.CRLF) {
		return nil, ErrIncorrectlyTerminated
	}

	return fields, nil
}

// Add appends the value under the name, creating the entry on first use.
// The value is stored verbatim; use AddValue with FromRaw for values that
// may need quoting.
func (f *Fields) Add(name, value string) *Fields {
	if existing, found := f.Get(name); found {
		existing.Push(value)
		return f
	}

	f.entries = append(f.entries, entry{name: name, values: NewValues(value, ForName(name))})
	return f
}

// AddValue appends an already constructed value under the name.
func (f *Fields) AddValue(name string, v Value) *Fields {
	if existing, found := f.Get(name); found {
		existing.PushValue(v)
		return f
	}

	values := &Values{first: v, cfg: ForName(name)}
	f.entries = append(f.entries, entry{name: name, values: values})
	return f
}

// Get returns the values stored under the name.
func (f *Fields) Get(name string) (*Values, bool) {
	for _, e := range f.entries {
		if e.name == name {
			return e.values, true
		}
	}

	return nil, false
}

// GetSingle returns the value under the name only if it is the only one.
func (f *Fields) GetSingle(name string) (Value, bool) {
	values, found := f.Get(name)
	if !found || !values.IsSingle() {
		return Value{}, false
	}

	return values.First(), true
}

func (f *Fields) ContainsName(name string) bool {
	_, found := f.Get(name)
	return found
}

// ContainsValue reports whether any of the name's values equals value
// byte-exact.
func (f *Fields) ContainsValue(name, value string) bool {
	values, found := f.Get(name)
	if !found {
		return false
	}

	for v := range values.Iter() {
		if uf.B2S(v.raw) == value {
			return true
		}
	}

	return false
}

// ContainsValueFold is ContainsValue with the values compared
// case-insensitively. The name itself stays byte-exact.
func (f *Fields) ContainsValueFold(name, value string) bool {
	values, found := f.Get(name)
	if !found {
		return false
	}

	for v := range values.Iter() {
		if strcomp.EqualFold(uf.B2S(v.raw), value) {
			return true
		}
	}

	return false
}

// ContainsValueExact reports whether the name holds exactly one value and it
// equals value.
func (f *Fields) ContainsValueExact(name, value string) bool {
	values, found := f.Get(name)
	return found && values.IsSingle() && uf.B2S(values.First().raw) == value
}

// ContainsValues reports whether every given value occurs under the name.
func (f *Fields) ContainsValues(name string, values ...string) bool {
	for _, value := range values {
		if !f.ContainsValue(name, value) {
			return false
		}
	}

	return true
}

// ContainsValuesExact is ContainsValues requiring the counts to match, too.
func (f *Fields) ContainsValuesExact(name string, values ...string) bool {
	stored, found := f.Get(name)
	if !found || stored.Count() != len(values) {
		return false
	}

	return f.ContainsValues(name, values...)
}

// Iter yields the entries in insertion order.
func (f *Fields) Iter() iter.Seq2[string, *Values] {
	return func(yield func(string, *Values) bool) {
		for _, e := range f.entries {
			if !yield(e.name, e.values) {
				return
			}
		}
	}
}

func (f *Fields) Len() int {
	return len(f.entries)
}

func (f *Fields) Empty() bool {
	return len(f.entries) == 0
}

// AppendTo writes the wire form: one "name: values" line per entry in
// insertion order, each CRLF-terminated, plus the closing CRLF when the
// collection is non-empty.
func (f *Fields) AppendTo(buff []byte) []byte {
	for _, e := range f.entries {
		buff = append(buff, e.name...)
		buff = append(buff, ": "...)
		buff = e.values.AppendTo(buff)
		buff = append(buff, chars.CRLF...)
	}

	if !f.Empty() {
		buff = append(buff, chars.CRLF...)
	}

	return buff
}

// Serialize allocates the wire form of the whole section.
func (f *Fields) Serialize() []byte {
	return f.AppendTo(nil)
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func isTchar(b byte) bool {
	return chars.Tchar[b] != 0
}
