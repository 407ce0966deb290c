package field

import (
	"github.com/indigo-web/httpwire/chars"
	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/utils/arena"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

// Value is a single validated field value. Once constructed it always
// satisfies the grammar it was validated against; values parsed off the wire
// reference the connection buffer directly, values that had to be rewritten
// own their bytes.
type Value struct {
	raw   []byte
	ascii bool
}

// FromRaw turns an arbitrary in-memory byte string into a valid value. If
// every byte is representable unquoted under the configuration's root rules,
// the value is stored as-is; otherwise it is wrapped into a quoted string
// with every byte the quoted-text table rejects escaped by a backslash.
func FromRaw(src []byte, cfg Config) Value {
	return FromRawIn(nil, src, cfg)
}

// FromRawIn is FromRaw with owned bytes packed into the arena. Values not
// fitting the arena fall back to their own allocations.
func FromRawIn(a *arena.Arena[byte], src []byte, cfg Config) Value {
	ascii := true
	escapes := 0
	rewrite := false
	v := NewValidator(cfg)

	for _, b := range src {
		ascii = ascii && b < 0x80

		if chars.QuotedText[b] == 0 {
			escapes++
		}

		if class, err := v.Advance(b); err != nil || class != Visible {
			rewrite = true
		}
	}

	if !rewrite && v.InRootScope() {
		return Value{raw: ownedCopy(a, src), ascii: ascii}
	}

	return Value{raw: escapeQuoted(a, src, escapes), ascii: ascii}
}

// newValue wraps builder-supplied bytes verbatim. The ascii flag is set
// conservatively: only when every byte belongs to the configuration's class.
func newValue(raw []byte, cfg Config) Value {
	ascii := true
	for _, b := range raw {
		if !cfg.Allows(b) {
			ascii = false
			break
		}
	}

	return Value{raw: raw, ascii: ascii}
}

// parseValue scans one value off the cursor up to a terminating list comma
// or CR, which stays unconsumed.
func parseValue(c *bytecursor.Cursor, cfg Config, maxLen int) (Value, error) {
	v := NewValidator(cfg)
	ascii := true

	for i, b := range c.Rest() {
		ascii = ascii && b < 0x80

		_, err := v.Advance(b)
		switch err {
		case nil:
		case errValueEnd:
			return Value{raw: c.Take(i), ascii: ascii}, nil
		default:
			return Value{}, err
		}

		if i >= maxLen {
			return Value{}, ErrValueTooLong
		}
	}

	return Value{}, ErrIncorrectlyTerminated
}

// Bytes returns the value in its wire form, always grammar-valid.
func (v Value) Bytes() []byte {
	return v.raw
}

// AsString returns the value as a string without copying. The bool is false
// for values that were flagged non-ASCII on construction.
func (v Value) AsString() (string, bool) {
	if !v.ascii {
		return "", false
	}

	return uf.B2S(v.raw), true
}

// IsASCII reports the flag computed on construction; it is never re-derived.
func (v Value) IsASCII() bool {
	return v.ascii
}

// Unquote re-walks the stored value and strips the structural bytes: the
// surrounding quotes, comment parentheses and escaping backslashes. Visible
// and opaque bytes survive in their original order. Values produced by this
// library always re-validate; ErrInvalidData guards external ones.
func (v Value) Unquote(cfg Config) ([]byte, error) {
	out := buffer.NewBuffer[byte](len(v.raw), len(v.raw))
	val := NewValidator(cfg)
	from := 0

	for i, b := range v.raw {
		class, err := val.Advance(b)
		if err != nil {
			return nil, ErrInvalidData
		}

		if class == Structural {
			if !out.Append(v.raw[from:i]...) {
				return nil, ErrInvalidData
			}

			from = i + 1
		}
	}

	if !out.Append(v.raw[from:]...) {
		return nil, ErrInvalidData
	}

	return out.Finish(), nil
}

func ownedCopy(a *arena.Arena[byte], src []byte) []byte {
	if a != nil && a.Append(src...) {
		return a.Finish()
	}

	return append([]byte(nil), src...)
}

func escapeQuoted(a *arena.Arena[byte], src []byte, escapes int) []byte {
	if a != nil {
		if out, ok := escapeQuotedArena(a, src); ok {
			return out
		}

		// abandon whatever was partially written
		_ = a.Finish()
	}

	out := make([]byte, 0, len(src)+escapes+2)
	out = append(out, '"')
	out = appendEscaped(out, src)

	return append(out, '"')
}

func escapeQuotedArena(a *arena.Arena[byte], src []byte) ([]byte, bool) {
	if !a.Append('"') {
		return nil, false
	}

	from := 0
	for i, b := range src {
		if chars.QuotedText[b] == 0 {
			if !a.Append(src[from:i]...) || !a.Append('\\') {
				return nil, false
			}

			from = i
		}
	}

	if !a.Append(src[from:]...) || !a.Append('"') {
		return nil, false
	}

	return a.Finish(), true
}

func appendEscaped(dst, src []byte) []byte {
	from := 0
	for i, b := range src {
		if chars.QuotedText[b] == 0 {
			dst = append(dst, src[from:i]...)
			dst = append(dst, '\\')
			from = i
		}
	}

	return append(dst, src[from:]...)
}
