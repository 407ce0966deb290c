package field

import "github.com/indigo-web/httpwire/chars"

// Class is the validator's verdict on a single accepted byte.
type Class uint8

const (
	// Visible bytes carry the value's content and survive unquoting.
	Visible Class = iota
	// Structural bytes delimit quoted strings and comments (the quotes,
	// parentheses and escaping backslashes) and are dropped on unquoting.
	Structural
	// Opaque bytes (>= 0x80) are tolerated raw inside quoted strings and
	// comments and survive unquoting unvalidated.
	Opaque
)

func isOpaque(b byte) bool {
	return b >= 0x80
}

// Validator is the per-byte field value state machine. It tracks the
// quoted/escaped/commented state, classifies each accepted byte and fails
// the instant the grammar is violated. A validator which reported an error
// once is poisoned: every following Advance reports the same error again.
type Validator struct {
	cfg      Config
	quoted   bool
	escaped  bool
	comments int
	err      error
}

func NewValidator(cfg Config) Validator {
	return Validator{cfg: cfg}
}

// Advance feeds the next byte in. The returned error is one of
// ErrInvalidQuotedText, ErrInvalidComment, ErrInvalidToken or the internal
// end-of-value signal; the class is meaningful only when the error is nil.
func (v *Validator) Advance(b byte) (Class, error) {
	if v.err != nil {
		return 0, v.err
	}

	if v.quoted {
		switch {
		case v.escaped:
			v.escaped = false
			return Visible, nil
		case b == '\\':
			v.escaped = true
			return Structural, nil
		case b == '"':
			v.quoted = false
			return Structural, nil
		case chars.QuotedText[b] == 0:
			return 0, v.fail(ErrInvalidQuotedText)
		case isOpaque(b):
			return Opaque, nil
		default:
			return Visible, nil
		}
	}

	if v.comments > 0 {
		switch {
		case isOpaque(b):
			// ctext spans the whole high half, so this also covers it
			return Opaque, nil
		case chars.Ctext[b] != 0:
			return Visible, nil
		case v.cfg.Quotes && b == '"':
			v.quoted = true
			return Structural, nil
		case b == '(':
			v.comments++
			return Structural, nil
		case b == ')':
			v.comments--
			return Structural, nil
		default:
			return 0, v.fail(ErrInvalidComment)
		}
	}

	switch {
	case v.cfg.Map[b] != 0:
		return Visible, nil
	case v.cfg.Quotes && b == '"':
		v.quoted = true
		return Structural, nil
	case v.cfg.Comments && b == '(':
		v.comments = 1
		return Structural, nil
	case v.cfg.Commas && b == ',' || b == '\r':
		return 0, v.fail(errValueEnd)
	default:
		return 0, v.fail(ErrInvalidToken)
	}
}

// InRootScope reports whether every quoted string and comment opened so far
// has been closed.
func (v *Validator) InRootScope() bool {
	return !v.quoted && v.comments == 0
}

func (v *Validator) fail(err error) error {
	v.err = err
	return err
}
