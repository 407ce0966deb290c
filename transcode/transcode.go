// Package transcode holds byte-level conversions shared by parsing and by
// consumers resolving percent-encoded resource paths.
package transcode

import (
	"bytes"
	"errors"

	"github.com/indigo-web/httpwire/internal/hexconv"
)

var ErrInvalidEncoding = errors.New("invalid percent-encoded sequence")

// Digit maps an ASCII decimal digit to its value. Any other byte maps to
// 0xff, so a single `>= 10` comparison validates the input.
func Digit(b byte) byte {
	if b < '0' || b > '9' {
		return 0xff
	}

	return b - '0'
}

// PercentDecode resolves %XX escapes in src, leaving all other bytes as
// they are. A truncated or non-hex escape fails the whole input.
func PercentDecode(src []byte) ([]byte, error) {
	percent := bytes.IndexByte(src, '%')
	if percent == -1 {
		return append([]byte(nil), src...), nil
	}

	out := make([]byte, 0, len(src))

	for percent != -1 {
		if percent >= len(src)-2 {
			return nil, ErrInvalidEncoding
		}

		a, b := hexconv.Halfbyte[src[percent+1]], hexconv.Halfbyte[src[percent+2]]
		if a|b > 0x0f {
			return nil, ErrInvalidEncoding
		}

		out = append(out, src[:percent]...)
		out = append(out, (a<<4)|b)
		src = src[percent+3:]
		percent = bytes.IndexByte(src, '%')
	}

	return append(out, src...), nil
}
