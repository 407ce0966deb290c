// Package chars holds the byte classification tables the field-value grammar
// is built on. Each table maps a byte to itself when the byte belongs to the
// class and to zero otherwise. Zero is never a member of any class, so it
// doubles as the "not in class" sentinel; the tables are only ever probed,
// never emitted.
//
// The tables are computed once at init and must never be mutated.
package chars

const CRLF = "\r\n"

var (
	// URI covers the characters allowed in a request path.
	URI [256]byte
	// Tchar covers RFC 9110 token characters, used for field names.
	Tchar [256]byte
	// Token extends Tchar with delimiters and the space character, used for
	// generic field values. The comma, double quote and opening parenthesis
	// stay out: they separate list members and open quoted strings and
	// comments respectively.
	Token [256]byte
	// Date covers the single-value date fields (Date, Last-Modified,
	// Expires), where the comma is part of the value rather than a list
	// separator.
	Date [256]byte
	// Ctext covers RFC 9110 comment text.
	Ctext [256]byte
	// QuotedText covers RFC 9110 quoted-string text.
	QuotedText [256]byte
)

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func in(c byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}

	return false
}

func init() {
	for i := 0; i < 256; i++ {
		c := byte(i)

		if isAlnum(c) || in(c, `:|?#[]@!$&'()*+,;=%-._~/`) {
			URI[i] = c
		}

		if isAlnum(c) || in(c, "!#$%&'*+-.^_`|~") {
			Tchar[i] = c
		}

		if Tchar[i] != 0 || in(c, ")/:;<=>?@[]{} ") {
			Token[i] = c
		}

		if isAlnum(c) || in(c, " ,:") {
			Date[i] = c
		}

		if c == '\t' || c == ' ' || c >= '!' && c <= '\'' || c >= '*' && c <= '[' || c >= ']' && c <= '~' || c >= 0x80 {
			Ctext[i] = c
		}

		if c == '\t' || c == ' ' || c == 0x21 || c >= 0x23 && c <= 0x5b || c >= 0x5d && c <= 0x7e || c >= 0x80 {
			QuotedText[i] = c
		}
	}
}
