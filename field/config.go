package field

import "github.com/indigo-web/httpwire/chars"

// Config selects the grammar a field's values are validated and escaped
// against. Map is the base classification table for root scope; the flags
// switch the quoted-string, comment and comma-list constructions on and off.
type Config struct {
	Map      *[256]byte
	Comments bool
	Quotes   bool
	Commas   bool
}

// Generic is the configuration of every field not recognized otherwise.
func Generic() Config {
	return Config{Map: &chars.Token, Comments: true, Quotes: true, Commas: true}
}

// Dates treats the comma as a part of the value, as date stamps contain one.
func Dates() Config {
	return Config{Map: &chars.Date, Comments: true, Quotes: true, Commas: true}
}

// ForName returns the configuration the named field is parsed with. Names
// are matched byte-exact, like everywhere else across the library.
func ForName(name string) Config {
	switch name {
	case "Date", "Last-Modified", "Expires":
		return Dates()
	default:
		return Generic()
	}
}

// Allows reports whether the byte may appear in a stored value under this
// configuration, counting the structural quote and parenthesis bytes in.
func (c Config) Allows(b byte) bool {
	return c.Map[b] != 0 ||
		c.Comments && (b == '(' || b == ')') ||
		c.Quotes && b == '"'
}
