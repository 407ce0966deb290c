package method

import "github.com/indigo-web/httpwire/internal/bytecursor"

// Method is one of the nine supported HTTP request methods.
type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	PATCH
	OPTIONS
	CONNECT
	TRACE
)

// List contains every supported method, Unknown excluded.
var List = []Method{GET, HEAD, POST, PUT, DELETE, PATCH, OPTIONS, CONNECT, TRACE}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case HEAD:
		return "HEAD"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	case PATCH:
		return "PATCH"
	case OPTIONS:
		return "OPTIONS"
	case CONNECT:
		return "CONNECT"
	case TRACE:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Parse consumes a method literal off the cursor. The candidates are tried
// in the order of statistical popularity; no method is a prefix of another,
// so the first match is the only possible one. On Unknown nothing is
// consumed.
func Parse(c *bytecursor.Cursor) Method {
	for _, m := range List {
		if c.AdvanceString(m.String()) {
			return m
		}
	}

	return Unknown
}
