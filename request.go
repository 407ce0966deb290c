package httpwire

import (
	"strconv"

	"github.com/indigo-web/httpwire/chars"
	"github.com/indigo-web/httpwire/config"
	"github.com/indigo-web/httpwire/field"
	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/httpwire/method"
	"github.com/indigo-web/httpwire/version"
	"github.com/indigo-web/utils/uf"
)

// Request is a parsed or built HTTP/1.1 request. Structures of a parsed
// request reference the buffer it was parsed from; the buffer must outlive
// them.
type Request struct {
	Method   method.Method
	Path     []byte
	Version  version.Version
	Headers  *field.Fields
	Body     []byte
	Trailers *field.Fields
}

// NewRequest returns an HTTP/1.1 request with the Host header seeded.
func NewRequest(host string, m method.Method, path string) *Request {
	return &Request{
		Method:   m,
		Path:     uf.S2B(path),
		Version:  version.Version{Major: 1, Minor: 1},
		Headers:  field.NewFields().Add("Host", host),
		Trailers: field.NewFields(),
	}
}

// ParseRequest parses a complete request held in buf under default limits.
func ParseRequest(buf []byte) (*Request, error) {
	return ParseRequestWith(config.Default(), buf)
}

func ParseRequestWith(cfg *config.Config, buf []byte) (*Request, error) {
	c := bytecursor.New(buf)

	m := method.Parse(c)
	if m == method.Unknown {
		return nil, ErrMethodUnsupported
	}

	if !c.AdvanceByte(' ') {
		return nil, ErrMalformedStartLine
	}

	path := c.TakeWhile(func(b byte) bool { return chars.URI[b] != 0 })
	if len(path) == 0 {
		return nil, ErrInvalidResource
	}

	if !c.AdvanceByte(' ') {
		return nil, ErrMalformedStartLine
	}

	ver, err := version.Parse(c)
	if err != nil {
		return nil, ErrVersionMalformed
	}

	if !c.AdvanceString(chars.CRLF) {
		return nil, ErrMalformedStartLine
	}

	headers, err := field.Parse(c, cfg.Fields)
	if err != nil {
		return nil, &HeaderError{err}
	}

	body, err := parseBody(c, headers)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:   m,
		Path:     path,
		Version:  ver,
		Headers:  headers,
		Body:     body,
		Trailers: field.NewFields(),
	}, nil
}

// AppendTo writes the request's wire form.
func (r *Request) AppendTo(buff []byte) []byte {
	buff = append(buff, r.Method.String()...)
	buff = append(buff, ' ')
	buff = append(buff, r.Path...)
	buff = append(buff, ' ')
	buff = r.Version.AppendTo(buff)
	buff = append(buff, chars.CRLF...)
	buff = r.Headers.AppendTo(buff)
	buff = append(buff, r.Body...)

	return r.Trailers.AppendTo(buff)
}

// Serialize allocates the request's wire form.
func (r *Request) Serialize() []byte {
	return r.AppendTo(make([]byte, 0, 256))
}

// parseBody slices the declared Content-Length worth of bytes off the
// cursor, which must hold exactly that many: trailing data cannot be framed
// without chunked encoding, and missing data means a truncated stream.
func parseBody(c *bytecursor.Cursor, headers *field.Fields) ([]byte, error) {
	length := contentLength(headers)
	switch {
	case length < c.Len():
		return nil, ErrBodyLongerThanStream
	case length > c.Len():
		return nil, ErrBodyIncomplete
	}

	return c.Take(length), nil
}

// contentLength reads the Content-Length header; missing or unparsable
// values yield 0.
func contentLength(headers *field.Fields) int {
	values, found := headers.Get("Content-Length")
	if !found {
		return 0
	}

	s, ok := values.First().AsString()
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
