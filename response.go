package httpwire

import (
	"time"

	"github.com/indigo-web/httpwire/chars"
	"github.com/indigo-web/httpwire/config"
	"github.com/indigo-web/httpwire/field"
	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/httpwire/status"
	"github.com/indigo-web/httpwire/version"
)

// Response is a parsed or built HTTP/1.1 response.
type Response struct {
	Version  version.Version
	Code     status.Code
	Headers  *field.Fields
	Body     []byte
	Trailers *field.Fields
}

// NewResponse returns an HTTP/1.1 response with the Date header seeded by
// the current moment in the IMF-fixdate form.
func NewResponse(code status.Code) *Response {
	return &Response{
		Version:  version.Version{Major: 1, Minor: 1},
		Code:     code,
		Headers:  field.NewFields().Add("Date", imfNow()),
		Trailers: field.NewFields(),
	}
}

// ParseResponse parses a complete response held in buf under default limits.
func ParseResponse(buf []byte) (*Response, error) {
	return ParseResponseWith(config.Default(), buf)
}

func ParseResponseWith(cfg *config.Config, buf []byte) (*Response, error) {
	c := bytecursor.New(buf)

	ver, err := version.Parse(c)
	if err != nil {
		return nil, ErrVersionMalformed
	}

	if !c.AdvanceByte(' ') {
		return nil, ErrMalformedStartLine
	}

	code, err := status.Parse(c)
	if err != nil {
		return nil, err
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

	return &Response{
		Version:  ver,
		Code:     code,
		Headers:  headers,
		Body:     body,
		Trailers: field.NewFields(),
	}, nil
}

// AppendTo writes the response's wire form. The status line always carries
// the canonical reason phrase of the code.
func (r *Response) AppendTo(buff []byte) []byte {
	buff = r.Version.AppendTo(buff)
	buff = append(buff, ' ')
	buff = append(buff, r.Code.Line()...)
	buff = append(buff, chars.CRLF...)
	buff = r.Headers.AppendTo(buff)
	buff = append(buff, r.Body...)

	return r.Trailers.AppendTo(buff)
}

// Serialize allocates the response's wire form.
func (r *Response) Serialize() []byte {
	return r.AppendTo(make([]byte, 0, 256))
}

func imfNow() string {
	return time.Now().UTC().Format("Mon, 02 Jan 2006 15:04:05") + " GMT"
}
