package httpwire

import "errors"

// Message-level parsing errors. Field-section failures are wrapped into
// HeaderError or TrailerError instead, preserving the field-level cause for
// errors.Is.
var (
	ErrVersionMalformed   = errors.New("version malformed")
	ErrMethodUnsupported  = errors.New("unsupported method")
	ErrMalformedStartLine = errors.New("start line is malformed")
	ErrInvalidResource    = errors.New("invalid resource")

	// ErrBodyLongerThanStream reports data past the end of the declared
	// body: the Content-Length is smaller than what remains in the buffer,
	// and there is no other framing mechanism to consume the rest.
	ErrBodyLongerThanStream = errors.New("data past the declared Content-Length")
	// ErrBodyIncomplete reports the opposite: the buffer ended before the
	// declared Content-Length was reached.
	ErrBodyIncomplete = errors.New("stream ended before Content-Length was reached")
)

// HeaderError wraps a field-section failure met while parsing headers.
type HeaderError struct {
	Err error
}

func (e *HeaderError) Error() string {
	return "header: " + e.Err.Error()
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// TrailerError wraps a field-section failure met while parsing trailers.
type TrailerError struct {
	Err error
}

func (e *TrailerError) Error() string {
	return "trailer: " + e.Err.Error()
}

func (e *TrailerError) Unwrap() error {
	return e.Err
}
