package httpwire

import (
	"strconv"

	"github.com/indigo-web/httpwire/config"
	"github.com/indigo-web/httpwire/field"
	"github.com/indigo-web/httpwire/method"
	"github.com/indigo-web/httpwire/status"
	"github.com/indigo-web/utils/arena"
	"github.com/indigo-web/utils/uf"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RequestBuilder accumulates a request fluently. The first error sticks and
// is reported by Finish; all later calls are no-ops.
type RequestBuilder struct {
	req *Request
	a   *arena.Arena[byte]
	err error
}

// BuildRequest starts a request off the Host header, the method and the
// request target, under default limits.
func BuildRequest(host string, m method.Method, path string) *RequestBuilder {
	return BuildRequestWith(config.Default(), host, m, path)
}

func BuildRequestWith(cfg *config.Config, host string, m method.Method, path string) *RequestBuilder {
	return &RequestBuilder{
		req: NewRequest(host, m, path),
		a:   newValueArena(cfg),
	}
}

// Header appends a header verbatim. The value must already satisfy the
// field grammar, otherwise the built request will not parse back.
func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
	if b.err == nil {
		b.req.Headers.Add(name, value)
	}

	return b
}

// HeaderEscaped appends a header off arbitrary bytes, quoting and escaping
// them as needed to keep the field grammar-valid.
func (b *RequestBuilder) HeaderEscaped(name string, raw []byte) *RequestBuilder {
	if b.err == nil {
		b.req.Headers.AddValue(name, field.FromRawIn(b.a, raw, field.ForName(name)))
	}

	return b
}

// Trailer appends a trailer field, serialized after the body.
func (b *RequestBuilder) Trailer(name, value string) *RequestBuilder {
	if b.err == nil {
		b.req.Trailers.Add(name, value)
	}

	return b
}

// Body attaches a plain text body, declaring its length and type.
func (b *RequestBuilder) Body(body string) *RequestBuilder {
	return b.BodyOfType(uf.S2B(body), "text/plain")
}

// BodyOfType attaches the body, declaring its length and the given type.
func (b *RequestBuilder) BodyOfType(body []byte, contentType string) *RequestBuilder {
	if b.err == nil {
		b.DeclareOfType(body, contentType)
		b.req.Body = body
	}

	return b
}

// Declare sets the Content-Length and Content-Type headers of the plain
// text body without attaching the body itself, as HEAD exchanges do.
func (b *RequestBuilder) Declare(body string) *RequestBuilder {
	return b.DeclareOfType(uf.S2B(body), "text/plain")
}

// DeclareOfType is Declare with an explicit content type.
func (b *RequestBuilder) DeclareOfType(body []byte, contentType string) *RequestBuilder {
	if b.err == nil {
		b.req.Headers.
			Add("Content-Length", strconv.Itoa(len(body))).
			Add("Content-Type", contentType)
	}

	return b
}

// JSON marshals the model into the body and flags it application/json.
func (b *RequestBuilder) JSON(model any) *RequestBuilder {
	if b.err != nil {
		return b
	}

	body, err := json.Marshal(model)
	if err != nil {
		b.err = err
		return b
	}

	return b.BodyOfType(body, "application/json")
}

// Finish hands the request over, or the first error met on the way.
func (b *RequestBuilder) Finish() (*Request, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.req, nil
}

// ResponseBuilder accumulates a response fluently, mirroring RequestBuilder.
type ResponseBuilder struct {
	resp *Response
	a    *arena.Arena[byte]
	err  error
}

// BuildResponse starts a response off the status code, under default
// limits. The Date header is seeded by the current moment.
func BuildResponse(code status.Code) *ResponseBuilder {
	return BuildResponseWith(config.Default(), code)
}

func BuildResponseWith(cfg *config.Config, code status.Code) *ResponseBuilder {
	return &ResponseBuilder{
		resp: NewResponse(code),
		a:    newValueArena(cfg),
	}
}

func (b *ResponseBuilder) Header(name, value string) *ResponseBuilder {
	if b.err == nil {
		b.resp.Headers.Add(name, value)
	}

	return b
}

func (b *ResponseBuilder) HeaderEscaped(name string, raw []byte) *ResponseBuilder {
	if b.err == nil {
		b.resp.Headers.AddValue(name, field.FromRawIn(b.a, raw, field.ForName(name)))
	}

	return b
}

func (b *ResponseBuilder) Trailer(name, value string) *ResponseBuilder {
	if b.err == nil {
		b.resp.Trailers.Add(name, value)
	}

	return b
}

func (b *ResponseBuilder) Body(body string) *ResponseBuilder {
	return b.BodyOfType(uf.S2B(body), "text/plain")
}

func (b *ResponseBuilder) BodyOfType(body []byte, contentType string) *ResponseBuilder {
	if b.err == nil {
		b.DeclareOfType(body, contentType)
		b.resp.Body = body
	}

	return b
}

func (b *ResponseBuilder) Declare(body string) *ResponseBuilder {
	return b.DeclareOfType(uf.S2B(body), "text/plain")
}

func (b *ResponseBuilder) DeclareOfType(body []byte, contentType string) *ResponseBuilder {
	if b.err == nil {
		b.resp.Headers.
			Add("Content-Length", strconv.Itoa(len(body))).
			Add("Content-Type", contentType)
	}

	return b
}

func (b *ResponseBuilder) JSON(model any) *ResponseBuilder {
	if b.err != nil {
		return b
	}

	body, err := json.Marshal(model)
	if err != nil {
		b.err = err
		return b
	}

	return b.BodyOfType(body, "application/json")
}

func (b *ResponseBuilder) Finish() (*Response, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.resp, nil
}

func newValueArena(cfg *config.Config) *arena.Arena[byte] {
	return arena.NewArena[byte](cfg.Builder.ValueSpace.Default, cfg.Builder.ValueSpace.Maximal)
}
