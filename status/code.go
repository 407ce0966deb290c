package status

import (
	"errors"
	"strconv"

	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/utils/uf"
)

var (
	// ErrInvalidCode reports a numeric code outside the supported set.
	ErrInvalidCode = errors.New("invalid code")
	// ErrMalformedCode reports a recognized code whose canonical reason
	// phrase does not follow it on the wire.
	ErrMalformedCode = errors.New("malformed code")
)

// Code is one of the supported HTTP status codes. Arbitrary integers in
// [100, 599] are not valid codes: only the enumerated set below is, and
// each member carries its canonical reason phrase.
type Code uint16

const (
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102
	EarlyHints         Code = 103

	OK                          Code = 200
	Created                     Code = 201
	Accepted                    Code = 202
	NonAuthoritativeInformation Code = 203
	NoContent                   Code = 204
	ResetContent                Code = 205
	PartialContent              Code = 206
	MultiStatus                 Code = 207
	AlreadyReported             Code = 208
	IMUsed                      Code = 226

	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest                  Code = 400
	Unauthorized                Code = 401
	PaymentRequired             Code = 402
	Forbidden                   Code = 403
	NotFound                    Code = 404
	MethodNotAllowed            Code = 405
	NotAcceptable               Code = 406
	ProxyAuthenticationRequired Code = 407
	RequestTimeout              Code = 408
	Conflict                    Code = 409
	Gone                        Code = 410
	LengthRequired              Code = 411
	PreconditionFailed          Code = 412
	PayloadTooLarge             Code = 413
	URITooLong                  Code = 414
	UnsupportedMediaType        Code = 415
	RangeNotSatisfiable         Code = 416
	ExpectationFailed           Code = 417
	Teapot                      Code = 418
	MisdirectedRequest          Code = 421
	UnprocessableContent        Code = 422
	Locked                      Code = 423
	FailedDependency            Code = 424
	TooEarly                    Code = 425
	UpgradeRequired             Code = 426
	PreconditionRequired        Code = 428
	TooManyRequests             Code = 429
	RequestHeaderFieldsTooLarge Code = 431
	UnavailableForLegalReasons  Code = 451

	InternalServerError           Code = 500
	NotImplemented                Code = 501
	BadGateway                    Code = 502
	ServiceUnavailable            Code = 503
	GatewayTimeout                Code = 504
	HTTPVersionNotSupported       Code = 505
	VariantAlsoNegotiates         Code = 506
	InsufficientStorage           Code = 507
	LoopDetected                  Code = 508
	NotExtended                   Code = 510
	NetworkAuthenticationRequired Code = 511
)

// KnownCodes lists every supported code in ascending order.
var KnownCodes = []Code{
	Continue, SwitchingProtocols, Processing, EarlyHints,
	OK, Created, Accepted, NonAuthoritativeInformation, NoContent,
	ResetContent, PartialContent, MultiStatus, AlreadyReported, IMUsed,
	MultipleChoices, MovedPermanently, Found, SeeOther, NotModified,
	UseProxy, TemporaryRedirect, PermanentRedirect,
	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound,
	MethodNotAllowed, NotAcceptable, ProxyAuthenticationRequired,
	RequestTimeout, Conflict, Gone, LengthRequired, PreconditionFailed,
	PayloadTooLarge, URITooLong, UnsupportedMediaType, RangeNotSatisfiable,
	ExpectationFailed, Teapot, MisdirectedRequest, UnprocessableContent,
	Locked, FailedDependency, TooEarly, UpgradeRequired,
	PreconditionRequired, TooManyRequests, RequestHeaderFieldsTooLarge,
	UnavailableForLegalReasons,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable,
	GatewayTimeout, HTTPVersionNotSupported, VariantAlsoNegotiates,
	InsufficientStorage, LoopDetected, NotExtended,
	NetworkAuthenticationRequired,
}

// lookup is the validity bitset: lookup[code-100] for codes in [100, 599].
var lookup = func() (table [500]bool) {
	for _, code := range KnownCodes {
		table[code-100] = true
	}

	return table
}()

// FromRaw maps a numeric code to its enumerated member, refusing integers
// outside the supported set.
func FromRaw(raw int) (Code, bool) {
	idx := raw - 100
	if raw < 100 || idx >= len(lookup) || !lookup[idx] {
		return 0, false
	}

	return Code(raw), true
}

// Parse consumes "<code> <reason phrase>" off the cursor. The three digits
// must resolve to a known code, and the canonical reason phrase must follow
// literally.
func Parse(c *bytecursor.Cursor) (Code, error) {
	if c.Len() < 3 {
		return 0, ErrInvalidCode
	} else if c.Len() < 5 {
		return 0, ErrMalformedCode
	}

	raw, err := strconv.Atoi(uf.B2S(c.Rest()[:3]))
	if err != nil {
		return 0, ErrInvalidCode
	}

	code, ok := FromRaw(raw)
	if !ok {
		return 0, ErrInvalidCode
	}

	if !c.AdvanceString(code.Line()) {
		return 0, ErrMalformedCode
	}

	return code, nil
}

// Line returns the canonical wire form, the code and its reason phrase.
func (c Code) Line() string {
	switch c {
	case Continue:
		return "100 Continue"
	case SwitchingProtocols:
		return "101 Switching Protocols"
	case Processing:
		return "102 Processing"
	case EarlyHints:
		return "103 Early Hints"
	case OK:
		return "200 OK"
	case Created:
		return "201 Created"
	case Accepted:
		return "202 Accepted"
	case NonAuthoritativeInformation:
		return "203 Non-Authoritative Information"
	case NoContent:
		return "204 No Content"
	case ResetContent:
		return "205 Reset Content"
	case PartialContent:
		return "206 Partial Content"
	case MultiStatus:
		return "207 Multi-Status"
	case AlreadyReported:
		return "208 Already Reported"
	case IMUsed:
		return "226 IM Used"
	case MultipleChoices:
		return "300 Multiple Choices"
	case MovedPermanently:
		return "301 Moved Permanently"
	case Found:
		return "302 Found"
	case SeeOther:
		return "303 See Other"
	case NotModified:
		return "304 Not Modified"
	case UseProxy:
		return "305 Use Proxy"
	case TemporaryRedirect:
		return "307 Temporary Redirect"
	case PermanentRedirect:
		return "308 Permanent Redirect"
	case BadRequest:
		return "400 Bad Request"
	case Unauthorized:
		return "401 Unauthorized"
	case PaymentRequired:
		return "402 Payment Required"
	case Forbidden:
		return "403 Forbidden"
	case NotFound:
		return "404 Not Found"
	case MethodNotAllowed:
		return "405 Method Not Allowed"
	case NotAcceptable:
		return "406 Not Acceptable"
	case ProxyAuthenticationRequired:
		return "407 Proxy Authentication Required"
	case RequestTimeout:
		return "408 Request Timeout"
	case Conflict:
		return "409 Conflict"
	case Gone:
		return "410 Gone"
	case LengthRequired:
		return "411 Length Required"
	case PreconditionFailed:
		return "412 Precondition Failed"
	case PayloadTooLarge:
		return "413 Payload Too Large"
	case URITooLong:
		return "414 URI Too Long"
	case UnsupportedMediaType:
		return "415 Unsupported Media Type"
	case RangeNotSatisfiable:
		return "416 Range Not Satisfiable"
	case ExpectationFailed:
		return "417 Expectation Failed"
	case Teapot:
		return "418 I'm a teapot"
	case MisdirectedRequest:
		return "421 Misdirected Request"
	case UnprocessableContent:
		return "422 Unprocessable Content"
	case Locked:
		return "423 Locked"
	case FailedDependency:
		return "424 Failed Dependency"
	case TooEarly:
		return "425 Too Early"
	case UpgradeRequired:
		return "426 Upgrade Required"
	case PreconditionRequired:
		return "428 Precondition Required"
	case TooManyRequests:
		return "429 Too Many Requests"
	case RequestHeaderFieldsTooLarge:
		return "431 Request Header Fields Too Large"
	case UnavailableForLegalReasons:
		return "451 Unavailable For Legal Reasons"
	case InternalServerError:
		return "500 Internal Server Error"
	case NotImplemented:
		return "501 Not Implemented"
	case BadGateway:
		return "502 Bad Gateway"
	case ServiceUnavailable:
		return "503 Service Unavailable"
	case GatewayTimeout:
		return "504 Gateway Timeout"
	case HTTPVersionNotSupported:
		return "505 HTTP Version Not Supported"
	case VariantAlsoNegotiates:
		return "506 Variant Also Negotiates"
	case InsufficientStorage:
		return "507 Insufficient Storage"
	case LoopDetected:
		return "508 Loop Detected"
	case NotExtended:
		return "510 Not Extended"
	case NetworkAuthenticationRequired:
		return "511 Network Authentication Required"
	default:
		return ""
	}
}

// Text returns the reason phrase alone.
func (c Code) Text() string {
	line := c.Line()
	if len(line) < 4 {
		return ""
	}

	return line[4:]
}

func (c Code) String() string {
	return c.Line()
}
