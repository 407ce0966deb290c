package field

import "errors"

// Parsing errors. Every parse entrypoint returns exactly one of these; a
// single offending byte fails the whole field section with no recovery.
var (
	ErrMalformed             = errors.New("malformed field")
	ErrIncorrectlyTerminated = errors.New("incorrectly terminated")
	ErrNameMissing           = errors.New("field name is missing")
	ErrValueTooLong          = errors.New("field value too long")
	ErrInvalidToken          = errors.New("value contains an invalid token character")
	ErrInvalidQuotedText     = errors.New("value contains invalid quoted text")
	ErrInvalidComment        = errors.New("comment contains an invalid character")
)

// ErrInvalidData reports an unquote attempt over a value which does not
// satisfy the grammar it claims to be validated against. Values produced by
// this library never trip it; the check guards externally constructed ones.
var ErrInvalidData = errors.New("invalid data")

// errValueEnd is the validator's end-of-value signal: a list comma or a CR
// in root scope. It terminates a value and never escapes to the caller.
var errValueEnd = errors.New("value terminated")
