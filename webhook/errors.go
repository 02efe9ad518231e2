package webhook

import "errors"

// ErrInvalidSignature is returned when a delivery fails authentication,
// whether from a signature mismatch or a timestamp outside the replay
// window. The message is deliberately non-specific so callers cannot reveal
// which sub-check failed.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// MissingHeaderError reports a mandatory delivery header that was absent.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return "missing " + e.Header + " header"
}

// MissingFieldError reports a mandatory payload field that was absent from
// an otherwise validly-signed body.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// ParseError reports a body that is not well-formed JSON. It wraps the
// underlying decoder error for diagnostics.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid webhook payload: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
