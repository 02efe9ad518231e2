package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
)

// SignaturePrefix is the optional algorithm prefix on delivery signatures.
const SignaturePrefix = "sha256="

// DefaultMaxAge is the default replay window.
const DefaultMaxAge = 5 * time.Minute

// Verifier authenticates webhook deliveries against a shared secret. It is
// immutable after construction and safe for concurrent use.
type Verifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

type Option func(*Verifier)

// WithMaxAge sets the replay window: the maximum allowed absolute difference
// between the signed timestamp and current time. Negative values are ignored.
func WithMaxAge(d time.Duration) Option {
	return func(v *Verifier) {
		if d >= 0 {
			v.maxAge = d
		}
	}
}

func New(secret string, opts ...Option) *Verifier {
	v := &Verifier{
		secret: []byte(secret),
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifySignature reports whether signature authenticates body at the given
// timestamp. It never panics and never returns an error; every failure mode
// collapses to false so callers cannot distinguish malformed input from a
// wrong signature.
//
// The window is symmetric and inclusive: timestamps up to the configured max
// age in the past or the future are accepted, anything beyond is rejected
// regardless of signature correctness.
func (v *Verifier) VerifySignature(signature string, timestamp int64, body []byte) bool {
	diff := v.now().Unix() - timestamp
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(v.maxAge/time.Second) {
		return false
	}

	supplied := strings.TrimPrefix(signature, SignaturePrefix)

	// hmac.Equal is constant time in the compared length and returns
	// false for unequal lengths without shortcutting on content.
	return hmac.Equal([]byte(v.sign(timestamp, body)), []byte(supplied))
}

// sign computes the lowercase hex HMAC-SHA256 of "<timestamp>.<body>".
func (v *Verifier) sign(timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(strconv.AppendInt(nil, timestamp, 10))
	mac.Write([]byte{'.'})
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyAndParse authenticates a delivery and parses its body into an Event.
// The timestamp is the decimal-seconds value from the delivery headers, not
// the ISO-8601 timestamp inside the payload.
//
// Authentication failures return ErrInvalidSignature before the body is
// parsed, so unauthenticated JSON never reaches caller-visible structures.
// A malformed body returns a *ParseError; a missing event, timestamp, or
// data field returns a *MissingFieldError naming the field.
func (v *Verifier) VerifyAndParse(signature, timestamp string, body []byte, deliveryID string) (*Event, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil {
		return nil, ErrInvalidSignature
	}

	if !v.VerifySignature(signature, ts, body) {
		return nil, ErrInvalidSignature
	}

	var payload struct {
		Event     string         `json:"event"`
		Timestamp string         `json:"timestamp"`
		Data      map[string]any `json:"data"`
	}
	if err := go_json.Unmarshal(body, &payload); err != nil {
		return nil, &ParseError{Err: err}
	}

	switch {
	case payload.Event == "":
		return nil, &MissingFieldError{Field: "event"}
	case payload.Timestamp == "":
		return nil, &MissingFieldError{Field: "timestamp"}
	case payload.Data == nil:
		return nil, &MissingFieldError{Field: "data"}
	}

	return &Event{
		Event:      payload.Event,
		Timestamp:  payload.Timestamp,
		Data:       payload.Data,
		DeliveryID: deliveryID,
	}, nil
}

// VerifyRequest runs the full pipeline over a header carrier and raw body:
// extract headers, verify signature and timestamp, parse, validate. The
// first failing stage aborts with its error; there is no partial success.
func (v *Verifier) VerifyRequest(headers HeaderCarrier, body []byte) (*Event, error) {
	h, err := ExtractHeaders(headers)
	if err != nil {
		return nil, err
	}
	return v.VerifyAndParse(h.Signature, h.Timestamp, body, h.DeliveryID)
}
