// Package webhook authenticates inbound OptOutHub webhook deliveries.
//
// A delivery is signed with HMAC-SHA256 over "<timestamp>.<raw body>" using
// the endpoint's shared secret. Construct one Verifier per secret at startup
// and reuse it across requests; it is immutable and safe for concurrent use.
//
// The raw body passed to the verifier must be the exact bytes received on
// the wire. Any middleware that re-serializes the body before it reaches the
// verifier will invalidate every signature.
package webhook

// Event types delivered by the platform. The verifier accepts any non-empty
// event string; these constants cover the documented vocabulary.
const (
	EventContactCreated    = "contact.created"
	EventContactUpdated    = "contact.updated"
	EventContactDeleted    = "contact.deleted"
	EventContactSuppressed = "contact.suppressed"
	EventExportCompleted   = "export.completed"
	EventExportFailed      = "export.failed"
	EventTest              = "webhook.test"
)

// Event is a verified webhook payload. It is only ever constructed after
// signature verification succeeds.
type Event struct {
	// Event is the event type, e.g. "contact.suppressed".
	Event string `json:"event"`

	// Timestamp is the ISO-8601 event time from the payload body. It is
	// distinct from the signed replay-window timestamp and is not
	// re-validated here.
	Timestamp string `json:"timestamp"`

	// Data carries the event-specific fields. Depending on the sender's
	// PII mode these may be plaintext contact fields or one-way hashes.
	Data map[string]any `json:"data"`

	// DeliveryID is the opaque idempotency token from the delivery
	// headers, empty when the platform did not supply one.
	DeliveryID string `json:"delivery_id,omitempty"`
}
