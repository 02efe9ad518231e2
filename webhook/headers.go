package webhook

import (
	"net/http"
	"strings"
)

// Headers the platform sets on every delivery.
const (
	HeaderSignature  = "X-Webhook-Signature"
	HeaderTimestamp  = "X-Webhook-Timestamp"
	HeaderEvent      = "X-Webhook-Event"
	HeaderDeliveryID = "X-Webhook-Delivery-Id"
)

// HeaderCarrier is a case-insensitive header lookup. The platform may send
// any header casing, so implementations must not assume canonical form.
type HeaderCarrier interface {
	Get(name string) string
}

type httpHeaderCarrier struct {
	h http.Header
}

// HTTPHeader adapts an http.Header, whose Get already canonicalizes names.
func HTTPHeader(h http.Header) HeaderCarrier {
	return httpHeaderCarrier{h: h}
}

func (c httpHeaderCarrier) Get(name string) string {
	return c.h.Get(name)
}

type headerMapCarrier struct {
	m map[string]string
}

// HeaderMap adapts an arbitrary header map, scanning entries with a
// case-insensitive name comparison.
func HeaderMap(m map[string]string) HeaderCarrier {
	return headerMapCarrier{m: m}
}

func (c headerMapCarrier) Get(name string) string {
	for k, v := range c.m {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// DeliveryHeaders holds the webhook-related values extracted from a request.
type DeliveryHeaders struct {
	Signature  string
	Timestamp  string
	Event      string
	DeliveryID string
}

// ExtractHeaders pulls the delivery headers out of a carrier. Signature and
// timestamp are mandatory; their absence returns a *MissingHeaderError
// naming the header. Event and delivery id default to empty when absent.
func ExtractHeaders(c HeaderCarrier) (DeliveryHeaders, error) {
	signature := c.Get(HeaderSignature)
	if signature == "" {
		return DeliveryHeaders{}, &MissingHeaderError{Header: HeaderSignature}
	}

	timestamp := c.Get(HeaderTimestamp)
	if timestamp == "" {
		return DeliveryHeaders{}, &MissingHeaderError{Header: HeaderTimestamp}
	}

	return DeliveryHeaders{
		Signature:  signature,
		Timestamp:  timestamp,
		Event:      c.Get(HeaderEvent),
		DeliveryID: c.Get(HeaderDeliveryID),
	}, nil
}
