package webhook

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractHeaders(t *testing.T) {
	t.Parallel()

	want := DeliveryHeaders{
		Signature:  "sha256=abc",
		Timestamp:  "1700000000",
		Event:      "contact.created",
		DeliveryID: "dlv_1",
	}

	tests := []struct {
		name    string
		carrier HeaderCarrier
	}{
		{
			name: "http header canonical casing",
			carrier: HTTPHeader(http.Header{
				"X-Webhook-Signature":   []string{"sha256=abc"},
				"X-Webhook-Timestamp":   []string{"1700000000"},
				"X-Webhook-Event":       []string{"contact.created"},
				"X-Webhook-Delivery-Id": []string{"dlv_1"},
			}),
		},
		{
			name: "map with canonical casing",
			carrier: HeaderMap(map[string]string{
				"X-Webhook-Signature":   "sha256=abc",
				"X-Webhook-Timestamp":   "1700000000",
				"X-Webhook-Event":       "contact.created",
				"X-Webhook-Delivery-Id": "dlv_1",
			}),
		},
		{
			name: "map with mixed casing",
			carrier: HeaderMap(map[string]string{
				"x-webhook-signature":   "sha256=abc",
				"x-WEBHOOK-timestamp":   "1700000000",
				"X-Webhook-EVENT":       "contact.created",
				"x-webhook-delivery-id": "dlv_1",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractHeaders(tt.carrier)
			if err != nil {
				t.Fatalf("ExtractHeaders() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ExtractHeaders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractHeadersOptionalDefaults(t *testing.T) {
	t.Parallel()

	got, err := ExtractHeaders(HeaderMap(map[string]string{
		"X-Webhook-Signature": "sha256=abc",
		"X-Webhook-Timestamp": "1700000000",
	}))
	if err != nil {
		t.Fatalf("ExtractHeaders() error = %v", err)
	}
	if got.Event != "" || got.DeliveryID != "" {
		t.Errorf("optional headers should default to empty, got %+v", got)
	}
}

func TestExtractHeadersMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		wantHeader string
	}{
		{
			name:       "missing signature",
			headers:    map[string]string{"X-Webhook-Timestamp": "1700000000"},
			wantHeader: HeaderSignature,
		},
		{
			name:       "missing timestamp",
			headers:    map[string]string{"X-Webhook-Signature": "sha256=abc"},
			wantHeader: HeaderTimestamp,
		},
		{
			name:       "empty carrier",
			headers:    map[string]string{},
			wantHeader: HeaderSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ExtractHeaders(HeaderMap(tt.headers))
			var headerErr *MissingHeaderError
			if !errors.As(err, &headerErr) {
				t.Fatalf("error = %v, want *MissingHeaderError", err)
			}
			if headerErr.Header != tt.wantHeader {
				t.Errorf("Header = %q, want %q", headerErr.Header, tt.wantHeader)
			}
		})
	}
}
