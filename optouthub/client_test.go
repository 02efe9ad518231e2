package optouthub

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test_key", WithBaseURL(srv.URL))
}

func TestClientRequestHeaders(t *testing.T) {
	t.Parallel()

	var gotAPIKey, gotContentType string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"id":"c1"}`))
	}))

	if _, err := c.Contacts.Get(context.Background(), "c1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotAPIKey != "test_key" {
		t.Errorf("x-api-key = %q, want %q", gotAPIKey, "test_key")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestClientErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		headers map[string]string
		body    string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "401 authentication",
			status: http.StatusUnauthorized,
			body:   `{"message":"invalid api key"}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthenticationError
				if !errors.As(err, &authErr) {
					t.Fatalf("error = %v, want *AuthenticationError", err)
				}
				if authErr.Message != "invalid api key" {
					t.Errorf("Message = %q", authErr.Message)
				}
			},
		},
		{
			name:   "403 forbidden",
			status: http.StatusForbidden,
			body:   `{"message":"no access to offer"}`,
			check: func(t *testing.T, err error) {
				var forbiddenErr *ForbiddenError
				if !errors.As(err, &forbiddenErr) {
					t.Fatalf("error = %v, want *ForbiddenError", err)
				}
			},
		},
		{
			name:   "404 not found",
			status: http.StatusNotFound,
			body:   `{"error":"contact not found"}`,
			check: func(t *testing.T, err error) {
				var notFoundErr *NotFoundError
				if !errors.As(err, &notFoundErr) {
					t.Fatalf("error = %v, want *NotFoundError", err)
				}
				if notFoundErr.Message != "contact not found" {
					t.Errorf("Message = %q", notFoundErr.Message)
				}
			},
		},
		{
			name:    "429 rate limit with retry-after",
			status:  http.StatusTooManyRequests,
			headers: map[string]string{"Retry-After": "30"},
			body:    `{"message":"slow down"}`,
			check: func(t *testing.T, err error) {
				var rateErr *RateLimitError
				if !errors.As(err, &rateErr) {
					t.Fatalf("error = %v, want *RateLimitError", err)
				}
				if rateErr.RetryAfter != 30*time.Second {
					t.Errorf("RetryAfter = %v, want 30s", rateErr.RetryAfter)
				}
			},
		},
		{
			name:   "429 rate limit without retry-after",
			status: http.StatusTooManyRequests,
			body:   `{"message":"slow down"}`,
			check: func(t *testing.T, err error) {
				var rateErr *RateLimitError
				if !errors.As(err, &rateErr) {
					t.Fatalf("error = %v, want *RateLimitError", err)
				}
				if rateErr.RetryAfter != 0 {
					t.Errorf("RetryAfter = %v, want 0", rateErr.RetryAfter)
				}
			},
		},
		{
			name:   "400 validation with fields",
			status: http.StatusBadRequest,
			body:   `{"message":"invalid request","fields":{"email":"required"}}`,
			check: func(t *testing.T, err error) {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("error = %v, want *ValidationError", err)
				}
				want := map[string]string{"email": "required"}
				if diff := cmp.Diff(want, validationErr.Fields); diff != "" {
					t.Errorf("Fields mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:   "500 generic api error",
			status: http.StatusInternalServerError,
			body:   `{"message":"boom"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %v, want *APIError", err)
				}
				if apiErr.StatusCode != http.StatusInternalServerError {
					t.Errorf("StatusCode = %d", apiErr.StatusCode)
				}
			},
		},
		{
			name:   "non-JSON error body falls back to raw text",
			status: http.StatusBadGateway,
			body:   "bad gateway",
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %v, want *APIError", err)
				}
				if apiErr.Message != "bad gateway" {
					t.Errorf("Message = %q", apiErr.Message)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := c.Contacts.Get(context.Background(), "c1")
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestClientNoContent(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := c.Contacts.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestClientEmptyBody(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	contact, err := c.Contacts.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(&Contact{}, contact); diff != "" {
		t.Errorf("empty body should decode to zero value (-want +got):\n%s", diff)
	}
}

func TestClientTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := New("test_key", WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond))
	if _, err := c.Contacts.Get(context.Background(), "c1"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestExportDownload(t *testing.T) {
	t.Parallel()

	const content = "a@example.com\nb@example.com\n"
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exports/exp_1/download" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	}))

	rc, err := c.Exports.Download(context.Background(), "exp_1")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading download: %v", err)
	}
	if string(data) != content {
		t.Errorf("Download() = %q, want %q", data, content)
	}
}
