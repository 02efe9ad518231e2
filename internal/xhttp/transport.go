package xhttp

import (
	"fmt"
	"net/http"

	"github.com/optouthub/optouthub-go/internal/version"
)

type baseTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*baseTransport)(nil)

func (t *baseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "optouthub-go/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper that sets the SDK User-Agent.
func NewTransport() http.RoundTripper {
	return &baseTransport{base: http.DefaultTransport}
}
