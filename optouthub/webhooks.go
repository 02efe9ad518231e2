package optouthub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type webhookService struct {
	client *Client
}

type WebhookCreateParams struct {
	URL     string   `json:"url"`
	Events  []string `json:"events,omitempty"`
	PIIMode PIIMode  `json:"pii_mode,omitempty"`
}

type WebhookUpdateParams struct {
	URL     *string  `json:"url,omitempty"`
	Events  []string `json:"events,omitempty"`
	Active  *bool    `json:"active,omitempty"`
	PIIMode *PIIMode `json:"pii_mode,omitempty"`
}

func (s *webhookService) Create(ctx context.Context, params *WebhookCreateParams) (*WebhookEndpoint, error) {
	const route = "/webhooks"

	var endpoint WebhookEndpoint
	if err := s.client.do(ctx, http.MethodPost, route, nil, params, &endpoint); err != nil {
		return nil, err
	}
	return &endpoint, nil
}

func (s *webhookService) Get(ctx context.Context, id string) (*WebhookEndpoint, error) {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(id))

	var endpoint WebhookEndpoint
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &endpoint); err != nil {
		return nil, err
	}
	return &endpoint, nil
}

func (s *webhookService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[WebhookEndpoint], error) {
	const route = "/webhooks"

	var resp PaginatedResponse[WebhookEndpoint]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *webhookService) Update(ctx context.Context, id string, params *WebhookUpdateParams) (*WebhookEndpoint, error) {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(id))

	var endpoint WebhookEndpoint
	if err := s.client.do(ctx, http.MethodPatch, path, nil, params, &endpoint); err != nil {
		return nil, err
	}
	return &endpoint, nil
}

func (s *webhookService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(id))
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// RotateSecret replaces the endpoint's signing secret. The response is the
// only place the new secret appears; deliveries signed with the old secret
// stop validating immediately.
func (s *webhookService) RotateSecret(ctx context.Context, id string) (*WebhookEndpoint, error) {
	path := fmt.Sprintf("/webhooks/%s/rotate-secret", url.PathEscape(id))

	var endpoint WebhookEndpoint
	if err := s.client.do(ctx, http.MethodPost, path, nil, nil, &endpoint); err != nil {
		return nil, err
	}
	return &endpoint, nil
}

// Test asks the platform to send a webhook.test delivery to the endpoint.
func (s *webhookService) Test(ctx context.Context, id string) error {
	path := fmt.Sprintf("/webhooks/%s/test", url.PathEscape(id))
	return s.client.do(ctx, http.MethodPost, path, nil, nil, nil)
}
