package optouthub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type contactService struct {
	client *Client
}

type ContactCreateParams struct {
	Email   string            `json:"email,omitempty"`
	MD5     string            `json:"md5,omitempty"`
	SHA256  string            `json:"sha256,omitempty"`
	Status  SuppressionStatus `json:"status,omitempty"`
	Source  string            `json:"source,omitempty"`
	OfferID string            `json:"offer_id,omitempty"`
}

// BatchCreateResult reports the outcome of a batch suppression request.
// Errors maps the index of a rejected entry to its reason.
type BatchCreateResult struct {
	Created int            `json:"created"`
	Skipped int            `json:"skipped"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (s *contactService) Create(ctx context.Context, params *ContactCreateParams) (*Contact, error) {
	const route = "/contacts"

	var contact Contact
	if err := s.client.do(ctx, http.MethodPost, route, nil, params, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*Contact, error) {
	path := fmt.Sprintf("/contacts/%s", url.PathEscape(id))

	var contact Contact
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *contactService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[Contact], error) {
	const route = "/contacts"

	var resp PaginatedResponse[Contact]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/contacts/%s", url.PathEscape(id))
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (s *contactService) Check(ctx context.Context, email string) (*SuppressionCheck, error) {
	const route = "/contacts/check"

	query := url.Values{"email": []string{email}}

	var check SuppressionCheck
	if err := s.client.do(ctx, http.MethodGet, route, query, nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *contactService) CheckHash(ctx context.Context, hash string) (*SuppressionCheck, error) {
	const route = "/contacts/check"

	query := url.Values{"hash": []string{hash}}

	var check SuppressionCheck
	if err := s.client.do(ctx, http.MethodGet, route, query, nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *contactService) BatchCreate(ctx context.Context, params []ContactCreateParams) (*BatchCreateResult, error) {
	const route = "/contacts/batch"

	body := struct {
		Contacts []ContactCreateParams `json:"contacts"`
	}{Contacts: params}

	var result BatchCreateResult
	if err := s.client.do(ctx, http.MethodPost, route, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
