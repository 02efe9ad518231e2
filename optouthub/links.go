package optouthub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type linkService struct {
	client *Client
}

type LinkCreateParams struct {
	OfferID string   `json:"offer_id"`
	Type    LinkType `json:"type,omitempty"`
}

func (s *linkService) Create(ctx context.Context, params *LinkCreateParams) (*Link, error) {
	const route = "/links"

	var link Link
	if err := s.client.do(ctx, http.MethodPost, route, nil, params, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *linkService) Get(ctx context.Context, id string) (*Link, error) {
	path := fmt.Sprintf("/links/%s", url.PathEscape(id))

	var link Link
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *linkService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[Link], error) {
	const route = "/links"

	var resp PaginatedResponse[Link]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *linkService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/links/%s", url.PathEscape(id))
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
