package optouthub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type offerService struct {
	client *Client
}

type OfferCreateParams struct {
	Name    string  `json:"name"`
	PIIMode PIIMode `json:"pii_mode,omitempty"`
}

type OfferUpdateParams struct {
	Name    *string      `json:"name,omitempty"`
	Status  *OfferStatus `json:"status,omitempty"`
	PIIMode *PIIMode     `json:"pii_mode,omitempty"`
}

func (s *offerService) Create(ctx context.Context, params *OfferCreateParams) (*Offer, error) {
	const route = "/offers"

	var offer Offer
	if err := s.client.do(ctx, http.MethodPost, route, nil, params, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *offerService) Get(ctx context.Context, id string) (*Offer, error) {
	path := fmt.Sprintf("/offers/%s", url.PathEscape(id))

	var offer Offer
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *offerService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[Offer], error) {
	const route = "/offers"

	var resp PaginatedResponse[Offer]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *offerService) Update(ctx context.Context, id string, params *OfferUpdateParams) (*Offer, error) {
	path := fmt.Sprintf("/offers/%s", url.PathEscape(id))

	var offer Offer
	if err := s.client.do(ctx, http.MethodPatch, path, nil, params, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *offerService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/offers/%s", url.PathEscape(id))
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
