package optouthub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type exportService struct {
	client *Client
}

type ExportRequestParams struct {
	OfferID string       `json:"offer_id,omitempty"`
	Format  ExportFormat `json:"format,omitempty"`
}

func (s *exportService) Request(ctx context.Context, params *ExportRequestParams) (*Export, error) {
	const route = "/exports"

	var export Export
	if err := s.client.do(ctx, http.MethodPost, route, nil, params, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

func (s *exportService) Get(ctx context.Context, id string) (*Export, error) {
	path := fmt.Sprintf("/exports/%s", url.PathEscape(id))

	var export Export
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

func (s *exportService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[Export], error) {
	const route = "/exports"

	var resp PaginatedResponse[Export]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Download streams the export content, one entry per line in the requested
// format. Only completed exports can be downloaded.
func (s *exportService) Download(ctx context.Context, id string) (io.ReadCloser, error) {
	path := fmt.Sprintf("/exports/%s/download", url.PathEscape(id))
	return s.client.doRaw(ctx, http.MethodGet, path, nil)
}

func (s *exportService) Cancel(ctx context.Context, id string) error {
	path := fmt.Sprintf("/exports/%s/cancel", url.PathEscape(id))
	return s.client.do(ctx, http.MethodPost, path, nil, nil, nil)
}
