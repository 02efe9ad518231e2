package optouthub

import (
	"context"
	"io"
)

type ContactService interface {
	Create(ctx context.Context, params *ContactCreateParams) (*Contact, error)
	Get(ctx context.Context, id string) (*Contact, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Contact], error)
	Delete(ctx context.Context, id string) error
	Check(ctx context.Context, email string) (*SuppressionCheck, error)
	CheckHash(ctx context.Context, hash string) (*SuppressionCheck, error)
	BatchCreate(ctx context.Context, params []ContactCreateParams) (*BatchCreateResult, error)
}

type WebhookService interface {
	Create(ctx context.Context, params *WebhookCreateParams) (*WebhookEndpoint, error)
	Get(ctx context.Context, id string) (*WebhookEndpoint, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[WebhookEndpoint], error)
	Update(ctx context.Context, id string, params *WebhookUpdateParams) (*WebhookEndpoint, error)
	Delete(ctx context.Context, id string) error
	RotateSecret(ctx context.Context, id string) (*WebhookEndpoint, error)
	Test(ctx context.Context, id string) error
}

type LinkService interface {
	Create(ctx context.Context, params *LinkCreateParams) (*Link, error)
	Get(ctx context.Context, id string) (*Link, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Link], error)
	Delete(ctx context.Context, id string) error
}

type OfferService interface {
	Create(ctx context.Context, params *OfferCreateParams) (*Offer, error)
	Get(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Offer], error)
	Update(ctx context.Context, id string, params *OfferUpdateParams) (*Offer, error)
	Delete(ctx context.Context, id string) error
}

type ExportService interface {
	Request(ctx context.Context, params *ExportRequestParams) (*Export, error)
	Get(ctx context.Context, id string) (*Export, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Export], error)
	// Download streams the export content; the caller must close the reader.
	Download(ctx context.Context, id string) (io.ReadCloser, error)
	Cancel(ctx context.Context, id string) error
}
