package optouthub

import "time"

type Contact struct {
	ID        string            `json:"id"`
	Email     string            `json:"email,omitempty"`
	MD5       string            `json:"md5,omitempty"`
	SHA256    string            `json:"sha256,omitempty"`
	Status    SuppressionStatus `json:"status"`
	Source    string            `json:"source,omitempty"`
	OfferID   string            `json:"offer_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SuppressionCheck is the result of a suppression lookup. Contact is nil
// when the address is not suppressed.
type SuppressionCheck struct {
	Suppressed bool     `json:"suppressed"`
	Contact    *Contact `json:"contact,omitempty"`
}

// WebhookEndpoint is a registered delivery destination. Secret is only
// populated on creation and secret rotation; the API never returns it
// otherwise.
type WebhookEndpoint struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Secret    string    `json:"secret,omitempty"`
	Active    bool      `json:"active"`
	PIIMode   PIIMode   `json:"pii_mode"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Link struct {
	ID        string    `json:"id"`
	OfferID   string    `json:"offer_id"`
	URL       string    `json:"url"`
	Type      LinkType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type Offer struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Status    OfferStatus `json:"status"`
	PIIMode   PIIMode     `json:"pii_mode"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Export struct {
	ID          string       `json:"id"`
	OfferID     string       `json:"offer_id,omitempty"`
	Status      ExportStatus `json:"status"`
	Format      ExportFormat `json:"format"`
	RecordCount int64        `json:"record_count"`
	DownloadURL string       `json:"download_url,omitempty"`
	RequestedAt time.Time    `json:"requested_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}
