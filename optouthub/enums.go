package optouthub

// SuppressionStatus is why a contact is on the suppression list.
type SuppressionStatus string

const (
	StatusUnsubscribed SuppressionStatus = "unsubscribed"
	StatusComplaint    SuppressionStatus = "complaint"
	StatusBounce       SuppressionStatus = "bounce"
	StatusManual       SuppressionStatus = "manual"
)

// PIIMode controls whether personally identifying fields are delivered in
// full, as one-way hashes, or omitted from webhook event data and exports.
type PIIMode string

const (
	PIIModeFull   PIIMode = "full"
	PIIModeHashed PIIMode = "hashed"
	PIIModeNone   PIIMode = "none"
)

type ExportStatus string

const (
	ExportStatusPending    ExportStatus = "pending"
	ExportStatusProcessing ExportStatus = "processing"
	ExportStatusCompleted  ExportStatus = "completed"
	ExportStatusFailed     ExportStatus = "failed"
	ExportStatusCancelled  ExportStatus = "cancelled"
)

// ExportFormat selects what each exported row contains.
type ExportFormat string

const (
	ExportFormatPlaintext ExportFormat = "plaintext"
	ExportFormatMD5       ExportFormat = "md5"
	ExportFormatSHA256    ExportFormat = "sha256"
)

type LinkType string

const (
	LinkTypeUnsubscribe LinkType = "unsubscribe"
	LinkTypePreference  LinkType = "preference"
)

type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusPaused   OfferStatus = "paused"
	OfferStatusArchived OfferStatus = "archived"
)
