package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/optouthub/optouthub-go/internal/storage"
	"github.com/optouthub/optouthub-go/internal/xerrors"
	"github.com/optouthub/optouthub-go/internal/xslog"
	"github.com/optouthub/optouthub-go/webhook"
)

// maxBodySize caps inbound delivery payloads (1 MB).
const maxBodySize = 1 << 20

type Webhook struct {
	verifier *webhook.Verifier
	store    storage.DeliveryStore
}

func NewWebhook(verifier *webhook.Verifier, store storage.DeliveryStore) *Webhook {
	return &Webhook{verifier: verifier, store: store}
}

// HandleWebhook handles POST /webhooks/optouthub requests. The body must
// reach the verifier byte-exact, so it is read raw before anything touches
// it.
func (h *Webhook) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		logger.ErrorContext(ctx, "failed to read webhook body", xslog.Error(err))
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("failed to read request body")))
		return
	}

	event, err := h.verifier.VerifyRequest(webhook.HTTPHeader(r.Header), body)
	if err != nil {
		writeVerifyError(w, r, err)
		return
	}

	deliveryID := event.DeliveryID
	if deliveryID == "" {
		deliveryID = uuid.New().String()
	}

	fresh, err := h.store.Record(ctx, storage.Delivery{
		DeliveryID: deliveryID,
		Event:      event.Event,
		Timestamp:  event.Timestamp,
		Data:       event.Data,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to store delivery",
			xslog.Error(err),
			xslog.DeliveryID(deliveryID),
		)
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to store delivery"), xerrors.WithCause(err)))
		return
	}

	if !fresh {
		logger.InfoContext(ctx, "duplicate delivery ignored", xslog.DeliveryID(deliveryID))
		w.WriteHeader(http.StatusOK)
		return
	}

	logger.InfoContext(ctx, "processed webhook",
		xslog.EventType(event.Event),
		xslog.DeliveryID(deliveryID),
	)
	w.WriteHeader(http.StatusOK)
}

func writeVerifyError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	var headerErr *webhook.MissingHeaderError
	if errors.As(err, &headerErr) {
		logger.WarnContext(ctx, "missing webhook header", xslog.Error(err))
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(headerErr.Error())))
		return
	}

	if errors.Is(err, webhook.ErrInvalidSignature) {
		logger.WarnContext(ctx, "invalid webhook signature")
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage(webhook.ErrInvalidSignature.Error())))
		return
	}

	// parse and missing-field failures surface as 400s
	logger.WarnContext(ctx, "rejected webhook payload", xslog.Error(err))
	xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(err.Error())))
}
