package handler

import (
	"net/http"
	"strconv"

	"github.com/optouthub/optouthub-go/internal/storage"
	"github.com/optouthub/optouthub-go/internal/xerrors"
	"github.com/optouthub/optouthub-go/internal/xhttp"
)

const defaultRecentLimit = 50

type Deliveries struct {
	store storage.DeliveryStore
}

func NewDeliveries(store storage.DeliveryStore) *Deliveries {
	return &Deliveries{store: store}
}

// HandleRecent handles GET /deliveries requests.
func (h *Deliveries) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("limit must be a positive integer")))
			return
		}
		limit = n
	}

	deliveries, err := h.store.Recent(ctx, limit)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithCause(err)))
		return
	}

	xhttp.WriteOK(w, struct {
		Deliveries []storage.Delivery `json:"deliveries"`
	}{Deliveries: deliveries})
}
