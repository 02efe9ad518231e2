package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/optouthub/optouthub-go/internal/storage"
	"github.com/optouthub/optouthub-go/webhook"
)

const handlerSecret = "whsec_handler"

func signedRequest(t *testing.T, body string, timestamp int64, deliveryID string) *http.Request {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(handlerSecret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10) + "." + body))
	signature := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	req := httptest.NewRequest(http.MethodPost, "/webhooks/optouthub", bytes.NewReader([]byte(body)))
	req.Header.Set(webhook.HeaderSignature, signature)
	req.Header.Set(webhook.HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	if deliveryID != "" {
		req.Header.Set(webhook.HeaderDeliveryID, deliveryID)
	}
	return req
}

func TestHandleWebhook(t *testing.T) {
	t.Parallel()

	const body = `{"event":"contact.suppressed","timestamp":"2023-11-14T22:13:20Z","data":{"md5":"abc"}}`

	store := storage.NewMemoryDeliveryStore()
	h := NewWebhook(webhook.New(handlerSecret), store)

	now := time.Now().Unix()
	rec := httptest.NewRecorder()
	h.HandleWebhook(rec, signedRequest(t, body, now, "dlv_7"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	recent, err := store.Recent(t.Context(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len(recent) = %d, want 1", len(recent))
	}
	if recent[0].DeliveryID != "dlv_7" || recent[0].Event != "contact.suppressed" {
		t.Errorf("recorded delivery = %+v", recent[0])
	}
}

func TestHandleWebhookDuplicateDelivery(t *testing.T) {
	t.Parallel()

	const body = `{"event":"webhook.test","timestamp":"2023-11-14T22:13:20Z","data":{}}`

	store := storage.NewMemoryDeliveryStore()
	h := NewWebhook(webhook.New(handlerSecret), store)
	now := time.Now().Unix()

	for range 2 {
		rec := httptest.NewRecorder()
		h.HandleWebhook(rec, signedRequest(t, body, now, "dlv_dup"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	}

	recent, err := store.Recent(t.Context(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("duplicate delivery was stored twice: len(recent) = %d", len(recent))
	}
}

func TestHandleWebhookInvalidSignature(t *testing.T) {
	t.Parallel()

	const body = `{"event":"webhook.test","timestamp":"2023-11-14T22:13:20Z","data":{}}`

	store := storage.NewMemoryDeliveryStore()
	h := NewWebhook(webhook.New(handlerSecret), store)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/optouthub", bytes.NewReader([]byte(body)))
	req.Header.Set(webhook.HeaderSignature, "sha256=deadbeef")
	req.Header.Set(webhook.HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))

	rec := httptest.NewRecorder()
	h.HandleWebhook(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	recent, _ := store.Recent(t.Context(), 10)
	if len(recent) != 0 {
		t.Error("unauthenticated delivery must not be stored")
	}
}

func TestHandleWebhookMissingHeader(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryDeliveryStore()
	h := NewWebhook(webhook.New(handlerSecret), store)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/optouthub", bytes.NewReader([]byte(`{}`)))

	rec := httptest.NewRecorder()
	h.HandleWebhook(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
