package optouthub

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestContactsCheck(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"suppressed":true,"contact":{"id":"c1","status":"unsubscribed"}}`))
	}))

	check, err := c.Contacts.Check(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if gotQuery.Get("email") != "user@example.com" {
		t.Errorf("email query = %q", gotQuery.Get("email"))
	}
	if !check.Suppressed {
		t.Error("Suppressed = false, want true")
	}
	if check.Contact == nil || check.Contact.Status != StatusUnsubscribed {
		t.Errorf("Contact = %+v", check.Contact)
	}
}

func TestContactsCreate(t *testing.T) {
	t.Parallel()

	var gotBody ContactCreateParams
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/contacts" {
			http.NotFound(w, r)
			return
		}
		if err := go_json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"c9","email":"user@example.com","status":"manual"}`))
	}))

	params := &ContactCreateParams{Email: "user@example.com", Status: StatusManual, Source: "api"}
	contact, err := c.Contacts.Create(context.Background(), params)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if diff := cmp.Diff(*params, gotBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
	if contact.ID != "c9" {
		t.Errorf("ID = %q, want c9", contact.ID)
	}
}

func TestContactsListPagination(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"records":[{"id":"c1"},{"id":"c2"}],"next_token":"tok_2"}`))
	}))

	token := "tok_1"
	resp, err := c.Contacts.List(context.Background(), &ListParams{Limit: 2, NextToken: &token})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if gotQuery.Get("limit") != "2" || gotQuery.Get("next_token") != "tok_1" {
		t.Errorf("query = %v", gotQuery)
	}
	if len(resp.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(resp.Records))
	}
	if !resp.HasMore() {
		t.Error("HasMore() = false, want true")
	}
}

func TestWebhooksRotateSecret(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/webhooks/wh_1/rotate-secret" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":"wh_1","secret":"whsec_new"}`))
	}))

	endpoint, err := c.Webhooks.RotateSecret(context.Background(), "wh_1")
	if err != nil {
		t.Fatalf("RotateSecret() error = %v", err)
	}
	if endpoint.Secret != "whsec_new" {
		t.Errorf("Secret = %q, want whsec_new", endpoint.Secret)
	}
}
