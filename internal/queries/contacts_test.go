package queries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/query"
)

func TestContactReadMessage(t *testing.T) {
	var got models.MessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contacts/readMessage" {
			t.Errorf("path = %q, want /contacts/readMessage", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(api.WriteResponse{Code: 200, Message: "marked"})
	}))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, staticTokens{})
	cache := query.NewStore()
	notify := &notifyLog{}
	contacts := NewContacts(client, cache, notify)
	ctx := context.Background()

	// Prime the cache so the invalidation is observable.
	cache.Do(ctx, string(models.AllContacts), func(context.Context) (interface{}, error) {
		return []models.Contact{}, nil
	})

	out, err := contacts.ReadMessage(ctx, "ct1", 2)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if !out.Succeeded {
		t.Fatalf("outcome: %+v", out)
	}
	if got.ContactID != "ct1" || got.MessageIndex != 2 {
		t.Errorf("request body = %+v", got)
	}
	if _, ok := cache.Cached(string(models.AllContacts)); ok {
		t.Error("contact threads still cached after a message write")
	}
	if len(notify.successes) != 1 || notify.successes[0] != "Message marked as read" {
		t.Errorf("success notifications = %v", notify.successes)
	}
}

func TestContactDeleteMessagePath(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(api.WriteResponse{Code: 200})
	}))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, staticTokens{})
	contacts := NewContacts(client, query.NewStore(), &notifyLog{})

	out, err := contacts.DeleteMessage(context.Background(), "ct1", 0)
	if err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	if !out.Succeeded {
		t.Fatalf("outcome: %+v", out)
	}
	if path != "/contacts/deleteMessage" {
		t.Errorf("path = %q, want /contacts/deleteMessage", path)
	}
}
