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
	"github.com/soukonline/cli/internal/session"
)

func TestLoginRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login" {
			t.Errorf("path = %q, want /users/login", r.URL.Path)
		}
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "who@example.com" {
			t.Errorf("email = %q", req.Email)
		}
		// The backend answers 200 with no token when credentials fail.
		json.NewEncoder(w).Encode(models.LoginResponse{Message: "Wrong password"})
	}))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, staticTokens{})
	notify := &notifyLog{}
	users := NewUsers(client, query.NewStore(), notify, session.NewStore())

	out, err := users.Login(context.Background(), "who@example.com", "nope")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Succeeded {
		t.Error("tokenless response must classify as failure")
	}
	if out.Message != "Invalid email or password" {
		t.Errorf("message = %q, want the override", out.Message)
	}
	if len(notify.failures) != 1 {
		t.Errorf("failure notifications = %v", notify.failures)
	}
}

func TestLoginTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, staticTokens{})
	notify := &notifyLog{}
	users := NewUsers(client, query.NewStore(), notify, session.NewStore())

	out, err := users.Login(context.Background(), "who@example.com", "nope")
	if err == nil {
		t.Fatal("expected an error from the 500 response")
	}
	if out.Succeeded {
		t.Error("outcome must be a failure")
	}
}
