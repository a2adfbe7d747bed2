package queries

import (
	"context"
	"net/http"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/mutate"
	"github.com/soukonline/cli/internal/query"
	"github.com/soukonline/cli/internal/session"
)

// Users handles authentication against the backend and the persisted session
type Users struct {
	client  *api.Client
	cache   *query.Store
	notify  mutate.Notifier
	session *session.Store
}

// NewUsers creates the user/auth accessors
func NewUsers(client *api.Client, cache *query.Store, notify mutate.Notifier, sess *session.Store) *Users {
	return &Users{
		client:  client,
		cache:   cache,
		notify:  notify,
		session: sess,
	}
}

// Login authenticates with email and password, persists the returned token
// and profile, and invalidates the users cache key
func (u *Users) Login(ctx context.Context, email, password string) (mutate.Outcome, error) {
	m := mutate.New(u.cache, u.notify, func(ctx context.Context, in models.LoginRequest) (*api.WriteResponse, error) {
		var res models.LoginResponse
		if err := u.client.Post(ctx, string(models.Login), in, &res); err != nil {
			return nil, err
		}

		if res.Token == "" {
			// The backend answered 2xx but refused the credentials
			return &api.WriteResponse{Code: http.StatusBadRequest, Message: res.Message}, nil
		}
		if err := u.session.Establish(res); err != nil {
			return nil, err
		}
		return &api.WriteResponse{Code: http.StatusOK, Message: res.Message}, nil
	}, string(models.Users))

	return m.WithMessages("Login successful", "Invalid email or password").
		Run(ctx, models.LoginRequest{Email: email, Password: password})
}

// Logout drops the persisted session and invalidates the users cache key
func (u *Users) Logout(ctx context.Context) (mutate.Outcome, error) {
	m := mutate.New(u.cache, u.notify, func(ctx context.Context, _ struct{}) (*api.WriteResponse, error) {
		if err := u.session.Clear(); err != nil {
			return nil, err
		}
		return &api.WriteResponse{Code: http.StatusOK}, nil
	}, string(models.Users))

	return m.WithMessages("Logged out successfully", "Failed to log out").Run(ctx, struct{}{})
}

// Session exposes the underlying session store for status display
func (u *Users) Session() *session.Store {
	return u.session
}
