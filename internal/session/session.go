package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/soukonline/cli/internal/config"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/models"
)

// Store supplies the current bearer token and login state. The token is read
// from the persisted configuration on every call rather than cached, so a
// login or token refresh between calls is always picked up.
type Store struct{}

// NewStore creates a new session store
func NewStore() *Store {
	return &Store{}
}

// Token returns the current bearer token, or "" when logged out
func (s *Store) Token() string {
	return config.Get().Auth.Token
}

// IsLoggedIn reports whether a session token is present
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// User returns the persisted user profile
func (s *Store) User() models.User {
	u := config.Get().Auth.User
	return models.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		IsAdmin:  u.IsAdmin,
	}
}

// Establish persists the session carried by a successful login response
func (s *Store) Establish(res models.LoginResponse) error {
	return config.UpdateAuth(res.Token, models.User{
		ID:       res.ID,
		Username: res.Username,
		Email:    res.Email,
		Phone:    res.Phone,
		IsAdmin:  res.IsAdmin,
	})
}

// Clear drops the persisted session
func (s *Store) Clear() error {
	return config.ClearAuth()
}

// HandleUnauthorized reacts to a 401 from the backend. The stored token is
// stale at that point; drop it and tell the user to log in again. The failed
// call is not retried.
func (s *Store) HandleUnauthorized() {
	format.PrintWarning("Session rejected by the server; run 'souk auth login' to sign in again")
	if err := config.ClearAuth(); err != nil {
		format.PrintDebug("could not clear stored session: %v", err)
	}
}

// TokenExpiry decodes the stored token's exp claim without verifying the
// signature (verification is the backend's job). The second return is false
// when no token is stored or the claim is absent.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
