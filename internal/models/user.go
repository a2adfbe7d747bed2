package models

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response; the bearer token rides alongside
// the user profile
type LoginResponse struct {
	Message  string `json:"message"`
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token"`
}

// User is the minimal profile persisted between CLI invocations
type User struct {
	ID       string `json:"_id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	IsAdmin  bool   `json:"isAdmin" yaml:"is_admin"`
}
