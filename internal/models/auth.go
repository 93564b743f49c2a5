package models

// LoginRequest carries staff credentials for /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the payload for /api/auth/register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone,omitempty"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// AuthResponse is returned by successful login and register calls.
// Token is an opaque bearer credential; its expiry is controlled entirely
// by the server.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
