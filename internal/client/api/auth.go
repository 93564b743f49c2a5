package api

import (
	"context"

	"github.com/fitlab/fitadmin/internal/models"
)

// AuthService maps the authentication endpoints. It only performs the
// calls; credential persistence and session state belong to the session
// manager.
type AuthService struct {
	c *Client
}

// Login exchanges staff credentials for a bearer token and user record.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var res models.AuthResponse
	if err := s.c.post(ctx, "/api/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a staff account and returns its first credential.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var res models.AuthResponse
	if err := s.c.post(ctx, "/api/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Me returns the user the current credential belongs to.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var res envelope[models.User]
	if err := s.c.get(ctx, "/api/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Logout invalidates the current credential server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/api/auth/logout", nil, nil)
}
