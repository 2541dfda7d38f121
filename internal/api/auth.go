package api

import (
	"context"
	"fmt"
	"net/http"

	"payrollkit/internal/session"
)

type AuthService struct {
	c *Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and stores token and role in the
// session. Nothing is written on failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := s.c.doOpen(ctx, http.MethodPost, "auth/login/", credentials{Email: email, Password: password}, &result)
	if err != nil {
		return LoginResult{}, err
	}
	if result.Token == "" {
		return LoginResult{}, &Error{Kind: KindResource, Message: "login response missing token"}
	}
	if !result.Role.Valid() {
		return LoginResult{}, &Error{Kind: KindResource, Message: fmt.Sprintf("login response has unknown role %q", result.Role)}
	}
	if err := s.c.sessions.Set(result.Token, result.Role); err != nil {
		return LoginResult{}, fmt.Errorf("store session: %w", err)
	}
	return result, nil
}

// Logout invalidates the token server-side on a best-effort basis and then
// clears the local session unconditionally; it never fails because of the
// backend.
func (s *AuthService) Logout(ctx context.Context) error {
	if session.Authenticated(s.c.sessions) {
		_ = s.c.doJSON(ctx, http.MethodPost, "auth/logout/", nil, nil, nil)
	}
	return s.c.sessions.Clear()
}

// Profile returns the authenticated account record.
func (s *AuthService) Profile(ctx context.Context) (AccountProfile, error) {
	var profile AccountProfile
	err := s.c.doJSON(ctx, http.MethodGet, "auth/profile/", nil, nil, &profile)
	return profile, err
}
