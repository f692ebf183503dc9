// Package services contains application services for the portal CLI.
// This file defines the authentication service: login, registration, logout,
// session refresh, and the startup session check.
package services

import (
	"context"
	"fmt"

	"github.com/rosdobro/dobrodela-cli/internal/client/api"
	"github.com/rosdobro/dobrodela-cli/internal/client/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	"github.com/rosdobro/dobrodela-cli/internal/client/session"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
)

// AuthService defines the authentication flows of the client.
//
// Contract:
//   - Startup: resolve the initial session from persisted cookies, falling
//     back to a backend identity check.
//   - Login: exchange credentials for a token and populate the session.
//   - Register: create an account, then log in with the same credentials.
//   - Logout: best-effort backend notification, then always forget the
//     session locally.
//   - RefreshUser: re-fetch the identity; failure means "not authenticated",
//     never a transient fault to retry.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Startup(ctx context.Context)
	Login(ctx context.Context, login, password string) error
	Register(ctx context.Context, fullName, login, password, passwordConfirm string, role models.Role) error
	Logout(ctx context.Context) error
	RefreshUser(ctx context.Context) error
}

// authService is the concrete AuthService backed by the API client, the
// cookie store, and the session holder.
type authService struct {
	client  api.Client
	cookies *cookies.Store
	session *session.Holder
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given collaborators.
func NewAuthService(client api.Client, store *cookies.Store, holder *session.Holder, log logging.Logger) AuthService {
	return &authService{client: client, cookies: store, session: holder, log: log}
}

// Startup resolves Unknown into Anonymous or Authenticated. When both the
// token and the user snapshot are still in the cookie store, the session is
// restored optimistically without a network round-trip; the next 401 would
// correct an overly optimistic restore. Otherwise the backend is asked.
func (a *authService) Startup(ctx context.Context) {
	if a.cookies.IsAuthenticated(ctx) {
		if u, ok := a.cookies.GetUserInfo(ctx); ok {
			a.session.SetAuthenticated(u)
			a.log.Debug(ctx, "session restored from cookies", "login", u.Login)
			return
		}
	}

	if err := a.RefreshUser(ctx); err != nil {
		a.log.Debug(ctx, "no session at startup", "error", err)
	}
}

// Login submits credentials, stores the returned token, and populates the
// session via RefreshUser. Validation failures surface as FieldErrors before
// anything is sent.
func (a *authService) Login(ctx context.Context, login, password string) error {
	if err := validateLogin(login, password); err != nil {
		return err
	}

	tok, err := a.client.Login(ctx, login, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.cookies.SetAccessToken(ctx, tok.AccessToken)

	if err := a.RefreshUser(ctx); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

// Register creates the account and immediately logs in with the same
// credentials; registration alone does not establish a session.
func (a *authService) Register(ctx context.Context, fullName, login, password, passwordConfirm string, role models.Role) error {
	if err := validateRegistration(fullName, login, password, passwordConfirm, role); err != nil {
		return err
	}

	req := &models.RegisterRequest{FullName: fullName, Login: login, Password: password, Role: role}
	if _, err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	return a.Login(ctx, login, password)
}

// Logout tells the backend the session is over, tolerating any failure: the
// client must always be able to forget its own session. The session and all
// auth cookies are cleared unconditionally.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "backend logout failed, clearing local session anyway", "error", err)
	}

	a.session.SetAnonymous()
	a.cookies.ClearAuthCookies(ctx)
	return nil
}

// RefreshUser re-fetches the current identity. Success overwrites the
// session and snapshot; failure is treated as "not authenticated" and clears
// both.
func (a *authService) RefreshUser(ctx context.Context) error {
	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.session.SetAnonymous()
		a.cookies.ClearAuthCookies(ctx)
		return fmt.Errorf("refresh user: %w", err)
	}

	a.session.SetAuthenticated(u)
	a.cookies.SetUserInfo(ctx, u)
	return nil
}
