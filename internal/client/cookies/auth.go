package cookies

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	"github.com/rosdobro/dobrodela-cli/internal/common"
)

// authOptions are the attributes shared by all auth cookies.
func (s *Store) authOptions(maxAge int) Options {
	return Options{
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   s.production,
		SameSite: "lax",
	}
}

// SetAccessToken stores the bearer token for 30 minutes.
func (s *Store) SetAccessToken(ctx context.Context, token string) {
	s.Set(ctx, common.AccessTokenCookieName, token, s.authOptions(common.AccessTokenMaxAge))
}

// GetAccessToken returns the stored bearer token. A token whose JWT exp claim
// has passed is treated as absent and removed, even if the cookie itself has
// not yet expired.
func (s *Store) GetAccessToken(ctx context.Context) (string, bool) {
	token, ok := s.Get(ctx, common.AccessTokenCookieName)
	if !ok {
		return "", false
	}
	if tokenExpired(token, s.now()) {
		s.RemoveAccessToken(ctx)
		return "", false
	}
	return token, true
}

func (s *Store) RemoveAccessToken(ctx context.Context) {
	s.Delete(ctx, common.AccessTokenCookieName, Options{Path: "/"})
}

// SetRefreshToken stores the refresh token for 7 days.
func (s *Store) SetRefreshToken(ctx context.Context, token string) {
	s.Set(ctx, common.RefreshTokenCookieName, token, s.authOptions(common.RefreshTokenMaxAge))
}

func (s *Store) GetRefreshToken(ctx context.Context) (string, bool) {
	return s.Get(ctx, common.RefreshTokenCookieName)
}

func (s *Store) RemoveRefreshToken(ctx context.Context) {
	s.Delete(ctx, common.RefreshTokenCookieName, Options{Path: "/"})
}

// SetUserInfo stores a non-sensitive snapshot of the user's display fields,
// with the same lifetime as the access token. The token itself is never part
// of the snapshot.
func (s *Store) SetUserInfo(ctx context.Context, u *models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		s.log.Warn(ctx, "user snapshot not persisted", "error", err)
		return
	}
	s.Set(ctx, common.UserInfoCookieName, string(data), s.authOptions(common.UserInfoMaxAge))
}

// GetUserInfo returns the stored user snapshot. Malformed JSON reads as
// absent, not as an error.
func (s *Store) GetUserInfo(ctx context.Context) (*models.User, bool) {
	raw, ok := s.Get(ctx, common.UserInfoCookieName)
	if !ok {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (s *Store) RemoveUserInfo(ctx context.Context) {
	s.Delete(ctx, common.UserInfoCookieName, Options{Path: "/"})
}

// ClearAuthCookies removes the access token, refresh token, and user snapshot.
// The three deletes are sequential and best-effort: a failure of one does not
// roll back the others. Calling it again is harmless.
func (s *Store) ClearAuthCookies(ctx context.Context) {
	s.RemoveAccessToken(ctx)
	s.RemoveRefreshToken(ctx)
	s.RemoveUserInfo(ctx)
}

// IsAuthenticated reports whether both the token and the snapshot are present.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Exists(ctx, common.AccessTokenCookieName) && s.Exists(ctx, common.UserInfoCookieName)
}

// tokenExpired inspects the exp claim of a JWT without verifying its
// signature. Tokens that do not parse as JWTs, or carry no exp claim, rely on
// the cookie expiry alone.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
