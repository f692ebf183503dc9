package cookies

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	cookierepo "github.com/rosdobro/dobrodela-cli/internal/client/repositories/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/common"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ann@example.com",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestAccessToken_Roundtrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetAccessToken(ctx, "opaque-token")

	got, ok := s.GetAccessToken(ctx)
	require.True(t, ok)
	require.Equal(t, "opaque-token", got)

	s.RemoveAccessToken(ctx)
	_, ok = s.GetAccessToken(ctx)
	require.False(t, ok)
}

func TestAccessToken_CookieExpiry(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	s.SetAccessToken(ctx, "tok")

	*now = now.Add(time.Duration(common.AccessTokenMaxAge+1) * time.Second)
	_, ok := s.GetAccessToken(ctx)
	require.False(t, ok)
}

func TestAccessToken_JWTExpClaim(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	// Cookie is fresh but the token itself expired five minutes ago.
	s.SetAccessToken(ctx, signedToken(t, now.Add(-5*time.Minute)))

	_, ok := s.GetAccessToken(ctx)
	require.False(t, ok)
	require.False(t, s.Exists(ctx, common.AccessTokenCookieName), "expired token must be removed")
}

func TestAccessToken_JWTStillValid(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	s.SetAccessToken(ctx, signedToken(t, now.Add(10*time.Minute)))

	_, ok := s.GetAccessToken(ctx)
	require.True(t, ok)
}

func TestRefreshToken_Roundtrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetRefreshToken(ctx, "refresh")
	got, ok := s.GetRefreshToken(ctx)
	require.True(t, ok)
	require.Equal(t, "refresh", got)
}

func TestUserInfo_Roundtrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	u := &models.User{ID: 42, FullName: "Ann Lee", Login: "ann@example.com", Role: models.RoleUser}
	s.SetUserInfo(ctx, u)

	got, ok := s.GetUserInfo(ctx)
	require.True(t, ok)
	require.Equal(t, u, got)
}

func TestUserInfo_MalformedJSONReadsAsAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, common.UserInfoCookieName, "{not json", Options{Path: "/"})

	got, ok := s.GetUserInfo(ctx)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestClearAuthCookies_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetAccessToken(ctx, "tok")
	s.SetRefreshToken(ctx, "ref")
	s.SetUserInfo(ctx, &models.User{ID: 1, FullName: "A", Login: "a@b.c", Role: models.RoleUser})

	assertCleared := func() {
		require.False(t, s.Exists(ctx, common.AccessTokenCookieName))
		require.False(t, s.Exists(ctx, common.RefreshTokenCookieName))
		require.False(t, s.Exists(ctx, common.UserInfoCookieName))
	}

	s.ClearAuthCookies(ctx)
	assertCleared()

	// A second call observes the same state.
	s.ClearAuthCookies(ctx)
	assertCleared()
}

func TestIsAuthenticated(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.False(t, s.IsAuthenticated(ctx))

	s.SetAccessToken(ctx, "tok")
	require.False(t, s.IsAuthenticated(ctx), "token alone is not enough")

	s.SetUserInfo(ctx, &models.User{ID: 1, FullName: "A", Login: "a@b.c", Role: models.RoleUser})
	require.True(t, s.IsAuthenticated(ctx))
}

func TestOpenRepository_FallsBackToMemory(t *testing.T) {
	repo := OpenRepository(context.Background(), discardLogger(), "/nonexistent-dir/cookies.db")
	_, ok := repo.(*cookierepo.MemoryRepository)
	require.True(t, ok)
}
