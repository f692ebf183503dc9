package cookies

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	cookierepo "github.com/rosdobro/dobrodela-cli/internal/client/repositories/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.Now()
	s := NewStore(cookierepo.NewMemoryRepository(), discardLogger(), false)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_SetGet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "theme", "dark", Options{Path: "/"})

	v, ok := s.Get(ctx, "theme")
	require.True(t, ok)
	require.Equal(t, "dark", v)
	require.True(t, s.Exists(ctx, "theme"))
}

func TestStore_GetAbsent(t *testing.T) {
	s, _ := newTestStore(t)

	v, ok := s.Get(context.Background(), "nope")
	require.False(t, ok)
	require.Empty(t, v)
}

func TestStore_MaxAgeExpiry(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", "v", Options{MaxAge: 60})

	_, ok := s.Get(ctx, "k")
	require.True(t, ok)

	*now = now.Add(61 * time.Second)
	_, ok = s.Get(ctx, "k")
	require.False(t, ok, "value must never be returned past its declared maxAge")
}

func TestStore_AbsoluteExpiry(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", "v", Options{Expires: now.Add(time.Hour)})

	*now = now.Add(2 * time.Hour)
	_, ok := s.Get(ctx, "k")
	require.False(t, ok)
}

func TestStore_NegativeMaxAgeExpiresImmediately(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", "v", Options{MaxAge: -1})
	_, ok := s.Get(ctx, "k")
	require.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", "v", Options{Path: "/"})
	s.Delete(ctx, "k", Options{Path: "/"})

	require.False(t, s.Exists(ctx, "k"))
}

func TestStore_DeletePathMismatchNoOps(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", "v", Options{Path: "/"})
	s.Delete(ctx, "k", Options{Path: "/app"})

	v, ok := s.Get(ctx, "k")
	require.True(t, ok, "delete with a different path must leave the cookie in place")
	require.Equal(t, "v", v)
}

func TestStore_DeleteAbsentNoOps(t *testing.T) {
	s, _ := newTestStore(t)
	s.Delete(context.Background(), "ghost", Options{Path: "/"})
}

// failingRepo simulates disabled storage: every operation errors.
type failingRepo struct{ err error }

func (f *failingRepo) Get(context.Context, string) (*cookierepo.Entry, error) { return nil, f.err }
func (f *failingRepo) Set(context.Context, *cookierepo.Entry) error           { return f.err }
func (f *failingRepo) Delete(context.Context, string) error                   { return f.err }
func (f *failingRepo) List(context.Context) ([]*cookierepo.Entry, error)      { return nil, f.err }
func (f *failingRepo) Clear(context.Context) error                            { return f.err }

func TestStore_StorageDisabledIsNonFatal(t *testing.T) {
	s := NewStore(&failingRepo{err: context.DeadlineExceeded}, discardLogger(), false)
	s.now = time.Now
	ctx := context.Background()

	s.Set(ctx, "k", "v", Options{Path: "/"})

	v, ok := s.Get(ctx, "k")
	require.False(t, ok)
	require.Empty(t, v)
}
