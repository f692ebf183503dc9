// Package cookies implements client-side cookie storage with browser
// semantics: per-entry expiry, path/domain scoping, and security attributes.
// The portal frontend keeps its session in browser cookies; this package
// keeps the same entries on disk so a CLI session survives restarts.
package cookies

import (
	"context"
	"time"

	cookierepo "github.com/rosdobro/dobrodela-cli/internal/client/repositories/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
)

// Options mirrors the attribute set of a browser cookie write.
// MaxAge takes precedence over Expires when both are given. A negative
// MaxAge expires the entry immediately.
type Options struct {
	MaxAge   int // seconds
	Expires  time.Time
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool // recorded for parity with the browser; no effect client-side
	SameSite string
}

// Store provides cookie reads and writes on top of a Repository.
//
// Writes are best-effort: when the backing storage fails the value is simply
// not persisted and the failure is logged, matching a browser environment
// where cookie storage may be disabled. Reads never fail; a storage error
// reads as "absent".
type Store struct {
	repo       cookierepo.Repository
	log        logging.Logger
	production bool

	now func() time.Time // test seam
}

// NewStore returns a Store over the given repository. The production flag
// controls the Secure attribute of the auth cookies.
func NewStore(repo cookierepo.Repository, log logging.Logger, production bool) *Store {
	return &Store{repo: repo, log: log, production: production, now: time.Now}
}

// Set writes a cookie entry. It never returns an error: persistence failures
// are non-fatal and only logged.
func (s *Store) Set(ctx context.Context, name, value string, opts Options) {
	e := &cookierepo.Entry{
		Name:     name,
		Value:    value,
		Path:     opts.Path,
		Domain:   opts.Domain,
		Secure:   opts.Secure,
		HTTPOnly: opts.HTTPOnly,
		SameSite: opts.SameSite,
	}
	switch {
	case opts.MaxAge != 0:
		e.ExpiresAt = s.now().Add(time.Duration(opts.MaxAge) * time.Second)
	case !opts.Expires.IsZero():
		e.ExpiresAt = opts.Expires
	}

	if err := s.repo.Set(ctx, e); err != nil {
		s.log.Warn(ctx, "cookie not persisted", "name", name, "error", err)
	}
}

// Get returns the stored value and whether it is present. Entries past their
// expiry are absent; an expired row is purged on the way out.
func (s *Store) Get(ctx context.Context, name string) (string, bool) {
	e, err := s.repo.Get(ctx, name)
	if err != nil {
		s.log.Warn(ctx, "cookie read failed", "name", name, "error", err)
		return "", false
	}
	if e == nil {
		return "", false
	}
	if e.Expired(s.now()) {
		if err := s.repo.Delete(ctx, name); err != nil {
			s.log.Warn(ctx, "expired cookie purge failed", "name", name, "error", err)
		}
		return "", false
	}
	return e.Value, true
}

// Delete removes a cookie by overwriting it with an immediately-expired entry
// of the same scope.
//
// As in the browser cookie model, Path and Domain must match the values used
// on the original Set; on a mismatch the expired overwrite lands "next to"
// the original and the deletion silently no-ops. This scoping behavior is
// intentional and preserved, not a bug.
func (s *Store) Delete(ctx context.Context, name string, opts Options) {
	existing, err := s.repo.Get(ctx, name)
	if err != nil {
		s.log.Warn(ctx, "cookie read failed", "name", name, "error", err)
		return
	}
	if existing == nil {
		return
	}
	if existing.Path != opts.Path || existing.Domain != opts.Domain {
		return
	}
	s.Set(ctx, name, "", Options{MaxAge: -1, Path: opts.Path, Domain: opts.Domain})
}

// Exists reports whether a non-expired cookie with the given name is stored.
func (s *Store) Exists(ctx context.Context, name string) bool {
	_, ok := s.Get(ctx, name)
	return ok
}
