package cookies

import (
	"context"
	"time"
)

// Entry is a persisted cookie together with its scope and expiry attributes.
// A zero ExpiresAt means the entry never expires on its own.
type Entry struct {
	Name      string
	Value     string
	Path      string
	Domain    string
	Secure    bool
	HTTPOnly  bool
	SameSite  string
	ExpiresAt time.Time
}

// Expired reports whether the entry is past its expiry at the given instant.
func (e *Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !e.ExpiresAt.After(now)
}

// Repository is a durable store of cookie entries keyed by name.
// Get returns (nil, nil) when the entry is absent; expiry is a concern of the
// layer above.
type Repository interface {
	Get(ctx context.Context, name string) (*Entry, error)
	Set(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*Entry, error)
	Clear(ctx context.Context) error
}
