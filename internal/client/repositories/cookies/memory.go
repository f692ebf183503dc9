package cookies

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository. It is used as a non-fatal
// fallback when the on-disk store cannot be opened, and in tests.
// Safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]Entry)}
}

func (r *MemoryRepository) Get(_ context.Context, name string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *MemoryRepository) Set(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Name] = *e
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		copied := e
		result = append(result, &copied)
	}
	return result, nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]Entry)
	return nil
}
