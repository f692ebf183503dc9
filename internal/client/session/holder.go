// Package session holds the client's view of "who is the current user" and
// notifies observers when it changes.
package session

import (
	"sync"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
)

// State is the authentication state category.
type State int

const (
	// StateUnknown is the initial state, before the startup check completes.
	StateUnknown State = iota
	// StateAnonymous means no valid session is held.
	StateAnonymous
	// StateAuthenticated means a User is populated.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Listener observes session changes. It is invoked after every transition,
// including an Authenticated-to-Authenticated user refresh.
type Listener func(State, *models.User)

// Holder is an explicit, injected session object; there is no package-level
// singleton. It is the single source of truth the UI layer observes, and it
// lives for the lifetime of the application. Safe for concurrent use.
type Holder struct {
	mu        sync.RWMutex
	state     State
	user      *models.User
	listeners []Listener
}

// NewHolder returns a Holder in StateUnknown.
func NewHolder() *Holder {
	return &Holder{state: StateUnknown}
}

// State returns the current state category.
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// User returns a copy of the current user, or nil when not authenticated.
func (h *Holder) User() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

// Subscribe registers a listener for session changes. Listeners are called
// synchronously, outside the Holder's lock, in registration order.
func (h *Holder) Subscribe(fn Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// SetAuthenticated stores the user and moves to StateAuthenticated.
func (h *Holder) SetAuthenticated(u *models.User) {
	copied := *u
	h.set(StateAuthenticated, &copied)
}

// SetAnonymous drops the user and moves to StateAnonymous.
func (h *Holder) SetAnonymous() {
	h.set(StateAnonymous, nil)
}

func (h *Holder) set(state State, u *models.User) {
	h.mu.Lock()
	h.state = state
	h.user = u
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(state, u)
	}
}
