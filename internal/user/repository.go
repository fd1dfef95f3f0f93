package user

import (
	"context"
	"sync"
)

// Repository holds users in memory, keyed by ID, preserving registration
// order for listing.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*User
	order []*User
}

// NewRepository creates an empty user repository
func NewRepository() *Repository {
	return &Repository{byID: make(map[string]*User)}
}

// Create stores a new user. It returns ErrUserExists when the ID is
// already taken.
func (r *Repository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; ok {
		return ErrUserExists
	}
	r.byID[u.ID] = u
	r.order = append(r.order, u)
	return nil
}

// GetByID retrieves a user by their ID, or nil when absent.
func (r *Repository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// List returns all users in registration order.
func (r *Repository) List(_ context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*User, len(r.order))
	copy(out, r.order)
	return out, nil
}
