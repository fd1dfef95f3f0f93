package expense

import (
	"context"
	"sync"
)

// Repository holds expenses in memory, keyed by ID, preserving insertion
// order for listing.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*Expense
	order []*Expense
}

// NewRepository creates an empty expense repository
func NewRepository() *Repository {
	return &Repository{byID: make(map[string]*Expense)}
}

// Create stores a new expense. It returns ErrExpenseExists when the ID is
// already taken.
func (r *Repository) Create(_ context.Context, e *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; ok {
		return ErrExpenseExists
	}
	r.byID[e.ID] = e
	r.order = append(r.order, e)
	return nil
}

// GetByID retrieves an expense by its ID, or nil when absent.
func (r *Repository) GetByID(_ context.Context, id string) (*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// List returns all expenses in creation order.
func (r *Repository) List(_ context.Context) ([]*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Expense, len(r.order))
	copy(out, r.order)
	return out, nil
}
