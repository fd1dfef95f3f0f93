package group

import (
	"context"
	"sync"

	"splitledger/internal/expense"
)

// Repository holds groups in memory, keyed by ID, preserving creation
// order for listing. Accessors return copies so callers never share the
// mutable member and expense slices with concurrent writers.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*Group
	order []*Group
}

// NewRepository creates an empty group repository
func NewRepository() *Repository {
	return &Repository{byID: make(map[string]*Group)}
}

// snapshot copies a group; expenses are immutable so their pointers are
// shared.
func snapshot(g *Group) *Group {
	cp := &Group{
		ID:        g.ID,
		Name:      g.Name,
		MemberIDs: make([]string, len(g.MemberIDs)),
		Expenses:  make([]*expense.Expense, len(g.Expenses)),
		CreatedAt: g.CreatedAt,
	}
	copy(cp.MemberIDs, g.MemberIDs)
	copy(cp.Expenses, g.Expenses)
	return cp
}

// Create stores a new group. It returns ErrGroupExists when the ID is
// already taken.
func (r *Repository) Create(_ context.Context, g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[g.ID]; ok {
		return ErrGroupExists
	}
	r.byID[g.ID] = g
	r.order = append(r.order, g)
	return nil
}

// GetByID retrieves a copy of a group by its ID, or nil when absent.
func (r *Repository) GetByID(_ context.Context, id string) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return snapshot(g), nil
}

// List returns copies of all groups in creation order.
func (r *Repository) List(_ context.Context) ([]*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Group, len(r.order))
	for i, g := range r.order {
		out[i] = snapshot(g)
	}
	return out, nil
}

// AddMember appends a user to a group's member list. It returns
// ErrMemberAlreadyExists when the user is already a member.
func (r *Repository) AddMember(_ context.Context, groupID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	if g.HasMember(userID) {
		return ErrMemberAlreadyExists
	}
	g.MemberIDs = append(g.MemberIDs, userID)
	return nil
}

// AppendExpense appends an expense to a group's expense list.
func (r *Repository) AppendExpense(_ context.Context, groupID string, e *expense.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	g.Expenses = append(g.Expenses, e)
	return nil
}
