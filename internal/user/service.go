package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"splitledger/internal/ledger"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Service handles user registration and lookups. Registering a user opens
// their balance sheet in the ledger; the two live and die together.
type Service struct {
	repo   *Repository
	ledger *ledger.Ledger
}

// NewService creates a new user service with dependencies injected
func NewService(repo *Repository, ledger *ledger.Ledger) *Service {
	return &Service{repo: repo, ledger: ledger}
}

// Create registers a new user and opens their balance sheet.
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	user := &User{
		ID:        id,
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.ledger.OpenSheet(id); err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", id, "name", req.Name)
	return user, nil
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List retrieves all users in registration order
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// BalanceSheet returns a read-only snapshot of the user's balance sheet.
func (s *Service) BalanceSheet(ctx context.Context, id string) (*ledger.BalanceSheet, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.ledger.Snapshot(id)
}
