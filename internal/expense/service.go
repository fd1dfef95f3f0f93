package expense

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"splitledger/internal/expense/split"
	"splitledger/internal/ledger"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrExpenseExists   = errors.New("expense already exists")
)

// Service is the expense engine: it validates a split request against the
// selected strategy, normalizes percentage splits into absolute amounts,
// constructs the immutable expense, and applies it to the ledger.
type Service struct {
	repo         *Repository
	splitFactory *split.Factory
	ledger       *ledger.Ledger
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, splitFactory *split.Factory, ledger *ledger.Ledger) *Service {
	return &Service{
		repo:         repo,
		splitFactory: splitFactory,
		ledger:       ledger,
	}
}

// Create validates and records a new expense within a group. Validation
// strictly precedes any mutation: a rejected request leaves the
// repository and every balance sheet untouched.
func (s *Service) Create(ctx context.Context, groupID, payerID string, req *CreateExpenseRequest) (*Expense, error) {
	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	if req.ID != "" {
		existing, err := s.repo.GetByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrExpenseExists
		}
	}

	inputs := toValidationInput(req.Splits)
	if err := strategy.Validate(req.Amount, inputs); err != nil {
		return nil, err
	}

	// Percentage values become absolute amounts only after validation.
	splits := make([]Split, len(inputs))
	shares := make([]ledger.Share, len(inputs))
	for i, in := range inputs {
		amount := in.Value
		if strategy.Type() == split.TypePercentage {
			amount = (in.Value / 100) * req.Amount
		}
		splits[i] = Split{UserID: in.UserID, Amount: amount}
		shares[i] = ledger.Share{UserID: in.UserID, Amount: amount}
	}

	// The ledger resolves every sheet before mutating, so an unknown
	// payer or participant still leaves no partial state behind.
	if err := s.ledger.Apply(payerID, shares, req.Amount); err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	expense := &Expense{
		ID:          id,
		GroupID:     groupID,
		PayerID:     payerID,
		Description: req.Description,
		Amount:      req.Amount,
		SplitType:   strategy.Type(),
		Splits:      splits,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("expense created",
		"expense_id", expense.ID,
		"group_id", groupID,
		"payer_id", payerID,
		"amount", req.Amount,
		"split_type", strategy.Type(),
	)

	return expense, nil
}

// GetByID retrieves an expense by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// List retrieves all expenses in creation order
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}
