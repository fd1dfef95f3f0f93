package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"splitledger/internal/expense"
	"splitledger/internal/user"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupExists         = errors.New("group already exists")
	ErrNotAMember          = errors.New("user is not a member of this group")
	ErrMemberAlreadyExists = errors.New("user is already a member of this group")
)

// Service handles group business logic. Expense creation is delegated to
// the expense service; the group only keeps the resulting record.
type Service struct {
	repo     *Repository
	users    *user.Service
	expenses *expense.Service
}

// NewService creates a new group service with dependencies injected
func NewService(repo *Repository, users *user.Service, expenses *expense.Service) *Service {
	return &Service{repo: repo, users: users, expenses: expenses}
}

// Create creates a new group with the founder as its first member.
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	if _, err := s.users.GetByID(ctx, req.FounderID); err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	group := &Group{
		ID:        id,
		Name:      req.Name,
		MemberIDs: []string{req.FounderID},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}

	slog.Info("group created", "group_id", id, "name", req.Name, "founder_id", req.FounderID)
	return group, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// List retrieves all groups in creation order
func (s *Service) List(ctx context.Context) ([]*Group, error) {
	return s.repo.List(ctx)
}

// AddMember adds a registered user to a group.
func (s *Service) AddMember(ctx context.Context, groupID, userID string) (*Group, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.repo.AddMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	slog.Info("member added", "group_id", groupID, "user_id", userID)
	group.MemberIDs = append(group.MemberIDs, userID)
	return group, nil
}

// CreateExpense creates an expense within the group, paid by payerID.
// The payer and every split participant must be group members. The
// expense service performs validation and the ledger update; on success
// the expense is appended to the group's list.
func (s *Service) CreateExpense(ctx context.Context, groupID, payerID string, req *expense.CreateExpenseRequest) (*expense.Expense, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !group.HasMember(payerID) {
		return nil, fmt.Errorf("%w: payer %s", ErrNotAMember, payerID)
	}
	for _, sp := range req.Splits {
		if !group.HasMember(sp.UserID) {
			return nil, fmt.Errorf("%w: participant %s", ErrNotAMember, sp.UserID)
		}
	}

	e, err := s.expenses.Create(ctx, groupID, payerID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AppendExpense(ctx, groupID, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListExpenses returns all expenses created within the group.
func (s *Service) ListExpenses(ctx context.Context, groupID string) ([]*expense.Expense, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group.Expenses, nil
}
