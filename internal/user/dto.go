package user

import (
	"sort"

	"splitledger/internal/ledger"
)

// CreateUserRequest represents the request body for creating a user.
// ID is optional; one is generated when omitted.
type CreateUserRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// CounterpartyBalanceResponse is one counterparty entry in a balance
// sheet response.
type CounterpartyBalanceResponse struct {
	UserID        string  `json:"user_id"`
	AmountOwed    float64 `json:"amount_owed"`
	AmountGetBack float64 `json:"amount_get_back"`
}

// BalanceSheetResponse represents a user's balance sheet: running totals
// plus the per-counterparty breakdown, sorted by counterparty ID.
type BalanceSheetResponse struct {
	UserID       string                        `json:"user_id"`
	TotalExpense float64                       `json:"total_expense"`
	TotalPayment float64                       `json:"total_payment"`
	TotalOwed    float64                       `json:"total_owed"`
	TotalGetBack float64                       `json:"total_get_back"`
	Balances     []CounterpartyBalanceResponse `json:"balances"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// NewBalanceSheetResponse converts a ledger snapshot into its DTO.
func NewBalanceSheetResponse(userID string, sheet *ledger.BalanceSheet) *BalanceSheetResponse {
	balances := make([]CounterpartyBalanceResponse, 0, len(sheet.Balances))
	for id, b := range sheet.Balances {
		balances = append(balances, CounterpartyBalanceResponse{
			UserID:        id,
			AmountOwed:    b.AmountOwed,
			AmountGetBack: b.AmountGetBack,
		})
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].UserID < balances[j].UserID })

	return &BalanceSheetResponse{
		UserID:       userID,
		TotalExpense: sheet.TotalExpense,
		TotalPayment: sheet.TotalPayment,
		TotalOwed:    sheet.TotalOwed,
		TotalGetBack: sheet.TotalGetBack,
		Balances:     balances,
	}
}
