package expense

import (
	"time"

	"splitledger/internal/expense/split"
)

// Split is one participant's owed portion of an expense, always an
// absolute amount. Percentage requests are rewritten into amounts before
// the expense is constructed.
type Split struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Expense is an immutable record of one spend event. It is constructed by
// the service after validation and never modified afterwards.
type Expense struct {
	ID          string     `json:"id"`
	GroupID     string     `json:"group_id"`
	PayerID     string     `json:"payer_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	SplitType   split.Type `json:"split_type"`
	Splits      []Split    `json:"splits"`
	CreatedAt   time.Time  `json:"created_at"`
}
