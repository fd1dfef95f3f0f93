package group

import (
	"time"

	"splitledger/internal/expense"
)

// Group is a named collection of users plus the expenses created within
// it. Members are held by ID; a user may belong to any number of groups.
// The expense list only grows.
type Group struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	MemberIDs []string           `json:"member_ids"`
	Expenses  []*expense.Expense `json:"expenses"`
	CreatedAt time.Time          `json:"created_at"`
}

// HasMember reports whether the user belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
