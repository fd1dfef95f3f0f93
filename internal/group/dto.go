package group

import "splitledger/internal/expense"

// CreateGroupRequest represents the request to create a new group. The
// founder becomes the group's first member. ID is optional; one is
// generated when omitted.
type CreateGroupRequest struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	FounderID string `json:"founder_id" validate:"required"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
	CreatedAt string   `json:"created_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	members := make([]string, len(g.MemberIDs))
	copy(members, g.MemberIDs)
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		MemberIDs: members,
		CreatedAt: g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// toExpenseResponses converts a group's expense list into DTOs.
func toExpenseResponses(expenses []*expense.Expense) []*expense.ExpenseResponse {
	out := make([]*expense.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = e.ToResponse()
	}
	return out
}
