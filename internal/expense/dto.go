package expense

import "splitledger/internal/expense/split"

// SplitRequest is one participant's entry in a create-expense request.
// Value is an absolute amount for EQUAL and EXACT splits and a percentage
// for PERCENTAGE splits.
type SplitRequest struct {
	UserID string  `json:"user_id" validate:"required"`
	Value  float64 `json:"value"`
}

// CreateExpenseRequest represents the request to create an expense.
// ID is optional; one is generated when omitted.
type CreateExpenseRequest struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description" validate:"required,min=1,max=255"`
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	SplitType   string          `json:"split_type" validate:"required,oneof=EQUAL EXACT PERCENTAGE"`
	Splits      []*SplitRequest `json:"splits" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"group_id"`
	PayerID     string          `json:"payer_id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	SplitType   string          `json:"split_type"`
	Splits      []SplitResponse `json:"splits"`
	CreatedAt   string          `json:"created_at"`
}

// SplitResponse represents one participant's owed amount in a response
type SplitResponse struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// toValidationInput converts request splits into the split package's type.
func toValidationInput(splits []*SplitRequest) []split.Split {
	inputs := make([]split.Split, len(splits))
	for i, s := range splits {
		inputs[i] = split.Split{UserID: s.UserID, Value: s.Value}
	}
	return inputs
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	splits := make([]SplitResponse, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = SplitResponse{UserID: s.UserID, Amount: s.Amount}
	}
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		Description: e.Description,
		Amount:      e.Amount,
		SplitType:   string(e.SplitType),
		Splits:      splits,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
