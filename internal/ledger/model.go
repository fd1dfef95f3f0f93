package ledger

// Balance is one counterparty entry in a balance sheet. The owe and
// get-back sides are tracked independently and are never netted against
// each other; repeated expenses between the same pair accumulate.
type Balance struct {
	AmountOwed    float64 `json:"amount_owed"`
	AmountGetBack float64 `json:"amount_get_back"`
}

// BalanceSheet is a user's aggregate view of money owed and owed-back,
// broken down by counterparty. Totals are a running sum over every
// expense applied so far.
type BalanceSheet struct {
	// Balances maps a counterparty's user ID to the entry against them.
	Balances map[string]*Balance `json:"balances"`

	// TotalExpense is the user's own share of spends, whether they paid
	// or someone else did.
	TotalExpense float64 `json:"total_expense"`

	// TotalPayment is the sum of full expense amounts the user paid out.
	TotalPayment float64 `json:"total_payment"`

	// TotalOwed is what the user owes others across all counterparties.
	TotalOwed float64 `json:"total_owed"`

	// TotalGetBack is what others owe the user across all counterparties.
	TotalGetBack float64 `json:"total_get_back"`
}

// NewBalanceSheet returns an empty sheet.
func NewBalanceSheet() *BalanceSheet {
	return &BalanceSheet{Balances: make(map[string]*Balance)}
}

// balanceWith returns the entry against the given counterparty, creating
// it on first use.
func (bs *BalanceSheet) balanceWith(userID string) *Balance {
	b, ok := bs.Balances[userID]
	if !ok {
		b = &Balance{}
		bs.Balances[userID] = b
	}
	return b
}

// clone returns a deep copy of the sheet.
func (bs *BalanceSheet) clone() *BalanceSheet {
	cp := &BalanceSheet{
		Balances:     make(map[string]*Balance, len(bs.Balances)),
		TotalExpense: bs.TotalExpense,
		TotalPayment: bs.TotalPayment,
		TotalOwed:    bs.TotalOwed,
		TotalGetBack: bs.TotalGetBack,
	}
	for id, b := range bs.Balances {
		entry := *b
		cp.Balances[id] = &entry
	}
	return cp
}
