package ledger

import (
	"errors"
	"fmt"
	"sync"
)

// Common errors
var (
	ErrSheetNotFound    = errors.New("balance sheet not found")
	ErrSheetAlreadyOpen = errors.New("balance sheet already open for user")
)

// Share is one participant's owed portion of an applied expense, always an
// absolute amount (percentage splits are normalized before they reach the
// ledger).
type Share struct {
	UserID string
	Amount float64
}

// Ledger applies expenses to balance sheets. It holds one sheet per
// registered user, keyed by user ID; a sheet is opened when the user is
// registered and lives as long as the ledger.
//
// A Ledger is an explicit dependency: construct one per process (or per
// test) and pass it to the services that need it. All mutation goes
// through the ledger under its lock, so sheets are safe to apply to from
// concurrent requests.
type Ledger struct {
	mu     sync.RWMutex
	sheets map[string]*BalanceSheet
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{sheets: make(map[string]*BalanceSheet)}
}

// OpenSheet creates the balance sheet for a newly registered user.
func (l *Ledger) OpenSheet(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.sheets[userID]; ok {
		return fmt.Errorf("%w: %s", ErrSheetAlreadyOpen, userID)
	}
	l.sheets[userID] = NewBalanceSheet()
	return nil
}

// Snapshot returns a deep copy of a user's balance sheet for display.
// Mutating the copy has no effect on the ledger.
func (l *Ledger) Snapshot(userID string) (*BalanceSheet, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sheet, ok := l.sheets[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, userID)
	}
	return sheet.clone(), nil
}

// Apply records one expense on both sides of the ledger. The payer's sheet
// is credited with the full payment once; each share then either counts as
// the payer's own spend (self-share) or creates a matching owe/get-back
// pair between the participant and the payer.
//
// Apply resolves every sheet before touching any of them, so an unknown
// user leaves the ledger unchanged.
func (l *Ledger) Apply(payerID string, shares []Share, totalAmount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	payerSheet, ok := l.sheets[payerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, payerID)
	}
	participantSheets := make([]*BalanceSheet, len(shares))
	for i, share := range shares {
		sheet, ok := l.sheets[share.UserID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrSheetNotFound, share.UserID)
		}
		participantSheets[i] = sheet
	}

	payerSheet.TotalPayment += totalAmount

	for i, share := range shares {
		if share.UserID == payerID {
			// The payer's own cut of the spend. No counterparty entry.
			payerSheet.TotalExpense += share.Amount
			continue
		}

		owedSheet := participantSheets[i]

		payerSheet.TotalGetBack += share.Amount
		payerSheet.balanceWith(share.UserID).AmountGetBack += share.Amount

		owedSheet.TotalOwed += share.Amount
		owedSheet.TotalExpense += share.Amount
		owedSheet.balanceWith(payerID).AmountOwed += share.Amount
	}

	return nil
}
