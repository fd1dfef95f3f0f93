package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-4

func newTestLedger(t *testing.T, userIDs ...string) *Ledger {
	t.Helper()
	l := New()
	for _, id := range userIDs {
		require.NoError(t, l.OpenSheet(id))
	}
	return l
}

func TestOpenSheet(t *testing.T) {
	l := New()

	require.NoError(t, l.OpenSheet("u1"))

	err := l.OpenSheet("u1")
	assert.ErrorIs(t, err, ErrSheetAlreadyOpen)

	sheet, err := l.Snapshot("u1")
	require.NoError(t, err)
	assert.Zero(t, sheet.TotalPayment)
	assert.Empty(t, sheet.Balances)
}

func TestSnapshotUnknownUser(t *testing.T) {
	l := New()
	_, err := l.Snapshot("nobody")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestSnapshotIsACopy(t *testing.T) {
	l := newTestLedger(t, "u1", "u2")
	require.NoError(t, l.Apply("u1", []Share{{UserID: "u2", Amount: 50}}, 50))

	snap, err := l.Snapshot("u1")
	require.NoError(t, err)
	snap.TotalPayment = 9999
	snap.Balances["u2"].AmountGetBack = 9999

	fresh, err := l.Snapshot("u1")
	require.NoError(t, err)
	assert.InDelta(t, 50, fresh.TotalPayment, epsilon)
	assert.InDelta(t, 50, fresh.Balances["u2"].AmountGetBack, epsilon)
}

func TestApplyEqualSplitThreeWays(t *testing.T) {
	l := newTestLedger(t, "u1", "u2", "u3")

	shares := []Share{
		{UserID: "u1", Amount: 300},
		{UserID: "u2", Amount: 300},
		{UserID: "u3", Amount: 300},
	}
	require.NoError(t, l.Apply("u1", shares, 900))

	payer, err := l.Snapshot("u1")
	require.NoError(t, err)
	assert.InDelta(t, 900, payer.TotalPayment, epsilon)
	assert.InDelta(t, 300, payer.TotalExpense, epsilon)
	assert.InDelta(t, 600, payer.TotalGetBack, epsilon)
	assert.Zero(t, payer.TotalOwed)
	require.Contains(t, payer.Balances, "u2")
	require.Contains(t, payer.Balances, "u3")
	assert.InDelta(t, 300, payer.Balances["u2"].AmountGetBack, epsilon)
	assert.InDelta(t, 300, payer.Balances["u3"].AmountGetBack, epsilon)

	for _, id := range []string{"u2", "u3"} {
		sheet, err := l.Snapshot(id)
		require.NoError(t, err)
		assert.InDelta(t, 300, sheet.TotalOwed, epsilon)
		assert.InDelta(t, 300, sheet.TotalExpense, epsilon)
		assert.Zero(t, sheet.TotalPayment)
		assert.Zero(t, sheet.TotalGetBack)
		require.Contains(t, sheet.Balances, "u1")
		assert.InDelta(t, 300, sheet.Balances["u1"].AmountOwed, epsilon)
		assert.Zero(t, sheet.Balances["u1"].AmountGetBack)
	}
}

func TestApplySelfShareOnly(t *testing.T) {
	l := newTestLedger(t, "u1", "u2")

	// u2 pays 500; u1 owes 400, u2's own share is 100.
	shares := []Share{
		{UserID: "u1", Amount: 400},
		{UserID: "u2", Amount: 100},
	}
	require.NoError(t, l.Apply("u2", shares, 500))

	payer, err := l.Snapshot("u2")
	require.NoError(t, err)
	assert.InDelta(t, 500, payer.TotalPayment, epsilon)
	assert.InDelta(t, 100, payer.TotalExpense, epsilon)
	assert.InDelta(t, 400, payer.TotalGetBack, epsilon)

	// The self-share never shows up as a counterparty entry.
	assert.NotContains(t, payer.Balances, "u2")
	require.Contains(t, payer.Balances, "u1")
	assert.InDelta(t, 400, payer.Balances["u1"].AmountGetBack, epsilon)

	other, err := l.Snapshot("u1")
	require.NoError(t, err)
	assert.InDelta(t, 400, other.TotalOwed, epsilon)
	assert.InDelta(t, 400, other.Balances["u2"].AmountOwed, epsilon)
}

func TestApplyIsAdditiveNotNetted(t *testing.T) {
	l := newTestLedger(t, "u1", "u2")

	// u1 pays for u2, then u2 pays for u1. The two directions must not
	// collapse into a net figure.
	require.NoError(t, l.Apply("u1", []Share{{UserID: "u2", Amount: 100}}, 100))
	require.NoError(t, l.Apply("u2", []Share{{UserID: "u1", Amount: 40}}, 40))
	require.NoError(t, l.Apply("u1", []Share{{UserID: "u2", Amount: 60}}, 60))

	u1, err := l.Snapshot("u1")
	require.NoError(t, err)
	assert.InDelta(t, 160, u1.Balances["u2"].AmountGetBack, epsilon)
	assert.InDelta(t, 40, u1.Balances["u2"].AmountOwed, epsilon)
	assert.InDelta(t, 160, u1.TotalGetBack, epsilon)
	assert.InDelta(t, 40, u1.TotalOwed, epsilon)

	u2, err := l.Snapshot("u2")
	require.NoError(t, err)
	assert.InDelta(t, 160, u2.Balances["u1"].AmountOwed, epsilon)
	assert.InDelta(t, 40, u2.Balances["u1"].AmountGetBack, epsilon)
}

func TestApplyUnknownParticipantLeavesLedgerUntouched(t *testing.T) {
	l := newTestLedger(t, "u1", "u2")

	shares := []Share{
		{UserID: "u2", Amount: 100},
		{UserID: "ghost", Amount: 100},
	}
	err := l.Apply("u1", shares, 200)
	require.ErrorIs(t, err, ErrSheetNotFound)

	for _, id := range []string{"u1", "u2"} {
		sheet, err := l.Snapshot(id)
		require.NoError(t, err)
		assert.Zero(t, sheet.TotalPayment)
		assert.Zero(t, sheet.TotalExpense)
		assert.Zero(t, sheet.TotalOwed)
		assert.Zero(t, sheet.TotalGetBack)
		assert.Empty(t, sheet.Balances)
	}
}

func TestApplyUnknownPayer(t *testing.T) {
	l := newTestLedger(t, "u1")
	err := l.Apply("ghost", []Share{{UserID: "u1", Amount: 10}}, 10)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}
