package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitledger/internal/ledger"
)

func newTestService() *Service {
	return NewService(NewRepository(), ledger.New())
}

func TestCreateOpensBalanceSheet(t *testing.T) {
	svc := newTestService()

	u, err := svc.Create(context.Background(), &CreateUserRequest{ID: "u1", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Alice", u.Name)

	sheet, err := svc.BalanceSheet(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, sheet.TotalPayment)
	assert.Empty(t, sheet.Balances)
}

func TestCreateGeneratesID(t *testing.T) {
	svc := newTestService()

	u, err := svc.Create(context.Background(), &CreateUserRequest{Name: "Bob"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	got, err := svc.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)
}

func TestCreateDuplicateID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &CreateUserRequest{ID: "u1", Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &CreateUserRequest{ID: "u1", Name: "Imposter"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.BalanceSheet(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	svc := newTestService()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := svc.Create(context.Background(), &CreateUserRequest{Name: name})
		require.NoError(t, err)
	}

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, "Carol", users[2].Name)
}
