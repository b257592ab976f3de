package service

import (
	"context"
	"testing"

	"clubbooks/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTransactionFixture() (*fakeTransactionStore, *TransactionService) {
	store := &fakeTransactionStore{}
	return store, NewTransactionService(store, zap.NewNop())
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.New()

	t.Run("valid request", func(t *testing.T) {
		store, svc := newTransactionFixture()

		tx, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
			Amount:         amount("42.50"),
			Date:           "2025-03-10",
			Classification: "expense",
			Description:    "Field rental",
		}, userID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tx.ID)
		assert.Equal(t, userID, tx.CreatedBy)
		assert.Len(t, store.transactions, 1)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, svc := newTransactionFixture()

		_, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
			Amount:         amount("-1"),
			Date:           "2025-03-10",
			Classification: "expense",
		}, userID)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown classification is rejected", func(t *testing.T) {
		_, svc := newTransactionFixture()

		_, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
			Amount:         amount("10"),
			Date:           "2025-03-10",
			Classification: "refund",
		}, userID)

		assert.ErrorIs(t, err, ErrInvalidClassification)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, svc := newTransactionFixture()

		_, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
			Amount:         amount("10"),
			Date:           "10/03/2025",
			Classification: "expense",
		}, userID)

		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestUpdateTransaction(t *testing.T) {
	userID := uuid.New()
	store, svc := newTransactionFixture()

	created, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
		Amount:         amount("42.50"),
		Date:           "2025-03-10",
		Classification: "expense",
	}, userID)
	require.NoError(t, err)

	editor := uuid.New()
	updated, err := svc.Update(context.Background(), created.ID, &dto.CreateTransactionRequest{
		Amount:         amount("45.00"),
		Date:           "2025-03-11",
		Classification: "expense",
	}, editor)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, userID, updated.CreatedBy)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, editor, *updated.UpdatedBy)
	assert.True(t, store.transactions[0].Amount.Equal(amount("45.00")))
}

func TestDeleteTransaction(t *testing.T) {
	userID := uuid.New()
	store, svc := newTransactionFixture()

	created, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
		Amount:         amount("10"),
		Date:           "2025-03-10",
		Classification: "income",
	}, userID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, store.transactions)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrNotFound)
}
