package finance

import (
	"context"
	"testing"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCollectibleService_Ledger(t *testing.T) {
	ctx := context.Background()

	t.Run("folds the history to the running balance", func(t *testing.T) {
		scope, _, receivableRepo, _, adjustmentRepo, _ := newTestScope()
		svc := NewCollectibleService(scope)

		ar := newReceivableFor(t, uuid.New())
		snapshot, err := finance.NewSnapshotAdjustment(ar.ID, decimal.NewFromInt(1000))
		require.NoError(t, err)
		payment, err := finance.NewPaymentAdjustment(ar.ID, decimal.NewFromInt(400))
		require.NoError(t, err)

		receivableRepo.On("FindByID", ctx, ar.ID).Return(ar, nil)
		adjustmentRepo.On("FindByReceivableID", ctx, ar.ID).
			Return([]finance.CollectibleAdjustment{*snapshot, *payment}, nil)

		ledger, err := svc.Ledger(ctx, ar.ID)
		require.NoError(t, err)
		require.Len(t, ledger.Entries, 2)
		require.True(t, ledger.Balance.Valid)
		assert.True(t, ledger.Balance.Decimal.Equal(decimal.NewFromInt(600)))
	})

	t.Run("empty history folds to a NULL balance", func(t *testing.T) {
		scope, _, receivableRepo, _, adjustmentRepo, _ := newTestScope()
		svc := NewCollectibleService(scope)

		ar := newReceivableFor(t, uuid.New())
		receivableRepo.On("FindByID", ctx, ar.ID).Return(ar, nil)
		adjustmentRepo.On("FindByReceivableID", ctx, ar.ID).
			Return([]finance.CollectibleAdjustment{}, nil)

		ledger, err := svc.Ledger(ctx, ar.ID)
		require.NoError(t, err)
		assert.Empty(t, ledger.Entries)
		assert.False(t, ledger.Balance.Valid)
	})
}

func TestCollectibleService_DeductFromCollectible(t *testing.T) {
	ctx := context.Background()

	t.Run("exact decimal deduction with ledger entry", func(t *testing.T) {
		scope, _, receivableRepo, _, adjustmentRepo, _ := newTestScope()
		svc := NewCollectibleService(scope)

		ar := newReceivableFor(t, uuid.New())
		before, _ := decimal.NewFromString("1000.10")
		_, err := ar.SnapshotCollectible(before, decimal.Zero)
		require.NoError(t, err)

		receivableRepo.On("FindByID", ctx, ar.ID).Return(ar, nil)
		var appended *finance.CollectibleAdjustment
		adjustmentRepo.On("Append", ctx, mock.Anything).Run(func(args mock.Arguments) {
			appended = args.Get(1).(*finance.CollectibleAdjustment)
		}).Return(nil)
		receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

		amount, _ := decimal.NewFromString("0.30")
		got, err := svc.DeductFromCollectible(ctx, ar.ID, amount)
		require.NoError(t, err)

		want, _ := decimal.NewFromString("999.80")
		assert.True(t, got.CollectibleAmount.Decimal.Equal(want), "got %s", got.CollectibleAmount.Decimal)

		require.NotNil(t, appended)
		assert.Equal(t, finance.AdjustmentPayment, appended.Kind)
		assert.True(t, appended.Amount.Equal(amount))
		receivableRepo.AssertExpectations(t)
	})

	t.Run("seeds from gross income when balance never set", func(t *testing.T) {
		scope, _, receivableRepo, _, adjustmentRepo, _ := newTestScope()
		svc := NewCollectibleService(scope)

		ar := newReceivableFor(t, uuid.New())
		ar.GrossIncome = decimal.NewFromInt(500)

		receivableRepo.On("FindByID", ctx, ar.ID).Return(ar, nil)
		adjustmentRepo.On("Append", ctx, mock.Anything).Return(nil)
		receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

		got, err := svc.DeductFromCollectible(ctx, ar.ID, decimal.NewFromInt(200))
		require.NoError(t, err)
		assert.True(t, got.CollectibleAmount.Decimal.Equal(decimal.NewFromInt(300)))
	})

	t.Run("rejects non-positive amounts without touching storage", func(t *testing.T) {
		scope, _, receivableRepo, _, _, _ := newTestScope()
		svc := NewCollectibleService(scope)

		_, err := svc.DeductFromCollectible(ctx, uuid.New(), decimal.Zero)
		assert.Error(t, err)
		_, err = svc.DeductFromCollectible(ctx, uuid.New(), decimal.NewFromInt(-10))
		assert.Error(t, err)

		receivableRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestCollectibleService_RecomputeAmountPaid(t *testing.T) {
	ctx := context.Background()

	scope, _, receivableRepo, _, _, txnRepo := newTestScope()
	svc := NewCollectibleService(scope)

	ar := newReceivableFor(t, uuid.New())
	receivableRepo.On("FindByID", ctx, ar.ID).Return(ar, nil)
	txnRepo.On("SumByReceivableID", ctx, ar.ID).Return(decimal.NewFromInt(750), nil)
	receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

	got, err := svc.RecomputeAmountPaid(ctx, ar.ID)
	require.NoError(t, err)
	assert.True(t, got.AmountPaid.Equal(decimal.NewFromInt(750)))
}

func TestCollectibleService_PostPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("posts, deducts, and resyncs in one pass", func(t *testing.T) {
		scope, _, receivableRepo, _, adjustmentRepo, txnRepo := newTestScope()
		svc := NewCollectibleService(scope)

		ar := newReceivableFor(t, uuid.New())
		_, err := ar.SnapshotCollectible(decimal.NewFromInt(1000), decimal.Zero)
		require.NoError(t, err)

		receivableRepo.On("FindByID", ctx, ar.ID).Return(ar, nil)
		var posted *finance.ReceivableTransaction
		txnRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			posted = args.Get(1).(*finance.ReceivableTransaction)
		}).Return(nil)
		adjustmentRepo.On("Append", ctx, mock.Anything).Return(nil)
		txnRepo.On("SumByReceivableID", ctx, ar.ID).Return(decimal.NewFromInt(400), nil)
		receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

		got, err := svc.PostPayment(ctx, ar.ID, decimal.NewFromInt(400), "OR-1234")
		require.NoError(t, err)

		require.NotNil(t, posted)
		assert.Equal(t, "OR-1234", posted.Reference)
		assert.True(t, got.CollectibleAmount.Decimal.Equal(decimal.NewFromInt(600)))
		assert.True(t, got.AmountPaid.Equal(decimal.NewFromInt(400)))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		scope, _, _, _, _, _ := newTestScope()
		svc := NewCollectibleService(scope)

		_, err := svc.PostPayment(ctx, uuid.New(), decimal.Zero, "")
		assert.Error(t, err)
	})
}
