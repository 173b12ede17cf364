package finance

import (
	"context"
	"errors"
	"testing"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPayable(t *testing.T, birPct int64) *finance.AccountsPayable {
	t.Helper()
	ap, err := finance.NewAccountsPayable(uuid.New(), decimal.NewFromInt(birPct))
	require.NoError(t, err)
	return ap
}

func newReceivableFor(t *testing.T, bookingID uuid.UUID) *finance.AccountsReceivable {
	t.Helper()
	ar, err := finance.NewAccountsReceivable(bookingID)
	require.NoError(t, err)
	return ar
}

func TestReconciliationService_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes totals from stored charges", func(t *testing.T) {
		scope, payableRepo, receivableRepo, chargeRepo, adjustmentRepo, _ := newTestScope()
		svc := NewReconciliationService(scope, true)

		ap := newPayable(t, 2)
		ar := newReceivableFor(t, ap.BookingID)

		payableRepo.On("FindByID", ctx, ap.ID).Return(ap, nil)
		chargeRepo.On("Upsert", ctx, mock.AnythingOfType("*finance.ChargeLineItem")).Return(nil)
		chargeRepo.On("SumByPayableID", ctx, ap.ID).Return(decimal.NewFromInt(1000), nil)
		chargeRepo.On("FindByPayableID", ctx, ap.ID).Return([]finance.ChargeLineItem{}, nil)
		receivableRepo.On("FindByBookingID", ctx, ap.BookingID).Return(ar, nil)
		adjustmentRepo.On("Append", ctx, mock.AnythingOfType("*finance.CollectibleAdjustment")).Return(nil)
		payableRepo.On("SaveWithLock", ctx, ap).Return(nil)
		receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

		result, err := svc.Reconcile(ctx, ap.ID, ReconcileRequest{
			BIRPercentage: decimal.NewFromInt(2),
			Charges: []ChargeInput{
				{Kind: "FREIGHT", Amount: decimal.NewFromInt(600)},
				{Kind: "TRUCKING", Key: "ORIGIN", Amount: decimal.NewFromInt(400)},
			},
			GrossIncome:          decimal.NewFromInt(1500),
			NetRevenuePercentage: decimal.NewFromInt(20),
		})
		require.NoError(t, err)

		assert.True(t, result.Payable.TotalExpenses.Equal(decimal.NewFromInt(1000)))
		assert.True(t, result.Payable.TotalPayables.Equal(decimal.NewFromInt(980)))
		assert.True(t, result.CalculatedTotalExpenses.Equal(decimal.NewFromInt(1000)))

		require.True(t, result.Receivable.CollectibleAmount.Valid)
		assert.True(t, result.Receivable.CollectibleAmount.Decimal.Equal(decimal.NewFromInt(1500)))
		assert.True(t, result.Receivable.GrossIncome.Equal(decimal.NewFromInt(1500)))

		chargeRepo.AssertNumberOfCalls(t, "Upsert", 2)
		adjustmentRepo.AssertExpectations(t)
		payableRepo.AssertExpectations(t)
		receivableRepo.AssertExpectations(t)
	})

	t.Run("verbatim mode trusts caller totals", func(t *testing.T) {
		scope, payableRepo, receivableRepo, chargeRepo, adjustmentRepo, _ := newTestScope()
		svc := NewReconciliationService(scope, false)

		ap := newPayable(t, 2)
		ar := newReceivableFor(t, ap.BookingID)

		payableRepo.On("FindByID", ctx, ap.ID).Return(ap, nil)
		chargeRepo.On("SumByPayableID", ctx, ap.ID).Return(decimal.NewFromInt(555), nil)
		chargeRepo.On("FindByPayableID", ctx, ap.ID).Return([]finance.ChargeLineItem{}, nil)
		receivableRepo.On("FindByBookingID", ctx, ap.BookingID).Return(ar, nil)
		adjustmentRepo.On("Append", ctx, mock.Anything).Return(nil)
		payableRepo.On("SaveWithLock", ctx, ap).Return(nil)
		receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

		result, err := svc.Reconcile(ctx, ap.ID, ReconcileRequest{
			BIRPercentage: decimal.NewFromInt(2),
			GrossIncome:   decimal.NewFromInt(100),
			TotalExpenses: decimal.NewFromInt(900),
			TotalPayables: decimal.NewFromInt(880),
		})
		require.NoError(t, err)

		assert.True(t, result.Payable.TotalExpenses.Equal(decimal.NewFromInt(900)))
		assert.True(t, result.Payable.TotalPayables.Equal(decimal.NewFromInt(880)))
		// Live sum still reported alongside
		assert.True(t, result.CalculatedTotalExpenses.Equal(decimal.NewFromInt(555)))
	})

	t.Run("snapshot subtracts prior payments", func(t *testing.T) {
		scope, payableRepo, receivableRepo, chargeRepo, adjustmentRepo, _ := newTestScope()
		svc := NewReconciliationService(scope, true)

		ap := newPayable(t, 0)
		ar := newReceivableFor(t, ap.BookingID)
		require.NoError(t, ar.SetAmountPaid(decimal.NewFromInt(300)))

		payableRepo.On("FindByID", ctx, ap.ID).Return(ap, nil)
		chargeRepo.On("SumByPayableID", ctx, ap.ID).Return(decimal.Zero, nil)
		chargeRepo.On("FindByPayableID", ctx, ap.ID).Return([]finance.ChargeLineItem{}, nil)
		receivableRepo.On("FindByBookingID", ctx, ap.BookingID).Return(ar, nil)
		var appended *finance.CollectibleAdjustment
		adjustmentRepo.On("Append", ctx, mock.Anything).Run(func(args mock.Arguments) {
			appended = args.Get(1).(*finance.CollectibleAdjustment)
		}).Return(nil)
		payableRepo.On("SaveWithLock", ctx, ap).Return(nil)
		receivableRepo.On("SaveWithLock", ctx, ar).Return(nil)

		result, err := svc.Reconcile(ctx, ap.ID, ReconcileRequest{
			GrossIncome: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)

		assert.True(t, result.Receivable.CollectibleAmount.Decimal.Equal(decimal.NewFromInt(700)))
		require.NotNil(t, appended)
		assert.Equal(t, finance.AdjustmentSnapshot, appended.Kind)
		assert.True(t, appended.Amount.Equal(decimal.NewFromInt(700)))
	})

	t.Run("validation rejects before any repository call", func(t *testing.T) {
		scope, payableRepo, _, chargeRepo, _, _ := newTestScope()
		svc := NewReconciliationService(scope, true)

		cases := []ReconcileRequest{
			{BIRPercentage: decimal.NewFromInt(-1)},
			{BIRPercentage: decimal.NewFromInt(101)},
			{NetRevenuePercentage: decimal.NewFromInt(200)},
			{GrossIncome: decimal.NewFromInt(-5)},
			{Charges: []ChargeInput{{Kind: "FREIGHT", Amount: decimal.NewFromInt(-1)}}},
			{Charges: []ChargeInput{{Kind: "CUSTOMS", Amount: decimal.NewFromInt(1)}}},
			{Charges: []ChargeInput{
				{Kind: "FREIGHT", Amount: decimal.NewFromInt(1)},
				{Kind: "FREIGHT", Amount: decimal.NewFromInt(2)},
			}},
		}
		for _, req := range cases {
			_, err := svc.Reconcile(ctx, uuid.New(), req)
			assert.Error(t, err)
		}

		payableRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		chargeRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("mid-sequence failure aborts the transaction", func(t *testing.T) {
		scope, payableRepo, receivableRepo, chargeRepo, _, _ := newTestScope()
		svc := NewReconciliationService(scope, true)

		ap := newPayable(t, 0)
		boom := errors.New("constraint violation")

		payableRepo.On("FindByID", ctx, ap.ID).Return(ap, nil)
		chargeRepo.On("Upsert", ctx, mock.Anything).Return(boom)

		_, err := svc.Reconcile(ctx, ap.ID, ReconcileRequest{
			Charges: []ChargeInput{{Kind: "FREIGHT", Amount: decimal.NewFromInt(100)}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)

		// Nothing past the failing step runs inside the scope
		payableRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
		receivableRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})
}
