package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupFinanceTestDB creates an in-memory SQLite database with the finance tables
func setupFinanceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			booking_number TEXT NOT NULL UNIQUE,
			hwb_number TEXT,
			mode TEXT NOT NULL,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			commodity TEXT,
			status TEXT NOT NULL DEFAULT 'PENDING',
			shipper_name TEXT NOT NULL,
			shipping_line_id TEXT,
			origin_trucker_id TEXT,
			destination_trucker_id TEXT
		)`,
		`CREATE TABLE accounts_payables (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			booking_id TEXT NOT NULL UNIQUE,
			bir_percentage TEXT NOT NULL,
			total_expenses TEXT NOT NULL,
			total_payables TEXT NOT NULL
		)`,
		`CREATE TABLE accounts_receivables (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			booking_id TEXT NOT NULL UNIQUE,
			amount_paid TEXT NOT NULL,
			collectible_amount TEXT,
			gross_income TEXT NOT NULL,
			net_revenue_percentage TEXT NOT NULL DEFAULT '0',
			payment_date DATETIME,
			terms INTEGER NOT NULL DEFAULT 0,
			aging INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE ap_charges (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			payable_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			charge_key TEXT NOT NULL DEFAULT '',
			payee TEXT,
			amount TEXT NOT NULL,
			check_date DATETIME,
			voucher TEXT,
			UNIQUE(payable_id, kind, charge_key)
		)`,
		`CREATE TABLE ar_adjustments (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			receivable_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			amount TEXT NOT NULL
		)`,
		`CREATE TABLE receivable_transactions (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			receivable_id TEXT NOT NULL,
			amount TEXT NOT NULL,
			reference TEXT,
			posted_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func TestGormAccountsPayableRepository_SaveAndFind(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormAccountsPayableRepository(db)
	ctx := context.Background()

	bookingID := uuid.New()
	ap, err := finance.NewAccountsPayable(bookingID, decimal.NewFromInt(2))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ap))

	found, err := repo.FindByBookingID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, found.ID)
	assert.True(t, found.BIRPercentage.Equal(decimal.NewFromInt(2)))

	_, err = repo.FindByBookingID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAccountsPayableRepository_SaveWithLock(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormAccountsPayableRepository(db)
	ctx := context.Background()

	ap, err := finance.NewAccountsPayable(uuid.New(), decimal.NewFromInt(2))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ap))

	t.Run("saves when version matches", func(t *testing.T) {
		require.NoError(t, ap.ApplyComputedTotals(decimal.NewFromInt(1000))) // version 2
		require.NoError(t, repo.SaveWithLock(ctx, ap))

		found, err := repo.FindByID(ctx, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, found.Version)
		assert.True(t, found.TotalPayables.Equal(decimal.NewFromInt(980)))
	})

	t.Run("rejects stale version", func(t *testing.T) {
		stale := *ap
		stale.Version = 5 // claims to come from version 4, which never existed
		err := repo.SaveWithLock(ctx, &stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

func TestGormAccountsReceivableRepository_NullCollectible(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormAccountsReceivableRepository(db)
	ctx := context.Background()

	ar, err := finance.NewAccountsReceivable(uuid.New())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ar))

	// Freshly created receivable has no collectible balance
	found, err := repo.FindByID(ctx, ar.ID)
	require.NoError(t, err)
	assert.False(t, found.CollectibleAmount.Valid)

	// After a snapshot the balance is present
	_, err = found.SnapshotCollectible(decimal.NewFromInt(1500), decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, repo.SaveWithLock(ctx, found))

	reloaded, err := repo.FindByID(ctx, ar.ID)
	require.NoError(t, err)
	require.True(t, reloaded.CollectibleAmount.Valid)
	assert.True(t, reloaded.CollectibleAmount.Decimal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, reloaded.GrossIncome.Equal(decimal.NewFromInt(1500)))
}

func TestGormAccountsReceivableRepository_FindBookingIDsWithoutReceivable(t *testing.T) {
	db := setupFinanceTestDB(t)
	bookingRepo := NewGormBookingRepository(db)
	repo := NewGormAccountsReceivableRepository(db)
	ctx := context.Background()

	withAR, err := booking.NewBooking("BKG-001", "", booking.ModeSea, "Manila", "Cebu", "Rice", "Acme")
	require.NoError(t, err)
	withoutAR, err := booking.NewBooking("BKG-002", "", booking.ModeSea, "Manila", "Iloilo", "Sugar", "Acme")
	require.NoError(t, err)
	require.NoError(t, bookingRepo.Save(ctx, withAR))
	require.NoError(t, bookingRepo.Save(ctx, withoutAR))

	ar, err := finance.NewAccountsReceivable(withAR.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ar))

	ids, err := repo.FindBookingIDsWithoutReceivable(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, withoutAR.ID, ids[0])
}

func TestGormChargeRepository_UpsertReplacesSlot(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormChargeRepository(db)
	ctx := context.Background()

	payableID := uuid.New()

	first, err := finance.NewChargeLineItem(payableID, finance.CategoryFreight, decimal.NewFromInt(500), nil, "CV-001", "Oceanic Lines")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, first))

	// Same slot again: the prior value is replaced, not duplicated
	second, err := finance.NewChargeLineItem(payableID, finance.CategoryFreight, decimal.NewFromInt(650), nil, "CV-002", "Oceanic Lines")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, second))

	items, err := repo.FindByPayableID(ctx, payableID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(650)))
	assert.Equal(t, "CV-002", items[0].Voucher)

	// A different slot on the same payable is a separate row
	trucking, err := finance.NewChargeLineItem(payableID, finance.CategoryTruckingOrigin, decimal.NewFromInt(200), nil, "", "North Haulers")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, trucking))

	sum, err := repo.SumByPayableID(ctx, payableID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(850)))
}

func TestGormChargeRepository_SumByPayableID_Empty(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormChargeRepository(db)

	sum, err := repo.SumByPayableID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestGormAdjustmentRepository_LedgerOrder(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormAdjustmentRepository(db)
	ctx := context.Background()

	receivableID := uuid.New()

	snapshot, err := finance.NewSnapshotAdjustment(receivableID, decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, snapshot))

	payment, err := finance.NewPaymentAdjustment(receivableID, decimal.NewFromInt(300))
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, payment))

	entries, err := repo.FindByReceivableID(ctx, receivableID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, finance.AdjustmentSnapshot, entries[0].Kind)
	assert.Equal(t, finance.AdjustmentPayment, entries[1].Kind)

	balance := finance.FoldAdjustments(entries)
	require.True(t, balance.Valid)
	assert.True(t, balance.Decimal.Equal(decimal.NewFromInt(700)))
}

func TestGormReceivableTransactionRepository(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewGormReceivableTransactionRepository(db)
	ctx := context.Background()

	receivableID := uuid.New()

	first, err := finance.NewReceivableTransaction(receivableID, decimal.NewFromInt(400), "OR-1001")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := finance.NewReceivableTransaction(receivableID, decimal.NewFromInt(350), "OR-1002")
	require.NoError(t, err)
	second.PostedAt = second.PostedAt.Add(time.Second) // force a distinct ordering key
	require.NoError(t, repo.Save(ctx, second))

	txns, err := repo.FindByReceivableID(ctx, receivableID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "OR-1002", txns[0].Reference)

	sum, err := repo.SumByReceivableID(ctx, receivableID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(750)))
}
