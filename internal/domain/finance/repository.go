package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountsPayableRepository defines the interface for payable persistence
type AccountsPayableRepository interface {
	// FindByID finds a payable by ID
	FindByID(ctx context.Context, id uuid.UUID) (*AccountsPayable, error)

	// FindByBookingID finds the payable linked to a booking
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*AccountsPayable, error)

	// Save creates or updates a payable
	Save(ctx context.Context, ap *AccountsPayable) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, ap *AccountsPayable) error

	// Delete removes a payable and its charge line items
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountsReceivableRepository defines the interface for receivable persistence
type AccountsReceivableRepository interface {
	// FindByID finds a receivable by ID
	FindByID(ctx context.Context, id uuid.UUID) (*AccountsReceivable, error)

	// FindByBookingID finds the receivable linked to a booking
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*AccountsReceivable, error)

	// FindBookingIDsWithoutReceivable returns the bookings that have no
	// receivable yet, for backfill
	FindBookingIDsWithoutReceivable(ctx context.Context) ([]uuid.UUID, error)

	// Save creates or updates a receivable
	Save(ctx context.Context, ar *AccountsReceivable) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, ar *AccountsReceivable) error

	// Delete removes a receivable and its adjustment ledger
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChargeRepository defines the interface for charge line item persistence
type ChargeRepository interface {
	// FindByPayableID returns all stored line items for a payable
	FindByPayableID(ctx context.Context, payableID uuid.UUID) ([]ChargeLineItem, error)

	// FindByCategory returns the line item in one slot, or shared.ErrNotFound
	FindByCategory(ctx context.Context, payableID uuid.UUID, category ChargeCategory) (*ChargeLineItem, error)

	// Upsert inserts or replaces the line item in its (payable, category) slot
	Upsert(ctx context.Context, item *ChargeLineItem) error

	// SumByPayableID computes the live total of stored line item amounts
	SumByPayableID(ctx context.Context, payableID uuid.UUID) (decimal.Decimal, error)
}

// AdjustmentRepository defines the interface for the collectible ledger
type AdjustmentRepository interface {
	// Append adds an entry to the ledger
	Append(ctx context.Context, adj *CollectibleAdjustment) error

	// FindByReceivableID returns the ledger in insertion order
	FindByReceivableID(ctx context.Context, receivableID uuid.UUID) ([]CollectibleAdjustment, error)
}

// ReceivableTransactionRepository defines the interface for posted payments
type ReceivableTransactionRepository interface {
	// Save inserts a posted payment
	Save(ctx context.Context, txn *ReceivableTransaction) error

	// FindByReceivableID returns the posted payments, newest first
	FindByReceivableID(ctx context.Context, receivableID uuid.UUID) ([]ReceivableTransaction, error)

	// SumByReceivableID totals the posted payment amounts
	SumByReceivableID(ctx context.Context, receivableID uuid.UUID) (decimal.Decimal, error)
}
