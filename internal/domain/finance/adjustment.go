package finance

import (
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdjustmentKind says how an adjustment moves the collectible balance
type AdjustmentKind string

const (
	// AdjustmentSnapshot sets the balance to the recorded amount
	AdjustmentSnapshot AdjustmentKind = "SNAPSHOT"
	// AdjustmentPayment subtracts the recorded amount from the balance
	AdjustmentPayment AdjustmentKind = "PAYMENT"
)

// IsValid checks if the kind is a valid AdjustmentKind
func (k AdjustmentKind) IsValid() bool {
	return k == AdjustmentSnapshot || k == AdjustmentPayment
}

// CollectibleAdjustment is one append-only entry in a receivable's
// collectible ledger. The AR row's collectible_amount is the fold of these
// entries; the ledger is the audit trail for how the balance got there.
type CollectibleAdjustment struct {
	shared.BaseEntity
	ReceivableID uuid.UUID       `json:"receivable_id"`
	Kind         AdjustmentKind  `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
}

// NewSnapshotAdjustment records a balance reset to the given amount
func NewSnapshotAdjustment(receivableID uuid.UUID, amount decimal.Decimal) (*CollectibleAdjustment, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}
	return &CollectibleAdjustment{
		BaseEntity:   shared.NewBaseEntity(),
		ReceivableID: receivableID,
		Kind:         AdjustmentSnapshot,
		Amount:       amount,
	}, nil
}

// NewPaymentAdjustment records a deduction of the given amount
func NewPaymentAdjustment(receivableID uuid.UUID, amount decimal.Decimal) (*CollectibleAdjustment, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Deduction amount must be positive")
	}
	return &CollectibleAdjustment{
		BaseEntity:   shared.NewBaseEntity(),
		ReceivableID: receivableID,
		Kind:         AdjustmentPayment,
		Amount:       amount,
	}, nil
}

// FoldAdjustments replays the ledger in order and returns the resulting
// balance. An empty ledger folds to NULL: the balance was never set.
func FoldAdjustments(entries []CollectibleAdjustment) decimal.NullDecimal {
	var balance decimal.NullDecimal
	for _, e := range entries {
		switch e.Kind {
		case AdjustmentSnapshot:
			balance = decimal.NewNullDecimal(e.Amount)
		case AdjustmentPayment:
			base := decimal.Zero
			if balance.Valid {
				base = balance.Decimal
			}
			balance = decimal.NewNullDecimal(base.Sub(e.Amount))
		}
	}
	return balance
}
