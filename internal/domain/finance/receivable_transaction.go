package finance

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceivableTransaction is one posted payment against a receivable.
// amount_paid on the AR row equals the sum of its posted transactions.
type ReceivableTransaction struct {
	shared.BaseEntity
	ReceivableID uuid.UUID       `json:"receivable_id"`
	Amount       decimal.Decimal `json:"amount"`
	Reference    string          `json:"reference"`
	PostedAt     time.Time       `json:"posted_at"`
}

// NewReceivableTransaction posts a payment against a receivable
func NewReceivableTransaction(receivableID uuid.UUID, amount decimal.Decimal, reference string) (*ReceivableTransaction, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	return &ReceivableTransaction{
		BaseEntity:   shared.NewBaseEntity(),
		ReceivableID: receivableID,
		Amount:       amount,
		Reference:    reference,
		PostedAt:     time.Now(),
	}, nil
}

// SumTransactions totals the posted payment amounts
func SumTransactions(txns []ReceivableTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}
