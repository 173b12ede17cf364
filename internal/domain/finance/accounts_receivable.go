package finance

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus classifies how much of a receivable has been collected
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
)

// TermsStatus classifies a receivable against its credit terms
type TermsStatus string

const (
	TermsStatusOverdue     TermsStatus = "OVERDUE"
	TermsStatusWithinTerms TermsStatus = "WITHIN_TERMS"
	TermsStatusNoTerms     TermsStatus = "NO_TERMS"
)

// AccountsReceivable tracks the income side of a booking: the gross income
// billed to the shipper, payments collected against it, and the collectible
// balance.
//
// CollectibleAmount is a running balance, not a derived value. It starts
// NULL, is seeded from gross income on the first touch, and moves only
// through snapshots and deductions recorded in the adjustment ledger.
type AccountsReceivable struct {
	shared.BaseAggregateRoot
	BookingID            uuid.UUID           `json:"booking_id"`
	AmountPaid           decimal.Decimal     `json:"amount_paid"`
	CollectibleAmount    decimal.NullDecimal `json:"collectible_amount"`
	GrossIncome          decimal.Decimal     `json:"gross_income"`
	NetRevenuePercentage decimal.Decimal     `json:"net_revenue_percentage"`
	PaymentDate          *time.Time          `json:"payment_date"`
	Terms                int                 `json:"terms"`
	Aging                int                 `json:"aging"`
}

// NewAccountsReceivable creates the receivable record for a booking.
// CollectibleAmount starts NULL; it gets a value on the first snapshot or
// deduction.
func NewAccountsReceivable(bookingID uuid.UUID) (*AccountsReceivable, error) {
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BOOKING", "Booking ID cannot be empty")
	}
	return &AccountsReceivable{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BookingID:         bookingID,
		AmountPaid:        decimal.Zero,
		GrossIncome:       decimal.Zero,
	}, nil
}

// SnapshotCollectible sets gross income and net revenue percentage, then
// resets the collectible balance to gross income minus the amount already
// paid. Returns the snapshot value for the adjustment ledger.
func (ar *AccountsReceivable) SnapshotCollectible(grossIncome, netRevenuePct decimal.Decimal) (decimal.Decimal, error) {
	if grossIncome.IsNegative() {
		return decimal.Zero, shared.ErrInvalidAmount
	}
	if err := validatePercentage(netRevenuePct); err != nil {
		return decimal.Zero, err
	}
	ar.GrossIncome = grossIncome
	ar.NetRevenuePercentage = netRevenuePct
	snapshot := grossIncome.Sub(ar.AmountPaid)
	ar.CollectibleAmount = decimal.NewNullDecimal(snapshot)
	ar.UpdatedAt = time.Now()
	ar.IncrementVersion()
	return snapshot, nil
}

// DeductCollectible subtracts a payment from the collectible balance,
// seeding the balance from gross income when it has never been set. The
// balance may go negative; overpayments are visible, not clamped.
func (ar *AccountsReceivable) DeductCollectible(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Deduction amount must be positive")
	}
	balance := ar.GrossIncome
	if ar.CollectibleAmount.Valid {
		balance = ar.CollectibleAmount.Decimal
	}
	ar.CollectibleAmount = decimal.NewNullDecimal(balance.Sub(amount))
	ar.UpdatedAt = time.Now()
	ar.IncrementVersion()
	return nil
}

// SetAmountPaid overwrites the paid total from a recomputation over the
// posted receivable transactions
func (ar *AccountsReceivable) SetAmountPaid(total decimal.Decimal) error {
	if total.IsNegative() {
		return shared.ErrInvalidAmount
	}
	ar.AmountPaid = total
	ar.UpdatedAt = time.Now()
	ar.IncrementVersion()
	return nil
}

// SetTerms updates the credit terms in days
func (ar *AccountsReceivable) SetTerms(days int) error {
	if days < 0 {
		return shared.NewDomainError("INVALID_TERMS", "Terms cannot be negative")
	}
	ar.Terms = days
	ar.UpdatedAt = time.Now()
	ar.IncrementVersion()
	return nil
}

// MarkPaid records the payment date
func (ar *AccountsReceivable) MarkPaid(paymentDate time.Time) {
	ar.PaymentDate = &paymentDate
	ar.UpdatedAt = time.Now()
	ar.IncrementVersion()
}

// RecomputeAging sets aging to the whole days between the booking's creation
// and the payment date, or now when still unpaid
func (ar *AccountsReceivable) RecomputeAging(bookingCreatedAt time.Time) {
	end := time.Now()
	if ar.PaymentDate != nil {
		end = *ar.PaymentDate
	}
	days := int(end.Sub(bookingCreatedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	ar.Aging = days
	ar.UpdatedAt = time.Now()
}

// OutstandingBalance returns the amount still owed: the collectible balance
// when one has been recorded, otherwise gross income, minus payments
func (ar *AccountsReceivable) OutstandingBalance() decimal.Decimal {
	baseline := ar.GrossIncome
	if ar.CollectibleAmount.Valid {
		baseline = ar.CollectibleAmount.Decimal
	}
	return baseline.Sub(ar.AmountPaid)
}

// PaymentStatus classifies the receivable against its outstanding balance
func (ar *AccountsReceivable) PaymentStatus() PaymentStatus {
	outstanding := ar.OutstandingBalance()
	switch {
	case !outstanding.IsPositive():
		return PaymentStatusPaid
	case ar.AmountPaid.IsPositive():
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}

// TermsStatus classifies the receivable against its credit terms as of now
func (ar *AccountsReceivable) TermsStatus() TermsStatus {
	return ar.TermsStatusAt(time.Now())
}

// TermsStatusAt classifies the receivable against its credit terms at the
// given instant
func (ar *AccountsReceivable) TermsStatusAt(now time.Time) TermsStatus {
	if ar.Terms <= 0 {
		return TermsStatusNoTerms
	}
	if ar.PaymentStatus() == PaymentStatusPaid {
		return TermsStatusWithinTerms
	}
	deadline := ar.CreatedAt.AddDate(0, 0, ar.Terms)
	if now.After(deadline) {
		return TermsStatusOverdue
	}
	return TermsStatusWithinTerms
}

// NetRevenueAmount returns gross income x net revenue percentage / 100
func (ar *AccountsReceivable) NetRevenueAmount() decimal.Decimal {
	return ar.GrossIncome.Mul(ar.NetRevenuePercentage).Div(oneHundred)
}
