package finance

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// AccountsPayable tracks the expense side of a booking: the charge line
// items paid out to carriers, truckers, and port operators, rolled up into
// total_expenses, and total_payables net of the BIR withholding percentage.
//
// TotalExpenses is derived from the stored charge line items. The
// reconciliation engine recomputes it on write; reads that feed payables
// math must treat the live sum of line items as authoritative.
type AccountsPayable struct {
	shared.BaseAggregateRoot
	BookingID     uuid.UUID       `json:"booking_id"`
	BIRPercentage decimal.Decimal `json:"bir_percentage"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalPayables decimal.Decimal `json:"total_payables"`
}

// NewAccountsPayable creates the payable record for a booking
func NewAccountsPayable(bookingID uuid.UUID, birPercentage decimal.Decimal) (*AccountsPayable, error) {
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BOOKING", "Booking ID cannot be empty")
	}
	if err := validatePercentage(birPercentage); err != nil {
		return nil, err
	}
	return &AccountsPayable{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BookingID:         bookingID,
		BIRPercentage:     birPercentage,
		TotalExpenses:     decimal.Zero,
		TotalPayables:     decimal.Zero,
	}, nil
}

// SetBIRPercentage updates the withholding percentage
func (ap *AccountsPayable) SetBIRPercentage(pct decimal.Decimal) error {
	if err := validatePercentage(pct); err != nil {
		return err
	}
	ap.BIRPercentage = pct
	ap.UpdatedAt = time.Now()
	ap.IncrementVersion()
	return nil
}

// ApplyComputedTotals sets total_expenses from a recomputed charge sum and
// derives total_payables = expenses x (1 - BIR/100)
func (ap *AccountsPayable) ApplyComputedTotals(totalExpenses decimal.Decimal) error {
	if totalExpenses.IsNegative() {
		return shared.ErrInvalidAmount
	}
	ap.TotalExpenses = totalExpenses
	ap.TotalPayables = totalExpenses.Mul(oneHundred.Sub(ap.BIRPercentage)).Div(oneHundred)
	ap.UpdatedAt = time.Now()
	ap.IncrementVersion()
	return nil
}

// ApplyVerbatimTotals writes caller-supplied totals without recomputation.
// Used when recompute-on-write is disabled and the caller owns the math.
func (ap *AccountsPayable) ApplyVerbatimTotals(totalExpenses, totalPayables decimal.Decimal) error {
	if totalExpenses.IsNegative() || totalPayables.IsNegative() {
		return shared.ErrInvalidAmount
	}
	ap.TotalExpenses = totalExpenses
	ap.TotalPayables = totalPayables
	ap.UpdatedAt = time.Now()
	ap.IncrementVersion()
	return nil
}

// PayablesFor returns the payables that would result from the given expense
// total under the current BIR percentage, without mutating the aggregate
func (ap *AccountsPayable) PayablesFor(totalExpenses decimal.Decimal) decimal.Decimal {
	return totalExpenses.Mul(oneHundred.Sub(ap.BIRPercentage)).Div(oneHundred)
}

func validatePercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(oneHundred) {
		return shared.ErrInvalidPercentage
	}
	return nil
}
