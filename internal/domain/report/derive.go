package report

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// ZeroFillCharges expands the stored line items into the full slot list in
// presentation order. Slots without a stored row get a zero amount.
func ZeroFillCharges(stored []ChargeSlot) []ChargeSlot {
	byCategory := make(map[finance.ChargeCategory]ChargeSlot, len(stored))
	for _, s := range stored {
		byCategory[s.Category] = s
	}

	out := make([]ChargeSlot, 0, len(finance.AllChargeCategories()))
	for _, cat := range finance.AllChargeCategories() {
		if s, ok := byCategory[cat]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, ChargeSlot{Category: cat, Amount: decimal.Zero})
	}
	return out
}

// OutstandingBalance computes the amount still owed on a receivable:
// COALESCE(collectible_amount, gross_income) - COALESCE(amount_paid, 0).
// The running collectible balance takes precedence over gross income.
func OutstandingBalance(grossIncome decimal.Decimal, collectible decimal.NullDecimal, amountPaid decimal.Decimal) decimal.Decimal {
	baseline := grossIncome
	if collectible.Valid {
		baseline = collectible.Decimal
	}
	return baseline.Sub(amountPaid)
}

// PaymentStatusOf classifies a receivable's collection state against the
// same baseline OutstandingBalance uses
func PaymentStatusOf(grossIncome decimal.Decimal, collectible decimal.NullDecimal, amountPaid decimal.Decimal) finance.PaymentStatus {
	outstanding := OutstandingBalance(grossIncome, collectible, amountPaid)
	switch {
	case !outstanding.IsPositive():
		return finance.PaymentStatusPaid
	case amountPaid.IsPositive():
		return finance.PaymentStatusPartial
	default:
		return finance.PaymentStatusUnpaid
	}
}

// TermsStatusOf classifies a receivable against its credit terms.
// Zero terms means no terms were agreed; a paid receivable is never overdue.
func TermsStatusOf(bookingCreatedAt time.Time, terms int, status finance.PaymentStatus, now time.Time) finance.TermsStatus {
	if terms <= 0 {
		return finance.TermsStatusNoTerms
	}
	if status == finance.PaymentStatusPaid {
		return finance.TermsStatusWithinTerms
	}
	if now.After(bookingCreatedAt.AddDate(0, 0, terms)) {
		return finance.TermsStatusOverdue
	}
	return finance.TermsStatusWithinTerms
}

// CurrentAging returns whole days from booking creation to the payment date,
// or to now while unpaid
func CurrentAging(bookingCreatedAt time.Time, paymentDate *time.Time, now time.Time) int {
	end := now
	if paymentDate != nil {
		end = *paymentDate
	}
	days := int(end.Sub(bookingCreatedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// NetRevenueAmount returns gross_income x net_revenue_percentage / 100
func NetRevenueAmount(grossIncome, netRevenuePct decimal.Decimal) decimal.Decimal {
	return grossIncome.Mul(netRevenuePct).Div(decimal.NewFromInt(100))
}

// Derive fills the computed columns of a receivable summary row in place
func (r *ReceivableSummaryRow) Derive(now time.Time) {
	r.CurrentAging = CurrentAging(r.BookingDate, r.PaymentDate, now)
	r.OutstandingBalance = OutstandingBalance(r.GrossIncome, r.CollectibleAmount, r.AmountPaid)
	r.PaymentStatus = PaymentStatusOf(r.GrossIncome, r.CollectibleAmount, r.AmountPaid)
	r.TermsStatus = TermsStatusOf(r.BookingDate, r.Terms, r.PaymentStatus, now)
	r.NetRevenueAmount = NetRevenueAmount(r.GrossIncome, r.NetRevenuePercentage)
}
