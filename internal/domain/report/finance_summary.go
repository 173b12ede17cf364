package report

import (
	"context"
	"time"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeSlot is one category column in the payables summary. Slots with no
// stored line item carry a zero amount and empty voucher.
type ChargeSlot struct {
	Category  finance.ChargeCategory `json:"category"`
	Payee     string                 `json:"payee"`
	Amount    decimal.Decimal        `json:"amount"`
	CheckDate *time.Time             `json:"check_date,omitempty"`
	Voucher   string                 `json:"voucher,omitempty"`
}

// PayableSummaryRow is a read model joining a payable with its booking,
// partner names, charge slots, and the income figures from the linked
// receivable.
type PayableSummaryRow struct {
	PayableID     uuid.UUID       `json:"payable_id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	BookingNumber string          `json:"booking_number"`
	HWBNumber     string          `json:"hwb_number"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	ShipperName   string          `json:"shipper_name"`
	BookingDate   time.Time       `json:"booking_date"`
	BIRPercentage decimal.Decimal `json:"bir_percentage"`

	// Stored rollup and the live recomputation, side by side. A mismatch
	// means the stored total is stale.
	TotalExpenses           decimal.Decimal `json:"total_expenses"`
	CalculatedTotalExpenses decimal.Decimal `json:"calculated_total_expenses"`
	TotalPayables           decimal.Decimal `json:"total_payables"`

	GrossIncome          decimal.NullDecimal `json:"gross_income"`
	CollectibleAmount    decimal.NullDecimal `json:"collectible_amount"`
	NetRevenuePercentage decimal.NullDecimal `json:"net_revenue_percentage"`

	// Payee names resolved from the partner registries; empty when the
	// booking has no partner on that leg.
	ShippingLineName       string `json:"shipping_line_name"`
	OriginTruckerName      string `json:"origin_trucker_name"`
	DestinationTruckerName string `json:"destination_trucker_name"`

	Charges []ChargeSlot `json:"charges"`
}

// ReceivableSummaryRow is a read model joining a receivable with its
// booking plus the collection-status columns derived at read time.
type ReceivableSummaryRow struct {
	ReceivableID  uuid.UUID `json:"receivable_id"`
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	HWBNumber     string    `json:"hwb_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	ShipperName   string    `json:"shipper_name"`
	BookingDate   time.Time `json:"booking_date"`

	GrossIncome          decimal.Decimal     `json:"gross_income"`
	AmountPaid           decimal.Decimal     `json:"amount_paid"`
	CollectibleAmount    decimal.NullDecimal `json:"collectible_amount"`
	NetRevenuePercentage decimal.Decimal     `json:"net_revenue_percentage"`
	PaymentDate          *time.Time          `json:"payment_date,omitempty"`
	Terms                int                 `json:"terms"`
	Aging                int                 `json:"aging"`

	// Derived columns, never stored
	CurrentAging       int                   `json:"current_aging"`
	OutstandingBalance decimal.Decimal       `json:"outstanding_balance"`
	PaymentStatus      finance.PaymentStatus `json:"ar_payment_status"`
	TermsStatus        finance.TermsStatus   `json:"terms_status"`
	NetRevenueAmount   decimal.Decimal       `json:"net_revenue_amount"`
}

// SummaryFilter defines filtering options for the summary projections
type SummaryFilter struct {
	Page          int
	PageSize      int
	BookingNumber string     // Exact booking number match
	From          *time.Time // Booking creation range start
	To            *time.Time // Booking creation range end
}

// SummaryRepository defines the interface for the financial summary queries.
// Rows come back newest booking first (created_at desc, id as tie-break).
type SummaryRepository interface {
	// PayableSummary returns the accounts payable projection
	PayableSummary(ctx context.Context, filter SummaryFilter) ([]PayableSummaryRow, int64, error)

	// ReceivableSummary returns the accounts receivable projection
	ReceivableSummary(ctx context.Context, filter SummaryFilter) ([]ReceivableSummaryRow, int64, error)
}
