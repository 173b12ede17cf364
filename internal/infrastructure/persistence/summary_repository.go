package persistence

import (
	"context"
	"time"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/report"
	"github.com/cargoflow/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSummaryRepository implements report.SummaryRepository using GORM.
// It joins the financial records with their bookings and partner registries
// and recomputes the charge total live, so the stored rollup and the actual
// sum can be compared side by side.
type GormSummaryRepository struct {
	db *gorm.DB
}

// NewGormSummaryRepository creates a new GormSummaryRepository
func NewGormSummaryRepository(db *gorm.DB) *GormSummaryRepository {
	return &GormSummaryRepository{db: db}
}

// PayableSummary returns the accounts payable projection, newest booking first
func (r *GormSummaryRepository) PayableSummary(ctx context.Context, filter report.SummaryFilter) ([]report.PayableSummaryRow, int64, error) {
	type payableResult struct {
		PayableID               uuid.UUID
		BookingID               uuid.UUID
		BookingNumber           string
		HWBNumber               string `gorm:"column:hwb_number"`
		Origin                  string
		Destination             string
		ShipperName             string
		BookingDate             time.Time
		BIRPercentage           decimal.Decimal `gorm:"column:bir_percentage"`
		TotalExpenses           decimal.Decimal
		CalculatedTotalExpenses decimal.Decimal
		TotalPayables           decimal.Decimal
		GrossIncome             decimal.NullDecimal
		CollectibleAmount       decimal.NullDecimal
		NetRevenuePercentage    decimal.NullDecimal
		ShippingLineName        string
		OriginTruckerName       string
		DestinationTruckerName  string
	}

	base := r.db.WithContext(ctx).Table("accounts_payables ap").
		Joins("JOIN bookings b ON b.id = ap.booking_id")
	base = applySummaryFilter(base, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []payableResult
	query := base.Session(&gorm.Session{}).
		Select(`
			ap.id as payable_id,
			b.id as booking_id,
			b.booking_number,
			b.hwb_number,
			b.origin,
			b.destination,
			b.shipper_name,
			b.created_at as booking_date,
			ap.bir_percentage,
			ap.total_expenses,
			(SELECT COALESCE(SUM(c.amount), 0) FROM ap_charges c WHERE c.payable_id = ap.id) as calculated_total_expenses,
			ap.total_payables,
			ar.gross_income,
			ar.collectible_amount,
			ar.net_revenue_percentage,
			COALESCE(sl.name, '') as shipping_line_name,
			COALESCE(ot.name, '') as origin_trucker_name,
			COALESCE(dt.name, '') as destination_trucker_name
		`).
		Joins("LEFT JOIN accounts_receivables ar ON ar.booking_id = b.id").
		Joins("LEFT JOIN shipping_lines sl ON sl.id = b.shipping_line_id").
		Joins("LEFT JOIN trucking_companies ot ON ot.id = b.origin_trucker_id").
		Joins("LEFT JOIN trucking_companies dt ON dt.id = b.destination_trucker_id").
		Order("b.created_at DESC, b.id DESC")
	query = applySummaryPagination(query, filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]report.PayableSummaryRow, len(results))
	payableIDs := make([]uuid.UUID, len(results))
	for i, res := range results {
		payableIDs[i] = res.PayableID
		rows[i] = report.PayableSummaryRow{
			PayableID:               res.PayableID,
			BookingID:               res.BookingID,
			BookingNumber:           res.BookingNumber,
			HWBNumber:               res.HWBNumber,
			Origin:                  res.Origin,
			Destination:             res.Destination,
			ShipperName:             res.ShipperName,
			BookingDate:             res.BookingDate,
			BIRPercentage:           res.BIRPercentage,
			TotalExpenses:           res.TotalExpenses,
			CalculatedTotalExpenses: res.CalculatedTotalExpenses,
			TotalPayables:           res.TotalPayables,
			GrossIncome:             res.GrossIncome,
			CollectibleAmount:       res.CollectibleAmount,
			NetRevenuePercentage:    res.NetRevenuePercentage,
			ShippingLineName:        res.ShippingLineName,
			OriginTruckerName:       res.OriginTruckerName,
			DestinationTruckerName:  res.DestinationTruckerName,
		}
	}

	charges, err := r.chargesByPayable(ctx, payableIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].Charges = charges[rows[i].PayableID]
	}

	return rows, total, nil
}

// ReceivableSummary returns the accounts receivable projection, newest
// booking first. Derived columns are left for the caller to fill in.
func (r *GormSummaryRepository) ReceivableSummary(ctx context.Context, filter report.SummaryFilter) ([]report.ReceivableSummaryRow, int64, error) {
	type receivableResult struct {
		ReceivableID         uuid.UUID
		BookingID            uuid.UUID
		BookingNumber        string
		HWBNumber            string `gorm:"column:hwb_number"`
		Origin               string
		Destination          string
		ShipperName          string
		BookingDate          time.Time
		GrossIncome          decimal.Decimal
		AmountPaid           decimal.Decimal
		CollectibleAmount    decimal.NullDecimal
		NetRevenuePercentage decimal.Decimal
		PaymentDate          *time.Time
		Terms                int
		Aging                int
	}

	base := r.db.WithContext(ctx).Table("accounts_receivables ar").
		Joins("JOIN bookings b ON b.id = ar.booking_id")
	base = applySummaryFilter(base, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []receivableResult
	query := base.Session(&gorm.Session{}).
		Select(`
			ar.id as receivable_id,
			b.id as booking_id,
			b.booking_number,
			b.hwb_number,
			b.origin,
			b.destination,
			b.shipper_name,
			b.created_at as booking_date,
			ar.gross_income,
			ar.amount_paid,
			ar.collectible_amount,
			ar.net_revenue_percentage,
			ar.payment_date,
			ar.terms,
			ar.aging
		`).
		Order("b.created_at DESC, b.id DESC")
	query = applySummaryPagination(query, filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]report.ReceivableSummaryRow, len(results))
	for i, res := range results {
		rows[i] = report.ReceivableSummaryRow{
			ReceivableID:         res.ReceivableID,
			BookingID:            res.BookingID,
			BookingNumber:        res.BookingNumber,
			HWBNumber:            res.HWBNumber,
			Origin:               res.Origin,
			Destination:          res.Destination,
			ShipperName:          res.ShipperName,
			BookingDate:          res.BookingDate,
			GrossIncome:          res.GrossIncome,
			AmountPaid:           res.AmountPaid,
			CollectibleAmount:    res.CollectibleAmount,
			NetRevenuePercentage: res.NetRevenuePercentage,
			PaymentDate:          res.PaymentDate,
			Terms:                res.Terms,
			Aging:                res.Aging,
		}
	}

	return rows, total, nil
}

// chargesByPayable loads the stored charge line items for a page of payables
// in one query and groups them by payable ID.
func (r *GormSummaryRepository) chargesByPayable(ctx context.Context, payableIDs []uuid.UUID) (map[uuid.UUID][]report.ChargeSlot, error) {
	grouped := make(map[uuid.UUID][]report.ChargeSlot, len(payableIDs))
	if len(payableIDs) == 0 {
		return grouped, nil
	}

	var chargeModels []models.ChargeLineItemModel
	if err := r.db.WithContext(ctx).
		Where("payable_id IN ?", payableIDs).
		Find(&chargeModels).Error; err != nil {
		return nil, err
	}

	for _, model := range chargeModels {
		item := model.ToDomain()
		grouped[item.PayableID] = append(grouped[item.PayableID], report.ChargeSlot{
			Category:  finance.ChargeCategory{Kind: item.Category.Kind, Key: item.Category.Key},
			Payee:     item.Payee,
			Amount:    item.Amount,
			CheckDate: item.CheckDate,
			Voucher:   item.Voucher,
		})
	}
	return grouped, nil
}

// applySummaryFilter applies the shared booking-level filters
func applySummaryFilter(query *gorm.DB, filter report.SummaryFilter) *gorm.DB {
	if filter.BookingNumber != "" {
		query = query.Where("b.booking_number = ?", filter.BookingNumber)
	}
	if filter.From != nil {
		query = query.Where("b.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("b.created_at <= ?", *filter.To)
	}
	return query
}

// applySummaryPagination applies page settings to the query
func applySummaryPagination(query *gorm.DB, filter report.SummaryFilter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// Ensure GormSummaryRepository implements report.SummaryRepository
var _ report.SummaryRepository = (*GormSummaryRepository)(nil)
