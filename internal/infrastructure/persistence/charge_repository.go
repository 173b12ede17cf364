package persistence

import (
	"context"
	"errors"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/cargoflow/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChargeRepository implements ChargeRepository using GORM
type GormChargeRepository struct {
	db *gorm.DB
}

// NewGormChargeRepository creates a new GormChargeRepository
func NewGormChargeRepository(db *gorm.DB) *GormChargeRepository {
	return &GormChargeRepository{db: db}
}

// FindByPayableID returns all stored line items for a payable
func (r *GormChargeRepository) FindByPayableID(ctx context.Context, payableID uuid.UUID) ([]finance.ChargeLineItem, error) {
	var chargeModels []models.ChargeLineItemModel
	if err := r.db.WithContext(ctx).
		Where("payable_id = ?", payableID).
		Order("kind ASC, charge_key ASC").
		Find(&chargeModels).Error; err != nil {
		return nil, err
	}
	items := make([]finance.ChargeLineItem, len(chargeModels))
	for i, model := range chargeModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindByCategory returns the line item in one slot
func (r *GormChargeRepository) FindByCategory(ctx context.Context, payableID uuid.UUID, category finance.ChargeCategory) (*finance.ChargeLineItem, error) {
	var model models.ChargeLineItemModel
	if err := r.db.WithContext(ctx).
		Where("payable_id = ? AND kind = ? AND charge_key = ?", payableID, category.Kind, category.Key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert inserts or replaces the line item in its (payable, category) slot.
// The conflict target is the unique index on (payable_id, kind, charge_key).
func (r *GormChargeRepository) Upsert(ctx context.Context, item *finance.ChargeLineItem) error {
	model := models.ChargeLineItemModelFromDomain(item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "payable_id"},
				{Name: "kind"},
				{Name: "charge_key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"payee", "amount", "check_date", "voucher", "updated_at",
			}),
		}).
		Create(model).Error
}

// SumByPayableID computes the live total of stored line item amounts
func (r *GormChargeRepository) SumByPayableID(ctx context.Context, payableID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.ChargeLineItemModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("payable_id = ?", payableID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Ensure GormChargeRepository implements ChargeRepository
var _ finance.ChargeRepository = (*GormChargeRepository)(nil)
