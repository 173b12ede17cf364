package persistence

import (
	"context"
	"errors"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/cargoflow/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountsReceivableRepository implements AccountsReceivableRepository using GORM
type GormAccountsReceivableRepository struct {
	db *gorm.DB
}

// NewGormAccountsReceivableRepository creates a new GormAccountsReceivableRepository
func NewGormAccountsReceivableRepository(db *gorm.DB) *GormAccountsReceivableRepository {
	return &GormAccountsReceivableRepository{db: db}
}

// FindByID finds an accounts receivable by its ID
func (r *GormAccountsReceivableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountsReceivable, error) {
	var model models.AccountsReceivableModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBookingID finds the receivable linked to a booking
func (r *GormAccountsReceivableRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsReceivable, error) {
	var model models.AccountsReceivableModel
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBookingIDsWithoutReceivable returns the bookings that have no
// receivable yet, oldest first
func (r *GormAccountsReceivableRepository) FindBookingIDsWithoutReceivable(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Select("bookings.id").
		Joins("LEFT JOIN accounts_receivables ar ON ar.booking_id = bookings.id").
		Where("ar.id IS NULL").
		Order("bookings.created_at ASC").
		Pluck("bookings.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Save creates or updates an accounts receivable
func (r *GormAccountsReceivableRepository) Save(ctx context.Context, ar *finance.AccountsReceivable) error {
	model := models.AccountsReceivableModelFromDomain(ar)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking
func (r *GormAccountsReceivableRepository) SaveWithLock(ctx context.Context, ar *finance.AccountsReceivable) error {
	model := models.AccountsReceivableModelFromDomain(ar)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", ar.ID, ar.Version-1).
		Updates(map[string]any{
			"amount_paid":            model.AmountPaid,
			"collectible_amount":     model.CollectibleAmount,
			"gross_income":           model.GrossIncome,
			"net_revenue_percentage": model.NetRevenuePercentage,
			"payment_date":           model.PaymentDate,
			"terms":                  model.Terms,
			"aging":                  model.Aging,
			"version":                model.Version,
			"updated_at":             model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes an accounts receivable. Its adjustment ledger and posted
// transactions cascade at the database level.
func (r *GormAccountsReceivableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountsReceivableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormAccountsReceivableRepository implements AccountsReceivableRepository
var _ finance.AccountsReceivableRepository = (*GormAccountsReceivableRepository)(nil)
