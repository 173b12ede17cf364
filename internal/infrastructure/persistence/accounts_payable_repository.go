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

// GormAccountsPayableRepository implements AccountsPayableRepository using GORM
type GormAccountsPayableRepository struct {
	db *gorm.DB
}

// NewGormAccountsPayableRepository creates a new GormAccountsPayableRepository
func NewGormAccountsPayableRepository(db *gorm.DB) *GormAccountsPayableRepository {
	return &GormAccountsPayableRepository{db: db}
}

// FindByID finds an accounts payable by its ID
func (r *GormAccountsPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountsPayable, error) {
	var model models.AccountsPayableModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBookingID finds the payable linked to a booking
func (r *GormAccountsPayableRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsPayable, error) {
	var model models.AccountsPayableModel
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

// Save creates or updates an accounts payable
func (r *GormAccountsPayableRepository) Save(ctx context.Context, ap *finance.AccountsPayable) error {
	model := models.AccountsPayableModelFromDomain(ap)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking
func (r *GormAccountsPayableRepository) SaveWithLock(ctx context.Context, ap *finance.AccountsPayable) error {
	model := models.AccountsPayableModelFromDomain(ap)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", ap.ID, ap.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes an accounts payable. Its charge line items cascade at the
// database level.
func (r *GormAccountsPayableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountsPayableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormAccountsPayableRepository implements AccountsPayableRepository
var _ finance.AccountsPayableRepository = (*GormAccountsPayableRepository)(nil)
