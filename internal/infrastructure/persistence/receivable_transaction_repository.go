package persistence

import (
	"context"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReceivableTransactionRepository implements ReceivableTransactionRepository using GORM
type GormReceivableTransactionRepository struct {
	db *gorm.DB
}

// NewGormReceivableTransactionRepository creates a new GormReceivableTransactionRepository
func NewGormReceivableTransactionRepository(db *gorm.DB) *GormReceivableTransactionRepository {
	return &GormReceivableTransactionRepository{db: db}
}

// Save inserts a posted payment
func (r *GormReceivableTransactionRepository) Save(ctx context.Context, txn *finance.ReceivableTransaction) error {
	model := models.ReceivableTransactionModelFromDomain(txn)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByReceivableID returns the posted payments, newest first
func (r *GormReceivableTransactionRepository) FindByReceivableID(ctx context.Context, receivableID uuid.UUID) ([]finance.ReceivableTransaction, error) {
	var txnModels []models.ReceivableTransactionModel
	if err := r.db.WithContext(ctx).
		Where("receivable_id = ?", receivableID).
		Order("posted_at DESC, id DESC").
		Find(&txnModels).Error; err != nil {
		return nil, err
	}
	txns := make([]finance.ReceivableTransaction, len(txnModels))
	for i, model := range txnModels {
		txns[i] = *model.ToDomain()
	}
	return txns, nil
}

// SumByReceivableID totals the posted payment amounts
func (r *GormReceivableTransactionRepository) SumByReceivableID(ctx context.Context, receivableID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.ReceivableTransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("receivable_id = ?", receivableID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Ensure GormReceivableTransactionRepository implements ReceivableTransactionRepository
var _ finance.ReceivableTransactionRepository = (*GormReceivableTransactionRepository)(nil)
