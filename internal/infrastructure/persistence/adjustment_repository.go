package persistence

import (
	"context"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdjustmentRepository implements AdjustmentRepository using GORM.
// The ledger is append-only; there are no update or delete operations.
type GormAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormAdjustmentRepository creates a new GormAdjustmentRepository
func NewGormAdjustmentRepository(db *gorm.DB) *GormAdjustmentRepository {
	return &GormAdjustmentRepository{db: db}
}

// Append adds an entry to the ledger
func (r *GormAdjustmentRepository) Append(ctx context.Context, adj *finance.CollectibleAdjustment) error {
	model := models.CollectibleAdjustmentModelFromDomain(adj)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByReceivableID returns the ledger in insertion order
func (r *GormAdjustmentRepository) FindByReceivableID(ctx context.Context, receivableID uuid.UUID) ([]finance.CollectibleAdjustment, error) {
	var adjModels []models.CollectibleAdjustmentModel
	if err := r.db.WithContext(ctx).
		Where("receivable_id = ?", receivableID).
		Order("created_at ASC, id ASC").
		Find(&adjModels).Error; err != nil {
		return nil, err
	}
	entries := make([]finance.CollectibleAdjustment, len(adjModels))
	for i, model := range adjModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Ensure GormAdjustmentRepository implements AdjustmentRepository
var _ finance.AdjustmentRepository = (*GormAdjustmentRepository)(nil)
