package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/cargoflow/backend/internal/domain/partner"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/cargoflow/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShippingLineRepository implements partner.ShippingLineRepository using GORM
type GormShippingLineRepository struct {
	db *gorm.DB
}

// NewGormShippingLineRepository creates a new GormShippingLineRepository
func NewGormShippingLineRepository(db *gorm.DB) *GormShippingLineRepository {
	return &GormShippingLineRepository{db: db}
}

// FindByID finds a shipping line by its ID
func (r *GormShippingLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.ShippingLine, error) {
	var model models.ShippingLineModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a shipping line by its code
func (r *GormShippingLineRepository) FindByCode(ctx context.Context, code string) (*partner.ShippingLine, error) {
	var model models.ShippingLineModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds shipping lines with pagination
func (r *GormShippingLineRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.ShippingLine, error) {
	var lineModels []models.ShippingLineModel
	query := applyPartnerFilter(r.db.WithContext(ctx).Model(&models.ShippingLineModel{}), filter)

	if err := query.Find(&lineModels).Error; err != nil {
		return nil, err
	}
	lines := make([]partner.ShippingLine, len(lineModels))
	for i, model := range lineModels {
		lines[i] = *model.ToDomain()
	}
	return lines, nil
}

// Save creates or updates a shipping line
func (r *GormShippingLineRepository) Save(ctx context.Context, sl *partner.ShippingLine) error {
	model := models.ShippingLineModelFromDomain(sl)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts shipping lines matching the filter
func (r *GormShippingLineRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyPartnerSearch(r.db.WithContext(ctx).Model(&models.ShippingLineModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormTruckingCompanyRepository implements partner.TruckingCompanyRepository using GORM
type GormTruckingCompanyRepository struct {
	db *gorm.DB
}

// NewGormTruckingCompanyRepository creates a new GormTruckingCompanyRepository
func NewGormTruckingCompanyRepository(db *gorm.DB) *GormTruckingCompanyRepository {
	return &GormTruckingCompanyRepository{db: db}
}

// FindByID finds a trucking company by its ID
func (r *GormTruckingCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.TruckingCompany, error) {
	var model models.TruckingCompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a trucking company by its code
func (r *GormTruckingCompanyRepository) FindByCode(ctx context.Context, code string) (*partner.TruckingCompany, error) {
	var model models.TruckingCompanyModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds trucking companies with pagination
func (r *GormTruckingCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.TruckingCompany, error) {
	var companyModels []models.TruckingCompanyModel
	query := applyPartnerFilter(r.db.WithContext(ctx).Model(&models.TruckingCompanyModel{}), filter)

	if err := query.Find(&companyModels).Error; err != nil {
		return nil, err
	}
	companies := make([]partner.TruckingCompany, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// Save creates or updates a trucking company
func (r *GormTruckingCompanyRepository) Save(ctx context.Context, tc *partner.TruckingCompany) error {
	model := models.TruckingCompanyModelFromDomain(tc)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts trucking companies matching the filter
func (r *GormTruckingCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyPartnerSearch(r.db.WithContext(ctx).Model(&models.TruckingCompanyModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyPartnerSearch applies the search term shared by both partner registries
func applyPartnerSearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// applyPartnerFilter applies search, pagination, and ordering
func applyPartnerFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applyPartnerSearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit())
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// Ensure the repositories implement their domain interfaces
var (
	_ partner.ShippingLineRepository    = (*GormShippingLineRepository)(nil)
	_ partner.TruckingCompanyRepository = (*GormTruckingCompanyRepository)(nil)
)
