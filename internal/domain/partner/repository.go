package partner

import (
	"context"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ShippingLineRepository defines the interface for shipping line persistence
type ShippingLineRepository interface {
	// FindByID finds a shipping line by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ShippingLine, error)

	// FindByCode finds a shipping line by its code
	FindByCode(ctx context.Context, code string) (*ShippingLine, error)

	// FindAll finds shipping lines with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]ShippingLine, error)

	// Save creates or updates a shipping line
	Save(ctx context.Context, sl *ShippingLine) error

	// Count counts shipping lines matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// TruckingCompanyRepository defines the interface for trucking company persistence
type TruckingCompanyRepository interface {
	// FindByID finds a trucking company by ID
	FindByID(ctx context.Context, id uuid.UUID) (*TruckingCompany, error)

	// FindByCode finds a trucking company by its code
	FindByCode(ctx context.Context, code string) (*TruckingCompany, error)

	// FindAll finds trucking companies with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]TruckingCompany, error)

	// Save creates or updates a trucking company
	Save(ctx context.Context, tc *TruckingCompany) error

	// Count counts trucking companies matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
