package partner

import (
	"context"
	"fmt"

	"github.com/cargoflow/backend/internal/domain/partner"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService manages the partner registries financial views join
// against: shipping lines and trucking companies.
type PartnerService struct {
	shippingLineRepo partner.ShippingLineRepository
	truckerRepo      partner.TruckingCompanyRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(
	shippingLineRepo partner.ShippingLineRepository,
	truckerRepo partner.TruckingCompanyRepository,
) *PartnerService {
	return &PartnerService{
		shippingLineRepo: shippingLineRepo,
		truckerRepo:      truckerRepo,
	}
}

// CreatePartnerRequest represents a request to register a partner
type CreatePartnerRequest struct {
	Code          string
	Name          string
	ContactPerson string
	ContactPhone  string
	ContactEmail  string
}

// CreateShippingLine registers a new shipping line
func (s *PartnerService) CreateShippingLine(ctx context.Context, req CreatePartnerRequest) (*partner.ShippingLine, error) {
	if existing, err := s.shippingLineRepo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}
	sl, err := partner.NewShippingLine(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.ContactPerson != "" || req.ContactPhone != "" || req.ContactEmail != "" {
		sl.SetContact(req.ContactPerson, req.ContactPhone, req.ContactEmail)
	}
	if err := s.shippingLineRepo.Save(ctx, sl); err != nil {
		return nil, fmt.Errorf("failed to save shipping line: %w", err)
	}
	return sl, nil
}

// GetShippingLine returns a shipping line by ID
func (s *PartnerService) GetShippingLine(ctx context.Context, id uuid.UUID) (*partner.ShippingLine, error) {
	return s.shippingLineRepo.FindByID(ctx, id)
}

// ListShippingLines returns shipping lines with pagination
func (s *PartnerService) ListShippingLines(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.ShippingLine], error) {
	items, err := s.shippingLineRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.ShippingLine]{}, fmt.Errorf("failed to list shipping lines: %w", err)
	}
	total, err := s.shippingLineRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.ShippingLine]{}, fmt.Errorf("failed to count shipping lines: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// CreateTruckingCompany registers a new trucking company
func (s *PartnerService) CreateTruckingCompany(ctx context.Context, req CreatePartnerRequest) (*partner.TruckingCompany, error) {
	if existing, err := s.truckerRepo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}
	tc, err := partner.NewTruckingCompany(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.ContactPerson != "" || req.ContactPhone != "" || req.ContactEmail != "" {
		tc.SetContact(req.ContactPerson, req.ContactPhone, req.ContactEmail)
	}
	if err := s.truckerRepo.Save(ctx, tc); err != nil {
		return nil, fmt.Errorf("failed to save trucking company: %w", err)
	}
	return tc, nil
}

// GetTruckingCompany returns a trucking company by ID
func (s *PartnerService) GetTruckingCompany(ctx context.Context, id uuid.UUID) (*partner.TruckingCompany, error) {
	return s.truckerRepo.FindByID(ctx, id)
}

// ListTruckingCompanies returns trucking companies with pagination
func (s *PartnerService) ListTruckingCompanies(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.TruckingCompany], error) {
	items, err := s.truckerRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.TruckingCompany]{}, fmt.Errorf("failed to list trucking companies: %w", err)
	}
	total, err := s.truckerRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.TruckingCompany]{}, fmt.Errorf("failed to count trucking companies: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}
