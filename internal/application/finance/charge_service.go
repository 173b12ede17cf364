package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeService maintains the charge line items of a payable: one slot per
// category, upsert-replace semantics, and the live expense sum.
type ChargeService struct {
	payableRepo finance.AccountsPayableRepository
	chargeRepo  finance.ChargeRepository
}

// NewChargeService creates a new ChargeService
func NewChargeService(
	payableRepo finance.AccountsPayableRepository,
	chargeRepo finance.ChargeRepository,
) *ChargeService {
	return &ChargeService{
		payableRepo: payableRepo,
		chargeRepo:  chargeRepo,
	}
}

// UpsertChargeRequest represents a request to set one charge category slot
type UpsertChargeRequest struct {
	PayableID uuid.UUID
	Kind      string // FREIGHT, TRUCKING, PORT, MISC
	Key       string // Slot within the kind; empty for freight
	Amount    decimal.Decimal
	CheckDate *time.Time
	Voucher   string
	Payee     string
}

// UpsertCategory inserts or replaces the line item for the exact
// (payable, category) slot. Categories absent from a request keep their
// prior value.
func (s *ChargeService) UpsertCategory(ctx context.Context, req UpsertChargeRequest) (*finance.ChargeLineItem, error) {
	category, err := finance.ParseChargeCategory(req.Kind, req.Key)
	if err != nil {
		return nil, err
	}

	// Reject before touching storage
	item, err := finance.NewChargeLineItem(req.PayableID, category, req.Amount, req.CheckDate, req.Voucher, req.Payee)
	if err != nil {
		return nil, err
	}

	if _, err := s.payableRepo.FindByID(ctx, req.PayableID); err != nil {
		return nil, fmt.Errorf("failed to load payable: %w", err)
	}

	if err := s.chargeRepo.Upsert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to upsert charge: %w", err)
	}
	return item, nil
}

// SumCategories recomputes the total expenses from the stored line items.
// Absent categories count as zero.
func (s *ChargeService) SumCategories(ctx context.Context, payableID uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.payableRepo.FindByID(ctx, payableID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to load payable: %w", err)
	}
	total, err := s.chargeRepo.SumByPayableID(ctx, payableID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum charges: %w", err)
	}
	return total, nil
}

// ListCharges returns the stored line items of a payable
func (s *ChargeService) ListCharges(ctx context.Context, payableID uuid.UUID) ([]finance.ChargeLineItem, error) {
	if _, err := s.payableRepo.FindByID(ctx, payableID); err != nil {
		return nil, fmt.Errorf("failed to load payable: %w", err)
	}
	items, err := s.chargeRepo.FindByPayableID(ctx, payableID)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	return items, nil
}
