package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciliationService applies a full expense-entry sheet to a payable and
// pushes the income figures onto the booking's receivable, atomically.
type ReconciliationService struct {
	scope TransactionScope
	// recomputeOnWrite selects how the payable totals are written: derived
	// from the stored charge rows (default), or taken verbatim from the
	// caller.
	recomputeOnWrite bool
}

// NewReconciliationService creates a new ReconciliationService
func NewReconciliationService(scope TransactionScope, recomputeOnWrite bool) *ReconciliationService {
	return &ReconciliationService{
		scope:            scope,
		recomputeOnWrite: recomputeOnWrite,
	}
}

// ChargeInput is one category slot in a reconcile request
type ChargeInput struct {
	Kind      string
	Key       string
	Amount    decimal.Decimal
	CheckDate *time.Time
	Voucher   string
	Payee     string
}

// ReconcileRequest carries the full entry sheet for one payable
type ReconcileRequest struct {
	BIRPercentage        decimal.Decimal
	Charges              []ChargeInput
	GrossIncome          decimal.Decimal
	NetRevenuePercentage decimal.Decimal

	// Caller-supplied totals, honored only when recompute-on-write is off
	TotalExpenses decimal.Decimal
	TotalPayables decimal.Decimal
}

// ReconcileResult reports the state both aggregates ended up in
type ReconcileResult struct {
	Payable                 *finance.AccountsPayable    `json:"payable"`
	Receivable              *finance.AccountsReceivable `json:"receivable"`
	CalculatedTotalExpenses decimal.Decimal             `json:"calculated_total_expenses"`
	Charges                 []finance.ChargeLineItem    `json:"charges"`
}

// Reconcile upserts every charge slot present in the request, rolls the
// expense total up into the payable, and snapshots the receivable's
// collectible balance. Everything happens in one transaction; any failure
// leaves both aggregates untouched.
func (s *ReconciliationService) Reconcile(ctx context.Context, payableID uuid.UUID, req ReconcileRequest) (*ReconcileResult, error) {
	// Validate the whole sheet before the transaction opens
	categories, err := validateReconcileRequest(payableID, req)
	if err != nil {
		return nil, err
	}

	var result *ReconcileResult
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		ap, err := repos.PayableRepo().FindByID(ctx, payableID)
		if err != nil {
			return fmt.Errorf("failed to load payable: %w", err)
		}

		if err := ap.SetBIRPercentage(req.BIRPercentage); err != nil {
			return err
		}

		for i, input := range req.Charges {
			item, err := finance.NewChargeLineItem(ap.ID, categories[i], input.Amount, input.CheckDate, input.Voucher, input.Payee)
			if err != nil {
				return err
			}
			if err := repos.ChargeRepo().Upsert(ctx, item); err != nil {
				return fmt.Errorf("failed to upsert charge %s: %w", categories[i], err)
			}
		}

		calculated, err := repos.ChargeRepo().SumByPayableID(ctx, ap.ID)
		if err != nil {
			return fmt.Errorf("failed to sum charges: %w", err)
		}

		if s.recomputeOnWrite {
			if err := ap.ApplyComputedTotals(calculated); err != nil {
				return err
			}
		} else {
			if err := ap.ApplyVerbatimTotals(req.TotalExpenses, req.TotalPayables); err != nil {
				return err
			}
		}

		ar, err := repos.ReceivableRepo().FindByBookingID(ctx, ap.BookingID)
		if err != nil {
			return fmt.Errorf("failed to load receivable: %w", err)
		}

		snapshot, err := ar.SnapshotCollectible(req.GrossIncome, req.NetRevenuePercentage)
		if err != nil {
			return err
		}
		adj, err := finance.NewSnapshotAdjustment(ar.ID, snapshot)
		if err != nil {
			return err
		}
		if err := repos.AdjustmentRepo().Append(ctx, adj); err != nil {
			return fmt.Errorf("failed to append adjustment: %w", err)
		}

		if err := repos.PayableRepo().SaveWithLock(ctx, ap); err != nil {
			return fmt.Errorf("failed to save payable: %w", err)
		}
		if err := repos.ReceivableRepo().SaveWithLock(ctx, ar); err != nil {
			return fmt.Errorf("failed to save receivable: %w", err)
		}

		charges, err := repos.ChargeRepo().FindByPayableID(ctx, ap.ID)
		if err != nil {
			return fmt.Errorf("failed to reload charges: %w", err)
		}

		result = &ReconcileResult{
			Payable:                 ap,
			Receivable:              ar,
			CalculatedTotalExpenses: calculated,
			Charges:                 charges,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func validateReconcileRequest(payableID uuid.UUID, req ReconcileRequest) ([]finance.ChargeCategory, error) {
	if payableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYABLE", "Payable ID cannot be empty")
	}
	if req.BIRPercentage.IsNegative() || req.BIRPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.ErrInvalidPercentage
	}
	if req.NetRevenuePercentage.IsNegative() || req.NetRevenuePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.ErrInvalidPercentage
	}
	if req.GrossIncome.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	if req.TotalExpenses.IsNegative() || req.TotalPayables.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}

	categories := make([]finance.ChargeCategory, len(req.Charges))
	seen := make(map[finance.ChargeCategory]bool, len(req.Charges))
	for i, input := range req.Charges {
		category, err := finance.ParseChargeCategory(input.Kind, input.Key)
		if err != nil {
			return nil, err
		}
		if seen[category] {
			return nil, shared.NewDomainError("DUPLICATE_CHARGE_CATEGORY",
				fmt.Sprintf("Charge category %s appears more than once", category))
		}
		seen[category] = true
		if input.Amount.IsNegative() {
			return nil, shared.ErrInvalidAmount
		}
		categories[i] = category
	}
	return categories, nil
}
