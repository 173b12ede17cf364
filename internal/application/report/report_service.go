package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cargoflow/backend/internal/domain/report"
	"github.com/cargoflow/backend/internal/domain/shared"
)

// FinanceReportService produces the payables and receivables summary views.
// Storage supplies the joined rows; the derived columns are computed here so
// they are never persisted and can never go stale.
type FinanceReportService struct {
	summaryRepo report.SummaryRepository
	now         func() time.Time
}

// NewFinanceReportService creates a new FinanceReportService
func NewFinanceReportService(summaryRepo report.SummaryRepository) *FinanceReportService {
	return &FinanceReportService{
		summaryRepo: summaryRepo,
		now:         time.Now,
	}
}

// PayableSummary returns one row per payable, newest booking first, with
// every charge category slot present (zero-filled when not yet entered) and
// the live recomputed expense total alongside the stored one.
func (s *FinanceReportService) PayableSummary(ctx context.Context, filter report.SummaryFilter) (shared.Paginated[report.PayableSummaryRow], error) {
	rows, total, err := s.summaryRepo.PayableSummary(ctx, filter)
	if err != nil {
		return shared.Paginated[report.PayableSummaryRow]{}, fmt.Errorf("failed to query payable summary: %w", err)
	}

	for i := range rows {
		rows[i].Charges = report.ZeroFillCharges(rows[i].Charges)
	}
	return shared.NewPaginated(rows, total, filter.Page, filter.PageSize), nil
}

// ReceivableSummary returns one row per receivable, newest booking first,
// with the collection-status columns derived as of now.
func (s *FinanceReportService) ReceivableSummary(ctx context.Context, filter report.SummaryFilter) (shared.Paginated[report.ReceivableSummaryRow], error) {
	rows, total, err := s.summaryRepo.ReceivableSummary(ctx, filter)
	if err != nil {
		return shared.Paginated[report.ReceivableSummaryRow]{}, fmt.Errorf("failed to query receivable summary: %w", err)
	}

	now := s.now()
	for i := range rows {
		rows[i].Derive(now)
	}
	return shared.NewPaginated(rows, total, filter.Page, filter.PageSize), nil
}
