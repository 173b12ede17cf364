package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceService handles the lifecycle of payable and receivable records:
// per-booking creation, lookups, receivable field edits, and backfill.
type FinanceService struct {
	bookingRepo    booking.Repository
	payableRepo    finance.AccountsPayableRepository
	receivableRepo finance.AccountsReceivableRepository
	txnRepo        finance.ReceivableTransactionRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(
	bookingRepo booking.Repository,
	payableRepo finance.AccountsPayableRepository,
	receivableRepo finance.AccountsReceivableRepository,
	txnRepo finance.ReceivableTransactionRepository,
) *FinanceService {
	return &FinanceService{
		bookingRepo:    bookingRepo,
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
		txnRepo:        txnRepo,
	}
}

// CreatePayableForBooking creates the payable record for a booking.
// Idempotent: a second call returns the existing record unchanged. A unique
// index on booking_id backs this at the storage level.
func (s *FinanceService) CreatePayableForBooking(ctx context.Context, bookingID uuid.UUID, birPercentage decimal.Decimal) (*finance.AccountsPayable, error) {
	if _, err := s.bookingRepo.FindByID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	existing, err := s.payableRepo.FindByBookingID(ctx, bookingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing payable: %w", err)
	}

	ap, err := finance.NewAccountsPayable(bookingID, birPercentage)
	if err != nil {
		return nil, err
	}
	if err := s.payableRepo.Save(ctx, ap); err != nil {
		return nil, fmt.Errorf("failed to save payable: %w", err)
	}
	return ap, nil
}

// CreateReceivableForBooking creates the receivable record for a booking.
// Idempotent in the same way as CreatePayableForBooking.
func (s *FinanceService) CreateReceivableForBooking(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsReceivable, error) {
	if _, err := s.bookingRepo.FindByID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	existing, err := s.receivableRepo.FindByBookingID(ctx, bookingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing receivable: %w", err)
	}

	ar, err := finance.NewAccountsReceivable(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.receivableRepo.Save(ctx, ar); err != nil {
		return nil, fmt.Errorf("failed to save receivable: %w", err)
	}
	return ar, nil
}

// GetPayable returns a payable by ID
func (s *FinanceService) GetPayable(ctx context.Context, id uuid.UUID) (*finance.AccountsPayable, error) {
	return s.payableRepo.FindByID(ctx, id)
}

// GetPayableByBookingID returns the payable linked to a booking
func (s *FinanceService) GetPayableByBookingID(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsPayable, error) {
	return s.payableRepo.FindByBookingID(ctx, bookingID)
}

// GetPayableByBookingNumber resolves the booking by its human-facing number
// and returns its payable
func (s *FinanceService) GetPayableByBookingNumber(ctx context.Context, bookingNumber string) (*finance.AccountsPayable, error) {
	b, err := s.bookingRepo.FindByBookingNumber(ctx, bookingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return s.payableRepo.FindByBookingID(ctx, b.ID)
}

// GetReceivable returns a receivable by ID
func (s *FinanceService) GetReceivable(ctx context.Context, id uuid.UUID) (*finance.AccountsReceivable, error) {
	return s.receivableRepo.FindByID(ctx, id)
}

// GetReceivableByBookingID returns the receivable linked to a booking
func (s *FinanceService) GetReceivableByBookingID(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsReceivable, error) {
	return s.receivableRepo.FindByBookingID(ctx, bookingID)
}

// ListReceivableTransactions returns the posted payments of a receivable,
// newest first
func (s *FinanceService) ListReceivableTransactions(ctx context.Context, receivableID uuid.UUID) ([]finance.ReceivableTransaction, error) {
	if _, err := s.receivableRepo.FindByID(ctx, receivableID); err != nil {
		return nil, fmt.Errorf("failed to load receivable: %w", err)
	}
	return s.txnRepo.FindByReceivableID(ctx, receivableID)
}

// UpdateReceivableRequest carries the editable receivable fields. Nil fields
// keep their prior value.
type UpdateReceivableRequest struct {
	Terms       *int
	PaymentDate *time.Time
}

// UpdateReceivable edits terms and payment date, then recomputes aging from
// the owning booking's creation date
func (s *FinanceService) UpdateReceivable(ctx context.Context, id uuid.UUID, req UpdateReceivableRequest) (*finance.AccountsReceivable, error) {
	ar, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivable: %w", err)
	}

	b, err := s.bookingRepo.FindByID(ctx, ar.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if req.Terms != nil {
		if err := ar.SetTerms(*req.Terms); err != nil {
			return nil, err
		}
	}
	if req.PaymentDate != nil {
		ar.MarkPaid(*req.PaymentDate)
	}
	ar.RecomputeAging(b.CreatedAt)

	if err := s.receivableRepo.SaveWithLock(ctx, ar); err != nil {
		return nil, fmt.Errorf("failed to save receivable: %w", err)
	}
	return ar, nil
}

// BackfillReceivables creates a receivable for every booking that is missing
// one. Returns how many were created.
func (s *FinanceService) BackfillReceivables(ctx context.Context) (int, error) {
	bookingIDs, err := s.receivableRepo.FindBookingIDsWithoutReceivable(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find bookings without receivable: %w", err)
	}

	created := 0
	for _, bookingID := range bookingIDs {
		ar, err := finance.NewAccountsReceivable(bookingID)
		if err != nil {
			return created, err
		}
		if err := s.receivableRepo.Save(ctx, ar); err != nil {
			return created, fmt.Errorf("failed to save receivable for booking %s: %w", bookingID, err)
		}
		created++
	}
	return created, nil
}
