package booking

import (
	"context"
	"fmt"

	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/cargoflow/backend/internal/domain/partner"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BookingService handles booking lifecycle operations
type BookingService struct {
	bookingRepo      booking.Repository
	shippingLineRepo partner.ShippingLineRepository
	truckerRepo      partner.TruckingCompanyRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo booking.Repository,
	shippingLineRepo partner.ShippingLineRepository,
	truckerRepo partner.TruckingCompanyRepository,
) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		shippingLineRepo: shippingLineRepo,
		truckerRepo:      truckerRepo,
	}
}

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	BookingNumber        string
	HWBNumber            string
	Mode                 string
	Origin               string
	Destination          string
	Commodity            string
	ShipperName          string
	ShippingLineID       *uuid.UUID
	OriginTruckerID      *uuid.UUID
	DestinationTruckerID *uuid.UUID
}

// CreateBooking validates partner references and persists a new booking
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	if existing, err := s.bookingRepo.FindByBookingNumber(ctx, req.BookingNumber); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	b, err := booking.NewBooking(req.BookingNumber, req.HWBNumber, booking.TransportMode(req.Mode),
		req.Origin, req.Destination, req.Commodity, req.ShipperName)
	if err != nil {
		return nil, err
	}

	if req.ShippingLineID != nil {
		if _, err := s.shippingLineRepo.FindByID(ctx, *req.ShippingLineID); err != nil {
			return nil, fmt.Errorf("failed to load shipping line: %w", err)
		}
		if err := b.AssignShippingLine(*req.ShippingLineID); err != nil {
			return nil, err
		}
	}
	if req.OriginTruckerID != nil {
		if _, err := s.truckerRepo.FindByID(ctx, *req.OriginTruckerID); err != nil {
			return nil, fmt.Errorf("failed to load origin trucker: %w", err)
		}
	}
	if req.DestinationTruckerID != nil {
		if _, err := s.truckerRepo.FindByID(ctx, *req.DestinationTruckerID); err != nil {
			return nil, fmt.Errorf("failed to load destination trucker: %w", err)
		}
	}
	if req.OriginTruckerID != nil || req.DestinationTruckerID != nil {
		b.AssignTruckers(req.OriginTruckerID, req.DestinationTruckerID)
	}

	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return b, nil
}

// GetBooking returns a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

// GetBookingByNumber returns a booking by its human-facing number
func (s *BookingService) GetBookingByNumber(ctx context.Context, bookingNumber string) (*booking.Booking, error) {
	return s.bookingRepo.FindByBookingNumber(ctx, bookingNumber)
}

// ListBookings returns bookings matching the filter, with the total count
func (s *BookingService) ListBookings(ctx context.Context, filter booking.Filter) (shared.Paginated[booking.Booking], error) {
	items, err := s.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[booking.Booking]{}, fmt.Errorf("failed to list bookings: %w", err)
	}
	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[booking.Booking]{}, fmt.Errorf("failed to count bookings: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// UpdateBookingStatus moves a booking to a new lifecycle status
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*booking.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if err := b.TransitionTo(booking.Status(status)); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return b, nil
}

// DeleteBooking removes a booking; its payable, receivable, charge rows,
// and ledgers cascade with it
func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if _, err := s.bookingRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	return s.bookingRepo.Delete(ctx, id)
}
