package booking

import (
	"context"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter defines filtering options for booking queries
type Filter struct {
	shared.Filter
	Status *Status        // Filter by lifecycle status
	Mode   *TransportMode // Filter by transport mode
}

// Repository defines the interface for booking persistence
type Repository interface {
	// FindByID finds a booking by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByBookingNumber finds a booking by its human-facing number
	FindByBookingNumber(ctx context.Context, bookingNumber string) (*Booking, error)

	// FindAll finds bookings with filtering and pagination
	FindAll(ctx context.Context, filter Filter) ([]Booking, error)

	// Save creates or updates a booking
	Save(ctx context.Context, b *Booking) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, b *Booking) error

	// Delete removes a booking; linked financial records cascade
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts bookings matching the filter
	Count(ctx context.Context, filter Filter) (int64, error)
}
