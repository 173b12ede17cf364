package booking

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransportMode represents how the shipment moves
type TransportMode string

const (
	ModeSea  TransportMode = "SEA"
	ModeLand TransportMode = "LAND"
)

// IsValid checks if the mode is a valid TransportMode
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeSea, ModeLand:
		return true
	}
	return false
}

// String returns the string representation of TransportMode
func (m TransportMode) String() string {
	return string(m)
}

// Status represents the lifecycle status of a booking
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a valid booking Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if the booking is in a terminal state
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Booking represents a freight booking aggregate root.
// A booking owns at most one accounts payable and one accounts receivable.
type Booking struct {
	shared.BaseAggregateRoot
	BookingNumber        string        `json:"booking_number"`
	HWBNumber            string        `json:"hwb_number"`
	Mode                 TransportMode `json:"mode"`
	Origin               string        `json:"origin"`
	Destination          string        `json:"destination"`
	Commodity            string        `json:"commodity"`
	Status               Status        `json:"status"`
	ShipperName          string        `json:"shipper_name"`
	ShippingLineID       *uuid.UUID    `json:"shipping_line_id"`
	OriginTruckerID      *uuid.UUID    `json:"origin_trucker_id"`
	DestinationTruckerID *uuid.UUID    `json:"destination_trucker_id"`
}

// NewBooking creates a new booking
func NewBooking(
	bookingNumber string,
	hwbNumber string,
	mode TransportMode,
	origin string,
	destination string,
	commodity string,
	shipperName string,
) (*Booking, error) {
	if bookingNumber == "" {
		return nil, shared.NewDomainError("INVALID_BOOKING_NUMBER", "Booking number cannot be empty")
	}
	if len(bookingNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_BOOKING_NUMBER", "Booking number cannot exceed 50 characters")
	}
	if !mode.IsValid() {
		return nil, shared.NewDomainError("INVALID_MODE", "Transport mode is not valid")
	}
	if origin == "" {
		return nil, shared.NewDomainError("INVALID_ORIGIN", "Origin cannot be empty")
	}
	if destination == "" {
		return nil, shared.NewDomainError("INVALID_DESTINATION", "Destination cannot be empty")
	}
	if shipperName == "" {
		return nil, shared.NewDomainError("INVALID_SHIPPER", "Shipper name cannot be empty")
	}

	return &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BookingNumber:     bookingNumber,
		HWBNumber:         hwbNumber,
		Mode:              mode,
		Origin:            origin,
		Destination:       destination,
		Commodity:         commodity,
		Status:            StatusPending,
		ShipperName:       shipperName,
	}, nil
}

// AssignShippingLine links the booking to a shipping line
func (b *Booking) AssignShippingLine(id uuid.UUID) error {
	if id == uuid.Nil {
		return shared.NewDomainError("INVALID_SHIPPING_LINE", "Shipping line ID cannot be empty")
	}
	b.ShippingLineID = &id
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// AssignTruckers links the booking to origin and destination trucking companies.
// Either side may be nil when the leg is not trucked.
func (b *Booking) AssignTruckers(originID, destinationID *uuid.UUID) {
	b.OriginTruckerID = originID
	b.DestinationTruckerID = destinationID
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// TransitionTo moves the booking to a new status
func (b *Booking) TransitionTo(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Booking status is not valid")
	}
	if b.Status.IsTerminal() && status != b.Status {
		return shared.NewDomainError("INVALID_STATE", "Cannot change status of a completed booking")
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// IsCancelled returns true if the booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
