package models

import (
	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/google/uuid"
)

// BookingModel is the persistence model for the Booking aggregate root.
type BookingModel struct {
	AggregateModel
	BookingNumber        string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	HWBNumber            string                `gorm:"type:varchar(50);column:hwb_number"`
	Mode                 booking.TransportMode `gorm:"type:varchar(10);not null;index"`
	Origin               string                `gorm:"type:varchar(100);not null"`
	Destination          string                `gorm:"type:varchar(100);not null"`
	Commodity            string                `gorm:"type:varchar(200)"`
	Status               booking.Status        `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ShipperName          string                `gorm:"type:varchar(200);not null"`
	ShippingLineID       *uuid.UUID            `gorm:"type:uuid;index"`
	OriginTruckerID      *uuid.UUID            `gorm:"type:uuid;index"`
	DestinationTruckerID *uuid.UUID            `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts the persistence model to a domain Booking entity.
func (m *BookingModel) ToDomain() *booking.Booking {
	return &booking.Booking{
		BaseAggregateRoot:    m.ToDomainAggregateRoot(),
		BookingNumber:        m.BookingNumber,
		HWBNumber:            m.HWBNumber,
		Mode:                 m.Mode,
		Origin:               m.Origin,
		Destination:          m.Destination,
		Commodity:            m.Commodity,
		Status:               m.Status,
		ShipperName:          m.ShipperName,
		ShippingLineID:       m.ShippingLineID,
		OriginTruckerID:      m.OriginTruckerID,
		DestinationTruckerID: m.DestinationTruckerID,
	}
}

// FromDomain populates the persistence model from a domain Booking entity.
func (m *BookingModel) FromDomain(b *booking.Booking) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.BookingNumber = b.BookingNumber
	m.HWBNumber = b.HWBNumber
	m.Mode = b.Mode
	m.Origin = b.Origin
	m.Destination = b.Destination
	m.Commodity = b.Commodity
	m.Status = b.Status
	m.ShipperName = b.ShipperName
	m.ShippingLineID = b.ShippingLineID
	m.OriginTruckerID = b.OriginTruckerID
	m.DestinationTruckerID = b.DestinationTruckerID
}

// BookingModelFromDomain creates a new persistence model from a domain Booking.
func BookingModelFromDomain(b *booking.Booking) *BookingModel {
	m := &BookingModel{}
	m.FromDomain(b)
	return m
}
