package partner

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/shared"
)

// Status represents whether a partner is available for new bookings
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// IsValid checks if the status is a valid partner Status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// ShippingLine represents an ocean carrier the forwarder books freight with.
// Its name is the payee on freight charges.
type ShippingLine struct {
	shared.BaseAggregateRoot
	Code          string `json:"code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	Status        Status `json:"status"`
}

// NewShippingLine creates a new shipping line
func NewShippingLine(code, name string) (*ShippingLine, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Partner code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name cannot be empty")
	}
	return &ShippingLine{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Status:            StatusActive,
	}, nil
}

// SetContact updates the contact details
func (sl *ShippingLine) SetContact(person, phone, email string) {
	sl.ContactPerson = person
	sl.ContactPhone = phone
	sl.ContactEmail = email
	sl.UpdatedAt = time.Now()
	sl.IncrementVersion()
}

// Deactivate marks the shipping line as unavailable for new bookings
func (sl *ShippingLine) Deactivate() {
	sl.Status = StatusInactive
	sl.UpdatedAt = time.Now()
	sl.IncrementVersion()
}

// TruckingCompany represents a trucking partner handling origin or
// destination land legs. Its name is the payee on trucking charges.
type TruckingCompany struct {
	shared.BaseAggregateRoot
	Code          string `json:"code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	Status        Status `json:"status"`
}

// NewTruckingCompany creates a new trucking company
func NewTruckingCompany(code, name string) (*TruckingCompany, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Partner code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name cannot be empty")
	}
	return &TruckingCompany{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Status:            StatusActive,
	}, nil
}

// SetContact updates the contact details
func (tc *TruckingCompany) SetContact(person, phone, email string) {
	tc.ContactPerson = person
	tc.ContactPhone = phone
	tc.ContactEmail = email
	tc.UpdatedAt = time.Now()
	tc.IncrementVersion()
}

// Deactivate marks the trucking company as unavailable for new bookings
func (tc *TruckingCompany) Deactivate() {
	tc.Status = StatusInactive
	tc.UpdatedAt = time.Now()
	tc.IncrementVersion()
}
