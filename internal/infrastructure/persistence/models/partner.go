package models

import (
	"github.com/cargoflow/backend/internal/domain/partner"
)

// ShippingLineModel is the persistence model for the ShippingLine aggregate root.
type ShippingLineModel struct {
	AggregateModel
	Code          string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name          string         `gorm:"type:varchar(200);not null"`
	ContactPerson string         `gorm:"type:varchar(100)"`
	ContactPhone  string         `gorm:"type:varchar(50)"`
	ContactEmail  string         `gorm:"type:varchar(100)"`
	Status        partner.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (ShippingLineModel) TableName() string {
	return "shipping_lines"
}

// ToDomain converts the persistence model to a domain ShippingLine entity.
func (m *ShippingLineModel) ToDomain() *partner.ShippingLine {
	return &partner.ShippingLine{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		ContactPerson:     m.ContactPerson,
		ContactPhone:      m.ContactPhone,
		ContactEmail:      m.ContactEmail,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain ShippingLine entity.
func (m *ShippingLineModel) FromDomain(sl *partner.ShippingLine) {
	m.FromDomainAggregateRoot(sl.BaseAggregateRoot)
	m.Code = sl.Code
	m.Name = sl.Name
	m.ContactPerson = sl.ContactPerson
	m.ContactPhone = sl.ContactPhone
	m.ContactEmail = sl.ContactEmail
	m.Status = sl.Status
}

// ShippingLineModelFromDomain creates a new persistence model from a domain ShippingLine.
func ShippingLineModelFromDomain(sl *partner.ShippingLine) *ShippingLineModel {
	m := &ShippingLineModel{}
	m.FromDomain(sl)
	return m
}

// TruckingCompanyModel is the persistence model for the TruckingCompany aggregate root.
type TruckingCompanyModel struct {
	AggregateModel
	Code          string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name          string         `gorm:"type:varchar(200);not null"`
	ContactPerson string         `gorm:"type:varchar(100)"`
	ContactPhone  string         `gorm:"type:varchar(50)"`
	ContactEmail  string         `gorm:"type:varchar(100)"`
	Status        partner.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (TruckingCompanyModel) TableName() string {
	return "trucking_companies"
}

// ToDomain converts the persistence model to a domain TruckingCompany entity.
func (m *TruckingCompanyModel) ToDomain() *partner.TruckingCompany {
	return &partner.TruckingCompany{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		ContactPerson:     m.ContactPerson,
		ContactPhone:      m.ContactPhone,
		ContactEmail:      m.ContactEmail,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain TruckingCompany entity.
func (m *TruckingCompanyModel) FromDomain(tc *partner.TruckingCompany) {
	m.FromDomainAggregateRoot(tc.BaseAggregateRoot)
	m.Code = tc.Code
	m.Name = tc.Name
	m.ContactPerson = tc.ContactPerson
	m.ContactPhone = tc.ContactPhone
	m.ContactEmail = tc.ContactEmail
	m.Status = tc.Status
}

// TruckingCompanyModelFromDomain creates a new persistence model from a domain TruckingCompany.
func TruckingCompanyModelFromDomain(tc *partner.TruckingCompany) *TruckingCompanyModel {
	m := &TruckingCompanyModel{}
	m.FromDomain(tc)
	return m
}
