package models

import (
	"time"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountsPayableModel is the persistence model for the AccountsPayable aggregate root.
type AccountsPayableModel struct {
	AggregateModel
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	BIRPercentage decimal.Decimal `gorm:"type:decimal(8,4);not null;column:bir_percentage"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalPayables decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (AccountsPayableModel) TableName() string {
	return "accounts_payables"
}

// ToDomain converts the persistence model to a domain AccountsPayable entity.
func (m *AccountsPayableModel) ToDomain() *finance.AccountsPayable {
	return &finance.AccountsPayable{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BookingID:         m.BookingID,
		BIRPercentage:     m.BIRPercentage,
		TotalExpenses:     m.TotalExpenses,
		TotalPayables:     m.TotalPayables,
	}
}

// FromDomain populates the persistence model from a domain AccountsPayable entity.
func (m *AccountsPayableModel) FromDomain(ap *finance.AccountsPayable) {
	m.FromDomainAggregateRoot(ap.BaseAggregateRoot)
	m.BookingID = ap.BookingID
	m.BIRPercentage = ap.BIRPercentage
	m.TotalExpenses = ap.TotalExpenses
	m.TotalPayables = ap.TotalPayables
}

// AccountsPayableModelFromDomain creates a new persistence model from a domain AccountsPayable.
func AccountsPayableModelFromDomain(ap *finance.AccountsPayable) *AccountsPayableModel {
	m := &AccountsPayableModel{}
	m.FromDomain(ap)
	return m
}

// AccountsReceivableModel is the persistence model for the AccountsReceivable aggregate root.
// CollectibleAmount is nullable on purpose: NULL means the balance was never set.
type AccountsReceivableModel struct {
	AggregateModel
	BookingID            uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	AmountPaid           decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	CollectibleAmount    decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	GrossIncome          decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	NetRevenuePercentage decimal.Decimal     `gorm:"type:decimal(8,4);not null"`
	PaymentDate          *time.Time          `gorm:"index"`
	Terms                int                 `gorm:"not null;default:0"`
	Aging                int                 `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (AccountsReceivableModel) TableName() string {
	return "accounts_receivables"
}

// ToDomain converts the persistence model to a domain AccountsReceivable entity.
func (m *AccountsReceivableModel) ToDomain() *finance.AccountsReceivable {
	return &finance.AccountsReceivable{
		BaseAggregateRoot:    m.ToDomainAggregateRoot(),
		BookingID:            m.BookingID,
		AmountPaid:           m.AmountPaid,
		CollectibleAmount:    m.CollectibleAmount,
		GrossIncome:          m.GrossIncome,
		NetRevenuePercentage: m.NetRevenuePercentage,
		PaymentDate:          m.PaymentDate,
		Terms:                m.Terms,
		Aging:                m.Aging,
	}
}

// FromDomain populates the persistence model from a domain AccountsReceivable entity.
func (m *AccountsReceivableModel) FromDomain(ar *finance.AccountsReceivable) {
	m.FromDomainAggregateRoot(ar.BaseAggregateRoot)
	m.BookingID = ar.BookingID
	m.AmountPaid = ar.AmountPaid
	m.CollectibleAmount = ar.CollectibleAmount
	m.GrossIncome = ar.GrossIncome
	m.NetRevenuePercentage = ar.NetRevenuePercentage
	m.PaymentDate = ar.PaymentDate
	m.Terms = ar.Terms
	m.Aging = ar.Aging
}

// AccountsReceivableModelFromDomain creates a new persistence model from a domain AccountsReceivable.
func AccountsReceivableModelFromDomain(ar *finance.AccountsReceivable) *AccountsReceivableModel {
	m := &AccountsReceivableModel{}
	m.FromDomain(ar)
	return m
}

// ChargeLineItemModel is the persistence model for a charge line item.
// The unique index on (payable_id, kind, charge_key) makes each category a
// single slot: writes replace the prior value.
type ChargeLineItemModel struct {
	BaseModel
	PayableID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_charge_payable_category,priority:1"`
	Kind      finance.ChargeKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_charge_payable_category,priority:2"`
	ChargeKey string             `gorm:"type:varchar(30);not null;default:'';uniqueIndex:idx_charge_payable_category,priority:3"`
	Payee     string             `gorm:"type:varchar(200)"`
	Amount    decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	CheckDate *time.Time
	Voucher   string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ChargeLineItemModel) TableName() string {
	return "ap_charges"
}

// ToDomain converts the persistence model to a domain ChargeLineItem entity.
func (m *ChargeLineItemModel) ToDomain() *finance.ChargeLineItem {
	return &finance.ChargeLineItem{
		BaseEntity: m.BaseModel.ToDomain(),
		PayableID:  m.PayableID,
		Category:   finance.ChargeCategory{Kind: m.Kind, Key: m.ChargeKey},
		Payee:      m.Payee,
		Amount:     m.Amount,
		CheckDate:  m.CheckDate,
		Voucher:    m.Voucher,
	}
}

// FromDomain populates the persistence model from a domain ChargeLineItem entity.
func (m *ChargeLineItemModel) FromDomain(item *finance.ChargeLineItem) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.PayableID = item.PayableID
	m.Kind = item.Category.Kind
	m.ChargeKey = item.Category.Key
	m.Payee = item.Payee
	m.Amount = item.Amount
	m.CheckDate = item.CheckDate
	m.Voucher = item.Voucher
}

// ChargeLineItemModelFromDomain creates a new persistence model from a domain ChargeLineItem.
func ChargeLineItemModelFromDomain(item *finance.ChargeLineItem) *ChargeLineItemModel {
	m := &ChargeLineItemModel{}
	m.FromDomain(item)
	return m
}

// CollectibleAdjustmentModel is the persistence model for one entry in a
// receivable's collectible ledger. Rows are append-only.
type CollectibleAdjustmentModel struct {
	BaseModel
	ReceivableID uuid.UUID              `gorm:"type:uuid;not null;index"`
	Kind         finance.AdjustmentKind `gorm:"type:varchar(20);not null"`
	Amount       decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (CollectibleAdjustmentModel) TableName() string {
	return "ar_adjustments"
}

// ToDomain converts the persistence model to a domain CollectibleAdjustment entity.
func (m *CollectibleAdjustmentModel) ToDomain() *finance.CollectibleAdjustment {
	return &finance.CollectibleAdjustment{
		BaseEntity:   m.BaseModel.ToDomain(),
		ReceivableID: m.ReceivableID,
		Kind:         m.Kind,
		Amount:       m.Amount,
	}
}

// FromDomain populates the persistence model from a domain CollectibleAdjustment entity.
func (m *CollectibleAdjustmentModel) FromDomain(adj *finance.CollectibleAdjustment) {
	m.FromDomainBaseEntity(adj.BaseEntity)
	m.ReceivableID = adj.ReceivableID
	m.Kind = adj.Kind
	m.Amount = adj.Amount
}

// CollectibleAdjustmentModelFromDomain creates a new persistence model from a domain CollectibleAdjustment.
func CollectibleAdjustmentModelFromDomain(adj *finance.CollectibleAdjustment) *CollectibleAdjustmentModel {
	m := &CollectibleAdjustmentModel{}
	m.FromDomain(adj)
	return m
}

// ReceivableTransactionModel is the persistence model for a posted payment.
type ReceivableTransactionModel struct {
	BaseModel
	ReceivableID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Reference    string          `gorm:"type:varchar(100)"`
	PostedAt     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ReceivableTransactionModel) TableName() string {
	return "receivable_transactions"
}

// ToDomain converts the persistence model to a domain ReceivableTransaction entity.
func (m *ReceivableTransactionModel) ToDomain() *finance.ReceivableTransaction {
	return &finance.ReceivableTransaction{
		BaseEntity:   m.BaseModel.ToDomain(),
		ReceivableID: m.ReceivableID,
		Amount:       m.Amount,
		Reference:    m.Reference,
		PostedAt:     m.PostedAt,
	}
}

// FromDomain populates the persistence model from a domain ReceivableTransaction entity.
func (m *ReceivableTransactionModel) FromDomain(txn *finance.ReceivableTransaction) {
	m.FromDomainBaseEntity(txn.BaseEntity)
	m.ReceivableID = txn.ReceivableID
	m.Amount = txn.Amount
	m.Reference = txn.Reference
	m.PostedAt = txn.PostedAt
}

// ReceivableTransactionModelFromDomain creates a new persistence model from a domain ReceivableTransaction.
func ReceivableTransactionModelFromDomain(txn *finance.ReceivableTransaction) *ReceivableTransactionModel {
	m := &ReceivableTransactionModel{}
	m.FromDomain(txn)
	return m
}
