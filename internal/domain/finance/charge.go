package finance

import (
	"fmt"
	"time"

	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeKind groups charge categories by the section of the payable they
// belong to.
type ChargeKind string

const (
	ChargeKindFreight  ChargeKind = "FREIGHT"
	ChargeKindTrucking ChargeKind = "TRUCKING"
	ChargeKindPort     ChargeKind = "PORT"
	ChargeKindMisc     ChargeKind = "MISC"
)

// IsValid checks if the kind is a valid ChargeKind
func (k ChargeKind) IsValid() bool {
	switch k {
	case ChargeKindFreight, ChargeKindTrucking, ChargeKindPort, ChargeKindMisc:
		return true
	}
	return false
}

// String returns the string representation of ChargeKind
func (k ChargeKind) String() string {
	return string(k)
}

// ChargeCategory identifies exactly one expense slot on a payable.
// Kind selects the section; Key selects the slot within it. Freight has a
// single unkeyed slot.
type ChargeCategory struct {
	Kind ChargeKind `json:"kind"`
	Key  string     `json:"key"`
}

// The full set of charge categories a payable carries.
var (
	CategoryFreight = ChargeCategory{Kind: ChargeKindFreight, Key: ""}

	CategoryTruckingOrigin      = ChargeCategory{Kind: ChargeKindTrucking, Key: "ORIGIN"}
	CategoryTruckingDestination = ChargeCategory{Kind: ChargeKindTrucking, Key: "DESTINATION"}

	CategoryPortCrainage       = ChargeCategory{Kind: ChargeKindPort, Key: "CRAINAGE"}
	CategoryPortArrastreOrigin = ChargeCategory{Kind: ChargeKindPort, Key: "ARRASTRE_ORIGIN"}
	CategoryPortArrastreDest   = ChargeCategory{Kind: ChargeKindPort, Key: "ARRASTRE_DEST"}
	CategoryPortWharfageOrigin = ChargeCategory{Kind: ChargeKindPort, Key: "WHARFAGE_ORIGIN"}
	CategoryPortWharfageDest   = ChargeCategory{Kind: ChargeKindPort, Key: "WHARFAGE_DEST"}
	CategoryPortLaborOrigin    = ChargeCategory{Kind: ChargeKindPort, Key: "LABOR_ORIGIN"}
	CategoryPortLaborDest      = ChargeCategory{Kind: ChargeKindPort, Key: "LABOR_DEST"}

	CategoryMiscRebates      = ChargeCategory{Kind: ChargeKindMisc, Key: "REBATES"}
	CategoryMiscStorage      = ChargeCategory{Kind: ChargeKindMisc, Key: "STORAGE"}
	CategoryMiscFacilitation = ChargeCategory{Kind: ChargeKindMisc, Key: "FACILITATION"}
)

// AllChargeCategories lists every category slot in presentation order.
func AllChargeCategories() []ChargeCategory {
	return []ChargeCategory{
		CategoryFreight,
		CategoryTruckingOrigin,
		CategoryTruckingDestination,
		CategoryPortCrainage,
		CategoryPortArrastreOrigin,
		CategoryPortArrastreDest,
		CategoryPortWharfageOrigin,
		CategoryPortWharfageDest,
		CategoryPortLaborOrigin,
		CategoryPortLaborDest,
		CategoryMiscRebates,
		CategoryMiscStorage,
		CategoryMiscFacilitation,
	}
}

// IsValid checks if the category is one of the defined slots
func (c ChargeCategory) IsValid() bool {
	for _, known := range AllChargeCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// String returns a KIND or KIND/KEY representation
func (c ChargeCategory) String() string {
	if c.Key == "" {
		return string(c.Kind)
	}
	return fmt.Sprintf("%s/%s", c.Kind, c.Key)
}

// ParseChargeCategory builds a category from its kind and key parts
func ParseChargeCategory(kind, key string) (ChargeCategory, error) {
	c := ChargeCategory{Kind: ChargeKind(kind), Key: key}
	if !c.IsValid() {
		return ChargeCategory{}, shared.NewDomainError("INVALID_CHARGE_CATEGORY",
			fmt.Sprintf("Unknown charge category %q/%q", kind, key))
	}
	return c, nil
}

// ChargeLineItem is one expense slot on a payable. At most one line item
// exists per (payable, category); writes replace the prior value.
type ChargeLineItem struct {
	shared.BaseEntity
	PayableID uuid.UUID       `json:"payable_id"`
	Category  ChargeCategory  `json:"category"`
	Payee     string          `json:"payee"`
	Amount    decimal.Decimal `json:"amount"`
	CheckDate *time.Time      `json:"check_date"`
	Voucher   string          `json:"voucher"`
}

// NewChargeLineItem creates a charge line item after validating the slot
// and amount
func NewChargeLineItem(payableID uuid.UUID, category ChargeCategory, amount decimal.Decimal, checkDate *time.Time, voucher, payee string) (*ChargeLineItem, error) {
	if payableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYABLE", "Payable ID cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CHARGE_CATEGORY",
			fmt.Sprintf("Unknown charge category %s", category))
	}
	if amount.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	return &ChargeLineItem{
		BaseEntity: shared.NewBaseEntity(),
		PayableID:  payableID,
		Category:   category,
		Payee:      payee,
		Amount:     amount,
		CheckDate:  checkDate,
		Voucher:    voucher,
	}, nil
}

// SumLineItems adds the amounts of the given line items. Absent categories
// contribute nothing, so a payable with no stored charges sums to zero.
func SumLineItems(items []ChargeLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
