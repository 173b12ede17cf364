package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeKind_IsValid(t *testing.T) {
	tests := []struct {
		kind     ChargeKind
		expected bool
	}{
		{ChargeKindFreight, true},
		{ChargeKindTrucking, true},
		{ChargeKindPort, true},
		{ChargeKindMisc, true},
		{ChargeKind("INVALID"), false},
		{ChargeKind(""), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.IsValid())
		})
	}
}

func TestChargeCategory_IsValid(t *testing.T) {
	for _, cat := range AllChargeCategories() {
		t.Run(cat.String(), func(t *testing.T) {
			assert.True(t, cat.IsValid())
		})
	}

	invalid := []ChargeCategory{
		{Kind: ChargeKindFreight, Key: "ORIGIN"},
		{Kind: ChargeKindTrucking, Key: ""},
		{Kind: ChargeKindTrucking, Key: "MIDDLE"},
		{Kind: ChargeKindPort, Key: "REBATES"},
		{Kind: ChargeKindMisc, Key: "CRAINAGE"},
		{Kind: ChargeKind("OTHER"), Key: "X"},
	}
	for _, cat := range invalid {
		t.Run("invalid_"+cat.String(), func(t *testing.T) {
			assert.False(t, cat.IsValid())
		})
	}
}

func TestParseChargeCategory(t *testing.T) {
	cat, err := ParseChargeCategory("PORT", "WHARFAGE_DEST")
	require.NoError(t, err)
	assert.Equal(t, CategoryPortWharfageDest, cat)

	cat, err = ParseChargeCategory("FREIGHT", "")
	require.NoError(t, err)
	assert.Equal(t, CategoryFreight, cat)

	_, err = ParseChargeCategory("FREIGHT", "ORIGIN")
	assert.Error(t, err)

	_, err = ParseChargeCategory("CUSTOMS", "")
	assert.Error(t, err)
}

func TestAllChargeCategories_Distinct(t *testing.T) {
	seen := make(map[ChargeCategory]bool)
	for _, cat := range AllChargeCategories() {
		assert.False(t, seen[cat], "duplicate category %s", cat)
		seen[cat] = true
	}
}

func TestNewChargeLineItem(t *testing.T) {
	payableID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		item, err := NewChargeLineItem(payableID, CategoryPortCrainage, decimal.NewFromInt(2500), nil, "CV-1001", "Manila Port Authority")
		require.NoError(t, err)
		assert.Equal(t, payableID, item.PayableID)
		assert.Equal(t, CategoryPortCrainage, item.Category)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(2500)))
		assert.Equal(t, "CV-1001", item.Voucher)
		assert.NotEqual(t, uuid.Nil, item.ID)
	})

	t.Run("zero amount allowed", func(t *testing.T) {
		item, err := NewChargeLineItem(payableID, CategoryFreight, decimal.Zero, nil, "", "")
		require.NoError(t, err)
		assert.True(t, item.Amount.IsZero())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := NewChargeLineItem(payableID, CategoryFreight, decimal.NewFromInt(-1), nil, "", "")
		assert.Error(t, err)
	})

	t.Run("nil payable rejected", func(t *testing.T) {
		_, err := NewChargeLineItem(uuid.Nil, CategoryFreight, decimal.NewFromInt(10), nil, "", "")
		assert.Error(t, err)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := NewChargeLineItem(payableID, ChargeCategory{Kind: ChargeKindPort, Key: "TUGBOAT"}, decimal.NewFromInt(10), nil, "", "")
		assert.Error(t, err)
	})
}

func TestSumLineItems(t *testing.T) {
	payableID := uuid.New()

	t.Run("empty sums to zero", func(t *testing.T) {
		assert.True(t, SumLineItems(nil).IsZero())
	})

	t.Run("sums every slot", func(t *testing.T) {
		items := make([]ChargeLineItem, 0)
		expected := decimal.Zero
		for i, cat := range AllChargeCategories() {
			amount := decimal.NewFromInt(int64((i + 1) * 100))
			item, err := NewChargeLineItem(payableID, cat, amount, nil, "", "")
			require.NoError(t, err)
			items = append(items, *item)
			expected = expected.Add(amount)
		}
		assert.True(t, SumLineItems(items).Equal(expected))
	})

	t.Run("decimal exact", func(t *testing.T) {
		a, _ := decimal.NewFromString("0.10")
		b, _ := decimal.NewFromString("0.20")
		itemA, err := NewChargeLineItem(payableID, CategoryFreight, a, nil, "", "")
		require.NoError(t, err)
		itemB, err := NewChargeLineItem(payableID, CategoryMiscStorage, b, nil, "", "")
		require.NoError(t, err)

		want, _ := decimal.NewFromString("0.30")
		assert.True(t, SumLineItems([]ChargeLineItem{*itemA, *itemB}).Equal(want))
	})
}
