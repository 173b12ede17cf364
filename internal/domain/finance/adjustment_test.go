package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentAdjustment(t *testing.T) {
	receivableID := uuid.New()

	adj, err := NewPaymentAdjustment(receivableID, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, AdjustmentPayment, adj.Kind)
	assert.Equal(t, receivableID, adj.ReceivableID)

	_, err = NewPaymentAdjustment(receivableID, decimal.Zero)
	assert.Error(t, err)

	_, err = NewPaymentAdjustment(uuid.Nil, decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestNewSnapshotAdjustment(t *testing.T) {
	// Snapshots may carry any value, including negative balances.
	adj, err := NewSnapshotAdjustment(uuid.New(), decimal.NewFromInt(-50))
	require.NoError(t, err)
	assert.Equal(t, AdjustmentSnapshot, adj.Kind)
}

func TestFoldAdjustments(t *testing.T) {
	receivableID := uuid.New()

	snap := func(v int64) CollectibleAdjustment {
		a, err := NewSnapshotAdjustment(receivableID, decimal.NewFromInt(v))
		require.NoError(t, err)
		return *a
	}
	pay := func(v int64) CollectibleAdjustment {
		a, err := NewPaymentAdjustment(receivableID, decimal.NewFromInt(v))
		require.NoError(t, err)
		return *a
	}

	t.Run("empty ledger folds to NULL", func(t *testing.T) {
		assert.False(t, FoldAdjustments(nil).Valid)
	})

	t.Run("snapshot then payments", func(t *testing.T) {
		got := FoldAdjustments([]CollectibleAdjustment{snap(1000), pay(300), pay(200)})
		require.True(t, got.Valid)
		assert.True(t, got.Decimal.Equal(decimal.NewFromInt(500)))
	})

	t.Run("later snapshot overrides prior history", func(t *testing.T) {
		got := FoldAdjustments([]CollectibleAdjustment{snap(1000), pay(300), snap(900)})
		require.True(t, got.Valid)
		assert.True(t, got.Decimal.Equal(decimal.NewFromInt(900)))
	})

	t.Run("payment before any snapshot starts from zero", func(t *testing.T) {
		got := FoldAdjustments([]CollectibleAdjustment{pay(100)})
		require.True(t, got.Valid)
		assert.True(t, got.Decimal.Equal(decimal.NewFromInt(-100)))
	})
}

func TestSumTransactions(t *testing.T) {
	receivableID := uuid.New()

	assert.True(t, SumTransactions(nil).IsZero())

	t1, err := NewReceivableTransaction(receivableID, decimal.NewFromInt(300), "OR-001")
	require.NoError(t, err)
	t2, err := NewReceivableTransaction(receivableID, decimal.NewFromInt(200), "OR-002")
	require.NoError(t, err)

	got := SumTransactions([]ReceivableTransaction{*t1, *t2})
	assert.True(t, got.Equal(decimal.NewFromInt(500)))
}

func TestNewReceivableTransaction(t *testing.T) {
	_, err := NewReceivableTransaction(uuid.Nil, decimal.NewFromInt(1), "")
	assert.Error(t, err)

	_, err = NewReceivableTransaction(uuid.New(), decimal.Zero, "")
	assert.Error(t, err)
}
