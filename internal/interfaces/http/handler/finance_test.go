package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedBookingWithFinance creates a booking with both finance records attached
// and returns the booking, payable, and receivable IDs
func seedBookingWithFinance(t *testing.T, env *testEnv, bookingNumber string) (string, string, string) {
	t.Helper()

	rec := env.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"booking_number": bookingNumber,
		"mode":           "SEA",
		"origin":         "Manila",
		"destination":    "Cebu",
		"shipper_name":   "Acme Trading",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	bookingID := decodeData(t, rec)["id"].(string)

	rec = env.request(t, http.MethodPost, "/api/v1/payables", gin.H{
		"booking_id":     bookingID,
		"bir_percentage": "2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	payableID := decodeData(t, rec)["id"].(string)

	rec = env.request(t, http.MethodPost, "/api/v1/receivables", gin.H{
		"booking_id": bookingID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	receivableID := decodeData(t, rec)["id"].(string)

	return bookingID, payableID, receivableID
}

func decimalField(t *testing.T, data map[string]any, key string) decimal.Decimal {
	t.Helper()

	raw, err := json.Marshal(data[key])
	require.NoError(t, err)
	var d decimal.Decimal
	require.NoError(t, json.Unmarshal(raw, &d))
	return d
}

func TestFinanceHandler_CreatePayable_Idempotent(t *testing.T) {
	env := setupTestEnv(t)
	bookingID, payableID, _ := seedBookingWithFinance(t, env, "BKG-AP-1")

	// A second create returns the existing record unchanged
	rec := env.request(t, http.MethodPost, "/api/v1/payables", gin.H{
		"booking_id":     bookingID,
		"bir_percentage": "5",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, payableID, data["id"])
	assert.True(t, decimalField(t, data, "bir_percentage").Equal(decimal.NewFromInt(2)))
}

func TestFinanceHandler_UpsertCharge(t *testing.T) {
	env := setupTestEnv(t)
	_, payableID, _ := seedBookingWithFinance(t, env, "BKG-CH-1")

	rec := env.request(t, http.MethodPut, "/api/v1/payables/"+payableID+"/charges", gin.H{
		"kind":   "FREIGHT",
		"amount": "500",
		"payee":  "Oceanic Lines",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Same slot again replaces the amount
	rec = env.request(t, http.MethodPut, "/api/v1/payables/"+payableID+"/charges", gin.H{
		"kind":   "FREIGHT",
		"amount": "650",
		"payee":  "Oceanic Lines",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/payables/"+payableID+"/charges", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Charges []map[string]any `json:"charges"`
			Total   decimal.Decimal  `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Charges, 1)
	assert.True(t, envelope.Data.Total.Equal(decimal.NewFromInt(650)))
}

func TestFinanceHandler_UpsertCharge_UnknownCategory(t *testing.T) {
	env := setupTestEnv(t)
	_, payableID, _ := seedBookingWithFinance(t, env, "BKG-CH-2")

	rec := env.request(t, http.MethodPut, "/api/v1/payables/"+payableID+"/charges", gin.H{
		"kind":   "BRIBERY",
		"amount": "100",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceHandler_Reconcile(t *testing.T) {
	env := setupTestEnv(t)
	_, payableID, _ := seedBookingWithFinance(t, env, "BKG-RC-1")

	rec := env.request(t, http.MethodPost, "/api/v1/payables/"+payableID+"/reconcile", gin.H{
		"bir_percentage": "2",
		"charges": []gin.H{
			{"kind": "FREIGHT", "amount": "600", "payee": "Oceanic Lines"},
			{"kind": "TRUCKING", "key": "ORIGIN", "amount": "200", "payee": "North Haulers"},
		},
		"gross_income":           "1200",
		"net_revenue_percentage": "15",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	payable := data["payable"].(map[string]any)
	receivable := data["receivable"].(map[string]any)

	// Totals recomputed from the stored slots: 800 expenses, 2% BIR off
	assert.True(t, decimalField(t, data, "calculated_total_expenses").Equal(decimal.NewFromInt(800)))
	assert.True(t, decimalField(t, payable, "total_expenses").Equal(decimal.NewFromInt(800)))
	assert.True(t, decimalField(t, payable, "total_payables").Equal(decimal.NewFromInt(784)))

	assert.True(t, decimalField(t, receivable, "gross_income").Equal(decimal.NewFromInt(1200)))
	require.Len(t, data["charges"].([]any), 2)
}

func TestFinanceHandler_Reconcile_DuplicateSlot(t *testing.T) {
	env := setupTestEnv(t)
	_, payableID, _ := seedBookingWithFinance(t, env, "BKG-RC-2")

	rec := env.request(t, http.MethodPost, "/api/v1/payables/"+payableID+"/reconcile", gin.H{
		"bir_percentage": "2",
		"charges": []gin.H{
			{"kind": "FREIGHT", "amount": "600"},
			{"kind": "FREIGHT", "amount": "700"},
		},
		"gross_income":           "1200",
		"net_revenue_percentage": "15",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceHandler_PaymentFlow(t *testing.T) {
	env := setupTestEnv(t)
	_, payableID, receivableID := seedBookingWithFinance(t, env, "BKG-PAY-1")

	rec := env.request(t, http.MethodPost, "/api/v1/payables/"+payableID+"/reconcile", gin.H{
		"bir_percentage":         "2",
		"charges":                []gin.H{{"kind": "FREIGHT", "amount": "600"}},
		"gross_income":           "1000",
		"net_revenue_percentage": "10",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/receivables/"+receivableID+"/payments", gin.H{
		"amount":    "400",
		"reference": "OR-1001",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.True(t, decimalField(t, data, "amount_paid").Equal(decimal.NewFromInt(400)))

	collectible := data["collectible_amount"]
	raw, err := json.Marshal(collectible)
	require.NoError(t, err)
	var remaining decimal.NullDecimal
	require.NoError(t, json.Unmarshal(raw, &remaining))
	require.True(t, remaining.Valid)
	assert.True(t, remaining.Decimal.Equal(decimal.NewFromInt(600)))

	// The posted payment shows up in the transaction history
	rec = env.request(t, http.MethodGet, "/api/v1/receivables/"+receivableID+"/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var txns struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txns))
	require.Len(t, txns.Data, 1)
	assert.Equal(t, "OR-1001", txns.Data[0]["reference"])
}

func TestFinanceHandler_AdjustmentLedger(t *testing.T) {
	env := setupTestEnv(t)
	_, payableID, receivableID := seedBookingWithFinance(t, env, "BKG-LED-1")

	rec := env.request(t, http.MethodPost, "/api/v1/payables/"+payableID+"/reconcile", gin.H{
		"bir_percentage":         "2",
		"charges":                []gin.H{{"kind": "FREIGHT", "amount": "600"}},
		"gross_income":           "1000",
		"net_revenue_percentage": "10",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/receivables/"+receivableID+"/payments", gin.H{
		"amount":    "400",
		"reference": "OR-2001",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// The snapshot and the payment both show up, and the fold matches the
	// stored collectible balance
	rec = env.request(t, http.MethodGet, "/api/v1/receivables/"+receivableID+"/adjustments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Entries []map[string]any    `json:"entries"`
			Balance decimal.NullDecimal `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Entries, 2)
	assert.Equal(t, "SNAPSHOT", envelope.Data.Entries[0]["kind"])
	assert.Equal(t, "PAYMENT", envelope.Data.Entries[1]["kind"])
	require.True(t, envelope.Data.Balance.Valid)
	assert.True(t, envelope.Data.Balance.Decimal.Equal(decimal.NewFromInt(600)))

	rec = env.request(t, http.MethodGet, "/api/v1/receivables/"+receivableID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decimalField(t, decodeData(t, rec), "collectible_amount").Equal(decimal.NewFromInt(600)))
}

func TestFinanceHandler_BackfillReceivables(t *testing.T) {
	env := setupTestEnv(t)

	// A booking with no receivable yet
	rec := env.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"booking_number": "BKG-BF-1",
		"mode":           "LAND",
		"origin":         "Manila",
		"destination":    "Baguio",
		"shipper_name":   "Acme Trading",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/receivables/backfill", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, float64(1), data["created"])

	// Second run finds nothing to do
	rec = env.request(t, http.MethodPost, "/api/v1/receivables/backfill", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeData(t, rec)["created"])
}
