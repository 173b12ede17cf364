package handler

import (
	"time"

	appfinance "github.com/cargoflow/backend/internal/application/finance"
	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FinanceHandler serves the accounts payable and receivable endpoints
type FinanceHandler struct {
	BaseHandler
	finance        *appfinance.FinanceService
	charges        *appfinance.ChargeService
	reconciliation *appfinance.ReconciliationService
	collectible    *appfinance.CollectibleService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(
	finance *appfinance.FinanceService,
	charges *appfinance.ChargeService,
	reconciliation *appfinance.ReconciliationService,
	collectible *appfinance.CollectibleService,
	logger *zap.Logger,
) *FinanceHandler {
	return &FinanceHandler{
		BaseHandler:    NewBaseHandler(logger),
		finance:        finance,
		charges:        charges,
		reconciliation: reconciliation,
		collectible:    collectible,
	}
}

// RegisterRoutes registers finance routes on the API group
func (h *FinanceHandler) RegisterRoutes(group *gin.RouterGroup) {
	payables := group.Group("/payables")
	{
		payables.POST("", h.CreatePayable)
		payables.GET("/:id", h.GetPayable)
		payables.GET("/by-booking-number/:number", h.GetPayableByBookingNumber)
		payables.GET("/:id/charges", h.ListCharges)
		payables.PUT("/:id/charges", h.UpsertCharge)
		payables.POST("/:id/reconcile", h.Reconcile)
	}

	receivables := group.Group("/receivables")
	{
		receivables.POST("", h.CreateReceivable)
		receivables.POST("/backfill", h.BackfillReceivables)
		receivables.GET("/:id", h.GetReceivable)
		receivables.PATCH("/:id", h.UpdateReceivable)
		receivables.GET("/:id/transactions", h.ListTransactions)
		receivables.GET("/:id/adjustments", h.ListAdjustments)
		receivables.POST("/:id/payments", h.PostPayment)
		receivables.POST("/:id/deductions", h.DeductFromCollectible)
		receivables.POST("/:id/recompute", h.RecomputeAmountPaid)
	}

	// Finance views of a booking
	bookings := group.Group("/bookings")
	{
		bookings.GET("/:id/payable", h.GetPayableByBooking)
		bookings.GET("/:id/receivable", h.GetReceivableByBooking)
	}
}

// CreatePayableRequest opens the expense side for a booking
type CreatePayableRequest struct {
	BookingID     uuid.UUID       `json:"booking_id" binding:"required"`
	BIRPercentage decimal.Decimal `json:"bir_percentage"`
}

// CreateReceivableRequest opens the income side for a booking
type CreateReceivableRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}

// UpsertChargeRequest sets one charge slot on a payable
type UpsertChargeRequest struct {
	Kind      string          `json:"kind" binding:"required,chargekind"`
	Key       string          `json:"key"`
	Amount    decimal.Decimal `json:"amount"`
	CheckDate *time.Time      `json:"check_date"`
	Voucher   string          `json:"voucher"`
	Payee     string          `json:"payee"`
}

// ChargeInput is one charge slot inside a reconcile sheet
type ChargeInput struct {
	Kind      string          `json:"kind" binding:"required,chargekind"`
	Key       string          `json:"key"`
	Amount    decimal.Decimal `json:"amount"`
	CheckDate *time.Time      `json:"check_date"`
	Voucher   string          `json:"voucher"`
	Payee     string          `json:"payee"`
}

// ReconcileRequest carries the full entry sheet for one payable
type ReconcileRequest struct {
	BIRPercentage        decimal.Decimal `json:"bir_percentage"`
	Charges              []ChargeInput   `json:"charges"`
	GrossIncome          decimal.Decimal `json:"gross_income"`
	NetRevenuePercentage decimal.Decimal `json:"net_revenue_percentage"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	TotalPayables        decimal.Decimal `json:"total_payables"`
}

// UpdateReceivableRequest edits payment terms and payment date
type UpdateReceivableRequest struct {
	Terms       *int       `json:"terms"`
	PaymentDate *time.Time `json:"payment_date"`
}

// PaymentRequest posts a collected amount against a receivable
type PaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference string          `json:"reference"`
}

// DeductionRequest subtracts directly from the collectible balance
type DeductionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ChargeListResponse returns the stored slots and their live total
type ChargeListResponse struct {
	Charges []finance.ChargeLineItem `json:"charges"`
	Total   decimal.Decimal          `json:"total"`
}

// CreatePayable godoc
// @Summary Create an accounts payable record
// @Description Opens the expense side for a booking; one payable per booking
// @Tags finance
// @Accept json
// @Produce json
// @Param request body CreatePayableRequest true "Payable data"
// @Success 201 {object} APIResponse[finance.AccountsPayable]
// @Failure 409 {object} APIResponse[any]
// @Router /payables [post]
func (h *FinanceHandler) CreatePayable(c *gin.Context) {
	var req CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ap, err := h.finance.CreatePayableForBooking(c.Request.Context(), req.BookingID, req.BIRPercentage)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ap)
}

// GetPayable godoc
// @Summary Get an accounts payable record
// @Tags finance
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} APIResponse[finance.AccountsPayable]
// @Failure 404 {object} APIResponse[any]
// @Router /payables/{id} [get]
func (h *FinanceHandler) GetPayable(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	ap, err := h.finance.GetPayable(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ap)
}

// GetPayableByBookingNumber godoc
// @Summary Get the payable for a booking number
// @Tags finance
// @Produce json
// @Param number path string true "Booking number"
// @Success 200 {object} APIResponse[finance.AccountsPayable]
// @Failure 404 {object} APIResponse[any]
// @Router /payables/by-booking-number/{number} [get]
func (h *FinanceHandler) GetPayableByBookingNumber(c *gin.Context) {
	ap, err := h.finance.GetPayableByBookingNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ap)
}

// GetPayableByBooking godoc
// @Summary Get the payable linked to a booking
// @Tags finance
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} APIResponse[finance.AccountsPayable]
// @Failure 404 {object} APIResponse[any]
// @Router /bookings/{id}/payable [get]
func (h *FinanceHandler) GetPayableByBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	ap, err := h.finance.GetPayableByBookingID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ap)
}

// ListCharges godoc
// @Summary List the charge slots on a payable
// @Description Returns the stored charge line items and their live sum
// @Tags finance
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} APIResponse[ChargeListResponse]
// @Router /payables/{id}/charges [get]
func (h *FinanceHandler) ListCharges(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	items, err := h.charges.ListCharges(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	total, err := h.charges.SumCategories(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ChargeListResponse{Charges: items, Total: total})
}

// UpsertCharge godoc
// @Summary Set one charge slot on a payable
// @Description Inserts or replaces the line item for the given category slot
// @Tags finance
// @Accept json
// @Produce json
// @Param id path string true "Payable ID"
// @Param request body UpsertChargeRequest true "Charge data"
// @Success 200 {object} APIResponse[finance.ChargeLineItem]
// @Failure 400 {object} APIResponse[any]
// @Router /payables/{id}/charges [put]
func (h *FinanceHandler) UpsertCharge(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req UpsertChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.charges.UpsertCategory(c.Request.Context(), appfinance.UpsertChargeRequest{
		PayableID: id,
		Kind:      req.Kind,
		Key:       req.Key,
		Amount:    req.Amount,
		CheckDate: req.CheckDate,
		Voucher:   req.Voucher,
		Payee:     req.Payee,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Reconcile godoc
// @Summary Reconcile a payable against its booking's receivable
// @Description Upserts every charge slot in the sheet, rolls the expense total into the payable, and snapshots the receivable's collectible balance in one transaction
// @Tags finance
// @Accept json
// @Produce json
// @Param id path string true "Payable ID"
// @Param request body ReconcileRequest true "Entry sheet"
// @Success 200 {object} APIResponse[appfinance.ReconcileResult]
// @Failure 409 {object} APIResponse[any]
// @Failure 422 {object} APIResponse[any]
// @Router /payables/{id}/reconcile [post]
func (h *FinanceHandler) Reconcile(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	charges := make([]appfinance.ChargeInput, 0, len(req.Charges))
	for _, ch := range req.Charges {
		charges = append(charges, appfinance.ChargeInput{
			Kind:      ch.Kind,
			Key:       ch.Key,
			Amount:    ch.Amount,
			CheckDate: ch.CheckDate,
			Voucher:   ch.Voucher,
			Payee:     ch.Payee,
		})
	}

	result, err := h.reconciliation.Reconcile(c.Request.Context(), id, appfinance.ReconcileRequest{
		BIRPercentage:        req.BIRPercentage,
		Charges:              charges,
		GrossIncome:          req.GrossIncome,
		NetRevenuePercentage: req.NetRevenuePercentage,
		TotalExpenses:        req.TotalExpenses,
		TotalPayables:        req.TotalPayables,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateReceivable godoc
// @Summary Create an accounts receivable record
// @Description Opens the income side for a booking; one receivable per booking
// @Tags finance
// @Accept json
// @Produce json
// @Param request body CreateReceivableRequest true "Receivable data"
// @Success 201 {object} APIResponse[finance.AccountsReceivable]
// @Failure 409 {object} APIResponse[any]
// @Router /receivables [post]
func (h *FinanceHandler) CreateReceivable(c *gin.Context) {
	var req CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ar, err := h.finance.CreateReceivableForBooking(c.Request.Context(), req.BookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ar)
}

// BackfillReceivables godoc
// @Summary Create receivables for bookings that lack one
// @Description Scans for bookings without a receivable and opens one for each
// @Tags finance
// @Produce json
// @Success 200 {object} APIResponse[map[string]int]
// @Router /receivables/backfill [post]
func (h *FinanceHandler) BackfillReceivables(c *gin.Context) {
	created, err := h.finance.BackfillReceivables(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"created": created})
}

// GetReceivable godoc
// @Summary Get an accounts receivable record
// @Tags finance
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} APIResponse[finance.AccountsReceivable]
// @Failure 404 {object} APIResponse[any]
// @Router /receivables/{id} [get]
func (h *FinanceHandler) GetReceivable(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	ar, err := h.finance.GetReceivable(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ar)
}

// GetReceivableByBooking godoc
// @Summary Get the receivable linked to a booking
// @Tags finance
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} APIResponse[finance.AccountsReceivable]
// @Failure 404 {object} APIResponse[any]
// @Router /bookings/{id}/receivable [get]
func (h *FinanceHandler) GetReceivableByBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	ar, err := h.finance.GetReceivableByBookingID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ar)
}

// UpdateReceivable godoc
// @Summary Update a receivable's payment terms and payment date
// @Description Edits terms and payment date, then recomputes aging from the booking date
// @Tags finance
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param request body UpdateReceivableRequest true "Fields to update"
// @Success 200 {object} APIResponse[finance.AccountsReceivable]
// @Failure 422 {object} APIResponse[any]
// @Router /receivables/{id} [patch]
func (h *FinanceHandler) UpdateReceivable(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ar, err := h.finance.UpdateReceivable(c.Request.Context(), id, appfinance.UpdateReceivableRequest{
		Terms:       req.Terms,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ar)
}

// ListTransactions godoc
// @Summary List payments posted against a receivable
// @Description Returns posted payments, newest first
// @Tags finance
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} APIResponse[[]finance.ReceivableTransaction]
// @Router /receivables/{id}/transactions [get]
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	txns, err := h.finance.ListReceivableTransactions(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, txns)
}

// ListAdjustments godoc
// @Summary List the collectible adjustment ledger of a receivable
// @Description Returns the append-only adjustment history in insertion order, with the balance the entries replay to
// @Tags finance
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} APIResponse[appfinance.CollectibleLedger]
// @Failure 404 {object} APIResponse[any]
// @Router /receivables/{id}/adjustments [get]
func (h *FinanceHandler) ListAdjustments(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	ledger, err := h.collectible.Ledger(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}

// PostPayment godoc
// @Summary Post a payment against a receivable
// @Description Records the payment, raises the amount paid, and deducts the collectible balance
// @Tags finance
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} APIResponse[finance.AccountsReceivable]
// @Failure 422 {object} APIResponse[any]
// @Router /receivables/{id}/payments [post]
func (h *FinanceHandler) PostPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ar, err := h.collectible.PostPayment(c.Request.Context(), id, req.Amount, req.Reference)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ar)
}

// DeductFromCollectible godoc
// @Summary Deduct an amount from the collectible balance
// @Description Subtracts from the collectible balance without posting a payment record
// @Tags finance
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param request body DeductionRequest true "Deduction data"
// @Success 200 {object} APIResponse[finance.AccountsReceivable]
// @Failure 422 {object} APIResponse[any]
// @Router /receivables/{id}/deductions [post]
func (h *FinanceHandler) DeductFromCollectible(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req DeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ar, err := h.collectible.DeductFromCollectible(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ar)
}

// RecomputeAmountPaid godoc
// @Summary Recompute the amount paid from the transaction history
// @Description Replays posted payments and overwrites the stored amount paid
// @Tags finance
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} APIResponse[finance.AccountsReceivable]
// @Router /receivables/{id}/recompute [post]
func (h *FinanceHandler) RecomputeAmountPaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	ar, err := h.collectible.RecomputeAmountPaid(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ar)
}
