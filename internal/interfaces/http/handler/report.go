package handler

import (
	"time"

	appreport "github.com/cargoflow/backend/internal/application/report"
	"github.com/cargoflow/backend/internal/domain/report"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves the financial summary projections
type ReportHandler struct {
	BaseHandler
	service *appreport.FinanceReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *appreport.FinanceReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// RegisterRoutes registers report routes on the API group
func (h *ReportHandler) RegisterRoutes(group *gin.RouterGroup) {
	reports := group.Group("/reports")
	{
		reports.GET("/payables-summary", h.PayableSummary)
		reports.GET("/receivables-summary", h.ReceivableSummary)
	}
}

// summaryQuery binds the shared filter parameters of both summary endpoints
type summaryQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	BookingNumber string `form:"booking_number"`
	From          string `form:"from"`
	To            string `form:"to"`
}

func (h *ReportHandler) bindSummaryFilter(c *gin.Context) (report.SummaryFilter, bool) {
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return report.SummaryFilter{}, false
	}

	filter := report.SummaryFilter{
		Page:          q.Page,
		PageSize:      q.PageSize,
		BookingNumber: q.BookingNumber,
	}

	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			h.BadRequest(c, "invalid from parameter, expected RFC3339 timestamp")
			return report.SummaryFilter{}, false
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			h.BadRequest(c, "invalid to parameter, expected RFC3339 timestamp")
			return report.SummaryFilter{}, false
		}
		filter.To = &to
	}

	return filter, true
}

// PayableSummary godoc
// @Summary Accounts payable summary
// @Description One row per booking with the stored expense rollup, a live recomputation of the charge total, partner names, and the income figures joined in
// @Tags reports
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param booking_number query string false "Exact booking number"
// @Param from query string false "Booking creation range start (RFC3339)"
// @Param to query string false "Booking creation range end (RFC3339)"
// @Success 200 {object} APIResponse[[]report.PayableSummaryRow]
// @Router /reports/payables-summary [get]
func (h *ReportHandler) PayableSummary(c *gin.Context) {
	filter, ok := h.bindSummaryFilter(c)
	if !ok {
		return
	}

	result, err := h.service.PayableSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ReceivableSummary godoc
// @Summary Accounts receivable summary
// @Description One row per booking with collection status, aging, and outstanding balance derived at read time
// @Tags reports
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param booking_number query string false "Exact booking number"
// @Param from query string false "Booking creation range start (RFC3339)"
// @Param to query string false "Booking creation range end (RFC3339)"
// @Success 200 {object} APIResponse[[]report.ReceivableSummaryRow]
// @Router /reports/receivables-summary [get]
func (h *ReportHandler) ReceivableSummary(c *gin.Context) {
	filter, ok := h.bindSummaryFilter(c)
	if !ok {
		return
	}

	result, err := h.service.ReceivableSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
