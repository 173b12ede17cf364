package handler

import (
	apppartner "github.com/cargoflow/backend/internal/application/partner"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/cargoflow/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler serves the shipping line and trucking company endpoints
type PartnerHandler struct {
	BaseHandler
	service *apppartner.PartnerService
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(service *apppartner.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// RegisterRoutes registers partner routes on the API group
func (h *PartnerHandler) RegisterRoutes(group *gin.RouterGroup) {
	lines := group.Group("/shipping-lines")
	{
		lines.POST("", h.CreateShippingLine)
		lines.GET("", h.ListShippingLines)
		lines.GET("/:id", h.GetShippingLine)
	}

	truckers := group.Group("/trucking-companies")
	{
		truckers.POST("", h.CreateTruckingCompany)
		truckers.GET("", h.ListTruckingCompanies)
		truckers.GET("/:id", h.GetTruckingCompany)
	}
}

// CreatePartnerRequest is the payload for registering a partner
type CreatePartnerRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email"`
}

func (r CreatePartnerRequest) toApplication() apppartner.CreatePartnerRequest {
	return apppartner.CreatePartnerRequest{
		Code:          r.Code,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
		ContactEmail:  r.ContactEmail,
	}
}

// CreateShippingLine godoc
// @Summary Register a shipping line
// @Tags partners
// @Accept json
// @Produce json
// @Param request body CreatePartnerRequest true "Shipping line data"
// @Success 201 {object} APIResponse[partner.ShippingLine]
// @Failure 409 {object} APIResponse[any]
// @Router /shipping-lines [post]
func (h *PartnerHandler) CreateShippingLine(c *gin.Context) {
	var req CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.service.CreateShippingLine(c.Request.Context(), req.toApplication())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, line)
}

// ListShippingLines godoc
// @Summary List shipping lines
// @Tags partners
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search on code or name"
// @Success 200 {object} APIResponse[[]partner.ShippingLine]
// @Router /shipping-lines [get]
func (h *PartnerHandler) ListShippingLines(c *gin.Context) {
	filter, ok := bindPartnerFilter(c, &h.BaseHandler)
	if !ok {
		return
	}

	result, err := h.service.ListShippingLines(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetShippingLine godoc
// @Summary Get a shipping line
// @Tags partners
// @Produce json
// @Param id path string true "Shipping line ID"
// @Success 200 {object} APIResponse[partner.ShippingLine]
// @Failure 404 {object} APIResponse[any]
// @Router /shipping-lines/{id} [get]
func (h *PartnerHandler) GetShippingLine(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	line, err := h.service.GetShippingLine(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, line)
}

// CreateTruckingCompany godoc
// @Summary Register a trucking company
// @Tags partners
// @Accept json
// @Produce json
// @Param request body CreatePartnerRequest true "Trucking company data"
// @Success 201 {object} APIResponse[partner.TruckingCompany]
// @Failure 409 {object} APIResponse[any]
// @Router /trucking-companies [post]
func (h *PartnerHandler) CreateTruckingCompany(c *gin.Context) {
	var req CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	company, err := h.service.CreateTruckingCompany(c.Request.Context(), req.toApplication())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, company)
}

// ListTruckingCompanies godoc
// @Summary List trucking companies
// @Tags partners
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search on code or name"
// @Success 200 {object} APIResponse[[]partner.TruckingCompany]
// @Router /trucking-companies [get]
func (h *PartnerHandler) ListTruckingCompanies(c *gin.Context) {
	filter, ok := bindPartnerFilter(c, &h.BaseHandler)
	if !ok {
		return
	}

	result, err := h.service.ListTruckingCompanies(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetTruckingCompany godoc
// @Summary Get a trucking company
// @Tags partners
// @Produce json
// @Param id path string true "Trucking company ID"
// @Success 200 {object} APIResponse[partner.TruckingCompany]
// @Failure 404 {object} APIResponse[any]
// @Router /trucking-companies/{id} [get]
func (h *PartnerHandler) GetTruckingCompany(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	company, err := h.service.GetTruckingCompany(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

func bindPartnerFilter(c *gin.Context, h *BaseHandler) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return shared.Filter{}, false
	}

	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}, true
}
