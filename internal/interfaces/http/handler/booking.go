package handler

import (
	appbooking "github.com/cargoflow/backend/internal/application/booking"
	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/cargoflow/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints
type BookingHandler struct {
	BaseHandler
	service *appbooking.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *appbooking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// RegisterRoutes registers booking routes on the API group
func (h *BookingHandler) RegisterRoutes(group *gin.RouterGroup) {
	bookings := group.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.GET("/by-number/:number", h.GetByNumber)
		bookings.PATCH("/:id/status", h.UpdateStatus)
		bookings.DELETE("/:id", h.Delete)
	}
}

// CreateBookingRequest is the payload for creating a booking
type CreateBookingRequest struct {
	BookingNumber        string     `json:"booking_number" binding:"required"`
	HWBNumber            string     `json:"hwb_number"`
	Mode                 string     `json:"mode" binding:"required,oneof=SEA LAND"`
	Origin               string     `json:"origin" binding:"required"`
	Destination          string     `json:"destination" binding:"required"`
	Commodity            string     `json:"commodity"`
	ShipperName          string     `json:"shipper_name" binding:"required"`
	ShippingLineID       *uuid.UUID `json:"shipping_line_id"`
	OriginTruckerID      *uuid.UUID `json:"origin_trucker_id"`
	DestinationTruckerID *uuid.UUID `json:"destination_trucker_id"`
}

// UpdateBookingStatusRequest is the payload for a status transition
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create godoc
// @Summary Create a booking
// @Description Registers a new freight booking with optional partner assignments
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} APIResponse[booking.Booking]
// @Failure 400 {object} APIResponse[any]
// @Failure 409 {object} APIResponse[any]
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), appbooking.CreateBookingRequest{
		BookingNumber:        req.BookingNumber,
		HWBNumber:            req.HWBNumber,
		Mode:                 req.Mode,
		Origin:               req.Origin,
		Destination:          req.Destination,
		Commodity:            req.Commodity,
		ShipperName:          req.ShipperName,
		ShippingLineID:       req.ShippingLineID,
		OriginTruckerID:      req.OriginTruckerID,
		DestinationTruckerID: req.DestinationTruckerID,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, b)
}

// List godoc
// @Summary List bookings
// @Description Lists bookings with filtering and pagination
// @Tags bookings
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search on booking number, HWB number, or shipper"
// @Param status query string false "Filter by status"
// @Param mode query string false "Filter by transport mode"
// @Success 200 {object} APIResponse[[]booking.Booking]
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := booking.Filter{}
	filter.Page = req.Page
	filter.PageSize = req.PageSize
	filter.OrderBy = req.OrderBy
	filter.OrderDir = req.OrderDir
	filter.Search = req.Search

	if raw := c.Query("status"); raw != "" {
		status := booking.Status(raw)
		if !status.IsValid() {
			h.BadRequest(c, "invalid status filter")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("mode"); raw != "" {
		mode := booking.TransportMode(raw)
		if !mode.IsValid() {
			h.BadRequest(c, "invalid mode filter")
			return
		}
		filter.Mode = &mode
	}

	result, err := h.service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} APIResponse[booking.Booking]
// @Failure 404 {object} APIResponse[any]
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, b)
}

// GetByNumber godoc
// @Summary Get a booking by booking number
// @Tags bookings
// @Produce json
// @Param number path string true "Booking number"
// @Success 200 {object} APIResponse[booking.Booking]
// @Failure 404 {object} APIResponse[any]
// @Router /bookings/by-number/{number} [get]
func (h *BookingHandler) GetByNumber(c *gin.Context) {
	b, err := h.service.GetBookingByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, b)
}

// UpdateStatus godoc
// @Summary Update booking status
// @Description Moves the booking through its lifecycle; terminal states reject further transitions
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body UpdateBookingStatusRequest true "New status"
// @Success 200 {object} APIResponse[booking.Booking]
// @Failure 422 {object} APIResponse[any]
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, b)
}

// Delete godoc
// @Summary Delete a booking
// @Description Removes a booking; linked payable and receivable records cascade
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} APIResponse[any]
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
