package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sthemsandsaves/booking-backend/internal/application"
	"github.com/sthemsandsaves/booking-backend/internal/pkg/response"
)

// BookingHandler handles the public booking and catalog endpoints.
type BookingHandler struct {
	bookings *application.BookingService
	catalog  *application.CatalogService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *application.BookingService, catalog *application.CatalogService) *BookingHandler {
	return &BookingHandler{bookings: bookings, catalog: catalog}
}

// RegisterRoutes registers the public routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/bookings", h.CreateBooking)
		v1.GET("/bookings/:number", h.GetBookingByNumber)
		v1.GET("/services", h.ListServices)
		v1.GET("/packages", h.ListPackages)
		v1.GET("/rooms", h.ListRooms)
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetBookingByNumber handles GET /api/v1/bookings/:number. Customers look up
// their booking with the reference from the confirmation email.
func (h *BookingHandler) GetBookingByNumber(c *gin.Context) {
	number := strings.ToUpper(strings.TrimSpace(c.Param("number")))
	if number == "" {
		response.BadRequest(c, "booking number is required")
		return
	}

	result, err := h.bookings.GetBookingByNumber(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListServices handles GET /api/v1/services (active services only).
func (h *BookingHandler) ListServices(c *gin.Context) {
	result, err := h.catalog.ListActiveServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListPackages handles GET /api/v1/packages (active packages only).
func (h *BookingHandler) ListPackages(c *gin.Context) {
	result, err := h.catalog.ListActivePackages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListRooms handles GET /api/v1/rooms (available rooms only).
func (h *BookingHandler) ListRooms(c *gin.Context) {
	result, err := h.catalog.ListAvailableRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return page, limit
}
