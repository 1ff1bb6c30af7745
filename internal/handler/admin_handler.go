package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sthemsandsaves/booking-backend/internal/application"
	"github.com/sthemsandsaves/booking-backend/internal/auth"
	"github.com/sthemsandsaves/booking-backend/internal/middleware"
	"github.com/sthemsandsaves/booking-backend/internal/pkg/response"
)

// AdminHandler handles the token-protected administration endpoints.
type AdminHandler struct {
	bookings *application.BookingService
	catalog  *application.CatalogService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings *application.BookingService, catalog *application.CatalogService) *AdminHandler {
	return &AdminHandler{bookings: bookings, catalog: catalog}
}

// RegisterRoutes registers the admin routes on the given router group.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager))
	{
		admin.GET("/bookings", h.ListBookings)
		admin.GET("/bookings/:id", h.GetBooking)
		admin.GET("/stats/bookings", h.GetBookingStats)
		admin.POST("/bookings/:id/status", h.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", h.DeleteBooking)

		admin.GET("/services", h.ListServices)
		admin.POST("/services", h.CreateService)
		admin.PUT("/services/:id", h.UpdateService)
		admin.DELETE("/services/:id", h.DeleteService)

		admin.GET("/packages", h.ListPackages)
		admin.POST("/packages", h.CreatePackage)
		admin.PUT("/packages/:id", h.UpdatePackage)
		admin.DELETE("/packages/:id", h.DeletePackage)

		admin.GET("/rooms", h.ListRooms)
		admin.POST("/rooms", h.CreateRoom)
		admin.PUT("/rooms/:id", h.UpdateRoom)
		admin.DELETE("/rooms/:id", h.DeleteRoom)
	}
}

// --- Bookings ---

// ListBookings handles GET /api/v1/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	page, limit := parsePagination(c)
	statusFilter := c.Query("status")

	items, total, err := h.bookings.ListBookings(c.Request.Context(), statusFilter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, items, total, page, limit)
}

// GetBookingStats handles GET /api/v1/admin/stats/bookings.
func (h *AdminHandler) GetBookingStats(c *gin.Context) {
	result, err := h.bookings.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /api/v1/admin/bookings/:id.
func (h *AdminHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.bookings.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus handles POST /api/v1/admin/bookings/:id/status.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.bookings.TransitionBooking(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBooking handles DELETE /api/v1/admin/bookings/:id.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.bookings.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// --- Services ---

// ListServices handles GET /api/v1/admin/services (includes inactive).
func (h *AdminHandler) ListServices(c *gin.Context) {
	result, err := h.catalog.ListAllServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateService handles POST /api/v1/admin/services.
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req application.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalog.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateService handles PUT /api/v1/admin/services/:id.
func (h *AdminHandler) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	var req application.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalog.UpdateService(c.Request.Context(), serviceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteService handles DELETE /api/v1/admin/services/:id.
func (h *AdminHandler) DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid service ID")
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), serviceID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// --- Packages ---

// ListPackages handles GET /api/v1/admin/packages (includes inactive).
func (h *AdminHandler) ListPackages(c *gin.Context) {
	result, err := h.catalog.ListAllPackages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreatePackage handles POST /api/v1/admin/packages.
func (h *AdminHandler) CreatePackage(c *gin.Context) {
	var req application.UpsertPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalog.CreatePackage(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdatePackage handles PUT /api/v1/admin/packages/:id.
func (h *AdminHandler) UpdatePackage(c *gin.Context) {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid package ID")
		return
	}

	var req application.UpsertPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalog.UpdatePackage(c.Request.Context(), packageID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeletePackage handles DELETE /api/v1/admin/packages/:id.
func (h *AdminHandler) DeletePackage(c *gin.Context) {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid package ID")
		return
	}

	if err := h.catalog.DeletePackage(c.Request.Context(), packageID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// --- Rooms ---

// ListRooms handles GET /api/v1/admin/rooms (includes unavailable).
func (h *AdminHandler) ListRooms(c *gin.Context) {
	result, err := h.catalog.ListAllRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateRoom handles POST /api/v1/admin/rooms.
func (h *AdminHandler) CreateRoom(c *gin.Context) {
	var req application.UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalog.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateRoom handles PUT /api/v1/admin/rooms/:id.
func (h *AdminHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	var req application.UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalog.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRoom handles DELETE /api/v1/admin/rooms/:id.
func (h *AdminHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	if err := h.catalog.DeleteRoom(c.Request.Context(), roomID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
