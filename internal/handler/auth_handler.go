package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sthemsandsaves/booking-backend/internal/auth"
	"github.com/sthemsandsaves/booking-backend/internal/pkg/response"
)

// AuthHandler handles administrator authentication.
type AuthHandler struct {
	authenticator *auth.AdminAuthenticator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authenticator *auth.AdminAuthenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

// RegisterRoutes registers the auth routes on the given router group.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/auth/login", h.Login)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authenticator.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, loginResponse{Token: token})
}
