// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.User(user, serializers.Detail))
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	pair, user, err := h.service.Login(&req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user":          serializers.User(user, serializers.Detail),
	})
}

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	pair, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, pair)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	user, err := h.service.GetUser(actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.User(user, serializers.Detail))
}
