// internal/handlers/brand.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type BrandHandler struct {
	service *services.BrandService
}

func NewBrandHandler(service *services.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// GET /api/brands/
func (h *BrandHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionList, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	brands, total, err := h.service.List(params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, serializers.Brands(brands, serializers.List), total, params)
}

// GET /api/brands/:slug
func (h *BrandHandler) Retrieve(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	brand, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Brand(brand, serializers.Detail))
}

// POST /api/brands/
func (h *BrandHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionCreate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	brand, err := h.service.Create(actor, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.Brand(brand, serializers.Detail))
}

// PUT/PATCH /api/brands/:slug
func (h *BrandHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionUpdate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	brand, err := h.service.Update(actor, c.Param("slug"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Brand(brand, serializers.Detail))
}

// DELETE /api/brands/:slug
func (h *BrandHandler) Destroy(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionDestroy, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	if err := h.service.Destroy(actor, c.Param("slug")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
