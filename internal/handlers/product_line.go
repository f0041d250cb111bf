// internal/handlers/product_line.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

// ProductLineHandler serves product variants. Ownership is derived through
// the parent product.
type ProductLineHandler struct {
	service *services.ProductLineService
}

func NewProductLineHandler(service *services.ProductLineService) *ProductLineHandler {
	return &ProductLineHandler{service: service}
}

// GET /api/product_lines/
func (h *ProductLineHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionList, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	lines, total, err := h.service.List(params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, serializers.ProductLines(lines, serializers.List), total, params)
}

// GET /api/product_lines/:sku
func (h *ProductLineHandler) Retrieve(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	line, err := h.service.GetBySku(c.Param("sku"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.ProductLine(line, serializers.Detail))
}

// POST /api/product_lines/
func (h *ProductLineHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionCreate, &actor.ID).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.CreateProductLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	line, err := h.service.Create(actor, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.ProductLine(line, serializers.Detail))
}

// PUT/PATCH /api/product_lines/:sku
func (h *ProductLineHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	line, err := h.service.GetBySku(c.Param("sku"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	owner := line.GetOwnerID()
	if !permissions.Authorize(actor, permissions.ActionUpdate, &owner).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.UpdateProductLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	updated, err := h.service.Update(actor, line.Sku, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.ProductLine(updated, serializers.Detail))
}

// DELETE /api/product_lines/:sku
func (h *ProductLineHandler) Destroy(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	line, err := h.service.GetBySku(c.Param("sku"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	owner := line.GetOwnerID()
	if !permissions.Authorize(actor, permissions.ActionDestroy, &owner).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	if err := h.service.Destroy(actor, line.Sku); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
