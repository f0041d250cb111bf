// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

// ProductHandler serves products. Any authenticated user may read or
// create; updates and destroys require ownership or admin.
type ProductHandler struct {
	service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// GET /api/products/
func (h *ProductHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionList, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	products, total, err := h.service.List(params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, serializers.Products(products, serializers.List), total, params)
}

// GET /api/products/:slug
func (h *ProductHandler) Retrieve(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	product, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Product(product, serializers.Detail))
}

// POST /api/products/
func (h *ProductHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	// The creator becomes the owner, so the check runs against the actor.
	if !permissions.Authorize(actor, permissions.ActionCreate, &actor.ID).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	product, err := h.service.Create(actor, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.Product(product, serializers.Detail))
}

// PUT/PATCH /api/products/:slug
func (h *ProductHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	product, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !permissions.Authorize(actor, permissions.ActionUpdate, &product.OwnerID).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	updated, err := h.service.Update(actor, product.Slug, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Product(updated, serializers.Detail))
}

// DELETE /api/products/:slug
func (h *ProductHandler) Destroy(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	product, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !permissions.Authorize(actor, permissions.ActionDestroy, &product.OwnerID).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	if err := h.service.Destroy(actor, product.Slug); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
