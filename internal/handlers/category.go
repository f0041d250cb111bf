// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

// CategoryHandler serves the category tree. Reads are open to any
// authenticated user; structural writes (create, update, destroy, move)
// are restricted to administrators.
type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GET /api/categories/
func (h *CategoryHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionList, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	categories, total, err := h.service.List(params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, serializers.Categories(categories, serializers.List), total, params)
}

// GET /api/categories/:slug
func (h *CategoryHandler) Retrieve(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	category, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Category(category, serializers.Detail))
}

// GET /api/categories/:slug/ancestors
func (h *CategoryHandler) Ancestors(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	ancestors, err := h.service.Ancestors(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Categories(ancestors, serializers.List))
}

// GET /api/categories/:slug/descendants
func (h *CategoryHandler) Descendants(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	descendants, err := h.service.Descendants(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Categories(descendants, serializers.List))
}

// POST /api/categories/
func (h *CategoryHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionCreate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	category, err := h.service.Create(actor, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.Category(category, serializers.Detail))
}

// PUT/PATCH /api/categories/:slug
func (h *CategoryHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionUpdate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	category, err := h.service.Update(actor, c.Param("slug"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Category(category, serializers.Detail))
}

// POST /api/categories/:slug/move
func (h *CategoryHandler) Move(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionUpdate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req struct {
		Parent string `json:"parent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	category, err := h.service.Move(actor, c.Param("slug"), req.Parent)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Category(category, serializers.Detail))
}

// DELETE /api/categories/:slug
func (h *CategoryHandler) Destroy(c *gin.Context) {
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
