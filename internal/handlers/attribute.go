// internal/handlers/attribute.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type AttributeHandler struct {
	service *services.AttributeService
}

func NewAttributeHandler(service *services.AttributeService) *AttributeHandler {
	return &AttributeHandler{service: service}
}

// GET /api/attributes/
func (h *AttributeHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionList, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	attributes, total, err := h.service.List(params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, serializers.Attributes(attributes, serializers.List), total, params)
}

// GET /api/attributes/:slug
func (h *AttributeHandler) Retrieve(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	attribute, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Attribute(attribute, serializers.Detail))
}

// POST /api/attributes/
func (h *AttributeHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionCreate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	attribute, err := h.service.Create(actor, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.Attribute(attribute, serializers.Detail))
}

// PUT/PATCH /api/attributes/:slug
func (h *AttributeHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if permissions.Authorize(actor, permissions.ActionUpdate, nil) != permissions.Admin {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	attribute, err := h.service.Update(actor, c.Param("slug"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.Attribute(attribute, serializers.Detail))
}

// DELETE /api/attributes/:slug
func (h *AttributeHandler) Destroy(c *gin.Context) {
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
