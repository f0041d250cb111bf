// internal/handlers/product_image.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/serializers"
	"github.com/vrcadore/ecommerce-backend/internal/services"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

// ProductImageHandler serves image uploads. Create is multipart; destroy
// removes both the row and the blob.
type ProductImageHandler struct {
	service *services.ProductImageService
}

func NewProductImageHandler(service *services.ProductImageService) *ProductImageHandler {
	return &ProductImageHandler{service: service}
}

// GET /api/product_image/
func (h *ProductImageHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionList, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	images, total, err := h.service.List(params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, serializers.ProductImages(images, serializers.List), total, params)
}

// GET /api/product_image/:id
func (h *ProductImageHandler) Retrieve(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionRetrieve, nil).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c)
		return
	}

	image, err := h.service.GetByID(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.ProductImage(image, serializers.Detail))
}

// POST /api/product_image/ (multipart/form-data: image, product, alt_text)
func (h *ProductImageHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !permissions.Authorize(actor, permissions.ActionCreate, &actor.ID).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	productID, err := uuid.Parse(c.PostForm("product"))
	if err != nil {
		utils.ValidationErrorResponse(c, utils.NewFieldError("product", "Product not found."))
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.ValidationErrorResponse(c, utils.NewFieldError("image", "No file was submitted."))
		return
	}
	defer file.Close()

	req := services.CreateProductImageRequest{
		AltText: c.PostForm("alt_text"),
		Product: productID,
	}

	image, err := h.service.Create(actor, &req, file, header)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, serializers.ProductImage(image, serializers.Detail))
}

// PUT/PATCH /api/product_image/:id
func (h *ProductImageHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c)
		return
	}

	image, err := h.service.GetByID(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	owner := image.GetOwnerID()
	if !permissions.Authorize(actor, permissions.ActionUpdate, &owner).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	var req services.UpdateProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Malformed request body.")
		return
	}

	updated, err := h.service.Update(actor, id, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, serializers.ProductImage(updated, serializers.Detail))
}

// DELETE /api/product_image/:id
func (h *ProductImageHandler) Destroy(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c)
		return
	}

	image, err := h.service.GetByID(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	owner := image.GetOwnerID()
	if !permissions.Authorize(actor, permissions.ActionDestroy, &owner).Allowed() {
		utils.ForbiddenResponse(c)
		return
	}

	if err := h.service.Destroy(actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
