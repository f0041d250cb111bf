// internal/services/product_image_service.go
package services

import (
	"errors"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

// ProductImageService manages image rows and their blobs. Images have no
// active flag and no soft delete: destroying one removes the row and the
// stored file.
type ProductImageService struct {
	db      *gorm.DB
	storage *StorageService
}

func NewProductImageService(db *gorm.DB, storage *StorageService) *ProductImageService {
	return &ProductImageService{db: db, storage: storage}
}

type CreateProductImageRequest struct {
	AltText string    `form:"alt_text" validate:"omitempty,max=100"`
	Product uuid.UUID `form:"product" validate:"required"`
}

type UpdateProductImageRequest struct {
	AltText *string `json:"alt_text" validate:"omitempty,max=100"`
}

func (s *ProductImageService) List(params utils.PaginationParams) ([]models.ProductImage, int64, error) {
	query := s.db.Model(&models.ProductImage{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []models.ProductImage
	if err := utils.ApplyPagination(query, params).
		Order("created_at").
		Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (s *ProductImageService) GetByID(id uuid.UUID) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := s.db.
		Preload("Product").
		Preload("CreatedBy").Preload("UpdatedBy").
		First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (s *ProductImageService) Create(actor permissions.Actor, req *CreateProductImageRequest, file multipart.File, header *multipart.FileHeader) (*models.ProductImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	product, err := s.ownedProduct(actor, req.Product)
	if err != nil {
		return nil, err
	}

	if err := s.storage.ValidateImage(file); err != nil {
		return nil, utils.NewFieldError("image", "Upload a valid image.")
	}

	result, err := s.storage.UploadFile(file, header, s.storage.ImageUploadOptions())
	if err != nil {
		return nil, utils.NewFieldError("image", err.Error())
	}

	image := &models.ProductImage{
		Image:     result.URL,
		ImageKey:  result.Key,
		AltText:   req.AltText,
		ProductID: product.ID,
	}
	image.Stamp(actor.ID)

	if err := s.db.Create(image).Error; err != nil {
		// The row failed after the blob landed, drop the orphaned file.
		if delErr := s.storage.DeleteFile(result.Key); delErr != nil {
			logrus.WithError(delErr).WithField("key", result.Key).Warn("Failed to delete orphaned upload")
		}
		return nil, err
	}

	return s.GetByID(image.ID)
}

func (s *ProductImageService) Update(actor permissions.Actor, id uuid.UUID, req *UpdateProductImageRequest) (*models.ProductImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	image, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by_id": actor.ID}
	if req.AltText != nil {
		updates["alt_text"] = *req.AltText
	}

	if err := s.db.Model(image).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Destroy removes the database row and then the blob. A failed blob delete
// is logged rather than surfaced: the row is already gone.
func (s *ProductImageService) Destroy(actor permissions.Actor, id uuid.UUID) error {
	image, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(image).Error; err != nil {
		return err
	}

	if image.ImageKey != "" {
		if err := s.storage.DeleteFile(image.ImageKey); err != nil {
			logrus.WithError(err).WithField("key", image.ImageKey).Warn("Failed to delete image blob")
		}
	}

	return nil
}

func (s *ProductImageService) ownedProduct(actor permissions.Actor, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewFieldError("product", "Product not found.")
		}
		return nil, err
	}
	if !actor.Admin() && product.OwnerID != actor.ID {
		return nil, utils.NewFieldError("product", "You do not own this product.")
	}
	return &product, nil
}
