// internal/services/product_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Owner, created_by and updated_by are server-controlled: the creator
// becomes all three no matter what the request body carries.
type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Slug        string     `json:"slug" validate:"omitempty,max=100,slug"`
	Description string     `json:"description"`
	IsActive    *bool      `json:"is_active"`
	Brand       uuid.UUID  `json:"brand" validate:"required"`
	Category    *uuid.UUID `json:"category"`
}

// UpdateProductRequest has no slug field: slug edits are dropped silently.
type UpdateProductRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description"`
	IsActive    *bool      `json:"is_active"`
	Brand       *uuid.UUID `json:"brand"`
	Category    *uuid.UUID `json:"category"`
}

func (s *ProductService) List(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := utils.ApplyPagination(query, params).
		Preload("Brand").Preload("Category").
		Order("name").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *ProductService) GetBySlug(slugStr string) (*models.Product, error) {
	var product models.Product
	if err := s.db.
		Preload("Brand").Preload("Category").
		Preload("ProductLines").Preload("Images").
		Preload("Owner").Preload("CreatedBy").Preload("UpdatedBy").
		Where("slug = ?", slugStr).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(actor permissions.Actor, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", req.Brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewFieldError("brand", "Brand not found.")
		}
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		BrandID:     brand.ID,
		OwnerID:     actor.ID,
	}
	if product.Slug == "" {
		product.Slug = slug.Make(req.Name)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Category != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *req.Category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NewFieldError("category", "Category not found.")
			}
			return nil, err
		}
		product.CategoryID = &category.ID
	}
	product.Stamp(actor.ID)

	if err := s.db.Create(product).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewFieldError("slug", "product with this slug already exists.")
		}
		return nil, err
	}

	return s.GetBySlug(product.Slug)
}

func (s *ProductService) Update(actor permissions.Actor, slugStr string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	product, err := s.GetBySlug(slugStr)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by_id": actor.ID}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Brand != nil {
		var brand models.Brand
		if err := s.db.First(&brand, "id = ?", *req.Brand).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NewFieldError("brand", "Brand not found.")
			}
			return nil, err
		}
		updates["brand_id"] = brand.ID
	}
	if req.Category != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *req.Category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NewFieldError("category", "Category not found.")
			}
			return nil, err
		}
		updates["category_id"] = category.ID
	}

	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(slugStr)
}

func (s *ProductService) Destroy(actor permissions.Actor, slugStr string) error {
	product, err := s.GetBySlug(slugStr)
	if err != nil {
		return err
	}

	return s.db.Model(product).Updates(map[string]interface{}{
		"is_active":     false,
		"updated_by_id": actor.ID,
	}).Error
}
