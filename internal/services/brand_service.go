// internal/services/brand_service.go
package services

import (
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type BrandService struct {
	db *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

type CreateBrandRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100,slug"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateBrandRequest has no slug field: slug edits are dropped silently.
type UpdateBrandRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (s *BrandService) List(params utils.PaginationParams) ([]models.Brand, int64, error) {
	query := s.db.Model(&models.Brand{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var brands []models.Brand
	if err := utils.ApplyPagination(query, params).
		Order("name").
		Find(&brands).Error; err != nil {
		return nil, 0, err
	}

	return brands, total, nil
}

func (s *BrandService) GetBySlug(slugStr string) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.Preload("CreatedBy").Preload("UpdatedBy").
		Where("slug = ?", slugStr).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (s *BrandService) Create(actor permissions.Actor, req *CreateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	brand := &models.Brand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if brand.Slug == "" {
		brand.Slug = slug.Make(req.Name)
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}
	brand.Stamp(actor.ID)

	if err := s.db.Create(brand).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewFieldError("slug", "brand with this slug already exists.")
		}
		return nil, err
	}

	return s.GetBySlug(brand.Slug)
}

func (s *BrandService) Update(actor permissions.Actor, slugStr string, req *UpdateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	brand, err := s.GetBySlug(slugStr)
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

	if err := s.db.Model(brand).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(slugStr)
}

// Destroy deactivates the brand; the row stays retrievable by slug.
func (s *BrandService) Destroy(actor permissions.Actor, slugStr string) error {
	brand, err := s.GetBySlug(slugStr)
	if err != nil {
		return err
	}

	return s.db.Model(brand).Updates(map[string]interface{}{
		"is_active":     false,
		"updated_by_id": actor.ID,
	}).Error
}
