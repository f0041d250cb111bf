// internal/services/attribute_service.go
package services

import (
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type AttributeService struct {
	db *gorm.DB
}

func NewAttributeService(db *gorm.DB) *AttributeService {
	return &AttributeService{db: db}
}

type CreateAttributeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100,slug"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateAttributeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (s *AttributeService) List(params utils.PaginationParams) ([]models.Attribute, int64, error) {
	query := s.db.Model(&models.Attribute{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attributes []models.Attribute
	if err := utils.ApplyPagination(query, params).
		Order("name").
		Find(&attributes).Error; err != nil {
		return nil, 0, err
	}

	return attributes, total, nil
}

func (s *AttributeService) GetBySlug(slugStr string) (*models.Attribute, error) {
	var attribute models.Attribute
	if err := s.db.Preload("CreatedBy").Preload("UpdatedBy").
		Where("slug = ?", slugStr).First(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &attribute, nil
}

func (s *AttributeService) Create(actor permissions.Actor, req *CreateAttributeRequest) (*models.Attribute, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	attribute := &models.Attribute{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if attribute.Slug == "" {
		attribute.Slug = slug.Make(req.Name)
	}
	if req.IsActive != nil {
		attribute.IsActive = *req.IsActive
	}
	attribute.Stamp(actor.ID)

	if err := s.db.Create(attribute).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewFieldError("slug", "attribute with this slug already exists.")
		}
		return nil, err
	}

	return s.GetBySlug(attribute.Slug)
}

func (s *AttributeService) Update(actor permissions.Actor, slugStr string, req *UpdateAttributeRequest) (*models.Attribute, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	attribute, err := s.GetBySlug(slugStr)
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

	if err := s.db.Model(attribute).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(slugStr)
}

func (s *AttributeService) Destroy(actor permissions.Actor, slugStr string) error {
	attribute, err := s.GetBySlug(slugStr)
	if err != nil {
		return err
	}

	return s.db.Model(attribute).Updates(map[string]interface{}{
		"is_active":     false,
		"updated_by_id": actor.ID,
	}).Error
}
