// internal/services/product_line_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/database"
	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type ProductLineService struct {
	db *gorm.DB
}

func NewProductLineService(db *gorm.DB) *ProductLineService {
	return &ProductLineService{db: db}
}

type ProductAttributeInput struct {
	Attribute uuid.UUID `json:"attribute" validate:"required"`
	Value     string    `json:"value" validate:"required,max=100"`
}

type CreateProductLineRequest struct {
	Price         *decimal.Decimal        `json:"price" validate:"required"`
	Sku           string                  `json:"sku" validate:"required,max=100"`
	StockQuantity *int                    `json:"stock_quantity"`
	IsActive      *bool                   `json:"is_active"`
	Product       uuid.UUID               `json:"product" validate:"required"`
	Attributes    []ProductAttributeInput `json:"attributes" validate:"omitempty,dive"`
}

// UpdateProductLineRequest carries no sku and no product reference: both are
// immutable after creation and silently dropped from update payloads.
type UpdateProductLineRequest struct {
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	IsActive      *bool            `json:"is_active"`
}

func (s *ProductLineService) List(params utils.PaginationParams) ([]models.ProductLine, int64, error) {
	query := s.db.Model(&models.ProductLine{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var lines []models.ProductLine
	if err := utils.ApplyPagination(query, params).
		Order("sku").
		Find(&lines).Error; err != nil {
		return nil, 0, err
	}

	return lines, total, nil
}

func (s *ProductLineService) GetBySku(sku string) (*models.ProductLine, error) {
	var line models.ProductLine
	if err := s.db.
		Preload("Product").Preload("Product.Brand").Preload("Product.Category").
		Preload("Attributes").Preload("Attributes.Attribute").
		Preload("CreatedBy").Preload("UpdatedBy").
		Where("sku = ?", sku).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

func (s *ProductLineService) Create(actor permissions.Actor, req *CreateProductLineRequest) (*models.ProductLine, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}
	if req.Price.IsNegative() {
		return nil, utils.NewFieldError("price", "Price cannot be negative.")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return nil, utils.NewFieldError("stock_quantity", "Stock quantity cannot be negative.")
	}

	product, err := s.ownedProduct(actor, req.Product)
	if err != nil {
		return nil, err
	}

	line := &models.ProductLine{
		Price:         req.Price.Round(2),
		Sku:           req.Sku,
		StockQuantity: 1,
		ProductID:     product.ID,
	}
	if req.StockQuantity != nil {
		line.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		line.IsActive = *req.IsActive
	}
	line.Stamp(actor.ID)

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(line).Error; err != nil {
			return err
		}
		for _, input := range req.Attributes {
			var attribute models.Attribute
			if err := tx.First(&attribute, "id = ?", input.Attribute).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewFieldError("attributes", "Attribute not found.")
				}
				return err
			}
			pa := &models.ProductAttribute{
				Value:         input.Value,
				ProductLineID: line.ID,
				AttributeID:   attribute.ID,
			}
			pa.Stamp(actor.ID)
			if err := tx.Create(pa).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewFieldError("sku", "product line with this sku already exists.")
		}
		return nil, err
	}

	return s.GetBySku(line.Sku)
}

func (s *ProductLineService) Update(actor permissions.Actor, sku string, req *UpdateProductLineRequest) (*models.ProductLine, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, utils.NewFieldError("price", "Price cannot be negative.")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return nil, utils.NewFieldError("stock_quantity", "Stock quantity cannot be negative.")
	}

	line, err := s.GetBySku(sku)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by_id": actor.ID}
	if req.Price != nil {
		updates["price"] = req.Price.Round(2)
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(line).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBySku(sku)
}

func (s *ProductLineService) Destroy(actor permissions.Actor, sku string) error {
	line, err := s.GetBySku(sku)
	if err != nil {
		return err
	}

	return s.db.Model(line).Updates(map[string]interface{}{
		"is_active":     false,
		"updated_by_id": actor.ID,
	}).Error
}

// ownedProduct loads the referenced product and enforces that the caller
// owns it. Administrators may attach lines and images to any product.
func (s *ProductLineService) ownedProduct(actor permissions.Actor, productID uuid.UUID) (*models.Product, error) {
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
