// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item in the store. The owner is fixed at creation
// and never reassigned; its brand is protected against deletion while the
// category reference is cleared if the category goes away.
type Product struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:false"`

	BrandID    uuid.UUID  `json:"brand_id" gorm:"type:uuid;not null;index"`
	Brand      *Brand     `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	CategoryID *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	Category   *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`

	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Owner   *User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`

	ProductLines []ProductLine  `json:"product_lines,omitempty" gorm:"foreignKey:ProductID"`
	Images       []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`

	AuditFields
}

// ProductLine tracks a purchasable variant of a product and its stock.
type ProductLine struct {
	BaseModel
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Sku           string          `json:"sku" gorm:"uniqueIndex;size:100;not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:1"`
	IsActive      bool            `json:"is_active" gorm:"not null;default:false"`

	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	Attributes []ProductAttribute `json:"attributes,omitempty" gorm:"foreignKey:ProductLineID"`

	AuditFields
}

func (ProductLine) TableName() string {
	return "product_lines"
}

// GetOwnerID derives the owner from the parent product. The Product
// association must be loaded.
func (pl *ProductLine) GetOwnerID() uuid.UUID {
	if pl.Product == nil {
		return uuid.Nil
	}
	return pl.Product.OwnerID
}

// ProductImage stores a reference to an uploaded image in the blob store.
// Unlike the rest of the catalog it has no active flag: destroy removes the
// row and the blob.
type ProductImage struct {
	BaseModel
	Image    string `json:"image" gorm:"size:512;not null"`
	ImageKey string `json:"-" gorm:"size:512"`
	AltText  string `json:"alt_text" gorm:"size:100"`

	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	AuditFields
}

func (pi *ProductImage) GetOwnerID() uuid.UUID {
	if pi.Product == nil {
		return uuid.Nil
	}
	return pi.Product.OwnerID
}

// ProductAttribute binds a product line to an attribute with a free-text
// value. The attribute reference is restricted: an attribute row cannot be
// removed while product lines still use it.
type ProductAttribute struct {
	BaseModel
	Value string `json:"value" gorm:"size:100;not null"`

	ProductLineID uuid.UUID    `json:"product_line_id" gorm:"type:uuid;not null;index"`
	ProductLine   *ProductLine `json:"-" gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE"`
	AttributeID   uuid.UUID    `json:"attribute_id" gorm:"type:uuid;not null;index"`
	Attribute     *Attribute   `json:"attribute,omitempty" gorm:"foreignKey:AttributeID;constraint:OnDelete:RESTRICT"`

	AuditFields
}
