// internal/models/catalog.go
package models

// Brand represents a product brand. Writes are admin-gated; rows are
// deactivated rather than deleted.
type Brand struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:false"`

	AuditFields
}

// Attribute represents a product attribute definition, like color or size.
// Concrete values are attached to product lines through ProductAttribute.
type Attribute struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:false"`

	AuditFields
}
