// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AuditFields records which user created a row and which user last touched
// it. The references are protected: a user cannot be deleted while catalog
// rows still point at them.
type AuditFields struct {
	CreatedByID uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	CreatedBy   *User     `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT"`
	UpdatedByID uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	UpdatedBy   *User     `json:"-" gorm:"foreignKey:UpdatedByID;constraint:OnDelete:RESTRICT"`
}

// Stamp sets both audit references. Used on create.
func (a *AuditFields) Stamp(userID uuid.UUID) {
	a.CreatedByID = userID
	a.UpdatedByID = userID
}
