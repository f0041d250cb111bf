// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string `json:"name" gorm:"size:255"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	IsStaff      bool   `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser  bool   `json:"is_superuser" gorm:"not null;default:false"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
