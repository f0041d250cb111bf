// internal/services/auth_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/config"
	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewFieldError("username", "A user with that username already exists.")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewFieldError("email", "A user with that email already exists.")
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(req *LoginRequest) (*TokenPair, *models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, nil, utils.GetValidationErrors(err)
	}

	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NewFieldError("username", "Unable to log in with provided credentials.")
		}
		return nil, nil, err
	}

	if !user.IsActive || user.CheckPassword(req.Password) != nil {
		return nil, nil, utils.NewFieldError("username", "Unable to log in with provided credentials.")
	}

	pair, err := s.issueTokens(&user)
	if err != nil {
		return nil, nil, err
	}

	return pair, &user, nil
}

// Refresh trades a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	subject, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, utils.NewFieldError("refresh_token", "Token is invalid or expired.")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, utils.NewFieldError("refresh_token", "Token is invalid or expired.")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewFieldError("refresh_token", "Token is invalid or expired.")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, utils.NewFieldError("refresh_token", "Token is invalid or expired.")
	}

	return s.issueTokens(&user)
}

func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateJWT(user.ID, user.Username, user.IsStaff, user.IsSuperuser, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
