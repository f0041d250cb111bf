// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vrcadore/ecommerce-backend/internal/config"
	"github.com/vrcadore/ecommerce-backend/internal/database"
	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

type APITestSuite struct {
	suite.Suite

	db     *gorm.DB
	engine *gin.Engine

	adminToken string
	aliceToken string
	bobToken   string
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(db))
	s.Require().NoError(database.SeedInitialData(db))
	s.db = db

	cfg := &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{Port: "8080"},
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 1,
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	engine, err := Setup(db, cfg)
	s.Require().NoError(err)
	s.engine = engine

	s.adminToken = s.tokenFor("admin")
	s.aliceToken = s.tokenFor(s.createUser("alice"))
	s.bobToken = s.tokenFor(s.createUser("bob"))
}

func (s *APITestSuite) createUser(name string) string {
	user := &models.User{
		Username: name,
		Email:    name + "@example.com",
		IsActive: true,
	}
	s.Require().NoError(user.SetPassword("test-password-123"))
	s.Require().NoError(s.db.Create(user).Error)
	return name
}

func (s *APITestSuite) tokenFor(username string) string {
	var user models.User
	s.Require().NoError(s.db.Where("username = ?", username).First(&user).Error)
	token, err := utils.GenerateJWT(user.ID, user.Username, user.IsStaff, user.IsSuperuser, 1)
	s.Require().NoError(err)
	return token
}

func (s *APITestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *APITestSuite) createBrand(name string) map[string]interface{} {
	w := s.request(http.MethodPost, "/api/brands/", s.adminToken, gin.H{
		"name":      name,
		"is_active": true,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	return s.decode(w)
}

func (s *APITestSuite) createProduct(token, name, brandID string) map[string]interface{} {
	w := s.request(http.MethodPost, "/api/products/", token, gin.H{
		"name":      name,
		"is_active": true,
		"brand":     brandID,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	return s.decode(w)
}

func (s *APITestSuite) TestAnonymousGetsForbiddenEverywhere() {
	for _, path := range []string{
		"/api/products/",
		"/api/brands/",
		"/api/categories/",
		"/api/product_lines/",
	} {
		w := s.request(http.MethodGet, path, "", nil)
		s.Equal(http.StatusForbidden, w.Code, path)
		body := s.decode(w)
		s.Equal("You do not have permission to perform this action.", body["detail"])
	}
}

func (s *APITestSuite) TestHealthIsOpen() {
	w := s.request(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestRegisterAndLogin() {
	w := s.request(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "test-password-123",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "carol",
		"password": "test-password-123",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	token, _ := body["access_token"].(string)
	s.Require().NotEmpty(token)

	w = s.request(http.MethodGet, "/api/auth/me", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("carol", s.decode(w)["username"])
}

func (s *APITestSuite) TestLoginBadCredentials() {
	w := s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice",
		"password": "wrong",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	body := s.decode(w)
	s.Contains(body, "username")
}

func (s *APITestSuite) TestBrandWritesAreAdminOnly() {
	w := s.request(http.MethodPost, "/api/brands/", s.aliceToken, gin.H{"name": "Nike"})
	s.Equal(http.StatusForbidden, w.Code)

	brand := s.createBrand("Nike")
	s.Equal("nike", brand["slug"])

	// Inactive brands are listed to no one, active ones to everyone.
	w = s.request(http.MethodGet, "/api/brands/", s.aliceToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.EqualValues(1, body["count"])

	w = s.request(http.MethodDelete, "/api/brands/nike", s.aliceToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodDelete, "/api/brands/nike", s.adminToken, nil)
	s.Equal(http.StatusNoContent, w.Code)

	// Soft destroy: gone from the list, still retrievable.
	w = s.request(http.MethodGet, "/api/brands/", s.aliceToken, nil)
	s.EqualValues(0, s.decode(w)["count"])
	w = s.request(http.MethodGet, "/api/brands/nike", s.aliceToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(false, s.decode(w)["is_active"])
}

func (s *APITestSuite) TestValidationErrorShape() {
	w := s.request(http.MethodPost, "/api/brands/", s.adminToken, gin.H{})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var body map[string][]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal([]string{"This field is required."}, body["name"])
}

func (s *APITestSuite) TestCategoryWritesAreAdminOnly() {
	w := s.request(http.MethodPost, "/api/categories/", s.aliceToken, gin.H{"name": "Shoes"})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPost, "/api/categories/", s.adminToken, gin.H{
		"name":      "Shoes",
		"is_active": true,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Equal("shoes", s.decode(w)["slug"])

	w = s.request(http.MethodPost, "/api/categories/", s.adminToken, gin.H{
		"name":      "Sneakers",
		"is_active": true,
		"parent":    "shoes",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/api/categories/shoes/descendants", s.aliceToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var descendants []map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &descendants))
	s.Require().Len(descendants, 1)
	s.Equal("sneakers", descendants[0]["slug"])
}

func (s *APITestSuite) TestProductOwnershipEnforced() {
	brand := s.createBrand("Nike")
	product := s.createProduct(s.aliceToken, "Air Max", brand["id"].(string))
	s.Equal("alice", product["owner"])

	// Another user cannot touch it; the owner and the admin can.
	w := s.request(http.MethodPatch, "/api/products/air-max", s.bobToken, gin.H{"name": "Hijacked"})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPatch, "/api/products/air-max", s.aliceToken, gin.H{"name": "Air Max 90"})
	s.Require().Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("Air Max 90", body["name"])
	s.Equal("alice", body["created_by"])
	s.Equal("alice", body["updated_by"])

	w = s.request(http.MethodDelete, "/api/products/air-max", s.bobToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodDelete, "/api/products/air-max", s.adminToken, nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *APITestSuite) TestProductSlugImmutable() {
	brand := s.createBrand("Nike")
	s.createProduct(s.aliceToken, "Air Max", brand["id"].(string))

	// A slug in the update payload is dropped, not rejected.
	w := s.request(http.MethodPatch, "/api/products/air-max", s.aliceToken, gin.H{
		"slug": "hacked",
		"name": "Air Max 90",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("air-max", s.decode(w)["slug"])

	w = s.request(http.MethodGet, "/api/products/hacked", s.aliceToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Not found.", s.decode(w)["detail"])
}

func (s *APITestSuite) TestProductLineLifecycle() {
	brand := s.createBrand("Nike")
	product := s.createProduct(s.aliceToken, "Air Max", brand["id"].(string))

	// Bob cannot hang a line off Alice's product; the error names the
	// reference, not the permission.
	w := s.request(http.MethodPost, "/api/product_lines/", s.bobToken, gin.H{
		"price":   "49.90",
		"sku":     "AM-001",
		"product": product["id"],
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)
	var fieldBody map[string][]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fieldBody))
	s.Contains(fieldBody, "product")

	w = s.request(http.MethodPost, "/api/product_lines/", s.aliceToken, gin.H{
		"price":     "49.90",
		"sku":       "AM-001",
		"is_active": true,
		"product":   product["id"],
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	line := s.decode(w)
	s.Equal("49.9", line["price"])
	s.EqualValues(1, line["stock_quantity"])

	// Price updates by the owner; sku is immutable.
	w = s.request(http.MethodPatch, "/api/product_lines/AM-001", s.aliceToken, gin.H{
		"price": "59.90",
		"sku":   "HACKED",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	updated := s.decode(w)
	s.Equal("59.9", updated["price"])
	s.Equal("AM-001", updated["sku"])

	w = s.request(http.MethodPatch, "/api/product_lines/AM-001", s.bobToken, gin.H{"price": "1.00"})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APITestSuite) TestProductImageUploadAndHardDestroy() {
	brand := s.createBrand("Nike")
	product := s.createProduct(s.aliceToken, "Air Max", brand["id"].(string))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	s.Require().NoError(writer.WriteField("product", product["id"].(string)))
	s.Require().NoError(writer.WriteField("alt_text", "side view"))
	part, err := writer.CreateFormFile("image", "shoe.png")
	s.Require().NoError(err)
	// Minimal PNG header so content sniffing accepts it.
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n0000000000000000"))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/product_image/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.aliceToken)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	image := s.decode(w)
	s.Equal("side view", image["alt_text"])
	s.NotEmpty(image["image"])
	imageID := image["id"].(string)

	w = s.request(http.MethodDelete, fmt.Sprintf("/api/product_image/%s", imageID), s.aliceToken, nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	// Hard delete: the row is gone.
	w = s.request(http.MethodGet, fmt.Sprintf("/api/product_image/%s", imageID), s.aliceToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestPaginationEnvelope() {
	brand := s.createBrand("Nike")
	for _, name := range []string{"Air Max", "Air Force", "Blazer"} {
		s.createProduct(s.aliceToken, name, brand["id"].(string))
	}

	w := s.request(http.MethodGet, "/api/products/?page=1&page_size=2", s.bobToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.EqualValues(3, body["count"])
	results, ok := body["results"].([]interface{})
	s.Require().True(ok)
	s.Len(results, 2)
}
