// internal/utils/validator_test.go
package utils

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugValidation(t *testing.T) {
	type payload struct {
		Slug string `validate:"omitempty,slug"`
	}

	for _, valid := range []string{"", "shoes", "air-max-90", "a1-b2"} {
		assert.NoError(t, ValidateStruct(&payload{Slug: valid}), valid)
	}
	for _, invalid := range []string{"Air Max", "UPPER", "trailing-", "-leading", "under_score"} {
		assert.Error(t, ValidateStruct(&payload{Slug: invalid}), invalid)
	}
}

func TestValidationErrorsUseSnakeCaseFields(t *testing.T) {
	type payload struct {
		FirstName string `validate:"required"`
		Email     string `validate:"omitempty,email"`
	}

	err := ValidateStruct(&payload{Email: "not-an-email"})
	require.Error(t, err)

	fieldErrs := GetValidationErrors(err)
	require.Len(t, fieldErrs, 2)

	byField := map[string]string{}
	for _, fe := range fieldErrs {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "This field is required.", byField["first_name"])
	assert.Equal(t, "Enter a valid email address.", byField["email"])
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_brands_slug" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: brands.slug")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestPaginationParamsClamped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=0&page_size=500", nil)
	params := GetPaginationParams(c)
	assert.Equal(t, 1, params.Page)
	// Out-of-range sizes fall back to the default.
	assert.Equal(t, 20, params.PageSize)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	params = GetPaginationParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
}
