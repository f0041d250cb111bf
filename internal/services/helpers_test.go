// internal/services/helpers_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vrcadore/ecommerce-backend/internal/database"
	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	return db
}

// newTestActor creates a user row and returns the matching actor. Admin
// actors get both staff and superuser flags.
func newTestActor(t *testing.T, db *gorm.DB, name string, admin bool) permissions.Actor {
	t.Helper()

	user := &models.User{
		Username:    name,
		Email:       name + "@example.com",
		IsStaff:     admin,
		IsSuperuser: admin,
		IsActive:    true,
	}
	require.NoError(t, user.SetPassword("test-password-123"))
	require.NoError(t, db.Create(user).Error)

	return permissions.Actor{
		ID:            user.ID,
		Username:      name,
		IsStaff:       admin,
		IsSuperuser:   admin,
		Authenticated: true,
	}
}

func boolPtr(b bool) *bool { return &b }
