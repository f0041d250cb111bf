// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

const actorKey = "actor"

// AuthRequired resolves the Bearer token into an Actor. There is no
// anonymous path: requests without a valid token are rejected with 403,
// reads included.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Set(actorKey, permissions.Actor{
			ID:            userID,
			Username:      claims.Username,
			IsStaff:       claims.IsStaff,
			IsSuperuser:   claims.IsSuperuser,
			Authenticated: true,
		})

		c.Next()
	}
}

// ActorFrom returns the authenticated actor for the request, or the zero
// (unauthenticated) actor when AuthRequired did not run.
func ActorFrom(c *gin.Context) permissions.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(permissions.Actor); ok {
			return actor
		}
	}
	return permissions.Actor{}
}
