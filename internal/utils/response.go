// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Successes return the payload directly, validation failures return a
// {"field": ["message"]} map and everything else a {"detail": "..."} body.

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func BadRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": message})
}

func ForbiddenResponse(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"detail": "You do not have permission to perform this action.",
	})
}

func NotFoundResponse(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
}

func InternalErrorResponse(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
}

func ValidationErrorResponse(c *gin.Context, fieldErrors ...*FieldError) {
	body := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		body[fe.Field] = append(body[fe.Field], fe.Message)
	}
	c.JSON(http.StatusBadRequest, body)
}

// HandleServiceError translates a service-layer error into the matching
// HTTP response. Unknown errors are logged and surfaced as 500.
func HandleServiceError(c *gin.Context, err error) {
	var fieldErr *FieldError
	var fieldErrs FieldErrors

	switch {
	case errors.Is(err, ErrNotFound):
		NotFoundResponse(c)
	case errors.Is(err, ErrForbidden):
		ForbiddenResponse(c)
	case errors.As(err, &fieldErrs):
		ValidationErrorResponse(c, fieldErrs...)
	case errors.As(err, &fieldErr):
		ValidationErrorResponse(c, fieldErr)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Unhandled service error")
		InternalErrorResponse(c)
	}
}
