package http

import (
	"errors"
	"net/http"

	"friendboard/internal/entity"

	"github.com/gin-gonic/gin"
)

// statusFromError maps the domain error taxonomy to HTTP status codes.
// NotFound strictly means store emptiness; Unauthorized means the entity
// exists but the viewer may not see or own it.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
