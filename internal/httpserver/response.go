package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rakumane/internal/domain"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps the domain sentinels onto HTTP statuses. Anything
// a service has not tagged as a caller mistake is treated as an internal
// failure, without leaking its message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrBadTransition):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalid):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
