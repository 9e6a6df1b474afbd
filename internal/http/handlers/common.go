package handlers

import (
	"net/http"

	"kts-backend/internal/domain"
	"kts-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps typed domain errors onto HTTP status codes. Store
// failures stay opaque to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsInternal(err):
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

// BindJSONOrError binds the request body into dst, answering 400 on failure.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid payload: "+err.Error())
		return false
	}
	return true
}
