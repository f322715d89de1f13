package handlers

import (
	"net/http"

	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"validation error: name - is required"`
	Kind  string `json:"kind" example:"validation"`
	Field string `json:"field,omitempty" example:"name"`
}

func statusFor(kind string) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders err with the status of its kind.
// Internal errors are logged and their message is not exposed.
func respondError(c *gin.Context, err error) {
	kind := apperrors.Kind(err)
	status := statusFor(kind)

	resp := ErrorResponse{Error: err.Error(), Kind: kind, Field: apperrors.FieldOf(err)}
	switch status {
	case http.StatusInternalServerError:
		logger.WithContext(c).WithError(err).Error("request failed")
		resp.Error = "Internal server error"
	case http.StatusServiceUnavailable:
		logger.WithContext(c).WithError(err).Warn("storage unavailable")
		resp.Error = "Storage unavailable"
	}

	c.AbortWithStatusJSON(status, resp)
}
