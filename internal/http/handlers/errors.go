package handlers

import (
	"errors"
	"net/http"

	"tripplanner/internal/domain"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/llm"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain and generator errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case domain.IsInvalidRequest(err):
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case domain.IsMalformedDraft(err):
		respondError(c, http.StatusUnprocessableEntity, "malformed_draft", err.Error(), nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respondError(c, http.StatusServiceUnavailable, "llm_unavailable", "layanan AI belum dikonfigurasi", nil)
	case llm.IsGenerationError(err):
		respondError(c, http.StatusBadGateway, "llm_failed", "layanan AI gagal membuat itinerary", nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "terjadi kesalahan", nil)
	}
}
