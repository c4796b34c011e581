package respond

import (
	"github.com/gin-gonic/gin"

	"investease-gateway/internal/shared/telemetry"
)

// Error codes shared across handlers.
const (
	CodeValidation      = "validation_error"
	CodeProfileRequired = "profile_required"
	CodeNotFound        = "not_found"
	CodeUpstream        = "upstream_error"
	CodeInternal        = "internal_error"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if sessionID := c.Param("id"); sessionID != "" {
		fields["session_id"] = sessionID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FieldError is a field-scoped validation detail.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}
