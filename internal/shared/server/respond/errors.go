package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/shared/telemetry"
)

// ErrorBody is the standardized error object returned to clients.
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message, detail string) {
	write(c, status, ErrorBody{Message: message, Detail: detail})
}

// Validation sends a 400 naming the first offending field.
func Validation(c *gin.Context, field, message string) {
	write(c, http.StatusBadRequest, ErrorBody{Message: message, Field: field})
}

// FromValidation maps a contract rule failure to a 400 naming the field.
func FromValidation(c *gin.Context, err error) {
	var fe *contract.FieldError
	if errors.As(err, &fe) {
		Validation(c, fe.Field, fe.Message)
		return
	}
	Validation(c, "", err.Error())
}

// NotFound sends a 404 with the given message.
func NotFound(c *gin.Context, message string) {
	write(c, http.StatusNotFound, ErrorBody{Message: message})
}

// Unauthorized sends a 401 with the given message.
func Unauthorized(c *gin.Context, message string) {
	write(c, http.StatusUnauthorized, ErrorBody{Message: message})
}

func write(c *gin.Context, status int, body ErrorBody) {
	fields := map[string]any{
		"status":     status,
		"message":    body.Message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if body.Field != "" {
		fields["field"] = body.Field
	}
	if body.Detail != "" {
		fields["detail"] = body.Detail
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, body)
}
