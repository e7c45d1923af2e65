package handler

import (
	"errors"
	"net/http"

	"truck-assist/internal/logger"
	"truck-assist/internal/middleware"
	"truck-assist/internal/service"

	"github.com/gin-gonic/gin"
)

// translateError maps service failures onto the client-facing error bodies.
// The raw error goes to the server log with the endpoint and user id; the
// generic case never exposes upstream text to the client.
func translateError(c *gin.Context, userID string, err error) (int, gin.H) {
	logger.Error("request failed",
		"endpoint", c.FullPath(),
		"user_id", userID,
		"request_id", middleware.FromContext(c),
		"err", err)

	var svcErr *service.ChatServiceError
	if errors.As(err, &svcErr) {
		details := svcErr.Details
		if details == nil {
			details = map[string]any{}
		}
		return http.StatusInternalServerError, gin.H{
			"message": svcErr.Message,
			"details": details,
			"type":    "chat_service_error",
		}
	}

	var langErr *service.LanguageNotSupportedError
	if errors.As(err, &langErr) {
		return http.StatusBadRequest, gin.H{
			"message": langErr.Error(),
			"type":    "language_not_supported",
		}
	}

	return http.StatusInternalServerError, gin.H{
		"message": "An unexpected error occurred",
		"type":    "internal_server_error",
	}
}
