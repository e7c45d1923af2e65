package handler

import (
	"net/http"
	"time"

	"truck-assist/internal/model"
	"truck-assist/internal/service"

	"github.com/gin-gonic/gin"
)

// UtilsHandler serves the static health and language-listing endpoints.
type UtilsHandler struct {
	catalog *service.Catalog
}

func NewUtilsHandler(catalog *service.Catalog) *UtilsHandler {
	return &UtilsHandler{catalog: catalog}
}

func (h *UtilsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (h *UtilsHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, model.LanguagesResponse{
		SupportedLanguages: h.catalog.SupportedLanguages(),
		DefaultLanguage:    h.catalog.DefaultLanguage(),
	})
}
