package handler

import (
	"net/http"

	"truck-assist/internal/logger"
	"truck-assist/internal/middleware"
	"truck-assist/internal/model"
	"truck-assist/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the per-language chat endpoints and the auto-detecting
// variant. All collaborators are injected at construction.
type ChatHandler struct {
	gen      service.Generator
	lang     *service.LanguageService
	composer *service.PromptComposer
}

func NewChatHandler(gen service.Generator, lang *service.LanguageService, composer *service.PromptComposer) *ChatHandler {
	return &ChatHandler{gen: gen, lang: lang, composer: composer}
}

// ChatAuto resolves the language from context.language. Absent or
// unrecognized values fall back to the default language.
func (h *ChatHandler) ChatAuto(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	raw := ""
	if req.Context != nil {
		raw = req.Context.Language
	}
	h.respond(c, req, h.lang.Normalize(raw))
}

// ChatFixed returns a handler bound to one supported language. Any language
// field in the request context is ignored on these routes.
func (h *ChatHandler) ChatFixed(language string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.respond(c, req, language)
	}
}

func (h *ChatHandler) respond(c *gin.Context, req model.ChatRequest, language string) {
	prompt := h.composer.Compose(language, req.Context)

	text, err := h.gen.Generate(c.Request.Context(), prompt, req.Message, language, req.UserID)
	if err != nil {
		c.JSON(translateError(c, req.UserID, err))
		return
	}

	logger.Info("chat",
		"endpoint", c.FullPath(),
		"user_id", req.UserID,
		"language", language,
		"request_id", middleware.FromContext(c))
	c.JSON(http.StatusOK, model.NewChatResponse(text, language, req.UserID))
}
