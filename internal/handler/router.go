package handler

import (
	"truck-assist/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the chat, utility and metrics endpoints. One fixed
// route per supported language, plus the auto-detecting route at /chat/.
func RegisterRoutes(r *gin.Engine, chat *ChatHandler, utils *UtilsHandler, languages []string) {
	r.Use(middleware.RequestID())

	grp := r.Group("/chat")
	grp.POST("/", chat.ChatAuto)
	for _, code := range languages {
		grp.POST("/"+code, chat.ChatFixed(code))
	}

	r.GET("/health", utils.Health)
	r.GET("/languages", utils.Languages)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
