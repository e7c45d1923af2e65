package main

import (
	"flag"
	"log/slog"
	"os"

	"truck-assist/internal/config"
	"truck-assist/internal/handler"
	"truck-assist/internal/logger"
	"truck-assist/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	catalog := service.DefaultCatalog()
	langSvc := service.NewLanguageService(catalog)
	composer := service.NewPromptComposer(catalog)
	gemini := service.NewGeminiService(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model)

	chatH := handler.NewChatHandler(gemini, langSvc, composer)
	utilsH := handler.NewUtilsHandler(catalog)

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r, chatH, utilsH, catalog.SupportedLanguages())

	slog.Info("server starting", "addr", cfg.Addr(), "model", cfg.Gemini.Model)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
