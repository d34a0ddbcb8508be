package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/config"
	"github.com/zenlog/internal/handler"
	"github.com/zenlog/internal/router"
	"github.com/zenlog/internal/service"
	"github.com/zenlog/internal/store"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化存储并写入种子数据
	kv, err := store.OpenSQLiteKV(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	contentStore := store.NewContentStore(kv)
	if err := contentStore.EnsureSeed(); err != nil {
		log.Fatalf("failed to seed content: %v", err)
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set; AI assist will fall back to deterministic defaults")
	}
	assist := service.NewAIAssistService(cfg.GeminiAPIKey, cfg.GeminiBaseURL)

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(contentStore, assist)
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
