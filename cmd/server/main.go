package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"simplified/internal/ai"
	"simplified/internal/api"
	"simplified/internal/config"
	"simplified/internal/lecture"
	"simplified/internal/logger"
	"simplified/internal/store"
	"simplified/internal/stt"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	lectureStore, err := store.NewGormStore(cfg.DatabaseURL, cfg.SQLitePath, zlog)
	if err != nil {
		zlog.Fatal("failed to open lecture store", "error", err)
	}

	generator, err := ai.New(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to create generation provider", "error", err)
	}

	transcriber := stt.NewAssemblyAIClient(cfg.AssemblyAIKey, cfg.AssemblyAIBaseURL, cfg.PollInterval, cfg.MaxPolls, zlog)
	lectures := lecture.NewService(lectureStore, generator, cfg.GenTimeout, zlog)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	api.NewAPI(lectureStore, lectures, transcriber, activeModel(cfg), zlog).RegisterRoutes(r)

	zlog.Info("simplified backend running", "port", cfg.Port, "provider", generator.Name())
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", "error", err)
	}
}

func activeModel(cfg *config.Config) string {
	if cfg.GenerationProvider == "openai" {
		return cfg.OpenAIModel
	}
	return cfg.GeminiModel
}
