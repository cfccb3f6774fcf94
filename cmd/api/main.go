package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipewreck/backend/config"
	"github.com/recipewreck/backend/internal/api"
	"github.com/recipewreck/backend/internal/database"
	"github.com/recipewreck/backend/internal/logger"
	"github.com/recipewreck/backend/internal/middleware"
	"github.com/recipewreck/backend/internal/router"
	"github.com/recipewreck/backend/internal/server"
	"github.com/recipewreck/backend/internal/service"
	"github.com/recipewreck/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	mongoDB, err := database.NewMongoDatabase(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	llmService, err := service.NewLLMService(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create LLM service", zap.Error(err))
	}
	imageService, err := service.NewImageService(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create image service", zap.Error(err))
	}

	roleStore := store.NewMongoRoleStore(mongoDB, zapLogger)
	wreckService := service.NewWreckService(llmService, imageService, zapLogger)
	roleService := service.NewRoleService(roleStore, llmService, cfg.SessionTag, zapLogger)

	wreckHandler := api.NewWreckHandler(wreckService, zapLogger)
	roleHandler := api.NewRoleHandler(roleService, zapLogger)
	limiter := middleware.NewGenerationRateLimiter(redisClient)

	engine := router.SetupRouter(wreckHandler, roleHandler, limiter)
	srv := server.New(cfg, engine, zapLogger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zapLogger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		zapLogger.Info("Received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server shutdown error", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}
