package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sportmart.client/internal/config"
	"sportmart.client/internal/stub"
	"sportmart.client/pkg/jwt"
	"sportmart.client/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	store := stub.NewStore(jwtService)
	router := stub.Router(store)

	logger.Info(context.Background(), "Stub marketplace API listening", zap.String("port", cfg.Server.Port))
	if err := runServer(router, cfg.Server.Port); err != nil {
		logger.Error(context.Background(), "Server stopped", zap.Error(err))
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
