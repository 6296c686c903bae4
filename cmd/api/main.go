package main

import (
	"context"
	"time"

	"github.com/MRigonM/EmployeeManagement/internal/app"
	"github.com/MRigonM/EmployeeManagement/internal/bootstrap"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"
	"github.com/MRigonM/EmployeeManagement/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	validation.Init()

	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		zap.L().Fatal("JWT_SECRET is required")
	}

	application, err := app.Build(context.Background(), cfg)
	if err != nil {
		zap.L().Fatal("application startup failed", zap.Error(err))
	}
	defer application.Close()

	router := gin.New()
	router.Use(gin.Recovery())

	if err := application.Registry.MountRoutes(router); err != nil {
		zap.L().Fatal("mount routes failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         cfg.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}
