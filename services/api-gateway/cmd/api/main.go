package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/auth"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/config"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/obs"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/api-gateway/internal/middlewares"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/api-gateway/internal/proxy"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger("api-gateway", cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	shutdown := obs.InitTracer("api-gateway")
	defer shutdown(context.Background())

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	authFwd, err := proxy.New(cfg.AuthServiceURL, logger)
	if err != nil {
		logger.Fatal("auth proxy", zap.Error(err))
	}
	empFwd, err := proxy.New(cfg.EmployeeURL, logger)
	if err != nil {
		logger.Fatal("employee proxy", zap.Error(err))
	}

	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes := proxy.NewRouter().
		Route("/auth", authFwd).
		Route("/employees", empFwd).
		Route("/departments", empFwd)

	// Login, registration and the auth health check stay reachable
	// without a token; everything else under /api requires one.
	api := r.Group("/api", middlewares.Authentication(tokens, logger, "/api/auth/"))
	api.Any("/*path", routes.Dispatch)

	logger.Info("api-gateway listening", zap.String("addr", cfg.GatewayHTTPAddr))
	if err := r.Run(cfg.GatewayHTTPAddr); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
