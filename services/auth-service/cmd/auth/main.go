package main

import (
	"context"
	"log"
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/auth"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/config"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/db"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/obs"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/auth-service/internal/repository"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/auth-service/internal/service"
	thttp "github.com/Kennedy87670/Microservcies-Employee-management-system/services/auth-service/internal/transport/http"

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

	logger, err := obs.NewLogger("auth-service", cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	shutdown := obs.InitTracer("auth-service")
	defer shutdown(context.Background())

	gdb, err := db.Open(cfg.PGAuthDSN)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}

	repo := repository.NewUserRepo(gdb)
	if err := repo.Migrate(); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	svc := service.NewAuthSvc(repo, tokens)

	r := gin.Default()
	thttp.NewHandler(svc, logger).Routes(r)

	logger.Info("auth-service listening", zap.String("addr", cfg.AuthHTTPAddr))
	if err := r.Run(cfg.AuthHTTPAddr); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
