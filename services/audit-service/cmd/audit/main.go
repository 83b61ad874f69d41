package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/config"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/mq"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/obs"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/audit-service/internal/worker"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger("audit-service", cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	shutdown := obs.InitTracer("audit-service")
	defer shutdown(context.Background())

	var consumer *mq.Consumer
	for {
		consumer, err = mq.NewConsumer(cfg.RabbitURL, "audit.q",
			[]string{cfg.EmployeeExchange, cfg.DepartmentExchange}, []string{"#"}, 16)
		if err == nil {
			break
		}
		logger.Warn("rabbitmq connect failed, retrying", zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	auditor := worker.NewAuditor(consumer, logger)
	go func() {
		if err := auditor.Run(ctx); err != nil {
			logger.Error("auditor stopped", zap.Error(err))
		}
	}()

	logger.Info("audit-service started",
		zap.Strings("exchanges", []string{cfg.EmployeeExchange, cfg.DepartmentExchange}))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}
