package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/config"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/db"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/mq"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/obs"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/events"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/repository"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/service"
	thttp "github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/transport/http"

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

	logger, err := obs.NewLogger("employee-service", cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	shutdown := obs.InitTracer("employee-service")
	defer shutdown(context.Background())

	gdb, err := db.Open(cfg.PGEmployeeDSN)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}

	empRepo := repository.NewEmployeeRepo(gdb)
	if err := empRepo.Migrate(); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	deptRepo := repository.NewDepartmentRepo(gdb)

	pub, err := mq.NewPublisher(cfg.RabbitURL, cfg.EmployeeExchange, cfg.DepartmentExchange)
	if err != nil {
		logger.Fatal("connect rabbitmq", zap.Error(err))
	}
	defer pub.Close()

	emitter := events.NewEmitter(pub, logger, cfg.EmployeeExchange, cfg.DepartmentExchange, cfg.EventBuffer)
	defer emitter.Close()

	empSvc := service.NewEmployeeSvc(empRepo, deptRepo, emitter)
	deptSvc := service.NewDepartmentSvc(deptRepo, emitter)

	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	thttp.NewEmployeeHandler(empSvc, logger).Routes(r)
	thttp.NewDepartmentHandler(deptSvc, logger).Routes(r)

	logger.Info("employee-service listening", zap.String("addr", cfg.EmployeeHTTPAddr))
	if err := r.Run(cfg.EmployeeHTTPAddr); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
