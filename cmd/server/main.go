package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/config"

	apptH "github.com/barberdesk/core-service/internal/appointment/handler"
	apptRepoPkg "github.com/barberdesk/core-service/internal/appointment/repository"
	apptUCPkg "github.com/barberdesk/core-service/internal/appointment/usecase"

	dashH "github.com/barberdesk/core-service/internal/dashboard/handler"
	dashUCPkg "github.com/barberdesk/core-service/internal/dashboard/usecase"

	invH "github.com/barberdesk/core-service/internal/inventory/handler"
	invListenerPkg "github.com/barberdesk/core-service/internal/inventory/listener"
	invRepoPkg "github.com/barberdesk/core-service/internal/inventory/repository"
	invUCPkg "github.com/barberdesk/core-service/internal/inventory/usecase"

	"github.com/barberdesk/core-service/internal/appointment"
	"github.com/barberdesk/core-service/internal/inventory"
	"github.com/barberdesk/core-service/internal/pkg/database"
	"github.com/barberdesk/core-service/internal/pkg/locker"
	"github.com/barberdesk/core-service/internal/pkg/logger"
)

func main() {
	// 1. Load configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize logger
	logCfg := &logger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv != "dev" {
		logCfg.Encoding = "json"
		logCfg.Level = "info"
	}
	appLogger, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Initialize repositories and the per-entity locker
	var (
		apptRepo appointment.Repository
		invRepo  inventory.Repository
		locks    locker.Locker
	)

	switch cfg.Storage.Driver {
	case "memory":
		apptRepo = apptRepoPkg.NewMemoryRepository()
		invRepo = invRepoPkg.NewMemoryRepository()
		locks = locker.NewInProcess()
		appLogger.Info("using in-memory storage")
	default:
		db, err := database.NewPostgres(&database.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("connected to PostgreSQL", zap.String("db_name", cfg.Postgres.DBName))

		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			appLogger.Fatal("could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))

		apptRepo = apptRepoPkg.NewPGRepository(db)
		invRepo = invRepoPkg.NewPGRepository(db)
		locks = locker.NewRedis(redisClient, time.Duration(cfg.Redis.LockTTLSec)*time.Second)
	}

	// 4. Initialize usecases
	apptUC := apptUCPkg.NewAppointmentUseCase(apptRepo, locks, appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(apptRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, locks, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. Start the sale-event listener
	if cfg.Kafka.Enabled {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer reader.Close()
		appLogger.Info("connected to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)

		saleListener := invListenerPkg.NewSaleListener(reader, invUC, appLogger)
		go saleListener.Start(ctx)
	}

	// 6. Initialize handlers and routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	apptH.NewAppointmentHandler(apptUC, appLogger).Register(e)
	dashH.NewDashboardHandler(dashUC, time.Now, appLogger).Register(e)
	invH.NewInventoryHandler(invUC, appLogger).Register(e)

	// 7. Start HTTP server with graceful shutdown
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	go func() {
		if err := e.Start(port); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()
	appLogger.Info("HTTP server started", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
