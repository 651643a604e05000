package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/config"
	"github.com/fekuna/omnipos-restaurant-service/pkg/broker"
	"github.com/fekuna/omnipos-restaurant-service/pkg/cache"
	"github.com/fekuna/omnipos-restaurant-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-restaurant-service/pkg/httpx"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"

	invH "github.com/fekuna/omnipos-restaurant-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/inventory/repository"

	"github.com/fekuna/omnipos-restaurant-service/internal/order/events"
	orderH "github.com/fekuna/omnipos-restaurant-service/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/order/usecase"

	menuH "github.com/fekuna/omnipos-restaurant-service/internal/menu/handler"
	menuRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/menu/repository"
	menuUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/menu/usecase"

	tableH "github.com/fekuna/omnipos-restaurant-service/internal/table/handler"
	tableRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/table/repository"
	tableUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/table/usecase"

	userH "github.com/fekuna/omnipos-restaurant-service/internal/user/handler"
	userRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/user/repository"
	userUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
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
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	orderRepo := orderRepoPkg.NewPGRepository(db)
	menuRepo := menuRepoPkg.NewPGRepository(db)
	tableRepo := tableRepoPkg.NewPGRepository(db)
	userRepo := userRepoPkg.NewPGRepository(db)
	invLedger := invRepoPkg.NewPGLedger(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (menu caching disabled)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5.5 Initialize Kafka Producer
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer kafkaProducer.Close()
	appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	orderPublisher := events.NewKafkaPublisher(kafkaProducer)

	// 6. Initialize UseCases
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, orderPublisher, appLogger)
	menuUC := menuUCPkg.NewMenuUseCase(menuRepo, redisClient, appLogger)
	tableUC := tableUCPkg.NewTableUseCase(tableRepo, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, appLogger)

	// 7. Initialize Handlers
	orderHandler := orderH.NewOrderHandler(orderUC, appLogger)
	menuHandler := menuH.NewMenuHandler(menuUC, appLogger)
	tableHandler := tableH.NewTableHandler(tableUC, appLogger)
	userHandler := userH.NewUserHandler(userUC, appLogger)
	invHandler := invH.NewInventoryHandler(invLedger, appLogger)

	// 8. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, "ok")
	})

	r.Mount("/api/orders", orderHandler.Routes())
	r.Mount("/api/items", menuHandler.Routes())
	r.Mount("/api/tables", tableHandler.Routes())
	r.Mount("/api/users", userHandler.Routes())
	r.Mount("/api/inventory", invHandler.Routes())

	// 9. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
