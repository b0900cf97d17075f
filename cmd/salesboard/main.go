package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/salesboard/internal/pkg/config"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/health"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/middleware"
	"github.com/piresc/salesboard/internal/pkg/server"
	"github.com/piresc/salesboard/services/transactions/gateway"
	"github.com/piresc/salesboard/services/transactions/handler"
	"github.com/piresc/salesboard/services/transactions/repository"
	"github.com/piresc/salesboard/services/transactions/usecase"
)

func main() {
	appName := "salesboard"
	configPath := config.GetEnv("CONFIG_PATH", "config/salesboard.env")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize MongoDB connection
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepo(mongoClient, configs.Mongo.Collection)
	transactionCache := repository.NewTransactionCache(redisClient)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := transactionRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Warn("Failed to ensure transaction indexes", logger.Err(err))
	}
	cancel()

	// Initialize Gateway
	geoGW := gateway.NewGeoGateway(configs.Geocoding, redisClient)

	// Initialize UseCase
	transactionUC := usecase.NewTransactionUC(transactionRepo, transactionCache, geoGW, configs)

	// Initialize handlers
	httpHandler := handler.NewHTTPHandler(transactionUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewTemplateRenderer("templates/*.html")
	if err != nil {
		appLogger.Fatal("Failed to parse templates", logger.Err(err))
	}
	e.Renderer = renderer

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(echoMiddleware.Recover())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	httpHandler.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return mongoClient.Close(ctx)
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Start server and block until a shutdown signal arrives
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
