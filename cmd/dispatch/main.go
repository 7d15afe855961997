package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kurirmed/dispatch/internal/pkg/config"
	"github.com/kurirmed/dispatch/internal/pkg/database"
	"github.com/kurirmed/dispatch/internal/pkg/health"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/middleware"
	natspkg "github.com/kurirmed/dispatch/internal/pkg/nats"
	nrpkg "github.com/kurirmed/dispatch/internal/pkg/newrelic"
	"github.com/kurirmed/dispatch/internal/pkg/server"
	wspkg "github.com/kurirmed/dispatch/internal/pkg/websocket"
	dashboardNats "github.com/kurirmed/dispatch/services/dashboard/handler/nats"
	dashboardWS "github.com/kurirmed/dispatch/services/dashboard/handler/websocket"
	dispatchHTTP "github.com/kurirmed/dispatch/services/dispatch/handler/http"
	dispatchRepo "github.com/kurirmed/dispatch/services/dispatch/repository"
	dispatchUC "github.com/kurirmed/dispatch/services/dispatch/usecase"
	locationHTTP "github.com/kurirmed/dispatch/services/location/handler/http"
	locationRepo "github.com/kurirmed/dispatch/services/location/repository"
	locationUC "github.com/kurirmed/dispatch/services/location/usecase"
	ordersGW "github.com/kurirmed/dispatch/services/orders/gateway"
	ordersHTTP "github.com/kurirmed/dispatch/services/orders/handler/http"
	ordersRepo "github.com/kurirmed/dispatch/services/orders/repository"
	ordersUC "github.com/kurirmed/dispatch/services/orders/usecase"
	syncHTTP "github.com/kurirmed/dispatch/services/sync/handler/http"
	syncRepo "github.com/kurirmed/dispatch/services/sync/repository"
	syncUC "github.com/kurirmed/dispatch/services/sync/usecase"

	dispatchGWpkg "github.com/kurirmed/dispatch/services/dispatch/gateway"
	locationGWpkg "github.com/kurirmed/dispatch/services/location/gateway"

	"github.com/labstack/echo/v4"
)

func main() {
	appName := "dispatch-coordinator"
	configs := config.InitConfig(os.Getenv("DISPATCH_CONFIG_PATH"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	db := postgresClient.GetDB()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Repositories
	orderRepository := ordersRepo.NewOrderRepository(configs, db)
	driverRepository := dispatchRepo.NewDriverRepository(configs, db)
	locationRepository := locationRepo.NewLocationRepository(configs, redisClient, db)
	syncRepository := syncRepo.NewSyncRepository(configs, db)

	// Gateways
	orderGW := ordersGW.NewOrderGW(natsClient)
	dispatchGW := dispatchGWpkg.NewDispatchGW(natsClient)
	locationGW := locationGWpkg.NewLocationGW(natsClient)

	// Use cases. Dispatch and sync route every state change through the
	// order use case so the lifecycle graph and version checks apply to
	// all writers.
	orderUseCase := ordersUC.NewOrderUC(configs, orderRepository, orderGW)
	dispatchUseCase := dispatchUC.NewDispatchUC(configs, orderUseCase, driverRepository, dispatchGW)
	locationUseCase := locationUC.NewLocationUC(configs, locationRepository, locationGW)
	syncUseCase := syncUC.NewSyncUC(configs, orderUseCase, syncRepository)

	// Dashboard fan-out
	hub := wspkg.NewHub(configs.Broadcast.ObserverBufferSize)
	consumerHandler := dashboardNats.NewHandler(hub, natsClient)
	if err := consumerHandler.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	observerHandler := dashboardWS.NewHandler(configs, hub)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.TxnMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	observerHandler.RegisterRoutes(e)

	api := e.Group("/v1")
	api.Use(middleware.ValidateAPIKey(configs.APIKey.DispatchAPIKey))
	ordersHTTP.NewOrderHandler(orderUseCase).RegisterRoutes(api)
	dispatchHTTP.NewDispatchHandler(dispatchUseCase).RegisterRoutes(api)
	locationHTTP.NewLocationHandler(locationUseCase).RegisterRoutes(api)
	syncHTTP.NewSyncHandler(syncUseCase).RegisterRoutes(api)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(ctx context.Context) error {
		consumerHandler.Close()
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
