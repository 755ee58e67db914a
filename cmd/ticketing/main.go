package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/config"
	"github.com/lajubus/lajubus/internal/pkg/database"
	"github.com/lajubus/lajubus/internal/pkg/health"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/middleware"
	nsqpkg "github.com/lajubus/lajubus/internal/pkg/nsq"
	"github.com/lajubus/lajubus/internal/pkg/server"
	"github.com/lajubus/lajubus/services/ticketing/gateway"
	"github.com/lajubus/lajubus/services/ticketing/handler"
	httpHandler "github.com/lajubus/lajubus/services/ticketing/handler/http"
	"github.com/lajubus/lajubus/services/ticketing/repository"
	"github.com/lajubus/lajubus/services/ticketing/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "ticketing-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/ticketing.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NSQ producer, optional by config
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
	}

	// Initialize repositories
	agencyRepo := repository.NewAgencyRepo(configs, postgresClient.GetDB())
	busRepo := repository.NewBusRepo(configs, postgresClient.GetDB())
	routeRepo := repository.NewRouteRepo(configs, postgresClient.GetDB())
	conductorRepo := repository.NewConductorRepo(configs, postgresClient.GetDB())
	ticketRepo := repository.NewTicketRepo(configs, postgresClient.GetDB())
	seatLock := repository.NewSeatLock(redisClient)

	// Initialize gateway
	ticketingGW := gateway.NewTicketingGW(nsqProducer)

	// Initialize usecases
	agencyUC := usecase.NewAgencyUC(agencyRepo, ticketingGW, configs)
	busUC := usecase.NewBusUC(busRepo, agencyRepo, configs)
	routeUC := usecase.NewRouteUC(routeRepo, agencyRepo, configs)
	conductorUC := usecase.NewConductorUC(conductorRepo, agencyRepo, configs)
	ticketUC := usecase.NewTicketUC(ticketRepo, routeRepo, conductorRepo, seatLock, ticketingGW, configs)
	authUC := usecase.NewAuthUC(agencyRepo, conductorRepo, configs)

	// Initialize handlers
	Handler := handler.NewHandler(
		httpHandler.NewAuthHandler(authUC),
		httpHandler.NewAgencyHandler(agencyUC),
		httpHandler.NewBusHandler(busUC),
		httpHandler.NewRouteHandler(routeUC),
		httpHandler.NewConductorHandler(conductorUC),
		httpHandler.NewTicketHandler(ticketUC),
		configs,
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints; readiness tracks the backing stores
	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Run: func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		}},
		health.Check{Name: "redis", Run: func(ctx context.Context) error {
			return redisClient.GetClient().Ping(ctx).Err()
		}},
	)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	srv.RegisterCleanup(func(ctx context.Context) error {
		if nsqProducer != nil {
			nsqProducer.Stop()
		}
		return nil
	})
	srv.RegisterCleanup(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.RegisterCleanup(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
