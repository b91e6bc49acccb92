package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/api"
	"github.com/lettaaaaa/uklon-service/internal/api/handlers"
	"github.com/lettaaaaa/uklon-service/internal/auth"
	"github.com/lettaaaaa/uklon-service/internal/config"
	"github.com/lettaaaaa/uklon-service/internal/messaging"
	"github.com/lettaaaaa/uklon-service/internal/repository/postgres"
	"github.com/lettaaaaa/uklon-service/internal/services"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	ctx := context.Background()

	// Database
	pool, err := postgres.NewPool(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Error("apply migrations", "error", err)
		os.Exit(1)
	}
	log.Info("database ready", "host", cfg.Database.Host, "name", cfg.Database.Name)

	// Repositories
	userRepo := postgres.NewUserRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	carRepo := postgres.NewCarRepository(pool)
	rideRepo := postgres.NewRideRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)

	// Ride event publisher; the API keeps working without a broker.
	var publisher messaging.RideEventPublisher = messaging.NewNoopPublisher()
	if cfg.Broker.URL != "" {
		rabbit, err := messaging.NewRabbitMQPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Error("connect rabbitmq, ride events disabled", "error", err)
		} else {
			defer rabbit.Close()
			publisher = rabbit
			log.Info("ride events enabled", "exchange", cfg.Broker.Exchange)
		}
	}

	// Services
	tokens := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := services.NewAuthService(userRepo, tokens)
	driverService := services.NewDriverService(driverRepo)
	carService := services.NewCarService(carRepo, driverRepo)
	rideService := services.NewRideService(rideRepo, driverRepo, publisher, log)
	paymentService := services.NewPaymentService(paymentRepo, rideRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	rideHandler := handlers.NewRideHandler(rideService)
	driverHandler := handlers.NewDriverHandler(driverService)
	carHandler := handlers.NewCarHandler(carService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Router
	router := api.NewRouter(tokens, authService, authHandler, rideHandler, driverHandler, carHandler, paymentHandler, log)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	router.Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("starting taxi service", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
