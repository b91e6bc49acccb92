package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/api/handlers"
	"github.com/lettaaaaa/uklon-service/internal/api/middleware"
	"github.com/lettaaaaa/uklon-service/internal/auth"
	"github.com/lettaaaaa/uklon-service/internal/services"
)

type Router struct {
	tokens         *auth.JWTService
	authService    *services.AuthService
	authHandler    *handlers.AuthHandler
	rideHandler    *handlers.RideHandler
	driverHandler  *handlers.DriverHandler
	carHandler     *handlers.CarHandler
	paymentHandler *handlers.PaymentHandler
	log            *slog.Logger
}

func NewRouter(
	tokens *auth.JWTService,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	rideHandler *handlers.RideHandler,
	driverHandler *handlers.DriverHandler,
	carHandler *handlers.CarHandler,
	paymentHandler *handlers.PaymentHandler,
	log *slog.Logger,
) *Router {
	return &Router{
		tokens:         tokens,
		authService:    authService,
		authHandler:    authHandler,
		rideHandler:    rideHandler,
		driverHandler:  driverHandler,
		carHandler:     carHandler,
		paymentHandler: paymentHandler,
		log:            log,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(r.log))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := engine.Group("/auth")
	{
		authRoutes.POST("/register", r.authHandler.Register)
		authRoutes.POST("/login", r.authHandler.Login)
	}

	// Protected routes
	api := engine.Group("/")
	api.Use(middleware.Auth(r.tokens, r.authService))
	{
		rideRoutes := api.Group("/rides")
		{
			rideRoutes.POST("", r.rideHandler.CreateRide)
			rideRoutes.GET("", r.rideHandler.ListRides)
			rideRoutes.GET("/:id", r.rideHandler.GetRide)
			rideRoutes.PATCH("/:id", r.rideHandler.UpdateRide)
			rideRoutes.DELETE("/:id", r.rideHandler.CancelRide)
		}

		driverRoutes := api.Group("/drivers")
		{
			driverRoutes.POST("", r.driverHandler.CreateDriver)
			driverRoutes.GET("", r.driverHandler.ListDrivers)
			driverRoutes.GET("/:id", r.driverHandler.GetDriver)
		}

		carRoutes := api.Group("/cars")
		{
			carRoutes.POST("", r.carHandler.CreateCar)
			carRoutes.GET("", r.carHandler.ListCars)
			carRoutes.GET("/:id", r.carHandler.GetCar)
		}

		paymentRoutes := api.Group("/payments")
		{
			paymentRoutes.POST("", r.paymentHandler.CreatePayment)
			paymentRoutes.GET("", r.paymentHandler.ListPayments)
			paymentRoutes.GET("/:id", r.paymentHandler.GetPayment)
		}
	}
}
