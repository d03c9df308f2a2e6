package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/uybor/uybor-api/internal/api/handler"
	"github.com/uybor/uybor-api/internal/api/middleware"
	"github.com/uybor/uybor-api/internal/core/ports"
	"github.com/uybor/uybor-api/internal/core/service"
	mongodb "github.com/uybor/uybor-api/internal/infrastructure/db/mongo"
)

// Deps carries the externally constructed dependencies the router
// wires together.
type Deps struct {
	Mongo    *mongo.Database
	Redis    *redis.Client
	Tokens   ports.TokenManager
	Activity service.ActivityRecorder
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("uybor"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(d.Mongo)
	houseRepo := mongodb.NewHouseRepository(d.Mongo)
	actressRepo := mongodb.NewActressRepository(d.Mongo)
	activityRepo := mongodb.NewActivityRepository(d.Mongo)

	hasher := service.NewBcryptHasher(0)
	authService := service.NewAuthService(authRepo, hasher, d.Tokens, d.Logger)
	houseService := service.NewHouseService(houseRepo, d.Activity, d.Logger)
	actressService := service.NewActressService(actressRepo, d.Activity, d.Logger)

	authHandler := handler.NewAuthHandler(authService)
	houseHandler := handler.NewHouseHandler(houseService)
	actressHandler := handler.NewActressHandler(actressService)
	activityHandler := handler.NewActivityHandler(activityRepo)
	requireAuth := middleware.Auth(d.Tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Catalog routes ---
	e.GET("/houses", houseHandler.List)
	e.POST("/houses", houseHandler.Create)
	e.GET("/actresses", actressHandler.List)
	e.POST("/actresses", actressHandler.Create)
	e.GET("/activity", activityHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoSwagger.WrapHandler)

	return e
}
