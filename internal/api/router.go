package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/boardlab/repair-system/docs"
	"github.com/boardlab/repair-system/internal/api/handler"
	"github.com/boardlab/repair-system/internal/api/middleware"
	"github.com/boardlab/repair-system/internal/core/domain"
	"github.com/boardlab/repair-system/internal/core/service"
	"github.com/boardlab/repair-system/internal/infrastructure/config"
	mongodb "github.com/boardlab/repair-system/internal/infrastructure/db/mongo"
	redisdb "github.com/boardlab/repair-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// This is the only server bootstrap: every request enters here, and every
// token is read from the Authorization header alone.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Production())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("repair"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewBcryptHasher()
	tokens := service.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	authHandler := handler.NewAuthHandler(authService)

	requireAuth := middleware.Auth(tokens)
	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts)

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, middleware.RateLimit(loginLimiter, log))
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Admin routes (role-gated) ---
	admin := apiGroup.Group("/admin", requireAuth, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", authHandler.ListUsers)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.Env)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	apiGroup.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	apiGroup.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
