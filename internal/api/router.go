package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wachwerk/staffdesk/internal/api/handler"
	"github.com/wachwerk/staffdesk/internal/api/middleware"
	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/ports"
	"github.com/wachwerk/staffdesk/internal/core/service"
	mongodb "github.com/wachwerk/staffdesk/internal/infrastructure/db/mongo"
	redisdb "github.com/wachwerk/staffdesk/internal/infrastructure/db/redis"
)

// RouterConfig carries everything the router needs to assemble the API.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds the Echo instance with all routes registered. All
// dependencies are constructed here and injected explicitly; no component
// reaches for a global.
func NewRouter(db *mongo.Database, rdb *redis.Client, blobs ports.BlobStore, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("staffdesk"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	shiftRepo := mongodb.NewShiftRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	uploadRepo := mongodb.NewUploadRepository(db)
	revoker := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, shiftRepo, messageRepo, uploadRepo, log)
	shiftService := service.NewShiftService(shiftRepo, userRepo, log)
	messageService := service.NewMessageService(messageRepo, userRepo, log)
	uploadService := service.NewUploadService(uploadRepo, userRepo, blobs, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	messageHandler := handler.NewMessageHandler(messageService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMW := middleware.Auth(cfg.JWTSecret, revoker)
	adminMW := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMW)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/shifts", shiftHandler.List)
	v1.POST("/messages", messageHandler.Create)
	v1.POST("/uploads", uploadHandler.Create)

	// --- Admin-only routes (route guard; services re-check per operation) ---
	admin := v1.Group("", adminMW)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.POST("/shifts", shiftHandler.Create)
	admin.DELETE("/shifts/:id", shiftHandler.Delete)
	admin.GET("/messages", messageHandler.List)
	admin.GET("/uploads", uploadHandler.List)

	return e
}
