package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todolist/task-service/internal/api/handler"
	"github.com/todolist/task-service/internal/api/middleware"
	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
	"github.com/todolist/task-service/internal/core/service"
	"github.com/todolist/task-service/internal/infrastructure/config"
	mongodb "github.com/todolist/task-service/internal/infrastructure/db/mongo"
	redisdb "github.com/todolist/task-service/internal/infrastructure/db/redis"
	"github.com/todolist/task-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login throttling is disabled.
func NewRouter(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("todolist"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Login.Window, cfg.Login.MaxAttempts, log)
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, throttle, cfg.AdminCode, log)
	taskService := service.NewTaskService(taskRepo, log)
	adminService := service.NewAdminService(userRepo, taskRepo)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	adminHandler := handler.NewAdminHandler(adminService, authService)

	requireAuth := middleware.Auth(tokens)
	requireStore := middleware.RequireStore(client)

	// --- Auth routes ---
	auth := e.Group("/auth", requireStore)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- Task routes (owner-scoped) ---
	tasks := e.Group("/tasks", requireStore, requireAuth)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.PATCH("/:id", taskHandler.SetCompleted)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Admin routes ---
	e.POST("/admin/verify", adminHandler.VerifyCode, requireStore)

	admin := e.Group("/admin", requireStore, requireAuth, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.Users)
	admin.GET("/tasks", adminHandler.Tasks)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
