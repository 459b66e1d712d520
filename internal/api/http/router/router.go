package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/goldo-server/internal/api/http/handler"
	"github.com/dtroode/goldo-server/internal/api/http/middleware"
	"github.com/dtroode/goldo-server/internal/api/http/reqctx"
	"github.com/dtroode/goldo-server/internal/logger"
	"github.com/dtroode/goldo-server/internal/service"
)

// Pinger reports store liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router wires services into HTTP routes and middleware.
type Router struct {
	authService  *service.Auth
	todoService  *service.Todo
	tokenService *service.TokenService
	store        Pinger
	reqctx       *reqctx.Manager
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	todoService *service.Todo,
	tokenService *service.TokenService,
	store Pinger,
	reqctx *reqctx.Manager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		todoService:  todoService,
		tokenService: tokenService,
		store:        store,
		reqctx:       reqctx,
		logger:       logger,
	}
}

// Register builds the Fiber app with all routes and middleware.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(middleware.NewLogging(r.logger).Handle)

	authHandler := handler.NewAuth(r.authService, r.tokenService, r.reqctx, r.logger)
	todoHandler := handler.NewTodo(r.todoService, r.reqctx, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.reqctx, r.logger).Handle

	app.Get("/health", r.health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	api.Get("/me", authenticate, authHandler.Me)

	todos := api.Group("/todos", authenticate)
	todos.Get("/", todoHandler.List)
	todos.Get("/completed", todoHandler.ListCompleted)
	todos.Get("/incomplete", todoHandler.ListIncomplete)
	todos.Post("/", todoHandler.Create)
	todos.Put("/:id", todoHandler.Update)
	todos.Post("/:id/complete", todoHandler.Complete)
	todos.Post("/:id/incomplete", todoHandler.Incomplete)
	todos.Post("/:id/move-up", todoHandler.MoveUp)
	todos.Post("/:id/move-down", todoHandler.MoveDown)
	todos.Delete("/:id", todoHandler.Delete)

	return app
}

func (r *Router) health(c *fiber.Ctx) error {
	if err := r.store.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
