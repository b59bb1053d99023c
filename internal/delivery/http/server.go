package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/config"
	"github.com/commute-heatmap/internal/delivery/http/handler"
	"github.com/commute-heatmap/internal/delivery/http/middleware"
	"github.com/commute-heatmap/internal/pkg/errors"
)

// HealthCheck - именованная проверка зависимости для /health
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	gridHandler        *handler.GridHandler
	destinationHandler *handler.DestinationHandler
	fetchHandler       *handler.FetchHandler
	heatmapHandler     *handler.HeatmapHandler

	healthChecks []HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	gridHandler *handler.GridHandler,
	destinationHandler *handler.DestinationHandler,
	fetchHandler *handler.FetchHandler,
	heatmapHandler *handler.HeatmapHandler,
	healthChecks []HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:     "Commute Heatmap",
		ReadTimeout: 10 * time.Second,
		// POST /fetch выполняется синхронно и при большом числе назначений
		// длится минуты
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		gridHandler:        gridHandler,
		destinationHandler: destinationHandler,
		fetchHandler:       fetchHandler,
		heatmapHandler:     heatmapHandler,
		healthChecks:       healthChecks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.handleHealth)

	// Grid catalog
	api.Get("/grid", s.gridHandler.List)

	// Destination lifecycle
	api.Get("/destinations", s.destinationHandler.List)
	api.Post("/destinations", s.destinationHandler.Create)
	api.Get("/destinations/:id", s.destinationHandler.Get)
	api.Patch("/destinations/:id", s.destinationHandler.Update)
	api.Delete("/destinations/:id", s.destinationHandler.Delete)

	// Travel time loading
	api.Post("/fetch", s.fetchHandler.Refresh)
	api.Get("/fetch/status", s.fetchHandler.Status)

	// Heatmap view
	api.Get("/heatmap", s.heatmapHandler.GetHeatmap)
}

// handleHealth - liveness плюс состояние настроенных зависимостей
func (s *Server) handleHealth(c *fiber.Ctx) error {
	status := "healthy"
	deps := fiber.Map{}

	for _, hc := range s.healthChecks {
		if err := hc.Check(c.Context()); err != nil {
			status = "degraded"
			deps[hc.Name] = err.Error()
			continue
		}
		deps[hc.Name] = "ok"
	}

	resp := fiber.Map{
		"status": status,
		"time":   time.Now(),
	}
	if len(deps) > 0 {
		resp["dependencies"] = deps
	}

	return c.JSON(resp)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок.
// AppError сохраняет свой HTTP-статус и код, всё остальное схлопывается в 500.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.String("code", appErr.Code),
				zap.Error(err),
			)
			return c.Status(appErr.StatusCode).JSON(fiber.Map{
				"error": appErr,
			})
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
