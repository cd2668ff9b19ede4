package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/pattaya-dashboard/internal/config"
	"github.com/pattaya-dashboard/internal/delivery/http/handler"
	"github.com/pattaya-dashboard/internal/delivery/http/middleware"
	"github.com/pattaya-dashboard/internal/pkg/errors"
	"github.com/pattaya-dashboard/internal/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	dashboardHandler *handler.DashboardHandler
	exportHandler    *handler.ExportHandler
	statsHandler     *handler.StatsHandler
	pageHandler      *handler.PageHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	dashboardHandler *handler.DashboardHandler,
	exportHandler *handler.ExportHandler,
	statsHandler *handler.StatsHandler,
	pageHandler *handler.PageHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Pattaya Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		dashboardHandler: dashboardHandler,
		exportHandler:    exportHandler,
		statsHandler:     statsHandler,
		pageHandler:      pageHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает fiber приложение, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Dashboard page
	if s.pageHandler != nil {
		s.app.Get("/", s.pageHandler.RenderDashboard)
	}

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus metrics
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Dashboard routes
	api.Get("/dashboard", s.dashboardHandler.GetDashboard)
	api.Get("/controls", s.dashboardHandler.GetControls)
	api.Get("/places/active", s.dashboardHandler.GetActivePlaces)
	api.Get("/places/closing-soon", s.dashboardHandler.GetClosingSoonPlaces)

	// Export
	api.Get("/export/table.xlsx", s.exportHandler.ExportTable)

	// Dataset
	api.Post("/dataset/reload", s.dashboardHandler.ReloadDataset)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
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

// customErrorHandler - кастомный обработчик ошибок, ответ в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := errors.ErrInternalServer

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				appErr = errors.ErrNotFound
			case fiber.StatusInternalServerError:
			default:
				appErr = errors.New("HTTP_ERROR", fe.Message, fe.Code)
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", appErr.StatusCode),
			zap.Error(err),
		)

		return utils.SendError(c, appErr)
	}
}
