package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/tollgate-service/internal/config"
	"github.com/tollgate-service/internal/delivery/http/handler"
	"github.com/tollgate-service/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server wires the Fiber app, middleware and handlers together.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	tollGateHandler   *handler.TollGateHandler
	calculateHandler  *handler.CalculateHandler
	tripHandler       *handler.TripHandler
	savedRouteHandler *handler.SavedRouteHandler
	healthHandler     *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tollGateHandler *handler.TollGateHandler,
	calculateHandler *handler.CalculateHandler,
	tripHandler *handler.TripHandler,
	savedRouteHandler *handler.SavedRouteHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Toll Route Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		tollGateHandler:   tollGateHandler,
		calculateHandler:  calculateHandler,
		tripHandler:       tripHandler,
		savedRouteHandler: savedRouteHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", s.healthHandler.Health)

	// Toll gate catalogue. The search route must be registered before the
	// :id route so "search" is not parsed as an id.
	api.Get("/tollgates/search/:query", s.tollGateHandler.Search)
	api.Get("/tollgates/:id", s.tollGateHandler.GetByID)
	api.Get("/tollgates", s.tollGateHandler.List)

	// Route cost calculator
	api.Post("/calculate-route", s.calculateHandler.Calculate)

	// Trip ledger and statistics
	api.Post("/trips", s.tripHandler.Create)
	api.Get("/trips/:userId/stats", s.tripHandler.Stats)
	api.Get("/trips/:userId", s.tripHandler.ListByUser)
	api.Delete("/trips/:id", s.tripHandler.Delete)

	// Saved routes
	api.Post("/saved-routes", s.savedRouteHandler.Create)
	api.Get("/saved-routes/:userId", s.savedRouteHandler.ListByUser)
	api.Delete("/saved-routes/:id", s.savedRouteHandler.Delete)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
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
			"success": false,
			"error":   err.Error(),
		})
	}
}
