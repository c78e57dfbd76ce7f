package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/dto"
	"github.com/KirPavMos/advanced-algorithm-05/web/handlers"
	"github.com/KirPavMos/advanced-algorithm-05/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server serving the JSON API
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		AppName:      "orders",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Counts SQL statements per request
	app.Use(middleware.SQLDebugMiddleware())

	setupRoutes(app)

	return &Server{app: app}
}

// App exposes the fiber app, mainly for app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msgf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler renders every error as {"error": ...} with a status derived
// from its kind
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case database.IsNotFound(err):
		code = fiber.StatusNotFound
	case errors.As(err, &verr):
		code = fiber.StatusUnprocessableEntity
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("Request failed")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Debug endpoint for SQL logs
	api.Get("/debug/sql", handlers.GetSQLLogs)
	api.Delete("/debug/sql", handlers.ClearSQLLogs)

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", handlers.SupplierList)
	suppliers.Get("/:id", handlers.SupplierView)

	products := api.Group("/products")
	products.Get("/", handlers.ProductList)

	orders := api.Group("/orders")
	orders.Get("/", handlers.OrderList)
	orders.Get("/:id", handlers.OrderView)
	orders.Post("/:id/recalculate", handlers.OrderRecalculate)
}
