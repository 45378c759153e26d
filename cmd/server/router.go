package main

import (
	"log/slog"
	"time"

	"notes-api/cmd/server/handlers"
	"notes-api/cmd/server/handlers/httperr"
	notesHandlers "notes-api/cmd/server/handlers/notes"
	"notes-api/cmd/server/middlewares"
	"notes-api/internal/config"
	notesServices "notes-api/internal/services/notes"
	util "notes-api/internal/utils"

	_ "notes-api/docs" // Load swagger docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// setupRouter configures and returns a Fiber app serving the notes API on repo
func setupRouter(cfg config.Config, repo notesServices.Repository, store notesServices.Pinger, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Content-Type",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health check endpoint, kept out of the request log
	app.Get("/healthz", handlers.NewHealthz(store))

	app.Get("/docs/*", swagger.HandlerDefault)

	var notesGrp fiber.Router
	if cfg.RequestLoggingEnabled {
		notesGrp = app.Group("/notes", fiberlogger.New())
		log.Info("request logging enabled")
	} else {
		notesGrp = app.Group("/notes")
		log.Info("request logging disabled")
	}
	notesGrp.Use(middlewares.BuildRateLimiter(cfg.RateLimitPerMin, RateLimitExpiration))

	v, err := util.NewValidator()
	if err != nil {
		log.Error("failed to build validator", "err", err)
		panic(err)
	}
	notesSvc := notesServices.NewService(repo, v, log)
	notesH := notesHandlers.NewHandlers(notesSvc, log)

	notesGrp.Get("/", notesH.List)
	notesGrp.Post("/", notesH.Create)
	notesGrp.Put("/", notesH.Update)
	notesGrp.Get("/:id", notesH.Get)
	notesGrp.Delete("/:id", notesH.Delete)

	return app
}
