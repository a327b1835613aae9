// Package server exposes stored drawings over HTTP: listing, CRUD on
// document JSON and text/PNG rendering.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"asciidraw/persist"
)

// Config holds the service settings.
type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RequestLog enables the per-request access log.
	RequestLog bool
}

// Server serves documents kept in a KV.
type Server struct {
	kv  persist.KV
	app *fiber.App
}

// New builds the fiber app and registers the routes.
func New(kv persist.KV, cfg Config) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		AppName:      "asciidraw",
	})

	app.Use(recover.New())
	if cfg.RequestLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	s := &Server{kv: kv, app: app}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	s.app.Get("/health/ready", s.ready)

	s.app.Get("/documents", s.listDocuments)
	s.app.Post("/documents", s.createDocument)
	s.app.Get("/documents/:id", s.getDocument)
	s.app.Put("/documents/:id", s.putDocument)
	s.app.Delete("/documents/:id", s.deleteDocument)
	s.app.Get("/documents/:id/text", s.exportDocument)
	s.app.Get("/documents/:id/png", s.exportDocument)
}

// App returns the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
