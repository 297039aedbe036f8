package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/config"
	"resume-builder/internal/export"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
	"resume-builder/internal/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	// local persistence; the app keeps working in memory if it fails
	var persister store.Persister
	if fp, err := store.NewFilePersister(cfg.Storage.DataDir, cfg.StateSchemaPath()); err != nil {
		log.Printf("warning: local storage not available, state will not survive restarts: %v", err)
	} else {
		persister = fp
	}

	st := store.New(persister)
	ctrl := wizard.NewController(st, wizard.Steps())

	registry, err := render.NewRegistry(cfg.Templates.Dir)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	exporter := export.NewExporter(export.NewChromedpRenderer(cfg.Export.ChromePath))

	app := fiber.New(fiber.Config{
		AppName:      "Resume Builder",
		ReadTimeout:  30 * time.Second,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	h := httpadapter.NewHandler(st, ctrl, registry, exporter)
	h.Register(app)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("warning: forced shutdown: %v", err)
		}
	}()

	addr := ":" + cfg.Server.Port
	log.Printf("server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
