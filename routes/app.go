package routes

import (
	"time"

	"github.com/anjiri1684/tutor_booking/handlers"
	"github.com/anjiri1684/tutor_booking/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(logger *zap.Logger, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Tutor Booking",
		CaseSensitive: true,
		StrictRouting: true,
		UnescapePath:  true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler:  handlers.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: "Content-Length, " + middleware.RequestIDHeader,
		MaxAge:        86400,
	}))

	Register(app, h)
	return app
}
