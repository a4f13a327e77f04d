package routes

import (
	"github.com/anjiri1684/tutor_booking/handlers"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
	Request *handlers.RequestHandler
}

func CatalogRoutes(app *fiber.App, h *handlers.CatalogHandler) {
	app.Get("/", h.Index)
	app.Get("/goals/:goal/", h.Goal)
	app.Get("/profiles/:teacherId/", h.Profile)
	app.Get("/health", h.Health)
}

func RequestRoutes(app *fiber.App, h *handlers.RequestHandler) {
	app.Get("/request/", h.Form)
	app.Post("/request/", h.Submit)
}

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler) {
	app.Get("/booking/:teacherId/:day/:time/", h.Form)
	app.Post("/booking/:teacherId/:day/:time/", h.Submit)
}

func Register(app *fiber.App, h Handlers) {
	CatalogRoutes(app, h.Catalog)
	RequestRoutes(app, h.Request)
	BookingRoutes(app, h.Booking)
}
