package handlers

import (
	"github.com/anjiri1684/tutor_booking/services"
	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	catalog  *services.CatalogService
	requests *services.RequestService
}

func NewRequestHandler(catalog *services.CatalogService, requests *services.RequestService) *RequestHandler {
	return &RequestHandler{catalog: catalog, requests: requests}
}

func (h *RequestHandler) Form(c *fiber.Ctx) error {
	goals, err := h.catalog.ListGoals(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(requestChoices(goals))
}

func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	var form services.RequestForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	res, err := h.requests.Submit(c.UserContext(), form)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"request": res.Request,
		"goal":    res.Goal,
	})
}
