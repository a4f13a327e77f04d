package handlers

import (
	"strconv"

	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/services"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog    *services.CatalogService
	sampleSize int
}

func NewCatalogHandler(catalog *services.CatalogService, sampleSize int) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, sampleSize: sampleSize}
}

// Index lists a random handful of teachers and all goals.
func (h *CatalogHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()

	teachers, err := h.catalog.FeaturedTeachers(ctx, h.sampleSize)
	if err != nil {
		return err
	}
	goals, err := h.catalog.ListGoals(ctx)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"goals":    goals,
	})
}

func (h *CatalogHandler) Goal(c *fiber.Ctx) error {
	goal, teachers, err := h.catalog.TeachersByGoal(c.UserContext(), c.Params("goal"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"goal":     goal,
		"teachers": teachers,
	})
}

func (h *CatalogHandler) Profile(c *fiber.Ctx) error {
	id, err := parseTeacherID(c)
	if err != nil {
		return err
	}

	teacher, err := h.catalog.TeacherByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"teacher":  teacher,
		"schedule": teacher.Free.Data().Days(),
	})
}

func (h *CatalogHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// requestChoices is what the tutor-finder form offers.
func requestChoices(goals []models.Goal) fiber.Map {
	offered := make([]models.Goal, 0, len(models.RequestGoals))
	for _, key := range models.RequestGoals {
		for _, g := range goals {
			if g.Key == key {
				offered = append(offered, g)
			}
		}
	}
	return fiber.Map{
		"goals":        offered,
		"time_budgets": models.TimeBudgets,
		"defaults": fiber.Map{
			"goal": models.DefaultRequestGoal,
			"time": models.DefaultTimeBudget,
		},
	}
}

// parseTeacherID treats anything but a positive integer as an unknown route.
func parseTeacherID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("teacherId"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}
