package handlers

import (
	"github.com/anjiri1684/tutor_booking/services"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Form describes the slot being booked.
func (h *BookingHandler) Form(c *fiber.Ctx) error {
	id, err := parseTeacherID(c)
	if err != nil {
		return err
	}

	slot, err := h.bookings.Prepare(c.UserContext(), id, c.Params("day"), c.Params("time"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"teacher":     slot.Teacher,
		"day_of_week": slot.DayOfWeek,
		"day_label":   slot.DayLabel,
		"time_str":    slot.TimeStr,
	})
}

func (h *BookingHandler) Submit(c *fiber.Ctx) error {
	id, err := parseTeacherID(c)
	if err != nil {
		return err
	}

	var form services.BookingForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}
	form.TeacherID = id
	form.DayOfWeek = c.Params("day")
	form.Time = c.Params("time")

	res, err := h.bookings.Submit(c.UserContext(), form)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":   res.Booking,
		"day_label": res.DayLabel,
	})
}
