package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/notifications"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingForm is a booking submission. DayOfWeek and Time come from the slot
// link, Time being the two-character hour prefix ("8:" or "18").
type BookingForm struct {
	TeacherID uint   `json:"-"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=mon tue wed thu fri sat sun"`
	Time      string `json:"time" validate:"required,slot_time"`
	Name      string `json:"name" form:"name" validate:"required,min=2,max=30"`
	Phone     string `json:"phone" form:"phone" validate:"required,min=10,max=16"`
}

type BookingResult struct {
	Booking  *models.Booking
	DayLabel string
}

// BookingSlot describes the slot shown on the booking form.
type BookingSlot struct {
	Teacher   *models.Teacher
	DayOfWeek string
	DayLabel  string
	TimeStr   string
}

type BookingService struct {
	db       *gorm.DB
	teachers repository.TeacherRepository
	notifier notifications.Notifier
	validate *validator.Validate
	logger   *zap.Logger

	pending pendingNotices
}

func NewBookingService(db *gorm.DB, notifier notifications.Notifier, logger *zap.Logger) *BookingService {
	return &BookingService{
		db:       db,
		teachers: repository.NewGormTeacherRepository(db),
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
	}
}

// NormalizeTime restores a slot time from its two-character link prefix:
// "8:" becomes "8:00" and "18" becomes "18:00".
func NormalizeTime(raw string) string {
	if len(raw) > 1 && raw[1] == ':' {
		return raw + "00"
	}
	return raw + ":00"
}

func normalizeSlotTime(raw string) (string, error) {
	if len(raw) != 2 {
		return "", errdefs.NewValidationError(map[string]string{"time": msgTime})
	}
	timeStr := NormalizeTime(raw)
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return "", errdefs.NewValidationError(map[string]string{"time": msgTime})
	}
	return timeStr, nil
}

// Prepare resolves the slot behind a booking link. Unknown teachers, days and
// malformed times are all reported as not found.
func (s *BookingService) Prepare(ctx context.Context, teacherID uint, day, rawTime string) (*BookingSlot, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	label, ok := models.DayLabel(day)
	if !ok {
		return nil, fmt.Errorf("day %q: %w", day, errdefs.ErrNotFound)
	}

	timeStr, err := normalizeSlotTime(rawTime)
	if err != nil {
		return nil, fmt.Errorf("time %q: %w", rawTime, errdefs.ErrNotFound)
	}

	return &BookingSlot{
		Teacher:   teacher,
		DayOfWeek: day,
		DayLabel:  label,
		TimeStr:   timeStr,
	}, nil
}

// Submit validates and stores a booking. The same slot may be booked any
// number of times.
func (s *BookingService) Submit(ctx context.Context, form BookingForm) (*BookingResult, error) {
	teacher, err := s.teachers.GetByID(ctx, form.TeacherID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(form); err != nil {
		return nil, formError(err)
	}
	timeStr, err := normalizeSlotTime(form.Time)
	if err != nil {
		return nil, err
	}
	label, _ := models.DayLabel(form.DayOfWeek)

	booking := &models.Booking{
		DayOfWeek: form.DayOfWeek,
		TimeStr:   timeStr,
		Name:      form.Name,
		Phone:     form.Phone,
		TeacherID: teacher.ID,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewGormBookingRepository(tx).Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	booking.Teacher = teacher

	s.logger.Info("Booking created",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("teacher_id", teacher.ID),
		zap.String("day_of_week", booking.DayOfWeek),
		zap.String("time", booking.TimeStr))

	notice := notifications.BookingNotice{
		BookingID:   booking.ID,
		TeacherName: teacher.Name,
		DayLabel:    label,
		TimeStr:     booking.TimeStr,
		Name:        booking.Name,
		Phone:       booking.Phone,
	}
	s.pending.send(func() {
		if err := s.notifier.BookingCreated(context.WithoutCancel(ctx), notice); err != nil {
			s.logger.Error("Failed to send booking notification",
				zap.Uint("booking_id", notice.BookingID),
				zap.Error(err))
		}
	})

	return &BookingResult{Booking: booking, DayLabel: label}, nil
}

// Wait blocks until notifications for earlier submissions have been sent or
// ctx is done.
func (s *BookingService) Wait(ctx context.Context) error {
	return s.pending.wait(ctx)
}
