package notifications

import (
	"context"
	"time"
)

// Notifier tells the site operator about new leads.
type Notifier interface {
	BookingCreated(ctx context.Context, n BookingNotice) error
	RequestCreated(ctx context.Context, n RequestNotice) error
	Digest(ctx context.Context, d DigestNotice) error
}

type BookingNotice struct {
	BookingID   uint
	TeacherName string
	DayLabel    string
	TimeStr     string
	Name        string
	Phone       string
}

type RequestNotice struct {
	RequestID    uint
	GoalLabel    string
	TimeForStudy string
	Name         string
	Phone        string
}

type DigestNotice struct {
	Since    time.Time
	Until    time.Time
	Bookings int64
	Requests int64
}

// Nop drops every notice. Used when e-mail is not configured.
type Nop struct{}

func (Nop) BookingCreated(context.Context, BookingNotice) error { return nil }
func (Nop) RequestCreated(context.Context, RequestNotice) error { return nil }
func (Nop) Digest(context.Context, DigestNotice) error          { return nil }
