package repository

import (
	"context"
	"time"

	"github.com/anjiri1684/tutor_booking/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	CountBetween(ctx context.Context, since, until time.Time) (int64, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	err := r.db.WithContext(ctx).Omit("Teacher").Create(booking).Error
	return translate("create booking", err)
}

// CountBetween counts rows created in [since, until).
func (r *GormBookingRepository) CountBetween(ctx context.Context, since, until time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ?", since, until).
		Count(&n).Error
	if err != nil {
		return 0, translate("count bookings", err)
	}
	return n, nil
}
