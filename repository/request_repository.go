package repository

import (
	"context"
	"time"

	"github.com/anjiri1684/tutor_booking/models"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	CountBetween(ctx context.Context, since, until time.Time) (int64, error)
}

type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) Create(ctx context.Context, request *models.Request) error {
	err := r.db.WithContext(ctx).Omit("Goal").Create(request).Error
	return translate("create request", err)
}

// CountBetween counts rows created in [since, until).
func (r *GormRequestRepository) CountBetween(ctx context.Context, since, until time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("created_at >= ? AND created_at < ?", since, until).
		Count(&n).Error
	if err != nil {
		return 0, translate("count requests", err)
	}
	return n, nil
}
