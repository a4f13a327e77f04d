package repository

import (
	"context"

	"github.com/anjiri1684/tutor_booking/models"
	"gorm.io/gorm"
)

type GoalRepository interface {
	GetByKey(ctx context.Context, key string) (*models.Goal, error)
	List(ctx context.Context) ([]models.Goal, error)
	Create(ctx context.Context, goal *models.Goal) error
}

type GormGoalRepository struct {
	db *gorm.DB
}

func NewGormGoalRepository(db *gorm.DB) *GormGoalRepository {
	return &GormGoalRepository{db: db}
}

func (r *GormGoalRepository) GetByKey(ctx context.Context, key string) (*models.Goal, error) {
	var g models.Goal
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{"key": key}).
		First(&g).Error
	if err != nil {
		return nil, translate("get goal", err)
	}
	return &g, nil
}

func (r *GormGoalRepository) List(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&goals).Error; err != nil {
		return nil, translate("list goals", err)
	}
	return goals, nil
}

func (r *GormGoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	return translate("create goal", r.db.WithContext(ctx).Create(goal).Error)
}
