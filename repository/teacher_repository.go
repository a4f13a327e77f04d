package repository

import (
	"context"

	"github.com/anjiri1684/tutor_booking/models"
	"gorm.io/gorm"
)

type TeacherRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Teacher, error)
	ListIDs(ctx context.Context) ([]uint, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.Teacher, error)
	ListByGoal(ctx context.Context, goalID uint) ([]models.Teacher, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, teacher *models.Teacher) error
}

type GormTeacherRepository struct {
	db *gorm.DB
}

func NewGormTeacherRepository(db *gorm.DB) *GormTeacherRepository {
	return &GormTeacherRepository{db: db}
}

func (r *GormTeacherRepository) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	var t models.Teacher
	if err := r.db.WithContext(ctx).Preload("Goals").First(&t, "id = ?", id).Error; err != nil {
		return nil, translate("get teacher", err)
	}
	return &t, nil
}

func (r *GormTeacherRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Teacher{}).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, translate("list teacher ids", err)
	}
	return ids, nil
}

func (r *GormTeacherRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Teacher, error) {
	if len(ids) == 0 {
		return []models.Teacher{}, nil
	}
	var teachers []models.Teacher
	err := r.db.WithContext(ctx).
		Preload("Goals").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, translate("list teachers by ids", err)
	}
	return teachers, nil
}

// ListByGoal returns the teachers linked to a goal, best rated first. Unrated
// teachers go last and ties keep id order, the same on every dialect.
func (r *GormTeacherRepository) ListByGoal(ctx context.Context, goalID uint) ([]models.Teacher, error) {
	ids := r.db.WithContext(ctx).
		Model(&models.TeacherGoal{}).
		Select("teacher_id").
		Where("goal_id = ?", goalID)

	var teachers []models.Teacher
	err := r.db.WithContext(ctx).
		Preload("Goals").
		Where("id IN (?)", ids).
		Order("rating IS NULL").
		Order("rating DESC").
		Order("id ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, translate("list teachers by goal", err)
	}
	return teachers, nil
}

func (r *GormTeacherRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Teacher{}).Count(&n).Error; err != nil {
		return 0, translate("count teachers", err)
	}
	return n, nil
}

// Create inserts the teacher and its goal links. Goals must already exist.
func (r *GormTeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	err := r.db.WithContext(ctx).
		Omit("Goals.*").
		Create(teacher).Error
	return translate("create teacher", err)
}
