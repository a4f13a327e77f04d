package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/anjiri1684/tutor_booking/utils"
	"go.uber.org/zap"
)

// CatalogService answers the read-only questions about teachers and goals.
type CatalogService struct {
	teachers repository.TeacherRepository
	goals    repository.GoalRepository
	logger   *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewCatalogService(
	teachers repository.TeacherRepository,
	goals repository.GoalRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		teachers: teachers,
		goals:    goals,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SampleTeachers returns n distinct teachers picked uniformly at random, in
// the order they were drawn. Ids are sampled first and only the winners are
// loaded.
func (s *CatalogService) SampleTeachers(ctx context.Context, n int) ([]models.Teacher, error) {
	if n < 0 {
		return nil, errdefs.NewValidationError(map[string]string{"n": msgInvalid})
	}

	ids, err := s.teachers.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(ids) {
		return nil, fmt.Errorf("sample %d of %d: %w", n, len(ids), errdefs.ErrNotEnoughTeachers)
	}

	s.mu.Lock()
	picked := utils.Sample(s.rng, ids, n)
	s.mu.Unlock()

	teachers, err := s.teachers.ListByIDs(ctx, picked)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Teacher, len(teachers))
	for _, t := range teachers {
		byID[t.ID] = t
	}
	out := make([]models.Teacher, 0, len(picked))
	for _, id := range picked {
		// a teacher deleted between the two queries is simply left out
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// FeaturedTeachers samples up to n teachers, fewer when the catalogue is
// smaller than n.
func (s *CatalogService) FeaturedTeachers(ctx context.Context, n int) ([]models.Teacher, error) {
	total, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, err
	}
	if int64(n) > total {
		s.logger.Warn("Not enough teachers for the index page",
			zap.Int("wanted", n),
			zap.Int64("available", total))
		n = int(total)
	}
	return s.SampleTeachers(ctx, n)
}

// TeachersByGoal returns the goal and its teachers, best rated first.
func (s *CatalogService) TeachersByGoal(ctx context.Context, key string) (*models.Goal, []models.Teacher, error) {
	goal, err := s.goals.GetByKey(ctx, key)
	if err != nil {
		return nil, nil, err
	}

	teachers, err := s.teachers.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, nil, err
	}
	return goal, teachers, nil
}

func (s *CatalogService) TeacherByID(ctx context.Context, id uint) (*models.Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}

func (s *CatalogService) GoalByKey(ctx context.Context, key string) (*models.Goal, error) {
	return s.goals.GetByKey(ctx, key)
}

func (s *CatalogService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return s.goals.List(ctx)
}
