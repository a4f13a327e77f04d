package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GoalRecord struct {
	Key   string `validate:"required,max=50"`
	Value string `validate:"required,max=100"`
}

type TeacherRecord struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name" validate:"required,max=80"`
	About   string          `json:"about" validate:"required"`
	Rating  *float64        `json:"rating"`
	Picture *string         `json:"picture" validate:"omitempty,max=100"`
	Price   int             `json:"price" validate:"gte=0"`
	Goals   []string        `json:"goals" validate:"dive,required"`
	Free    models.Schedule `json:"free" validate:"dive,keys,oneof=mon tue wed thu fri sat sun,endkeys,dive,required"`
}

type SeedOptions struct {
	// SkipUnknownGoals drops teacher goal keys missing from the goals table
	// with a warning instead of failing the teacher import.
	SkipUnknownGoals bool
}

type SeedReport struct {
	GoalsInserted    int
	TeachersInserted int
	GoalsSkipped     bool
	TeachersSkipped  bool
}

type Seeder struct {
	db       *gorm.DB
	opts     SeedOptions
	validate *validator.Validate
	logger   *zap.Logger
}

func NewSeeder(db *gorm.DB, opts SeedOptions, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:       db,
		opts:     opts,
		validate: validator.New(),
		logger:   logger,
	}
}

// Run seeds goals and then teachers from the two documents. Each half is
// skipped on its own when its table already has rows; a skipped half is not
// an error. Files are only read for halves that will run.
func (s *Seeder) Run(ctx context.Context, goalsPath, teachersPath string) (*SeedReport, error) {
	report := &SeedReport{}

	n, err := s.seedGoalsFile(ctx, goalsPath)
	switch {
	case errors.Is(err, errdefs.ErrAlreadySeeded):
		report.GoalsSkipped = true
		s.logger.Info("Goals already seeded, clear the goals table to run the import again")
	case err != nil:
		return report, err
	default:
		report.GoalsInserted = n
	}

	n, err = s.seedTeachersFile(ctx, teachersPath)
	switch {
	case errors.Is(err, errdefs.ErrAlreadySeeded):
		report.TeachersSkipped = true
		s.logger.Info("Teachers already seeded, clear the teachers table to run the import again")
	case err != nil:
		return report, err
	default:
		report.TeachersInserted = n
	}

	return report, nil
}

func (s *Seeder) seedGoalsFile(ctx context.Context, path string) (int, error) {
	if err := s.guard(ctx, &models.Goal{}); err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open goals file: %w", err)
	}
	defer f.Close()

	goals, err := DecodeGoals(f)
	if err != nil {
		return 0, err
	}
	return s.SeedGoals(ctx, goals)
}

func (s *Seeder) seedTeachersFile(ctx context.Context, path string) (int, error) {
	if err := s.guard(ctx, &models.Teacher{}); err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open teachers file: %w", err)
	}
	defer f.Close()

	teachers, err := DecodeTeachers(f)
	if err != nil {
		return 0, err
	}
	return s.SeedTeachers(ctx, teachers)
}

// SeedGoals inserts goals in slice order within one transaction.
func (s *Seeder) SeedGoals(ctx context.Context, goals []GoalRecord) (int, error) {
	for i := range goals {
		if err := s.validate.Struct(goals[i]); err != nil {
			return 0, fmt.Errorf("goal %q: %w: %v", goals[i].Key, errdefs.ErrValidation, err)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.guardTx(tx, &models.Goal{}); err != nil {
			return err
		}
		repo := repository.NewGormGoalRepository(tx)
		for _, g := range goals {
			if err := repo.Create(ctx, &models.Goal{Key: g.Key, Value: g.Value}); err != nil {
				return fmt.Errorf("seed goal %q: %w", g.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Goals seeded", zap.Int("count", len(goals)))
	return len(goals), nil
}

// SeedTeachers inserts teachers with their goal links within one transaction.
// Goals are looked up by key, so SeedGoals has to run first.
func (s *Seeder) SeedTeachers(ctx context.Context, teachers []TeacherRecord) (int, error) {
	for i := range teachers {
		if err := s.validate.Struct(teachers[i]); err != nil {
			return 0, fmt.Errorf("teacher %q: %w: %v", teachers[i].Name, errdefs.ErrValidation, err)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.guardTx(tx, &models.Teacher{}); err != nil {
			return err
		}

		known, err := repository.NewGormGoalRepository(tx).List(ctx)
		if err != nil {
			return err
		}
		byKey := make(map[string]*models.Goal, len(known))
		for i := range known {
			byKey[known[i].Key] = &known[i]
		}

		repo := repository.NewGormTeacherRepository(tx)
		for _, rec := range teachers {
			teacher := &models.Teacher{
				ID:      rec.ID,
				Name:    rec.Name,
				About:   rec.About,
				Rating:  rec.Rating,
				Picture: rec.Picture,
				Price:   rec.Price,
				Free:    datatypes.NewJSONType(rec.Free),
			}
			for _, key := range rec.Goals {
				goal, ok := byKey[key]
				if !ok {
					if s.opts.SkipUnknownGoals {
						s.logger.Warn("Skipping unknown goal for teacher",
							zap.String("teacher", rec.Name),
							zap.String("goal", key))
						continue
					}
					return fmt.Errorf("teacher %q references %q: %w", rec.Name, key, errdefs.ErrUnknownGoal)
				}
				teacher.Goals = append(teacher.Goals, goal)
			}

			if err := repo.Create(ctx, teacher); err != nil {
				return fmt.Errorf("seed teacher %q: %w", rec.Name, err)
			}
		}

		return syncTeacherSequence(tx)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Teachers seeded", zap.Int("count", len(teachers)))
	return len(teachers), nil
}

func (s *Seeder) guard(ctx context.Context, model interface{}) error {
	return s.guardTx(s.db.WithContext(ctx), model)
}

func (s *Seeder) guardTx(tx *gorm.DB, model interface{}) error {
	var count int64
	if err := tx.Model(model).Limit(1).Count(&count).Error; err != nil {
		return fmt.Errorf("check seeded: %w", err)
	}
	if count > 0 {
		return errdefs.ErrAlreadySeeded
	}
	return nil
}

// syncTeacherSequence moves the postgres id sequence past the explicit ids
// taken from the document.
func syncTeacherSequence(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	err := tx.Exec(
		"SELECT setval(pg_get_serial_sequence('teachers', 'id'), COALESCE((SELECT MAX(id) FROM teachers), 0) + 1, false)",
	).Error
	if err != nil {
		return fmt.Errorf("sync teachers sequence: %w", err)
	}
	return nil
}

// DecodeGoals reads a key -> label JSON object keeping document order.
func DecodeGoals(r io.Reader) ([]GoalRecord, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decode goals: expected object, got %v", tok)
	}

	var goals []GoalRecord
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode goals: %w", err)
		}
		key, _ := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode goal %q: %w", key, err)
		}
		goals = append(goals, GoalRecord{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return goals, nil
}

func DecodeTeachers(r io.Reader) ([]TeacherRecord, error) {
	var teachers []TeacherRecord
	if err := json.NewDecoder(r).Decode(&teachers); err != nil {
		return nil, fmt.Errorf("decode teachers: %w", err)
	}
	return teachers, nil
}
