package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const goalsDoc = `{"travel": "Для путешествий", "study": "Для школы", "work": "Для работы", "relocate": "Для переезда"}`

const teachersDoc = `[
  {"id": 1, "name": "Анна", "about": "Преподаю 10 лет", "rating": 4.8, "picture": "https://example.com/1.png",
   "price": 900, "goals": ["travel", "work"], "free": {"mon": ["8:00", "10:00"], "fri": ["18:00"]}},
  {"id": 2, "name": "Борис", "about": "Готовлю к переезду", "rating": null, "picture": null,
   "price": 1200, "goals": ["relocate"], "free": {}}
]`

func writeDocs(t *testing.T, goals, teachers string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	gp := filepath.Join(dir, "goals.json")
	tp := filepath.Join(dir, "teachers.json")
	require.NoError(t, os.WriteFile(gp, []byte(goals), 0o600))
	require.NoError(t, os.WriteFile(tp, []byte(teachers), 0o600))
	return gp, tp
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestDecodeGoals_KeepsDocumentOrder(t *testing.T) {
	goals, err := DecodeGoals(strings.NewReader(`{"work": "W", "travel": "T", "study": "S"}`))
	require.NoError(t, err)
	assert.Equal(t, []GoalRecord{{"work", "W"}, {"travel", "T"}, {"study", "S"}}, goals)

	_, err = DecodeGoals(strings.NewReader(`["travel"]`))
	assert.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	db := testutils.NewDB(t)
	gp, tp := writeDocs(t, goalsDoc, teachersDoc)
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())

	report, err := s.Run(context.Background(), gp, tp)
	require.NoError(t, err)
	assert.Equal(t, 4, report.GoalsInserted)
	assert.Equal(t, 2, report.TeachersInserted)
	assert.False(t, report.GoalsSkipped)
	assert.False(t, report.TeachersSkipped)

	var goals []models.Goal
	require.NoError(t, db.Order("id ASC").Find(&goals).Error)
	assert.Equal(t, uint(1), goals[0].ID)
	assert.Equal(t, "travel", goals[0].Key)
	assert.Equal(t, "relocate", goals[3].Key)

	var anna models.Teacher
	require.NoError(t, db.Preload("Goals").First(&anna, 1).Error)
	assert.Equal(t, "Анна", anna.Name)
	assert.ElementsMatch(t, []string{"travel", "work"}, testutils.GoalKeys(&anna))
	assert.Equal(t, []string{"18:00"}, anna.Free.Data()["fri"])

	var boris models.Teacher
	require.NoError(t, db.First(&boris, 2).Error)
	assert.Nil(t, boris.Rating)
	assert.Nil(t, boris.Picture)
}

func TestSeeder_Run_Twice(t *testing.T) {
	db := testutils.NewDB(t)
	gp, tp := writeDocs(t, goalsDoc, teachersDoc)
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())
	ctx := context.Background()

	_, err := s.Run(ctx, gp, tp)
	require.NoError(t, err)

	report, err := s.Run(ctx, gp, tp)
	require.NoError(t, err)
	assert.True(t, report.GoalsSkipped)
	assert.True(t, report.TeachersSkipped)
	assert.Zero(t, report.GoalsInserted)
	assert.Zero(t, report.TeachersInserted)

	assert.Equal(t, int64(4), count(t, db, &models.Goal{}))
	assert.Equal(t, int64(2), count(t, db, &models.Teacher{}))
	assert.Equal(t, int64(3), count(t, db, &models.TeacherGoal{}))
}

func TestSeeder_HalvesAreIndependent(t *testing.T) {
	db := testutils.NewDB(t)
	testutils.DefaultGoals(t, db)
	gp, tp := writeDocs(t, "not json at all", teachersDoc)
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())

	// the goals half is skipped before its broken file is read
	report, err := s.Run(context.Background(), gp, tp)
	require.NoError(t, err)
	assert.True(t, report.GoalsSkipped)
	assert.Equal(t, 2, report.TeachersInserted)
}

func TestSeeder_SeedGoals_AlreadySeeded(t *testing.T) {
	db := testutils.NewDB(t)
	testutils.SeedGoals(t, db, [2]string{"travel", "Для путешествий"})
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())

	_, err := s.SeedGoals(context.Background(), []GoalRecord{{"work", "Для работы"}})
	assert.ErrorIs(t, err, errdefs.ErrAlreadySeeded)
	assert.Equal(t, int64(1), count(t, db, &models.Goal{}))
}

func TestSeeder_UnknownGoal_Fatal(t *testing.T) {
	db := testutils.NewDB(t)
	testutils.SeedGoals(t, db, [2]string{"travel", "Для путешествий"})
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())

	_, err := s.SeedTeachers(context.Background(), []TeacherRecord{
		{ID: 1, Name: "Анна", About: "a", Price: 900, Goals: []string{"travel"}},
		{ID: 2, Name: "Борис", About: "b", Price: 900, Goals: []string{"travel", "space"}},
	})
	require.ErrorIs(t, err, errdefs.ErrUnknownGoal)
	assert.Contains(t, err.Error(), "space")

	assert.Zero(t, count(t, db, &models.Teacher{}))
	assert.Zero(t, count(t, db, &models.TeacherGoal{}))
}

func TestSeeder_UnknownGoal_Skip(t *testing.T) {
	db := testutils.NewDB(t)
	testutils.SeedGoals(t, db, [2]string{"travel", "Для путешествий"})
	s := NewSeeder(db, SeedOptions{SkipUnknownGoals: true}, zap.NewNop())

	n, err := s.SeedTeachers(context.Background(), []TeacherRecord{
		{ID: 1, Name: "Анна", About: "a", Price: 900, Goals: []string{"travel", "space"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(1), count(t, db, &models.TeacherGoal{}))
}

func TestSeeder_UniqueViolation(t *testing.T) {
	db := testutils.NewDB(t)
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())
	ctx := context.Background()

	_, err := s.SeedGoals(ctx, []GoalRecord{{"travel", "Для путешествий"}, {"trip", "Для путешествий"}})
	require.ErrorIs(t, err, errdefs.ErrUniqueViolation)
	assert.Zero(t, count(t, db, &models.Goal{}))

	_, err = s.SeedTeachers(ctx, []TeacherRecord{
		{ID: 1, Name: "Анна", About: "same", Price: 900},
		{ID: 2, Name: "Борис", About: "same", Price: 900},
	})
	require.ErrorIs(t, err, errdefs.ErrUniqueViolation)
	assert.Zero(t, count(t, db, &models.Teacher{}))
}

func TestSeeder_InvalidRecords(t *testing.T) {
	db := testutils.NewDB(t)
	s := NewSeeder(db, SeedOptions{}, zap.NewNop())
	ctx := context.Background()

	_, err := s.SeedTeachers(ctx, []TeacherRecord{{ID: 1, Name: "", About: "a"}})
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	_, err = s.SeedTeachers(ctx, []TeacherRecord{
		{ID: 1, Name: "Анна", About: "a", Free: models.Schedule{"monday": {"8:00"}}},
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	_, err = s.SeedGoals(ctx, []GoalRecord{{"", "label"}})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}
