package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/anjiri1684/tutor_booking/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newTeacher(name, about string, picture *string) *models.Teacher {
	return &models.Teacher{
		Name:    name,
		About:   about,
		Picture: picture,
		Price:   1000,
		Free:    datatypes.NewJSONType(models.Schedule{"tue": {"9:00"}}),
	}
}

// ── constraints ─────────────────────────────────────────────────────

func TestBookingRepository_Create_UnknownTeacher(t *testing.T) {
	db := testutils.NewDB(t)
	repo := repository.NewGormBookingRepository(db)

	err := repo.Create(context.Background(), &models.Booking{
		DayOfWeek: "mon", TimeStr: "8:00", Name: "Ivan", Phone: "+79001234567", TeacherID: 999,
	})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRequestRepository_Create_UnknownGoal(t *testing.T) {
	db := testutils.NewDB(t)
	repo := repository.NewGormRequestRepository(db)

	err := repo.Create(context.Background(), &models.Request{
		Name: "Maria", Phone: "+79001234567", TimeForStudy: models.DefaultTimeBudget, GoalID: 999,
	})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestTeacherGoal_RejectsUnknownRows(t *testing.T) {
	db := testutils.NewDB(t)
	goals := testutils.DefaultGoals(t, db)
	teacher := testutils.CreateTeacher(t, db, "anna", nil)

	assert.Error(t, db.Create(&models.TeacherGoal{TeacherID: teacher.ID, GoalID: 999}).Error)
	assert.Error(t, db.Create(&models.TeacherGoal{TeacherID: 999, GoalID: goals["travel"].ID}).Error)
	assert.NoError(t, db.Create(&models.TeacherGoal{TeacherID: teacher.ID, GoalID: goals["travel"].ID}).Error)
}

func TestTeacherRepository_Create_Unique(t *testing.T) {
	db := testutils.NewDB(t)
	repo := repository.NewGormTeacherRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTeacher("anna", "about anna", testutils.String("a.png"))))

	tests := []struct {
		name    string
		teacher *models.Teacher
	}{
		{"name", newTeacher("anna", "someone else", nil)},
		{"about", newTeacher("boris", "about anna", nil)},
		{"picture", newTeacher("vera", "about vera", testutils.String("a.png"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, repo.Create(ctx, tc.teacher), errdefs.ErrUniqueViolation)
		})
	}

	// unset pictures do not collide
	require.NoError(t, repo.Create(ctx, newTeacher("gleb", "about gleb", nil)))
	require.NoError(t, repo.Create(ctx, newTeacher("dina", "about dina", nil)))
}

func TestGoalRepository_Create_Unique(t *testing.T) {
	db := testutils.NewDB(t)
	testutils.DefaultGoals(t, db)
	repo := repository.NewGormGoalRepository(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Create(ctx, &models.Goal{Key: "travel", Value: "Другое"}), errdefs.ErrUniqueViolation)
	assert.ErrorIs(t, repo.Create(ctx, &models.Goal{Key: "other", Value: "Для работы"}), errdefs.ErrUniqueViolation)
}

// ── queries ─────────────────────────────────────────────────────────

func TestTeacherRepository_Lookups(t *testing.T) {
	db := testutils.NewDB(t)
	goals := testutils.DefaultGoals(t, db)
	anna := testutils.CreateTeacher(t, db, "anna", testutils.Float(4.2), goals["travel"], goals["work"])
	boris := testutils.CreateTeacher(t, db, "boris", nil, goals["work"])
	repo := repository.NewGormTeacherRepository(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, anna.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"travel", "work"}, testutils.GoalKeys(got))

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{anna.ID, boris.ID}, ids)

	teachers, err := repo.ListByIDs(ctx, []uint{boris.ID, 999})
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "boris", teachers[0].Name)

	teachers, err = repo.ListByGoal(ctx, goals["work"].ID)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "anna", teachers[0].Name)
	assert.Equal(t, "boris", teachers[1].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestGoalRepository_Lookups(t *testing.T) {
	db := testutils.NewDB(t)
	testutils.DefaultGoals(t, db)
	repo := repository.NewGormGoalRepository(db)
	ctx := context.Background()

	goal, err := repo.GetByKey(ctx, "relocate")
	require.NoError(t, err)
	assert.Equal(t, "Для переезда", goal.Value)

	_, err = repo.GetByKey(ctx, "nope")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	goals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 5)
	assert.Equal(t, "travel", goals[0].Key)
}

func TestCountBetween_HalfOpen(t *testing.T) {
	db := testutils.NewDB(t)
	goals := testutils.DefaultGoals(t, db)
	teacher := testutils.CreateTeacher(t, db, "anna", nil, goals["travel"])
	ctx := context.Background()

	since := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	until := since.Add(time.Hour)

	for _, at := range []time.Time{since.Add(-time.Second), since, until.Add(-time.Second), until} {
		require.NoError(t, db.Create(&models.Booking{
			DayOfWeek: "mon", TimeStr: "8:00", Name: "Ivan", Phone: "+79001234567",
			TeacherID: teacher.ID, CreatedAt: at,
		}).Error)
		require.NoError(t, db.Create(&models.Request{
			Name: "Maria", Phone: "+79001234567", TimeForStudy: models.DefaultTimeBudget,
			GoalID: goals["travel"].ID, CreatedAt: at,
		}).Error)
	}

	n, err := repository.NewGormBookingRepository(db).CountBetween(ctx, since, until)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repository.NewGormRequestRepository(db).CountBetween(ctx, since, until)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
