package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/anjiri1684/tutor_booking/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens a private in-memory sqlite database with foreign keys on and
// the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db), "migrate")
	return db
}

func Float(f float64) *float64 { return &f }

func String(s string) *string { return &s }

// SeedGoals inserts goals in the given key order and returns them by key.
func SeedGoals(t *testing.T, db *gorm.DB, pairs ...[2]string) map[string]*models.Goal {
	t.Helper()

	out := make(map[string]*models.Goal, len(pairs))
	for _, p := range pairs {
		g := &models.Goal{Key: p[0], Value: p[1]}
		require.NoError(t, db.Create(g).Error, "create goal %s", p[0])
		out[p[0]] = g
	}
	return out
}

// DefaultGoals are the four goals offered on the tutor-finder form plus one
// that only exists in the catalogue.
func DefaultGoals(t *testing.T, db *gorm.DB) map[string]*models.Goal {
	return SeedGoals(t, db,
		[2]string{"travel", "Для путешествий"},
		[2]string{"study", "Для школы"},
		[2]string{"work", "Для работы"},
		[2]string{"relocate", "Для переезда"},
		[2]string{"coding", "Для программирования"},
	)
}

// CreateTeacher inserts a teacher linked to the given goals.
func CreateTeacher(t *testing.T, db *gorm.DB, name string, rating *float64, goals ...*models.Goal) *models.Teacher {
	t.Helper()

	teacher := &models.Teacher{
		Name:    name,
		About:   "About " + name,
		Rating:  rating,
		Picture: String("https://example.com/" + name + ".png"),
		Price:   900,
		Free: datatypes.NewJSONType(models.Schedule{
			"mon": {"8:00", "10:00"},
			"fri": {"18:00"},
		}),
		Goals: goals,
	}
	require.NoError(t, db.Omit("Goals.*").Create(teacher).Error, "create teacher %s", name)
	return teacher
}

// GoalKeys lists the keys of a teacher's preloaded goals.
func GoalKeys(teacher *models.Teacher) []string {
	keys := make([]string, 0, len(teacher.Goals))
	for _, g := range teacher.Goals {
		keys = append(keys, g.Key)
	}
	return keys
}
