package models

type Goal struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"size:50;not null;unique" json:"key"`
	Value string `gorm:"size:100;not null;unique" json:"value"`
}

func (Goal) TableName() string {
	return "goals"
}

// TeacherGoal is the teachers_goals join row. Goal to teacher navigation goes
// through this table instead of a back-reference on Goal.
type TeacherGoal struct {
	TeacherID uint `gorm:"primaryKey"`
	GoalID    uint `gorm:"primaryKey"`
}

func (TeacherGoal) TableName() string {
	return "teachers_goals"
}

const DefaultRequestGoal = "travel"

// RequestGoals are the goal keys offered on the tutor-finder form.
var RequestGoals = []string{"travel", "study", "work", "relocate"}
