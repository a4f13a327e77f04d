package models

import "time"

type Request struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:80;not null" json:"name"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	TimeForStudy string    `gorm:"size:200;not null" json:"time_for_study"`
	GoalID       uint      `gorm:"not null;index" json:"goal_id"`
	Goal         *Goal     `gorm:"foreignKey:GoalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"goal,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Request) TableName() string {
	return "requests"
}

const DefaultTimeBudget = "1-2 часа в неделю"

// TimeBudgets are the weekly study-time buckets offered on the tutor-finder form.
var TimeBudgets = []string{
	"1-2 часа в неделю",
	"3-5 часов в неделю",
	"5-7 часов в неделю",
	"7-10 часов в неделю",
}

func IsTimeBudget(s string) bool {
	for _, b := range TimeBudgets {
		if b == s {
			return true
		}
	}
	return false
}
