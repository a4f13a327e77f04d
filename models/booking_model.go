package models

import "time"

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek string    `gorm:"size:10;not null" json:"day_of_week"`
	TimeStr   string    `gorm:"size:10;not null" json:"time_str"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	TeacherID uint      `gorm:"not null;index" json:"teacher_id"`
	Teacher   *Teacher  `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"teacher,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
