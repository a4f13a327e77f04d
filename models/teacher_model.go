package models

import "gorm.io/datatypes"

type Teacher struct {
	ID      uint                         `gorm:"primaryKey" json:"id"`
	Name    string                       `gorm:"size:80;not null;unique" json:"name"`
	About   string                       `gorm:"type:text;not null;unique" json:"about"`
	Rating  *float64                     `json:"rating"`
	Picture *string                      `gorm:"size:100;unique" json:"picture"`
	Price   int                          `gorm:"not null" json:"price"`
	Free    datatypes.JSONType[Schedule] `json:"free"`
	Goals   []*Goal                      `gorm:"many2many:teachers_goals;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"goals,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}
