package models

import "gorm.io/gorm"

// AutoMigrate creates the catalogue, booking and request tables with their
// foreign keys, join table included.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Teacher{}, "Goals", &TeacherGoal{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&Goal{},
		&Teacher{},
		&Booking{},
		&Request{},
	)
}
