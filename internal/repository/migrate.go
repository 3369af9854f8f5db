package repository

import "gorm.io/gorm"

// Migrate brings the schema up to date and installs the double-booking
// guard: a partial unique index that ignores cancelled rows, so a freed
// slot can be booked again.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&appointmentModel{},
		&scheduleModel{},
		&clientModel{},
	); err != nil {
		return err
	}

	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON appointments (date, start_time) WHERE status <> 'cancelled'`).Error
}
