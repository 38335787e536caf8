package database

import (
	"eventsync/internal/bookings"
	"eventsync/internal/events"
	"eventsync/internal/organisers"
	"eventsync/internal/users"
	"eventsync/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&organisers.Organiser{},
		&venues.Venue{},
		&events.Event{},
		&bookings.Booking{},
		&bookings.Payment{},
	); err != nil {
		return err
	}
	return migrateIndexes(db)
}

// migrateIndexes adds indexes the seat-availability query depends on
func migrateIndexes(db *gorm.DB) error {
	// The sold-tickets sum filters on (event_id, status) for every admission
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_event_status
		ON bookings (event_id, status);
	`).Error
}
