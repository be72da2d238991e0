package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/config"
	"github.com/campusrent/backend_v1/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Student{},
		&models.Faculty{},
		&models.Building{},
		&models.RoomToRent{},
		&models.RoomWithItems{},
		&models.ItemType{},
		&models.ItemAttribute{},
		&models.Item{},
		&models.Booking{},
		&models.ItemBooking{},
	); err != nil {
		return err
	}

	// At most one open booking per room and per student.
	if err := db.Exec(`
	  CREATE UNIQUE INDEX IF NOT EXISTS bookings_one_open_per_room
	  ON bookings (room_id)
	  WHERE NOT returned;
	`).Error; err != nil {
		return err
	}
	if err := db.Exec(`
	  CREATE UNIQUE INDEX IF NOT EXISTS bookings_one_open_per_student
	  ON bookings (student_id)
	  WHERE NOT returned;
	`).Error; err != nil {
		return err
	}

	// At most one open loan per (student, item) pair.
	if err := db.Exec(`
	  CREATE UNIQUE INDEX IF NOT EXISTS item_bookings_one_open_per_student_item
	  ON item_bookings (student_id, item_id)
	  WHERE NOT returned;
	`).Error; err != nil {
		return err
	}

	// Stock can never go negative regardless of application bugs.
	if err := db.Exec(`
	  ALTER TABLE items DROP CONSTRAINT IF EXISTS items_amount_non_negative;
	`).Error; err != nil {
		return err
	}
	return db.Exec(`
	  ALTER TABLE items ADD CONSTRAINT items_amount_non_negative CHECK (amount >= 0);
	`).Error
}
