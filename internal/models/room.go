package models

import (
	"time"
)

// RoomToRent is bookable as a whole by a single student at a time.
// Available is a derived flag; it is only written inside the reservation
// transaction that creates or closes the owning Booking.
type RoomToRent struct {
	ID         uint     `gorm:"primaryKey"`
	RoomNumber int      `gorm:"uniqueIndex:idx_rooms_to_rent_number_building"`
	BuildingID uint     `gorm:"uniqueIndex:idx_rooms_to_rent_number_building"`
	Building   Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Available  bool     `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RoomWithItems is a container for individually lendable items.
type RoomWithItems struct {
	ID         uint     `gorm:"primaryKey"`
	RoomNumber int      `gorm:"uniqueIndex:idx_rooms_with_items_number_building"`
	BuildingID uint     `gorm:"uniqueIndex:idx_rooms_with_items_number_building"`
	Building   Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
