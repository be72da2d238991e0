package models

import (
	"time"
)

// Booking is an active or historical whole-room reservation. At most one
// booking per room and per student may be open (returned = false); the
// constraint is backed by partial unique indexes created in database.Migrate.
type Booking struct {
	ID        uint       `gorm:"primaryKey"`
	StudentID uint       `gorm:"index"`
	Student   Student    `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	RoomID    uint       `gorm:"index"`
	Room      RoomToRent `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	StartTime time.Time
	EndTime   *time.Time
	Returned  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemBooking is an active or historical item loan. At most one booking per
// (student, item) pair may be open at a time.
type ItemBooking struct {
	ID        uint    `gorm:"primaryKey"`
	StudentID uint    `gorm:"index"`
	Student   Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	ItemID    uint    `gorm:"index"`
	Item      Item    `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	StartDate time.Time
	EndDate   *time.Time
	Returned  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
