package models

import (
	"time"
)

// Item is a countable lendable object stocked in a RoomWithItems. Amount is
// the quantity currently on the shelf; it is only written inside the
// reservation transaction that opens or closes an ItemBooking.
type Item struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex"`
	Amount      int            `gorm:"not null;default:0"`
	RoomID      uint           `gorm:"index"`
	Room        RoomWithItems  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	TypeID      *uint          `gorm:"index"`
	Type        *ItemType      `gorm:"foreignKey:TypeID;constraint:OnDelete:SET NULL"`
	AttributeID *uint          `gorm:"index"`
	Attribute   *ItemAttribute `gorm:"foreignKey:AttributeID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
