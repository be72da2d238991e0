package models

import (
	"time"
)

type Faculty struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	AdminID   uint   `gorm:"index"`
	Admin     Admin  `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
