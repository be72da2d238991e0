package models

import (
	"time"
)

type Building struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"uniqueIndex"`
	FacultyID uint    `gorm:"index"`
	Faculty   Faculty `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
