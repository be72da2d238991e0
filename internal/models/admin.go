package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	ID        uint   `gorm:"primaryKey"`
	AdminID   string `gorm:"type:uuid;uniqueIndex"`
	Username  string `gorm:"uniqueIndex"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	FullName  string
	Superuser bool
	Staff     bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	if a.AdminID == "" {
		a.AdminID = uuid.NewString()
	}
	return nil
}
