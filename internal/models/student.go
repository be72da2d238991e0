package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student accounts log in with their index number as username.
type Student struct {
	ID        uint   `gorm:"primaryKey"`
	StudentID string `gorm:"type:uuid;uniqueIndex"`
	Username  string `gorm:"uniqueIndex"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	FullName  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if s.StudentID == "" {
		s.StudentID = uuid.NewString()
	}
	return nil
}
