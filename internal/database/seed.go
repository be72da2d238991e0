package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/config"
	"github.com/campusrent/backend_v1/internal/models"
	"github.com/campusrent/backend_v1/internal/utils"
)

// SeedAdmin creates the first superuser account so a fresh deployment can be
// administered at all. No-op when any admin already exists.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  hashed,
		FullName:  cfg.AdminFullName,
		Superuser: true,
		Staff:     true,
		Active:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("seeded initial admin")
	return nil
}
