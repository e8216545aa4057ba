package database

import (
	"covertrip/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.TravelOrder{})
}
