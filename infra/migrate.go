package infra

import (
	"gorm.io/gorm"

	"gin-bookstore/models"
)

// Migrate creates the bookstore schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Book{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}
