package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string  `gorm:"not null;unique"`
	Password string  `gorm:"not null"`
	Role     string  `gorm:"not null;default:'User'"`
	Member   *Member `gorm:"constraint:OnDelete:CASCADE;"`
	Orders   []Order `gorm:"constraint:OnDelete:CASCADE;"`
}
