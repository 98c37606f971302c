package models

import "gorm.io/gorm"

// Member is the optional profile a User completes once; its existence is
// the membership predicate used for the checkout discount.
type Member struct {
	gorm.Model
	UserID     uint   `gorm:"not null;uniqueIndex"`
	FullName   string `gorm:"not null"`
	IdentityNo string `gorm:"not null"`
	Email      string `gorm:"not null"`
}
