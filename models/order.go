package models

import "gorm.io/gorm"

// Order is created atomically with its items, the stock decrements and the
// payment row. Total is the amount after discount.
type Order struct {
	gorm.Model
	UserID   uint        `gorm:"not null;index"`
	Total    float64     `gorm:"not null"`
	Discount float64     `gorm:"not null;default:0"`
	Items    []OrderItem `gorm:"constraint:OnDelete:CASCADE;"`
	Payment  *Payment    `gorm:"constraint:OnDelete:CASCADE;"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index"`
	BookID    uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

type Payment struct {
	gorm.Model
	OrderID     uint    `gorm:"not null;uniqueIndex"`
	CardNumber  string  `gorm:"not null"`
	ExpiryMonth int     `gorm:"not null"`
	ExpiryYear  int     `gorm:"not null"`
	Amount      float64 `gorm:"not null"`
}
