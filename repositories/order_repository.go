package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gin-bookstore/models"
)

// OrderLine is one cart entry at its commit-time price.
type OrderLine struct {
	BookID    uint
	Quantity  int
	UnitPrice float64
}

type IOrderRepository interface {
	CreateOrder(userID uint, lines []OrderLine, total float64, discount float64, payment models.Payment) (*models.Order, error)
	FindByUser(userID uint) (*[]models.Order, error)
	FindAll() (*[]models.Order, error)
	FindWithItems(orderID uint) (*models.Order, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder runs the whole checkout commit in one transaction: the order
// row, one item per cart line, the stock decrements and the payment row.
// Any failure rolls back every change. The decrement is guarded so that
// stock can never go negative, even when two checkouts raced past review.
func (r *OrderRepository) CreateOrder(userID uint, lines []OrderLine, total float64, discount float64, payment models.Payment) (*models.Order, error) {
	order := models.Order{
		UserID:   userID,
		Total:    total,
		Discount: discount,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				BookID:    line.BookID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			result := tx.Model(&models.Book{}).
				Where("id = ? AND stock >= ?", line.BookID, line.Quantity).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrStockInsufficient
			}
		}

		payment.OrderID = order.ID
		payment.Amount = total
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByUser is owner-scoped: a user only ever sees their own orders.
func (r *OrderRepository) FindByUser(userID uint) (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Order("created_at desc").Find(&orders, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}

func (r *OrderRepository) FindAll() (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Order("created_at desc").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}

// FindWithItems is admin-scoped: it ignores ownership, matching the
// original's row-visibility elevation for the admin order detail page.
func (r *OrderRepository) FindWithItems(orderID uint) (*models.Order, error) {
	var order models.Order
	result := r.db.Preload("Items").Preload("Payment").First(&order, "id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return &order, nil
}
