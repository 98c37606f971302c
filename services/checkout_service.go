package services

import (
	"sort"

	"github.com/sirupsen/logrus"

	"gin-bookstore/dto"
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

// Members get 10% off the cart total at checkout.
const memberDiscountRate = 0.10

// CheckoutSummary is the review-phase result rendered on the checkout page
// and re-computed on commit.
type CheckoutSummary struct {
	Lines      []CartLine
	Total      float64
	Discount   float64
	FinalTotal float64
}

type ICheckoutService interface {
	Review(userID uint, cart map[uint]int) (*CheckoutSummary, error)
	Commit(userID uint, cart map[uint]int, card dto.CardInput) (*models.Order, error)
}

type CheckoutService struct {
	bookRepository   repositories.IBookRepository
	orderRepository  repositories.IOrderRepository
	memberRepository repositories.IMemberRepository
}

func NewCheckoutService(
	bookRepository repositories.IBookRepository,
	orderRepository repositories.IOrderRepository,
	memberRepository repositories.IMemberRepository,
) ICheckoutService {
	return &CheckoutService{
		bookRepository:   bookRepository,
		orderRepository:  orderRepository,
		memberRepository: memberRepository,
	}
}

// Review re-validates every cart line against current price and stock
// without mutating anything. A line whose stock no longer covers its
// quantity fails the whole review. The stock check here is best-effort;
// the commit transaction re-enforces it with the guarded decrement.
func (s *CheckoutService) Review(userID uint, cart map[uint]int) (*CheckoutSummary, error) {
	lines := make([]CartLine, 0, len(cart))
	total := 0.0

	for bookID, qty := range cart {
		book, err := s.bookRepository.FindById(bookID)
		if err != nil {
			return nil, err
		}
		if book.Stock < qty {
			return nil, models.ErrStockInsufficient
		}
		subtotal := book.Price * float64(qty)
		total += subtotal
		lines = append(lines, CartLine{Book: *book, Quantity: qty, Subtotal: subtotal})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Book.ID < lines[j].Book.ID })

	discount := 0.0
	member, err := s.memberRepository.FindByUserId(userID)
	if err != nil {
		return nil, err
	}
	if member != nil {
		discount = total * memberDiscountRate
	}

	return &CheckoutSummary{
		Lines:      lines,
		Total:      total,
		Discount:   discount,
		FinalTotal: total - discount,
	}, nil
}

// Commit re-runs the review, then creates the order, its items, the stock
// decrements and the payment row in one transaction. Failures roll back
// every change, are logged and propagated; a financial write never fails
// silently.
func (s *CheckoutService) Commit(userID uint, cart map[uint]int, card dto.CardInput) (*models.Order, error) {
	summary, err := s.Review(userID, cart)
	if err != nil {
		return nil, err
	}

	lines := make([]repositories.OrderLine, len(summary.Lines))
	for i, line := range summary.Lines {
		lines[i] = repositories.OrderLine{
			BookID:    line.Book.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Book.Price,
		}
	}

	payment := models.Payment{
		CardNumber:  card.CardNumber,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
	}

	order, err := s.orderRepository.CreateOrder(userID, lines, summary.FinalTotal, summary.Discount, payment)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  summary.FinalTotal,
			"error":   err.Error(),
		}).Error("Checkout failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"order_id": order.ID,
		"amount":   order.Total,
		"discount": order.Discount,
	}).Info("Checkout committed")
	return order, nil
}
