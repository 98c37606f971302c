package services

import (
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

// CartLine is one cart entry priced at the current catalog price.
type CartLine struct {
	Book     models.Book
	Quantity int
	Subtotal float64
}

type ICartService interface {
	View(cart map[uint]int) ([]CartLine, float64, error)
}

type CartService struct {
	bookRepository repositories.IBookRepository
}

func NewCartService(bookRepository repositories.IBookRepository) ICartService {
	return &CartService{bookRepository: bookRepository}
}

// View prices every cart entry against the current book rows. It does not
// check stock sufficiency; that is deferred to checkout review.
func (s *CartService) View(cart map[uint]int) ([]CartLine, float64, error) {
	lines := make([]CartLine, 0, len(cart))
	total := 0.0

	for bookID, qty := range cart {
		book, err := s.bookRepository.FindById(bookID)
		if err != nil {
			return nil, 0, err
		}
		subtotal := book.Price * float64(qty)
		total += subtotal
		lines = append(lines, CartLine{Book: *book, Quantity: qty, Subtotal: subtotal})
	}
	return lines, total, nil
}
