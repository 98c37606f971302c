package sessions

// Session is the per-login state: authenticated identity plus the
// in-progress cart (book id -> quantity). It is created at login and
// destroyed at logout; the cart is cleared after a successful checkout.
type Session struct {
	UserID   uint         `json:"user_id"`
	Username string       `json:"username"`
	Role     string       `json:"role"`
	Cart     map[uint]int `json:"cart"`
}

func NewSession(userID uint, username string, role string) *Session {
	return &Session{
		UserID:   userID,
		Username: username,
		Role:     role,
		Cart:     map[uint]int{},
	}
}

// AddToCart increments the quantity for a book by one. An item already in
// the cart gains quantity instead of a duplicate entry.
func (s *Session) AddToCart(bookID uint) {
	if s.Cart == nil {
		s.Cart = map[uint]int{}
	}
	s.Cart[bookID]++
}

func (s *Session) ClearCart() {
	s.Cart = map[uint]int{}
}

func (s *Session) CartSize() int {
	total := 0
	for _, qty := range s.Cart {
		total += qty
	}
	return total
}
