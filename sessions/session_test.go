package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddToCartIncrementsInsteadOfDuplicating(t *testing.T) {
	session := NewSession(1, "alice", "User")

	session.AddToCart(10)
	session.AddToCart(10)
	session.AddToCart(20)

	assert.Len(t, session.Cart, 2)
	assert.Equal(t, 2, session.Cart[10])
	assert.Equal(t, 1, session.Cart[20])
	assert.Equal(t, 3, session.CartSize())
}

func TestAddToCartWithNilCart(t *testing.T) {
	session := &Session{UserID: 1, Role: "User"}

	session.AddToCart(5)

	assert.Equal(t, 1, session.Cart[5])
}

func TestClearCart(t *testing.T) {
	session := NewSession(1, "alice", "User")
	session.AddToCart(10)
	session.AddToCart(20)

	session.ClearCart()

	assert.Empty(t, session.Cart)
	assert.Equal(t, 0, session.CartSize())
}
