package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gin-bookstore/infra"
	"gin-bookstore/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func testPayment() models.Payment {
	return models.Payment{CardNumber: "4111111111111111", ExpiryMonth: 12, ExpiryYear: 2030}
}

func TestCreateOrderCommitsAllRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	book := models.Book{Title: "Book A", Author: "a", Price: 20.00, Stock: 5}
	require.NoError(t, db.Create(&book).Error)

	lines := []OrderLine{{BookID: book.ID, Quantity: 2, UnitPrice: 20.00}}
	order, err := repo.CreateOrder(1, lines, 40.00, 0, testPayment())
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	var reloaded models.Book
	require.NoError(t, db.First(&reloaded, book.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)

	detail, err := repo.FindWithItems(order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	require.NotNil(t, detail.Payment)
	assert.InDelta(t, 40.00, detail.Payment.Amount, 1e-9)
}

// A mid-transaction failure must leave zero visible effect: no order row,
// no items, no payment, no stock change.
func TestCreateOrderRollsBackOnStockFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	bookA := models.Book{Title: "Book A", Author: "a", Price: 20.00, Stock: 5}
	bookB := models.Book{Title: "Book B", Author: "b", Price: 15.00, Stock: 1}
	require.NoError(t, db.Create(&bookA).Error)
	require.NoError(t, db.Create(&bookB).Error)

	// 最初の行は成功し、2行目の在庫減算で失敗する
	lines := []OrderLine{
		{BookID: bookA.ID, Quantity: 2, UnitPrice: 20.00},
		{BookID: bookB.ID, Quantity: 3, UnitPrice: 15.00},
	}
	_, err := repo.CreateOrder(1, lines, 85.00, 0, testPayment())
	assert.ErrorIs(t, err, models.ErrStockInsufficient)

	var orderCount, itemCount, paymentCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.NoError(t, db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, paymentCount)

	var reloadedA, reloadedB models.Book
	require.NoError(t, db.First(&reloadedA, bookA.ID).Error)
	require.NoError(t, db.First(&reloadedB, bookB.ID).Error)
	assert.Equal(t, 5, reloadedA.Stock)
	assert.Equal(t, 1, reloadedB.Stock)
}

func TestFindByUserIsOwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	book := models.Book{Title: "Book A", Author: "a", Price: 10.00, Stock: 10}
	require.NoError(t, db.Create(&book).Error)

	lines := []OrderLine{{BookID: book.ID, Quantity: 1, UnitPrice: 10.00}}
	_, err := repo.CreateOrder(1, lines, 10.00, 0, testPayment())
	require.NoError(t, err)
	_, err = repo.CreateOrder(2, lines, 10.00, 0, testPayment())
	require.NoError(t, err)

	mine, err := repo.FindByUser(1)
	require.NoError(t, err)
	assert.Len(t, *mine, 1)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, *all, 2)
}

func TestFindWithItemsMissingOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.FindWithItems(4242)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}
