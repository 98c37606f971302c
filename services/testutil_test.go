package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gin-bookstore/infra"
	"gin-bookstore/models"
)

// setupTestDB opens a fresh in-memory database per test. The named DSN
// keeps all pooled connections on the same database, which plain
// ":memory:" does not guarantee.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func seedBook(t *testing.T, db *gorm.DB, title string, price float64, stock int) *models.Book {
	t.Helper()
	book := models.Book{Title: title, Author: "author", Price: price, Stock: stock}
	require.NoError(t, db.Create(&book).Error)
	return &book
}

func seedUser(t *testing.T, db *gorm.DB, username string, role string) *models.User {
	t.Helper()
	user := models.User{Username: username, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
