package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gin-bookstore/constants"
	"gin-bookstore/infra"
	"gin-bookstore/middlewares"
	"gin-bookstore/models"
	"gin-bookstore/repositories"
	"gin-bookstore/services"
	"gin-bookstore/sessions"
)

// stubSessionStore keeps sessions in memory, standing in for Redis.
type stubSessionStore struct {
	data map[string]*sessions.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{data: map[string]*sessions.Session{}}
}

func (s *stubSessionStore) Create(_ context.Context, session *sessions.Session) (string, error) {
	sessionID := "test-" + strconv.Itoa(len(s.data)+1)
	s.data[sessionID] = session
	return sessionID, nil
}

func (s *stubSessionStore) Get(_ context.Context, sessionID string) (*sessions.Session, error) {
	return s.data[sessionID], nil
}

func (s *stubSessionStore) Save(_ context.Context, sessionID string, session *sessions.Session) error {
	s.data[sessionID] = session
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func newCartRouter(t *testing.T, db *gorm.DB, store sessions.ISessionStore, session *sessions.Session, sessionID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bookRepository := repositories.NewBookRepository(db)
	controller := NewCartController(
		services.NewCartService(bookRepository),
		services.NewBookService(bookRepository),
		store,
	)

	r := gin.New()
	r.GET("/add_to_cart/:bookId",
		func(ctx *gin.Context) {
			ctx.Set(middlewares.ContextSession, session)
			ctx.Set(middlewares.ContextSessionID, sessionID)
			ctx.Next()
		},
		middlewares.RequireRole(constants.RoleUser),
		controller.AddToCart,
	)
	return r
}

func addToCart(r http.Handler, bookID uint) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/add_to_cart/"+strconv.Itoa(int(bookID)), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddToCartIncrementsSessionCart(t *testing.T) {
	db := setupTestDB(t)
	book := models.Book{Title: "Book A", Author: "a", Price: 20.00, Stock: 5}
	require.NoError(t, db.Create(&book).Error)

	store := newStubSessionStore()
	session := sessions.NewSession(1, "alice", constants.RoleUser)
	sessionID, err := store.Create(context.Background(), session)
	require.NoError(t, err)

	r := newCartRouter(t, db, store, session, sessionID)

	rec := addToCart(r, book.ID)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = addToCart(r, book.ID)
	assert.Equal(t, http.StatusFound, rec.Code)

	saved, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Cart[book.ID])
}

// An out-of-stock book cannot enter the cart; the request is a silent
// no-op back to the catalog.
func TestAddToCartOutOfStockIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	book := models.Book{Title: "Book A", Author: "a", Price: 20.00, Stock: 0}
	require.NoError(t, db.Create(&book).Error)

	store := newStubSessionStore()
	session := sessions.NewSession(1, "alice", constants.RoleUser)
	sessionID, err := store.Create(context.Background(), session)
	require.NoError(t, err)

	r := newCartRouter(t, db, store, session, sessionID)

	rec := addToCart(r, book.ID)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	saved, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, saved.Cart)
}

func TestAddToCartMissingBookIsNoOp(t *testing.T) {
	db := setupTestDB(t)

	store := newStubSessionStore()
	session := sessions.NewSession(1, "alice", constants.RoleUser)
	sessionID, err := store.Create(context.Background(), session)
	require.NoError(t, err)

	r := newCartRouter(t, db, store, session, sessionID)

	rec := addToCart(r, 9999)
	assert.Equal(t, http.StatusFound, rec.Code)

	saved, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, saved.Cart)
}
