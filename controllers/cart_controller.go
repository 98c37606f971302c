package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gin-bookstore/constants"
	"gin-bookstore/models"
	"gin-bookstore/services"
	"gin-bookstore/sessions"
)

type ICartController interface {
	AddToCart(ctx *gin.Context)
	ViewCart(ctx *gin.Context)
}

type CartController struct {
	service     services.ICartService
	bookService services.IBookService
	store       sessions.ISessionStore
}

func NewCartController(service services.ICartService, bookService services.IBookService, store sessions.ISessionStore) ICartController {
	return &CartController{service: service, bookService: bookService, store: store}
}

// AddToCart puts one more unit of a book into the session cart. A missing
// book or empty stock is a silent no-op back to the catalog.
func (c *CartController) AddToCart(ctx *gin.Context) {
	session, sessionID, _ := currentSession(ctx)

	bookID, err := strconv.ParseUint(ctx.Param("bookId"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	book, err := c.bookService.FindById(uint(bookID))
	if err != nil {
		if errors.Is(err, models.ErrBookNotFound) {
			ctx.Redirect(http.StatusFound, "/")
			return
		}
		logrus.Errorf("Failed to fetch book: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}
	if book.Stock <= 0 {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	session.AddToCart(book.ID)
	if err := c.store.Save(ctx.Request.Context(), sessionID, session); err != nil {
		logrus.Errorf("Failed to save session: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

func (c *CartController) ViewCart(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	lines, total, err := c.service.View(session.Cart)
	if err != nil {
		logrus.Errorf("Failed to price cart: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "cart.html", gin.H{
		"Session": session,
		"Lines":   lines,
		"Total":   total,
	})
}
