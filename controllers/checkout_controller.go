package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gin-bookstore/constants"
	"gin-bookstore/dto"
	"gin-bookstore/models"
	"gin-bookstore/services"
	"gin-bookstore/sessions"
)

type ICheckoutController interface {
	Review(ctx *gin.Context)
	Submit(ctx *gin.Context)
	Orders(ctx *gin.Context)
}

type CheckoutController struct {
	service      services.ICheckoutService
	orderService services.IOrderService
	store        sessions.ISessionStore
}

func NewCheckoutController(service services.ICheckoutService, orderService services.IOrderService, store sessions.ISessionStore) ICheckoutController {
	return &CheckoutController{service: service, orderService: orderService, store: store}
}

// Review renders the checkout page: current prices, membership discount
// and final total. A cart line whose stock ran out sends the caller back
// to the cart without mutating anything.
func (c *CheckoutController) Review(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	summary, err := c.service.Review(session.UserID, session.Cart)
	if err != nil {
		if errors.Is(err, models.ErrStockInsufficient) || errors.Is(err, models.ErrBookNotFound) {
			ctx.Redirect(http.StatusFound, "/cart")
			return
		}
		logrus.Errorf("Checkout review error: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "checkout.html", gin.H{
		"Session": session,
		"Summary": summary,
	})
}

// Submit commits the checkout. On success the cart is cleared and the
// caller lands on their order list; on failure nothing is committed and
// the error surfaces.
func (c *CheckoutController) Submit(ctx *gin.Context) {
	session, sessionID, _ := currentSession(ctx)

	var card dto.CardInput
	if err := ctx.ShouldBind(&card); err != nil {
		summary, reviewErr := c.service.Review(session.UserID, session.Cart)
		if reviewErr != nil {
			ctx.Redirect(http.StatusFound, "/cart")
			return
		}
		ctx.HTML(http.StatusBadRequest, "checkout.html", gin.H{
			"Session": session,
			"Summary": summary,
			"Error":   constants.ErrInvalidInput,
		})
		return
	}

	_, err := c.service.Commit(session.UserID, session.Cart, card)
	if err != nil {
		if errors.Is(err, models.ErrStockInsufficient) || errors.Is(err, models.ErrBookNotFound) {
			ctx.Redirect(http.StatusFound, "/cart")
			return
		}
		// ロールバック済み。エラーは握りつぶさず呼び出し元へ返す
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	session.ClearCart()
	if err := c.store.Save(ctx.Request.Context(), sessionID, session); err != nil {
		logrus.Errorf("Failed to clear cart after checkout: %v", err)
	}

	ctx.Redirect(http.StatusFound, "/orders")
}

func (c *CheckoutController) Orders(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	orders, err := c.orderService.FindByUser(session.UserID)
	if err != nil {
		logrus.Errorf("Failed to list orders: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "user_orders.html", gin.H{
		"Session": session,
		"Orders":  *orders,
	})
}
