package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gin-bookstore/constants"
	"gin-bookstore/dto"
	"gin-bookstore/models"
	"gin-bookstore/services"
)

type IAdminController interface {
	Books(ctx *gin.Context)
	CreateBook(ctx *gin.Context)
	Users(ctx *gin.Context)
	Members(ctx *gin.Context)
	Orders(ctx *gin.Context)
	OrderDetails(ctx *gin.Context)
}

type AdminController struct {
	bookService   services.IBookService
	authService   services.IAuthService
	memberService services.IMemberService
	orderService  services.IOrderService
}

func NewAdminController(
	bookService services.IBookService,
	authService services.IAuthService,
	memberService services.IMemberService,
	orderService services.IOrderService,
) IAdminController {
	return &AdminController{
		bookService:   bookService,
		authService:   authService,
		memberService: memberService,
		orderService:  orderService,
	}
}

func (c *AdminController) renderBooks(ctx *gin.Context, status int, formError string) {
	session, _, _ := currentSession(ctx)

	books, err := c.bookService.FindAll()
	if err != nil {
		logrus.Errorf("Failed to list books: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(status, "admin_books.html", gin.H{
		"Session": session,
		"Books":   *books,
		"Error":   formError,
	})
}

func (c *AdminController) Books(ctx *gin.Context) {
	c.renderBooks(ctx, http.StatusOK, "")
}

// CreateBook inserts a catalog row, then re-renders the book list, as the
// original admin page does.
func (c *AdminController) CreateBook(ctx *gin.Context) {
	var input dto.CreateBookInput
	if err := ctx.ShouldBind(&input); err != nil {
		c.renderBooks(ctx, http.StatusBadRequest, constants.ErrInvalidInput)
		return
	}

	if _, err := c.bookService.Create(input); err != nil {
		logrus.Errorf("Failed to create book: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	c.renderBooks(ctx, http.StatusOK, "")
}

func (c *AdminController) Users(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	users, err := c.authService.ListUsers()
	if err != nil {
		logrus.Errorf("Failed to list users: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "admin_users.html", gin.H{
		"Session": session,
		"Users":   *users,
	})
}

func (c *AdminController) Members(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	members, err := c.memberService.ListMembers()
	if err != nil {
		logrus.Errorf("Failed to list members: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "admin_members.html", gin.H{
		"Session": session,
		"Members": *members,
	})
}

func (c *AdminController) Orders(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	orders, err := c.orderService.FindAll()
	if err != nil {
		logrus.Errorf("Failed to list orders: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "admin_orders.html", gin.H{
		"Session": session,
		"Orders":  *orders,
	})
}

func (c *AdminController) OrderDetails(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	orderID, err := strconv.ParseUint(ctx.Param("orderId"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, constants.ErrInvalidID)
		return
	}

	order, err := c.orderService.FindWithItems(uint(orderID))
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			ctx.AbortWithStatus(http.StatusNotFound)
			return
		}
		logrus.Errorf("Failed to fetch order: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.HTML(http.StatusOK, "admin_order_details.html", gin.H{
		"Session": session,
		"Order":   order,
	})
}
