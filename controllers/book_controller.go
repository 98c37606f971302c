package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gin-bookstore/constants"
	"gin-bookstore/services"
)

type IBookController interface {
	Home(ctx *gin.Context)
}

type BookController struct {
	service       services.IBookService
	memberService services.IMemberService
}

func NewBookController(service services.IBookService, memberService services.IMemberService) IBookController {
	return &BookController{service: service, memberService: memberService}
}

// Home renders the public catalog. Logged-in Users additionally see
// whether they already hold a membership so the template can offer the
// member registration link.
func (c *BookController) Home(ctx *gin.Context) {
	books, err := c.service.FindAll()
	if err != nil {
		logrus.Errorf("Failed to list books: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	isMember := false
	session, _, ok := currentSession(ctx)
	if ok && session.Role == constants.RoleUser {
		isMember, err = c.memberService.IsMember(session.UserID)
		if err != nil {
			logrus.Errorf("Failed to check membership: %v", err)
			ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
			return
		}
	}

	ctx.HTML(http.StatusOK, "books.html", gin.H{
		"Books":    *books,
		"Session":  session,
		"IsMember": isMember,
	})
}
