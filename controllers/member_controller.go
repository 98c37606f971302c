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
)

type IMemberController interface {
	ShowRegister(ctx *gin.Context)
	Register(ctx *gin.Context)
}

type MemberController struct {
	service services.IMemberService
}

func NewMemberController(service services.IMemberService) IMemberController {
	return &MemberController{service: service}
}

func (c *MemberController) ShowRegister(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	isMember, err := c.service.IsMember(session.UserID)
	if err != nil {
		logrus.Errorf("Failed to check membership: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}
	if isMember {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	ctx.HTML(http.StatusOK, "member_register.html", gin.H{"Session": session})
}

func (c *MemberController) Register(ctx *gin.Context) {
	session, _, _ := currentSession(ctx)

	var input dto.RegisterMemberInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.HTML(http.StatusBadRequest, "member_register.html", gin.H{
			"Session": session,
			"Error":   constants.ErrInvalidInput,
		})
		return
	}

	if err := c.service.Register(session.UserID, input); err != nil {
		if errors.Is(err, models.ErrAlreadyMember) {
			ctx.Redirect(http.StatusFound, "/")
			return
		}
		logrus.Errorf("Member registration error: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}
