package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gin-bookstore/constants"
	"gin-bookstore/dto"
	"gin-bookstore/models"
	"gin-bookstore/services"
	"gin-bookstore/sessions"
)

type IAuthController interface {
	ShowRegister(ctx *gin.Context)
	Register(ctx *gin.Context)
	ShowLogin(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service    services.IAuthService
	store      sessions.ISessionStore
	secret     string
	sessionTTL time.Duration
}

func NewAuthController(service services.IAuthService, store sessions.ISessionStore, secret string, sessionTTL time.Duration) IAuthController {
	return &AuthController{
		service:    service,
		store:      store,
		secret:     secret,
		sessionTTL: sessionTTL,
	}
}

func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", gin.H{})
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": constants.ErrInvalidInput})
		return
	}

	if err := c.service.Register(input.Username, input.Password); err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			// 重複ユーザー名はフォーム上のエラーとして表示する
			ctx.HTML(http.StatusOK, "register.html", gin.H{"Error": constants.ErrUsernameTaken})
			return
		}
		logrus.Errorf("Register error: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	ctx.Redirect(http.StatusFound, "/login")
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			ctx.HTML(http.StatusOK, "login.html", gin.H{"Error": constants.ErrLoginFailed})
			return
		}
		logrus.Errorf("Login error: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	// ログインごとに新しいセッションと空のカートを作る
	session := sessions.NewSession(user.ID, user.Username, user.Role)
	sessionID, err := c.store.Create(ctx.Request.Context(), session)
	if err != nil {
		logrus.Errorf("Failed to create session: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	token, err := sessions.SignToken(sessionID, c.secret, c.sessionTTL)
	if err != nil {
		logrus.Errorf("Failed to sign session token: %v", err)
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}
	ctx.SetCookie(constants.SessionCookie, token, int(c.sessionTTL.Seconds()), "/", "", false, true)

	if user.Role == constants.RoleAdmin {
		ctx.Redirect(http.StatusFound, "/admin/books")
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

func (c *AuthController) Logout(ctx *gin.Context) {
	if _, sessionID, ok := currentSession(ctx); ok {
		if err := c.store.Delete(ctx.Request.Context(), sessionID); err != nil {
			logrus.Errorf("Failed to delete session: %v", err)
		}
	}
	ctx.SetCookie(constants.SessionCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, "/")
}
