package controllers

import (
	"github.com/gin-gonic/gin"

	"gin-bookstore/middlewares"
	"gin-bookstore/sessions"
)

func currentSession(ctx *gin.Context) (*sessions.Session, string, bool) {
	return middlewares.CurrentSession(ctx)
}
