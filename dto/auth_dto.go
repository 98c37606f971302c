package dto

type RegisterInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
