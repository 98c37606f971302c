package dto

type RegisterMemberInput struct {
	FullName   string `form:"fullname" binding:"required"`
	IdentityNo string `form:"ic" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
}
