package dto

type CardInput struct {
	CardNumber  string `form:"card_num" binding:"required"`
	ExpiryMonth int    `form:"exp_m" binding:"required,min=1,max=12"`
	ExpiryYear  int    `form:"exp_y" binding:"required"`
}
