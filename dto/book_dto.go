package dto

type CreateBookInput struct {
	Title  string  `form:"title" binding:"required"`
	Author string  `form:"author" binding:"required"`
	Price  float64 `form:"price" binding:"required,gt=0"`
	Stock  int     `form:"stock" binding:"min=0"`
}
