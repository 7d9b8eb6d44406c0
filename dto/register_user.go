package dto

// RegisterUserDTO — это структура для данных, которые нужно передать при регистрации
type RegisterUserDTO struct {
	Pseudo   string `form:"pseudo" binding:"required,min=2,max=50"`
	FullName string `form:"full_name" binding:"required,min=2,max=50"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}
