package dto

// LoginDTO — структура для данных авторизации
type LoginDTO struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}
