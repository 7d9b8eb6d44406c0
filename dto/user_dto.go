package dto

// UpdateUserDTO используется при изменении данных профиля.
// Поле Password — текущий пароль, нужен только для подтверждения и не сохраняется.
type UpdateUserDTO struct {
	Pseudo   string `form:"pseudo" binding:"required,min=2,max=50"`
	FullName string `form:"full_name" binding:"required,min=2,max=50"`
	Password string `form:"password" binding:"required"`
}

// ChangePasswordDTO используется при смене пароля
type ChangePasswordDTO struct {
	Password        string `form:"password" binding:"required"` // Текущий пароль
	NewPassword     string `form:"new_password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=NewPassword"`
}
