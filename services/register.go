package services

import (
	"errors"

	"recettes/dto"
	"recettes/models"
	"recettes/policy"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegistService — сервис для регистрации пользователей
type RegistService struct {
	DB *gorm.DB
}

// RegisterUser регистрирует нового пользователя
func (service *RegistService) RegisterUser(userDTO dto.RegisterUserDTO) (*models.User, error) {
	// Проверяем, существует ли пользователь с таким же pseudo или email
	var user models.User
	if err := service.DB.Where("pseudo = ?", userDTO.Pseudo).First(&user).Error; err == nil {
		return nil, errors.New("pseudo already taken")
	}
	if err := service.DB.Where("email = ?", userDTO.Email).First(&user).Error; err == nil {
		return nil, errors.New("email already taken")
	}

	// Хэшируем пароль перед сохранением
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userDTO.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Создаем нового пользователя с хэшированным паролем
	newUser := models.User{
		Pseudo:   userDTO.Pseudo,
		FullName: userDTO.FullName,
		Email:    userDTO.Email,
		Password: string(hashedPassword),
		Role:     policy.RoleUser,
	}

	// Сохраняем нового пользователя в базу данных
	if err := service.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}
	return &newUser, nil
}
