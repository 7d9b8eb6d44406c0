package services

import (
	"errors"

	"recettes/dto"
	"recettes/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService представляет сервис для работы с профилем пользователя
type UserService struct {
	DB *gorm.DB
}

// NewUserService создает новый экземпляр UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetUserByID возвращает пользователя по ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile обновляет данные профиля. Перед изменением проверяем текущий
// пароль: при неверном пароле ничего не сохраняем.
func (s *UserService) UpdateProfile(user *models.User, input dto.UpdateUserDTO) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ErrWrongPassword
	}

	user.Pseudo = input.Pseudo
	user.FullName = input.FullName

	return s.DB.Save(user).Error
}

// ChangePassword меняет пароль пользователя. Старый хэш полностью заменяется
// новым, но только после проверки текущего пароля.
func (s *UserService) ChangePassword(user *models.User, input dto.ChangePasswordDTO) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	return s.DB.Save(user).Error
}
