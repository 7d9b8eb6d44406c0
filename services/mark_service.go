package services

import (
	"errors"

	"recettes/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarkService представляет сервис для работы с оценками рецептов
type MarkService struct {
	DB *gorm.DB
}

// NewMarkService создает новый экземпляр MarkService
func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{DB: db}
}

// RateRecipe сохраняет оценку пользователя одним атомарным запросом.
// INSERT ... ON CONFLICT (user_id, recipe_id) DO UPDATE вместо пары
// "прочитали — записали": параллельные отправки не создадут дубликат.
func (s *MarkService) RateRecipe(userID, recipeID uint, value int) error {
	mark := models.Mark{
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
	}

	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&mark).Error
}

// GetUserMark возвращает оценку пользователя для рецепта, если она есть
func (s *MarkService) GetUserMark(userID, recipeID uint) (*models.Mark, error) {
	var mark models.Mark
	err := s.DB.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&mark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &mark, nil
}
