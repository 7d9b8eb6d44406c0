package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"recettes/database"
	"recettes/dto"
	"recettes/models"

	"gorm.io/gorm"
)

// RecipesPerPage — размер страницы в списках рецептов
const RecipesPerPage = 10

// HomeRecipesLimit — сколько публичных рецептов показываем на главной
const HomeRecipesLimit = 3

const homeCacheKey = "home:public-recipes"
const homeCacheTTL = time.Minute

// RecipeService представляет сервис для работы с рецептами
type RecipeService struct {
	DB *gorm.DB
}

// NewRecipeService создает новый экземпляр RecipeService
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{DB: db}
}

// paginate возвращает scope для постраничной выборки
func paginate(page int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * RecipesPerPage).Limit(RecipesPerPage)
	}
}

// GetRecipeByID возвращает рецепт вместе с оценками и владельцем
func (s *RecipeService) GetRecipeByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.DB.Preload("Marks").Preload("User").First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListUserRecipes возвращает страницу рецептов пользователя и их общее число
func (s *RecipeService) ListUserRecipes(userID uint, page int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := s.DB.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.DB.Scopes(paginate(page)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Marks").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListPublicRecipes возвращает страницу публичных рецептов и их общее число
func (s *RecipeService) ListPublicRecipes(page int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := s.DB.Model(&models.Recipe{}).Where("is_public = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.DB.Scopes(paginate(page)).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Preload("Marks").
		Preload("User").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// HomeRecipe — облегченное представление рецепта для главной страницы.
// В кеш уходит именно оно: у сущности Recipe владелец не сериализуется
// в JSON, поэтому нужные странице поля перечислены здесь явно.
type HomeRecipe struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OwnerPseudo string  `json:"owner_pseudo"`
	Average     float64 `json:"average"`
}

// HomeRecipes возвращает последние публичные рецепты для главной страницы.
// Результат недолго живет в Redis, чтобы не ходить в базу на каждый запрос.
func (s *RecipeService) HomeRecipes() ([]HomeRecipe, error) {
	ctx := context.Background()

	// Проверяем, есть ли ответ в кеше
	if database.RedisClient != nil {
		if cached, err := database.RedisClient.Get(ctx, homeCacheKey).Result(); err == nil {
			var views []HomeRecipe
			if err := json.Unmarshal([]byte(cached), &views); err == nil {
				return views, nil
			}
		}
	}

	var recipes []models.Recipe
	err := s.DB.Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(HomeRecipesLimit).
		Preload("Marks").
		Preload("User").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	views := make([]HomeRecipe, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, HomeRecipe{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			OwnerPseudo: r.User.Pseudo,
			Average:     r.Average(),
		})
	}

	// Кладем результат в кеш, ошибка кеша не мешает ответу
	if database.RedisClient != nil {
		if data, err := json.Marshal(views); err == nil {
			if err := database.RedisClient.Set(ctx, homeCacheKey, data, homeCacheTTL).Err(); err != nil {
				log.Printf("Ошибка записи в Redis: %v", err)
			}
		}
	}

	return views, nil
}

// CreateRecipe создает рецепт. Владелец всегда берется из текущего пользователя,
// что бы ни пришло в форме.
func (s *RecipeService) CreateRecipe(userID uint, input dto.RecipeDTO) (*models.Recipe, error) {
	recipe := &models.Recipe{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Ingredients: input.Ingredients,
		TimeMinutes: input.TimeMinutes,
		NbPeople:    input.NbPeople,
		Difficulty:  input.Difficulty,
		Price:       input.Price,
		IsPublic:    input.IsPublic,
	}

	if err := s.DB.Create(recipe).Error; err != nil {
		return nil, err
	}

	return recipe, nil
}

// UpdateRecipe обновляет поля рецепта. UserID не трогаем — владелец неизменен.
func (s *RecipeService) UpdateRecipe(recipe *models.Recipe, input dto.RecipeDTO) error {
	recipe.Name = input.Name
	recipe.Description = input.Description
	recipe.Ingredients = input.Ingredients
	recipe.TimeMinutes = input.TimeMinutes
	recipe.NbPeople = input.NbPeople
	recipe.Difficulty = input.Difficulty
	recipe.Price = input.Price
	recipe.IsPublic = input.IsPublic

	return s.DB.Save(recipe).Error
}

// DeleteRecipe удаляет рецепт вместе с его оценками
func (s *RecipeService) DeleteRecipe(recipe *models.Recipe) error {
	// Сначала удаляем оценки, потом сам рецепт
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Mark{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}
