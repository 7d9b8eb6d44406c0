package services

import (
	"testing"

	"recettes/dto"
	"recettes/models"
	"recettes/policy"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB поднимает чистую базу sqlite в памяти для одного теста
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Mark{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// createTestUser создает пользователя с паролем "motdepasse"
func createTestUser(t *testing.T, db *gorm.DB, pseudo string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Pseudo:   pseudo,
		FullName: pseudo + " Test",
		Email:    pseudo + "@example.com",
		Password: string(hash),
		Role:     policy.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// createTestRecipe создает рецепт от имени владельца
func createTestRecipe(t *testing.T, db *gorm.DB, owner *models.User, name string, public bool) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		UserID:      owner.ID,
		Name:        name,
		Description: "description",
		Ingredients: "ingredients",
		TimeMinutes: 30,
		NbPeople:    4,
		Difficulty:  2,
		Price:       10,
		IsPublic:    public,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return recipe
}

func recipeDTO(name string, public bool) dto.RecipeDTO {
	return dto.RecipeDTO{
		Name:        name,
		Description: "description",
		Ingredients: "ingredients",
		TimeMinutes: 30,
		NbPeople:    4,
		Difficulty:  2,
		Price:       10,
		IsPublic:    public,
	}
}
