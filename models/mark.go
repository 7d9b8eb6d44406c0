package models

import "time"

// Mark представляет оценку рецепта пользователем.
// Уникальный индекс гарантирует не более одной оценки на пару (пользователь, рецепт).
type Mark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_marks_user_recipe"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:idx_marks_user_recipe"`
	Value     int       `json:"value" gorm:"not null"` // Оценка от 1 до 5
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:onUpdate:CASCADE,onDelete:CASCADE"`
}
