package models

import "time"

// Recipe представляет сущность рецепта
type Recipe struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"` // Внешний ключ для связи с User
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Ingredients string    `json:"ingredients" gorm:"type:text"`
	TimeMinutes int       `json:"time_minutes"` // Время приготовления в минутах
	NbPeople    int       `json:"nb_people"`    // Количество порций
	Difficulty  int       `json:"difficulty"`   // Сложность от 1 до 5
	Price       float64   `json:"price"`
	IsPublic    bool      `json:"is_public" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:onUpdate:CASCADE,onDelete:CASCADE"`
	Marks       []Mark    `json:"marks" gorm:"foreignKey:RecipeID"`
}

// Average возвращает среднюю оценку рецепта по загруженным оценкам.
// Получатель по значению, чтобы метод был доступен и из HTML шаблонов.
func (r Recipe) Average() float64 {
	if len(r.Marks) == 0 {
		return 0
	}
	total := 0
	for _, m := range r.Marks {
		total += m.Value
	}
	return float64(total) / float64(len(r.Marks))
}
