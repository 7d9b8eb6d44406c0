package dto

// MarkDTO используется для передачи оценки рецепта
type MarkDTO struct {
	Value int `form:"value" binding:"required,min=1,max=5"` // Оценка от 1 до 5
}
