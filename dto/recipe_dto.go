package dto

// RecipeDTO используется для передачи данных при создании и обновлении рецепта
type RecipeDTO struct {
	Name        string  `form:"name" binding:"required,min=2,max=50"`
	Description string  `form:"description" binding:"required"`
	Ingredients string  `form:"ingredients" binding:"required"`
	TimeMinutes int     `form:"time_minutes" binding:"gte=0,lte=1440"` // Время приготовления не больше суток
	NbPeople    int     `form:"nb_people" binding:"gte=0,lte=50"`
	Difficulty  int     `form:"difficulty" binding:"gte=0,lte=5"`
	Price       float64 `form:"price" binding:"gte=0,lte=1000"`
	IsPublic    bool    `form:"is_public"`
}
