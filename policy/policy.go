package policy

import "recettes/models"

// RoleUser — роль обычного зарегистрированного пользователя
const RoleUser = "user"

// Предикаты доступа — чистые функции от (пользователь, сущность).
// Они не ходят в базу, поэтому их легко тестировать отдельно от хранилища.

// IsAuthenticated сообщает, есть ли у запроса зарегистрированный пользователь
func IsAuthenticated(actor *models.User) bool {
	return actor != nil && actor.ID != 0 && actor.Role == RoleUser
}

// CanViewRecipe — просмотреть можно публичный или собственный рецепт
func CanViewRecipe(actor *models.User, recipe *models.Recipe) bool {
	if !IsAuthenticated(actor) || recipe == nil {
		return false
	}
	return recipe.IsPublic || recipe.UserID == actor.ID
}

// CanEditRecipe — изменять рецепт может только владелец, видимость роли не играет
func CanEditRecipe(actor *models.User, recipe *models.Recipe) bool {
	if !IsAuthenticated(actor) || recipe == nil {
		return false
	}
	return recipe.UserID == actor.ID
}

// CanDeleteRecipe — удалять рецепт может только владелец
func CanDeleteRecipe(actor *models.User, recipe *models.Recipe) bool {
	return CanEditRecipe(actor, recipe)
}

// CanRateRecipe — оценить можно любой доступный для просмотра рецепт
func CanRateRecipe(actor *models.User, recipe *models.Recipe) bool {
	return CanViewRecipe(actor, recipe)
}

// CanEditUser — редактировать профиль и менять пароль может только сам пользователь
func CanEditUser(actor *models.User, target *models.User) bool {
	if !IsAuthenticated(actor) || target == nil {
		return false
	}
	return actor.ID == target.ID
}
