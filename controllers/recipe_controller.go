package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"recettes/dto"
	"recettes/middleware"
	"recettes/models"
	"recettes/policy"
	"recettes/services"

	"github.com/gin-gonic/gin"
)

// RecipeController — контроллер для работы с рецептами
type RecipeController struct {
	Service *services.RecipeService
	Marks   *services.MarkService
}

// resolveRecipe загружает рецепт из параметра маршрута.
// При отсутствии рецепта сразу рисует 404 и возвращает nil.
func (controller *RecipeController) resolveRecipe(c *gin.Context) *models.Recipe {
	recipe, err := controller.Service.GetRecipeByID(parseUint(c.Param("id")))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderError(c, http.StatusNotFound, "Cette recette n'existe pas")
		} else {
			renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		}
		return nil
	}
	return recipe
}

// totalPages считает число страниц для списка
func totalPages(total int64) int {
	pages := int((total + services.RecipesPerPage - 1) / services.RecipesPerPage)
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Index показывает рецепты текущего пользователя, по 10 на страницу
func (controller *RecipeController) Index(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page := parsePage(c)

	recipes, total, err := controller.Service.ListUserRecipes(user.ID, page)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	render(c, http.StatusOK, "recipe_index.html", gin.H{
		"Recipes":    recipes,
		"Page":       page,
		"TotalPages": totalPages(total),
	})
}

// IndexPublic показывает все публичные рецепты, страница открыта для всех
func (controller *RecipeController) IndexPublic(c *gin.Context) {
	page := parsePage(c)

	recipes, total, err := controller.Service.ListPublicRecipes(page)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	render(c, http.StatusOK, "recipe_index_public.html", gin.H{
		"Recipes":    recipes,
		"Page":       page,
		"TotalPages": totalPages(total),
	})
}

// New показывает форму создания рецепта
func (controller *RecipeController) New(c *gin.Context) {
	render(c, http.StatusOK, "recipe_new.html", gin.H{
		"Form": dto.RecipeDTO{},
	})
}

// Create создает рецепт. Владельцем всегда становится текущий пользователь,
// какое бы значение ни пришло из формы.
func (controller *RecipeController) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input dto.RecipeDTO
	if err := c.ShouldBind(&input); err != nil {
		render(c, http.StatusOK, "recipe_new.html", gin.H{
			"Error": err.Error(),
			"Form":  input,
		})
		return
	}

	if _, err := controller.Service.CreateRecipe(user.ID, input); err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	addFlash(c, "success", "Votre recette a été créée avec succès !")
	redirect(c, "/recette")
}

// Show показывает рецепт, если он публичный или принадлежит пользователю
func (controller *RecipeController) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipe := controller.resolveRecipe(c)
	if recipe == nil {
		return
	}

	if !policy.CanViewRecipe(user, recipe) {
		renderError(c, http.StatusForbidden, "Vous n'avez pas accès à cette recette")
		return
	}

	controller.renderShow(c, user, recipe, nil)
}

// Rate сохраняет оценку рецепта текущим пользователем
func (controller *RecipeController) Rate(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipe := controller.resolveRecipe(c)
	if recipe == nil {
		return
	}

	// Оценивать можно только то, что можно смотреть
	if !policy.CanRateRecipe(user, recipe) {
		renderError(c, http.StatusForbidden, "Vous n'avez pas accès à cette recette")
		return
	}

	var input dto.MarkDTO
	if err := c.ShouldBind(&input); err != nil {
		controller.renderShow(c, user, recipe, err)
		return
	}

	if err := controller.Marks.RateRecipe(user.ID, recipe.ID, input.Value); err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	addFlash(c, "success", "Votre note a bien été prise en compte")
	redirect(c, fmt.Sprintf("/recette/%d", recipe.ID))
}

// renderShow рисует страницу рецепта вместе с формой оценки
func (controller *RecipeController) renderShow(c *gin.Context, user *models.User, recipe *models.Recipe, formErr error) {
	data := gin.H{
		"Recipe":  recipe,
		"Average": recipe.Average(),
		"IsOwner": policy.CanEditRecipe(user, recipe),
	}

	// Показываем текущую оценку пользователя, если она есть
	if mark, err := controller.Marks.GetUserMark(user.ID, recipe.ID); err == nil {
		data["UserMark"] = mark
	}

	if formErr != nil {
		data["Error"] = formErr.Error()
	}

	render(c, http.StatusOK, "recipe_show.html", data)
}

// Edit показывает форму редактирования рецепта, доступна только владельцу
func (controller *RecipeController) Edit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipe := controller.resolveRecipe(c)
	if recipe == nil {
		return
	}

	if !policy.CanEditRecipe(user, recipe) {
		renderError(c, http.StatusForbidden, "Vous ne pouvez pas modifier cette recette")
		return
	}

	render(c, http.StatusOK, "recipe_edit.html", gin.H{
		"Recipe": recipe,
	})
}

// Update сохраняет изменения рецепта, доступно только владельцу
func (controller *RecipeController) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipe := controller.resolveRecipe(c)
	if recipe == nil {
		return
	}

	if !policy.CanEditRecipe(user, recipe) {
		renderError(c, http.StatusForbidden, "Vous ne pouvez pas modifier cette recette")
		return
	}

	var input dto.RecipeDTO
	if err := c.ShouldBind(&input); err != nil {
		render(c, http.StatusOK, "recipe_edit.html", gin.H{
			"Error":  err.Error(),
			"Recipe": recipe,
		})
		return
	}

	if err := controller.Service.UpdateRecipe(recipe, input); err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	addFlash(c, "success", "Votre recette a été modifiée avec succès !")
	redirect(c, "/recette")
}

// Delete удаляет рецепт. Проверка владельца здесь обязательна: роли
// недостаточно, иначе любой вошедший пользователь мог бы удалить чужой рецепт.
func (controller *RecipeController) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipe := controller.resolveRecipe(c)
	if recipe == nil {
		return
	}

	if !policy.CanDeleteRecipe(user, recipe) {
		renderError(c, http.StatusForbidden, "Vous ne pouvez pas supprimer cette recette")
		return
	}

	if err := controller.Service.DeleteRecipe(recipe); err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	addFlash(c, "success", "Votre recette a été supprimée avec succès !")
	redirect(c, "/recette")
}
