package controllers

import (
	"net/http"

	"recettes/services"

	"github.com/gin-gonic/gin"
)

// HomeController — контроллер главной страницы
type HomeController struct {
	Service *services.RecipeService
}

// Index показывает несколько последних публичных рецептов
func (controller *HomeController) Index(c *gin.Context) {
	recipes, err := controller.Service.HomeRecipes()
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	render(c, http.StatusOK, "home.html", gin.H{
		"Recipes": recipes,
	})
}
