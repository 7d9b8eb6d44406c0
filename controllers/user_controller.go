package controllers

import (
	"errors"
	"net/http"

	"recettes/dto"
	"recettes/middleware"
	"recettes/models"
	"recettes/policy"
	"recettes/services"

	"github.com/gin-gonic/gin"
)

// UserController — контроллер для редактирования профиля и смены пароля
type UserController struct {
	Service *services.UserService
}

// resolveUser загружает пользователя из параметра маршрута и проверяет,
// что текущий пользователь редактирует сам себя
func (controller *UserController) resolveUser(c *gin.Context) *models.User {
	actor := middleware.CurrentUser(c)

	target, err := controller.Service.GetUserByID(parseUint(c.Param("id")))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderError(c, http.StatusNotFound, "Cet utilisateur n'existe pas")
		} else {
			renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		}
		return nil
	}

	if !policy.CanEditUser(actor, target) {
		renderError(c, http.StatusForbidden, "Vous ne pouvez pas modifier ce profil")
		return nil
	}

	return target
}

// Edit показывает форму редактирования профиля
func (controller *UserController) Edit(c *gin.Context) {
	target := controller.resolveUser(c)
	if target == nil {
		return
	}

	render(c, http.StatusOK, "user_edit.html", gin.H{
		"User": target,
	})
}

// Update сохраняет профиль. Текущий пароль запрашивается еще раз:
// при неверном пароле ничего не меняется.
func (controller *UserController) Update(c *gin.Context) {
	target := controller.resolveUser(c)
	if target == nil {
		return
	}

	var input dto.UpdateUserDTO
	if err := c.ShouldBind(&input); err != nil {
		render(c, http.StatusOK, "user_edit.html", gin.H{
			"Error": err.Error(),
			"User":  target,
			"Form":  input,
		})
		return
	}

	if err := controller.Service.UpdateProfile(target, input); err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			addFlash(c, "warning", "Le mot de passe renseigné est incorrect")
			render(c, http.StatusOK, "user_edit.html", gin.H{
				"User": target,
				"Form": input,
			})
			return
		}
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	addFlash(c, "success", "Les informations de votre compte ont bien été modifiées.")
	redirect(c, "/recette")
}

// EditPassword показывает форму смены пароля
func (controller *UserController) EditPassword(c *gin.Context) {
	target := controller.resolveUser(c)
	if target == nil {
		return
	}

	render(c, http.StatusOK, "user_password.html", gin.H{
		"User": target,
	})
}

// UpdatePassword меняет пароль после проверки текущего
func (controller *UserController) UpdatePassword(c *gin.Context) {
	target := controller.resolveUser(c)
	if target == nil {
		return
	}

	var input dto.ChangePasswordDTO
	if err := c.ShouldBind(&input); err != nil {
		render(c, http.StatusOK, "user_password.html", gin.H{
			"Error": err.Error(),
			"User":  target,
		})
		return
	}

	if err := controller.Service.ChangePassword(target, input); err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			addFlash(c, "warning", "Le mot de passe renseigné est incorrect")
			render(c, http.StatusOK, "user_password.html", gin.H{
				"User": target,
			})
			return
		}
		renderError(c, http.StatusInternalServerError, "Une erreur est survenue")
		return
	}

	addFlash(c, "success", "Le mot de passe a été modifié.")
	redirect(c, "/recette")
}
