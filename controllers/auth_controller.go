package controllers

import (
	"net/http"

	"recettes/dto"
	"recettes/middleware"
	"recettes/services"

	"github.com/gin-gonic/gin"
)

// AuthController — контроллер для регистрации и входа
type AuthController struct {
	Service_regist *services.RegistService
	Service_auth   *services.AuthService
}

// RegisterPage показывает форму регистрации
func (controller *AuthController) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{
		"Form": dto.RegisterUserDTO{},
	})
}

// Register регистрирует нового пользователя
func (controller *AuthController) Register(c *gin.Context) {
	var userDTO dto.RegisterUserDTO
	if err := c.ShouldBind(&userDTO); err != nil {
		// Ошибка валидации: рисуем ту же форму с сообщением, ничего не сохраняем
		render(c, http.StatusOK, "register.html", gin.H{
			"Error": err.Error(),
			"Form":  userDTO,
		})
		return
	}

	if _, err := controller.Service_regist.RegisterUser(userDTO); err != nil {
		render(c, http.StatusOK, "register.html", gin.H{
			"Error": err.Error(),
			"Form":  userDTO,
		})
		return
	}

	addFlash(c, "success", "Votre compte a bien été créé !")
	redirect(c, "/connexion")
}

// LoginPage показывает форму входа
func (controller *AuthController) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Form": dto.LoginDTO{},
	})
}

// Login аутентифицирует пользователя и кладет JWT токен в cookie
func (controller *AuthController) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Error": err.Error(),
			"Form":  loginDTO,
		})
		return
	}

	token, err := controller.Service_auth.AuthenticateUser(loginDTO)
	if err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Error": "Identifiants invalides",
			"Form":  loginDTO,
		})
		return
	}

	// Токен живет сутки, как и сам JWT
	c.SetCookie(middleware.TokenCookie, token, 24*60*60, "/", "", false, true)

	addFlash(c, "success", "Connexion réussie !")
	redirect(c, "/recette")
}

// Logout удаляет cookie с токеном
func (controller *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	redirect(c, "/")
}
