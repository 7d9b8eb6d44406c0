package main

import (
	"html/template"
	"os"

	"recettes/controllers"
	"recettes/database"
	"recettes/middleware"
	"recettes/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// sessionSecret возвращает ключ для подписи cookie-сессии
func sessionSecret() []byte {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("session_secret_key") // Ключ по умолчанию для локальной разработки
}

func main() {
	// Инициализация подключения к базе данных и Redis
	database.InitDB()
	database.InitRedis()

	// Инициализация сервисов
	registService := &services.RegistService{
		DB: database.GetDB(),
	}
	authService := &services.AuthService{
		DB: database.GetDB(),
	}
	recipeService := services.NewRecipeService(database.GetDB())
	markService := services.NewMarkService(database.GetDB())
	userService := services.NewUserService(database.GetDB())

	// Инициализация контроллеров
	homeController := &controllers.HomeController{
		Service: recipeService,
	}
	authController := &controllers.AuthController{
		Service_regist: registService,
		Service_auth:   authService,
	}
	recipeController := &controllers.RecipeController{
		Service: recipeService,
		Marks:   markService,
	}
	userController := &controllers.UserController{
		Service: userService,
	}

	// Настройка маршрутов и шаблонов
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	r.LoadHTMLGlob("templates/*.html")

	// Cookie-сессия нужна только для flash сообщений
	store := cookie.NewStore(sessionSecret())
	r.Use(sessions.Sessions("recettes_session", store))
	r.Use(middleware.LoadUser(userService))

	// Открытые маршруты
	r.GET("/", homeController.Index)
	r.GET("/recette/publique", recipeController.IndexPublic)
	r.GET("/inscription", authController.RegisterPage)
	r.POST("/inscription", authController.Register)
	r.GET("/connexion", authController.LoginPage)
	r.POST("/connexion", authController.Login)
	r.GET("/deconnexion", authController.Logout)

	// Защищённые маршруты
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/recette", recipeController.Index)
		protected.GET("/recette/creation", recipeController.New)
		protected.POST("/recette/creation", recipeController.Create)
		protected.GET("/recette/suppression/:id", recipeController.Delete)
		protected.GET("/recette/edition/:id", recipeController.Edit)
		protected.POST("/recette/edition/:id", recipeController.Update)
		protected.GET("/recette/:id", recipeController.Show)
		protected.POST("/recette/:id", recipeController.Rate)
		protected.GET("/utilisateur/edition/:id", userController.Edit)
		protected.POST("/utilisateur/edition/:id", userController.Update)
		protected.GET("/utilisateur/edition-mot-de-passe/:id", userController.EditPassword)
		protected.POST("/utilisateur/edition-mot-de-passe/:id", userController.UpdatePassword)
	}

	// Запуск сервера
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
