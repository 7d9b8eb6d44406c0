package middleware

import (
	"net/http"

	"recettes/models"
	"recettes/services"
	"recettes/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey — ключ, под которым пользователь лежит в контексте gin
const CurrentUserKey = "currentUser"

// TokenCookie — имя cookie с JWT токеном
const TokenCookie = "token"

// LoadUser — middleware, которое загружает текущего пользователя из cookie.
// Запрос не прерывается: открытые страницы тоже хотят знать, кто вошел.
func LoadUser(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err == nil && token != "" {
			// Проверяем токен с помощью утилиты
			if userID, err := utils.ValidateToken(token); err == nil {
				if user, err := userService.GetUserByID(userID); err == nil {
					c.Set(CurrentUserKey, user)
				}
			}
		}
		c.Next()
	}
}

// AuthMiddleware — middleware для защищенных страниц: без валидного токена
// отправляем на страницу входа
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, "/connexion")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser достает текущего пользователя из контекста.
// Обработчики передают его в предикаты доступа явным аргументом.
func CurrentUser(c *gin.Context) *models.User {
	if value, exists := c.Get(CurrentUserKey); exists {
		if user, ok := value.(*models.User); ok {
			return user
		}
	}
	return nil
}
