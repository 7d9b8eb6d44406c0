package controllers

import (
	"log"
	"net/http"
	"strconv"

	"recettes/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash сообщения живут в cookie-сессии между редиректом и следующей страницей

// addFlash добавляет flash сообщение указанного типа ("success" или "warning")
func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	if err := session.Save(); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}
}

// render рисует HTML страницу, добавляя flash сообщения и текущего пользователя
func render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	session := sessions.Default(c)
	data["Success"] = session.Flashes("success")
	data["Warning"] = session.Flashes("warning")
	if err := session.Save(); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	data["CurrentUser"] = middleware.CurrentUser(c)

	c.HTML(status, template, data)
}

// renderError рисует страницу ошибки с нужным статусом
func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}

// parseUint преобразует строковый параметр маршрута в uint.
// Строка должна быть числом целиком, иначе возвращается 0.
func parseUint(value string) uint {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

// parsePage возвращает номер страницы из query параметра ?page=
func parsePage(c *gin.Context) int {
	page := int(parseUint(c.DefaultQuery("page", "1")))
	if page < 1 {
		page = 1
	}
	return page
}

// redirect — короткий помощник для 302 редиректа
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
