package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// jwtSecret возвращает секретный ключ из окружения
func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("your_secret_key") // Ключ по умолчанию для локальной разработки
}

// GenerateJWT — генерирует JWT токен для пользователя
func GenerateJWT(userID uint) (string, error) {
	// Определяем срок действия токена (например, 24 часа)
	expirationTime := time.Now().Add(24 * time.Hour)

	// Создаем claims токена
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(userID)), // Преобразуем userID в строку
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	// Создаем токен
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Подписываем токен секретным ключом
	return token.SignedString(jwtSecret())
}

// ValidateToken — проверяет JWT токен и возвращает ID пользователя
func ValidateToken(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	// Достаем ID пользователя из subject
	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, errors.New("invalid subject in token")
	}

	return uint(userID), nil
}
