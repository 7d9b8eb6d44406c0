package database

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

// RedisClient равен nil, если Redis недоступен — кеш тогда просто не используется
var RedisClient *redis.Client

var ctx = context.Background()

// InitRedis инициализирует подключение к Redis для кеша главной страницы
func InitRedis() {
	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		log.Println("REDIS_HOST не задан, приложение работает без кеша")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisHost + ":" + redisPort,
		Password: redisPassword,
		DB:       0,
	})

	// Проверяем подключение
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Ошибка подключения к Redis, кеш отключён: %v", err)
		return
	}

	RedisClient = client
	log.Println("Подключение к Redis успешно установлено!")
}
