package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"recettes/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Глобальная переменная для хранения подключения
var db *gorm.DB

// InitDB инициализирует подключение к базе данных PostgreSQL
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используем переменные окружения: %v", err)
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	time.Sleep(5 * time.Second) // Задержка перед подключением нужна для запуска в докере

	dsn := "host=" + dbHost +
		" user=" + dbUser +
		" password=" + dbPassword +
		" dbname=" + dbName +
		" port=" + dbPort +
		" sslmode=disable"

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}

	fmt.Println("Подключение к базе данных успешно установлено!")

	// Миграция создаёт таблицы и уникальный индекс marks(user_id, recipe_id)
	err = db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Mark{})
	if err != nil {
		log.Fatalf("Ошибка миграции: %v", err)
	}
}

// GetDB возвращает объект подключения к базе данных
func GetDB() *gorm.DB {
	return db
}
