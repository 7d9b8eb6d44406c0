package models

import "time"

// User представляет сущность пользователя
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Pseudo    string    `json:"pseudo" gorm:"unique;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"` // Храним хэш пароля, не сам пароль
	Role      string    `json:"role" gorm:"not null;default:'user'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
