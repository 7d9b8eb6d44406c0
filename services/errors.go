package services

import "errors"

// Общие ошибки сервисов, контроллеры превращают их в HTTP статусы
var (
	ErrNotFound      = errors.New("record not found")
	ErrWrongPassword = errors.New("wrong current password")
)
