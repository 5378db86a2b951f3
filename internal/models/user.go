// Package models содержит доменные структуры торговой площадки курсов:
// пользователей, курсы, уроки, платежи, записи на курсы и отзывы,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Инструктор и студент представлены одним типом, роль задаётся
// флагом IsInstructor.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя
	IsInstructor bool      // Признак инструктора
	CreatedAt    time.Time // Дата регистрации
}

// Actor описывает аутентифицированного пользователя текущего запроса.
// Заполняется middleware из JWT и передаётся в бизнес-логику.
type Actor struct {
	UID          string // Уникальный идентификатор пользователя
	Username     string // Имя пользователя
	IsInstructor bool   // Признак инструктора
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Email        string `json:"email" validate:"required,email"`       // Электронная почта
	Username     string `json:"username" validate:"required,alphanum"` // Имя пользователя
	Password     string `json:"password" validate:"required,min=6"`    // Пароль
	IsInstructor bool   `json:"is_instructor"`                         // Регистрация как инструктор
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Username string `json:"username" validate:"required"` // Имя пользователя
	Password string `json:"password" validate:"required"` // Пароль
}
