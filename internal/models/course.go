package models

import "time"

// Course представляет курс, опубликованный инструктором.
// Инструктор фиксируется при создании и не меняется.
type Course struct {
	ID            int       // Идентификатор курса
	Title         string    // Название курса
	Description   string    // Описание курса
	Price         int       // Цена курса
	InstructorUID string    // UID инструктора-владельца
	CreatedAt     time.Time // Дата создания
}

// DummyCourse используется для приёма данных курса из JSON-запроса.
type DummyCourse struct {
	Title       string `json:"title" validate:"required"`       // Название курса
	Description string `json:"description" validate:"required"` // Описание курса
	Price       int    `json:"price" validate:"required,gt=0"`  // Цена курса (>0)
}

// Lesson представляет урок, принадлежащий ровно одному курсу.
// Для авторизации урок наследует владельца своего курса.
type Lesson struct {
	ID         int       // Идентификатор урока
	CourseID   int       // Идентификатор курса
	Title      string    // Название урока
	ContentURL string    // Ссылка на материалы урока
	CreatedAt  time.Time // Дата создания
}

// DummyLesson используется для приёма данных урока из JSON-запроса.
type DummyLesson struct {
	CourseID   int    `json:"course_id" validate:"required"`       // Идентификатор курса
	Title      string `json:"title" validate:"required"`           // Название урока
	ContentURL string `json:"content_url" validate:"required,url"` // Ссылка на материалы
}
