package models

import "time"

// Review представляет отзыв студента о курсе. Оставить отзыв может
// только записанный на курс пользователь, уникальность не требуется.
type Review struct {
	ID        int       // Идентификатор отзыва
	UserUID   string    // UID автора отзыва
	CourseID  int       // Идентификатор курса
	Rating    int       // Оценка от 1 до 5
	Comment   string    // Текст отзыва (может быть пустым)
	CreatedAt time.Time // Дата создания
}

// DummyReview используется для приёма данных отзыва из JSON-запроса.
type DummyReview struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"` // Оценка от 1 до 5
	Comment string `json:"comment"`                                // Текст отзыва
}
