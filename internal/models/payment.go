package models

import "time"

// Статусы платежа. Новый платёж всегда создаётся в статусе pending,
// переводом в completed/failed занимается webhook платёжного провайдера.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment представляет попытку оплаты курса пользователем.
// Уникальность пары (пользователь, курс) не требуется: пользователь
// может иметь несколько платежей за один курс.
type Payment struct {
	ID          int       // Идентификатор платежа
	UserUID     string    // UID плательщика
	CourseID    int       // Идентификатор курса
	Amount      float64   // Сумма платежа
	Status      string    // Статус: pending, completed, failed
	PaymentDate time.Time // Дата платежа
}

// DummyPayment используется для приёма данных платежа из JSON-запроса.
type DummyPayment struct {
	CourseID int     `json:"course_id" validate:"required"`   // Идентификатор курса
	Amount   float64 `json:"amount" validate:"required,gt=0"` // Сумма платежа (>0)
}

// Enrollment представляет запись пользователя на курс.
// Пара (пользователь, курс) уникальна: повторная запись идемпотентна.
type Enrollment struct {
	ID         int       // Идентификатор записи
	UserUID    string    // UID студента
	CourseID   int       // Идентификатор курса
	EnrolledAt time.Time // Дата записи на курс
}

// StudentInfo описывает студента курса в списке для инструктора.
type StudentInfo struct {
	Username   string    `json:"username"`    // Имя студента
	Email      string    `json:"email"`       // Электронная почта студента
	EnrolledAt time.Time `json:"enrolled_at"` // Дата записи на курс
}
