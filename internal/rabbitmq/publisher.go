package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// Publisher публикует доменные события в exchange площадки.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создаёт Publisher поверх открытого канала.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish сериализует событие в JSON и публикует его с заданным ключом маршрутизации.
func (p *Publisher) Publish(routingKey string, event any) error {
	const op = "rabbitmq.Publish"
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		Exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PaymentRecordedEvent — событие о записанном платеже.
type PaymentRecordedEvent struct {
	PaymentID int     `json:"payment_id"`
	UserUID   string  `json:"user_uid"`
	CourseID  int     `json:"course_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// EnrollmentCreatedEvent — событие о новой записи на курс.
type EnrollmentCreatedEvent struct {
	EnrollmentID int    `json:"enrollment_id"`
	UserUID      string `json:"user_uid"`
	CourseID     int    `json:"course_id"`
}
