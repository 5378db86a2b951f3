// Package rabbitmq публикует доменные события площадки (записанные платежи,
// новые записи на курсы) в RabbitMQ для внешних потребителей: рассылок,
// аналитики, интеграций. Публикация не входит в транзакцию запроса и
// не влияет на его результат.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Exchange — имя exchange для доменных событий площадки.
const Exchange = "course.events"

// Ключи маршрутизации публикуемых событий.
const (
	RoutingKeyPaymentRecorded   = "payment.recorded"
	RoutingKeyEnrollmentCreated = "enrollment.created"
)

// Connect подключается к RabbitMQ с повторными попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал и объявляет exchange с очередями событий.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, q := range GetEventQueues() {
		if _, err = ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = ch.QueueBind(q.QueueName, q.RoutingKey, Exchange, false, nil); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ch, nil
}

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetEventQueues возвращает конфигурацию очередей доменных событий.
func GetEventQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "course.events.payments", RoutingKey: RoutingKeyPaymentRecorded},
		{QueueName: "course.events.enrollments", RoutingKey: RoutingKeyEnrollmentCreated},
	}
}
