// Package services содержит бизнес-логику платежей за курсы.
//
// Новый платёж всегда создаётся в статусе pending; переводом в
// completed/failed занимается webhook платёжного провайдера через
// MarkPaymentStatus.
package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
	"github.com/magabrotheeeer/course-marketplace/internal/rabbitmq"
)

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment models.Payment) (int, error)
	ListPayments(ctx context.Context, userUID string, limit, offset int) ([]*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int, status string) (int, error)
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// EventPublisher публикует доменные события площадки.
type EventPublisher interface {
	Publish(routingKey string, event any) error
}

// Metrics учитывает бизнес-метрики платежей.
type Metrics interface {
	RecordPayment()
	RecordPaymentTransition(status string)
}

// PaymentService реализует бизнес-логику платежей.
type PaymentService struct {
	repo    PaymentRepository
	events  EventPublisher
	metrics Metrics
	log     *slog.Logger
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(repo PaymentRepository, events EventPublisher, metrics Metrics, log *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:    repo,
		events:  events,
		metrics: metrics,
		log:     log,
	}
}

// Record проверяет и записывает платёж пользователя за курс.
// Сумма меньше цены курса отклоняется, иных проверок нет: пользователь
// может иметь несколько платежей за один курс.
func (s *PaymentService) Record(ctx context.Context, actor models.Actor, req models.DummyPayment) (*models.Payment, error) {
	course, err := s.repo.ReadCourse(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}
	if req.Amount < float64(course.Price) {
		return nil, apperr.Validation("payment amount is not sufficient")
	}

	payment := models.Payment{
		UserUID:  actor.UID,
		CourseID: req.CourseID,
		Amount:   req.Amount,
		Status:   models.PaymentStatusPending,
	}
	id, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id
	s.log.Info("recorded payment", slog.Int("id", id), slog.Int("course_id", req.CourseID))
	s.metrics.RecordPayment()

	if err := s.events.Publish(rabbitmq.RoutingKeyPaymentRecorded, rabbitmq.PaymentRecordedEvent{
		PaymentID: id,
		UserUID:   payment.UserUID,
		CourseID:  payment.CourseID,
		Amount:    payment.Amount,
		Status:    payment.Status,
	}); err != nil {
		s.log.Warn("failed to publish payment event", sl.Err(err))
	}

	return &payment, nil
}

// List возвращает платежи пользователя с пагинацией.
func (s *PaymentService) List(ctx context.Context, userUID string, limit, offset int) ([]*models.Payment, error) {
	return s.repo.ListPayments(ctx, userUID, limit, offset)
}

// MarkPaymentStatus переводит платёж в completed или failed.
// Вызывается обработчиком webhook платёжного провайдера.
func (s *PaymentService) MarkPaymentStatus(ctx context.Context, paymentID int, status string) error {
	if status != models.PaymentStatusCompleted && status != models.PaymentStatusFailed {
		return apperr.Validation("unknown payment status")
	}

	count, err := s.repo.UpdatePaymentStatus(ctx, paymentID, status)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("payment not found")
	}
	s.log.Info("payment status updated", slog.Int("id", paymentID), slog.String("status", status))
	s.metrics.RecordPaymentTransition(status)
	return nil
}
