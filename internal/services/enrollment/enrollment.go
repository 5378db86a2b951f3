// Package services содержит бизнес-логику записи студентов на курсы.
package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/policy"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
	"github.com/magabrotheeeer/course-marketplace/internal/rabbitmq"
)

// Статусы результата записи на курс, возвращаемые клиенту.
const (
	StatusEnrolled        = "enrolled"
	StatusAlreadyEnrolled = "already enrolled"
)

// EnrollmentRepository определяет методы для работы с записями на курсы.
type EnrollmentRepository interface {
	// GetOrCreateEnrollment атомарно создаёт запись для пары (пользователь, курс)
	// или возвращает существующую.
	GetOrCreateEnrollment(ctx context.Context, userUID string, courseID int) (*models.Enrollment, bool, error)
	ExistsPayment(ctx context.Context, userUID string, courseID int) (bool, error)
	ListStudents(ctx context.Context, courseID, limit, offset int) ([]*models.StudentInfo, error)
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// EventPublisher публикует доменные события площадки.
type EventPublisher interface {
	Publish(routingKey string, event any) error
}

// Metrics учитывает бизнес-метрики записи на курсы.
type Metrics interface {
	RecordEnrollment(created bool)
}

// EnrollmentService реализует идемпотентную запись на курс, ограниченную
// наличием платежа. Статус платежа не проверяется: достаточно любой
// записи об оплате пары (пользователь, курс).
type EnrollmentService struct {
	repo    EnrollmentRepository
	events  EventPublisher
	metrics Metrics
	log     *slog.Logger
}

// NewEnrollmentService создает новый экземпляр EnrollmentService.
func NewEnrollmentService(repo EnrollmentRepository, events EventPublisher, metrics Metrics, log *slog.Logger) *EnrollmentService {
	return &EnrollmentService{
		repo:    repo,
		events:  events,
		metrics: metrics,
		log:     log,
	}
}

// Enroll записывает пользователя на курс. Повторный вызов для той же
// пары (пользователь, курс) не создаёт новой записи и возвращает
// StatusAlreadyEnrolled; гонка одинаковых запросов разрешается на
// уникальном индексе хранилища и не видна клиенту как ошибка.
func (s *EnrollmentService) Enroll(ctx context.Context, actor models.Actor, courseID int) (string, *models.Enrollment, error) {
	if _, err := s.repo.ReadCourse(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, apperr.NotFound("course not found")
		}
		return "", nil, err
	}

	paid, err := s.repo.ExistsPayment(ctx, actor.UID, courseID)
	if err != nil {
		return "", nil, err
	}
	if !paid {
		return "", nil, apperr.Forbidden("must purchase this course to enroll")
	}

	enrollment, created, err := s.repo.GetOrCreateEnrollment(ctx, actor.UID, courseID)
	if err != nil {
		return "", nil, err
	}
	s.metrics.RecordEnrollment(created)

	if !created {
		return StatusAlreadyEnrolled, enrollment, nil
	}

	s.log.Info("enrolled user in course",
		slog.String("user_uid", actor.UID), slog.Int("course_id", courseID))

	if err := s.events.Publish(rabbitmq.RoutingKeyEnrollmentCreated, rabbitmq.EnrollmentCreatedEvent{
		EnrollmentID: enrollment.ID,
		UserUID:      enrollment.UserUID,
		CourseID:     enrollment.CourseID,
	}); err != nil {
		s.log.Warn("failed to publish enrollment event", sl.Err(err))
	}

	return StatusEnrolled, enrollment, nil
}

// Students возвращает студентов курса. Список доступен только инструктору курса.
func (s *EnrollmentService) Students(ctx context.Context, actor models.Actor, courseID, limit, offset int) ([]*models.StudentInfo, error) {
	course, err := s.repo.ReadCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}
	if err := policy.CanViewStudents(actor, course); err != nil {
		return nil, err
	}
	return s.repo.ListStudents(ctx, courseID, limit, offset)
}
