package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
	"github.com/magabrotheeeer/course-marketplace/internal/rabbitmq"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetOrCreateEnrollment(ctx context.Context, userUID string, courseID int) (*models.Enrollment, bool, error) {
	args := m.Called(ctx, userUID, courseID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Enrollment), args.Bool(1), args.Error(2)
}
func (m *RepoMock) ExistsPayment(ctx context.Context, userUID string, courseID int) (bool, error) {
	args := m.Called(ctx, userUID, courseID)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) ListStudents(ctx context.Context, courseID, limit, offset int) ([]*models.StudentInfo, error) {
	args := m.Called(ctx, courseID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StudentInfo), args.Error(1)
}
func (m *RepoMock) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(routingKey string, event any) error {
	return m.Called(routingKey, event).Error(0)
}

type MetricsMock struct{ mock.Mock }

func (m *MetricsMock) RecordEnrollment(created bool) { m.Called(created) }

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestEnrollmentService_Enroll(t *testing.T) {
	actor := models.Actor{UID: "student-uid", Username: "learner"}
	course := &models.Course{ID: 5, Title: "Go basics", Price: 3000, InstructorUID: "owner-uid"}
	enrollment := &models.Enrollment{ID: 9, UserUID: "student-uid", CourseID: 5}

	t.Run("оплаченный курс даёт новую запись", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("ExistsPayment", mock.Anything, "student-uid", 5).Return(true, nil).Once()
		repo.On("GetOrCreateEnrollment", mock.Anything, "student-uid", 5).Return(enrollment, true, nil).Once()
		metrics.On("RecordEnrollment", true).Once()
		events.On("Publish", rabbitmq.RoutingKeyEnrollmentCreated, mock.MatchedBy(func(e rabbitmq.EnrollmentCreatedEvent) bool {
			return e.EnrollmentID == 9 && e.CourseID == 5
		})).Return(nil).Once()

		service := NewEnrollmentService(repo, events, metrics, newNoopLogger())
		status, got, err := service.Enroll(context.Background(), actor, 5)

		assert.NoError(t, err)
		assert.Equal(t, StatusEnrolled, status)
		assert.Equal(t, enrollment, got)
		repo.AssertExpectations(t)
		events.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})

	t.Run("повторная запись не создаёт дубликата", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("ExistsPayment", mock.Anything, "student-uid", 5).Return(true, nil).Once()
		repo.On("GetOrCreateEnrollment", mock.Anything, "student-uid", 5).Return(enrollment, false, nil).Once()
		metrics.On("RecordEnrollment", false).Once()

		service := NewEnrollmentService(repo, events, metrics, newNoopLogger())
		status, got, err := service.Enroll(context.Background(), actor, 5)

		assert.NoError(t, err)
		assert.Equal(t, StatusAlreadyEnrolled, status)
		assert.Equal(t, enrollment, got)
		events.AssertNotCalled(t, "Publish")
	})

	t.Run("запись без оплаты запрещена", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("ExistsPayment", mock.Anything, "student-uid", 5).Return(false, nil).Once()

		service := NewEnrollmentService(repo, events, metrics, newNoopLogger())
		_, _, err := service.Enroll(context.Background(), actor, 5)

		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
		assert.EqualError(t, err, "must purchase this course to enroll")
		repo.AssertNotCalled(t, "GetOrCreateEnrollment")
	})

	t.Run("запись на несуществующий курс", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		service := NewEnrollmentService(repo, new(PublisherMock), new(MetricsMock), newNoopLogger())
		_, _, err := service.Enroll(context.Background(), actor, 99)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("ошибка хранилища пробрасывается", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("ExistsPayment", mock.Anything, "student-uid", 5).Return(false, errors.New("db error")).Once()

		service := NewEnrollmentService(repo, new(PublisherMock), new(MetricsMock), newNoopLogger())
		_, _, err := service.Enroll(context.Background(), actor, 5)

		assert.Error(t, err)
		_, ok := apperr.As(err)
		assert.False(t, ok)
	})
}

func TestEnrollmentService_Students(t *testing.T) {
	course := &models.Course{ID: 5, InstructorUID: "owner-uid"}
	students := []*models.StudentInfo{
		{Username: "learner", Email: "learner@example.com"},
		{Username: "another", Email: "another@example.com"},
	}

	t.Run("инструктор курса видит студентов", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("ListStudents", mock.Anything, 5, 20, 0).Return(students, nil).Once()

		service := NewEnrollmentService(repo, new(PublisherMock), new(MetricsMock), newNoopLogger())
		got, err := service.Students(context.Background(), models.Actor{UID: "owner-uid", IsInstructor: true}, 5, 20, 0)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		repo.AssertExpectations(t)
	})

	t.Run("чужой пользователь получает forbidden", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()

		service := NewEnrollmentService(repo, new(PublisherMock), new(MetricsMock), newNoopLogger())
		_, err := service.Students(context.Background(), models.Actor{UID: "student-uid"}, 5, 20, 0)

		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
		assert.EqualError(t, err, "only the instructor can view the students")
		repo.AssertNotCalled(t, "ListStudents")
	})

	t.Run("несуществующий курс", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		service := NewEnrollmentService(repo, new(PublisherMock), new(MetricsMock), newNoopLogger())
		_, err := service.Students(context.Background(), models.Actor{UID: "owner-uid"}, 99, 20, 0)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}
