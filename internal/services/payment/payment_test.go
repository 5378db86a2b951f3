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

func (m *RepoMock) CreatePayment(ctx context.Context, payment models.Payment) (int, error) {
	args := m.Called(ctx, payment)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListPayments(ctx context.Context, userUID string, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}
func (m *RepoMock) UpdatePaymentStatus(ctx context.Context, id int, status string) (int, error) {
	args := m.Called(ctx, id, status)
	return args.Int(0), args.Error(1)
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

func (m *MetricsMock) RecordPayment()                        { m.Called() }
func (m *MetricsMock) RecordPaymentTransition(status string) { m.Called(status) }

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestPaymentService_Record(t *testing.T) {
	actor := models.Actor{UID: "student-uid", Username: "learner"}
	course := &models.Course{ID: 5, Title: "Go basics", Price: 3000, InstructorUID: "owner-uid"}

	t.Run("успешная запись платежа", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
			return p.UserUID == actor.UID && p.CourseID == 5 && p.Status == models.PaymentStatusPending
		})).Return(77, nil).Once()
		metrics.On("RecordPayment").Once()
		events.On("Publish", rabbitmq.RoutingKeyPaymentRecorded, mock.Anything).Return(nil).Once()

		service := NewPaymentService(repo, events, metrics, newNoopLogger())
		payment, err := service.Record(context.Background(), actor, models.DummyPayment{CourseID: 5, Amount: 3000})

		assert.NoError(t, err)
		assert.Equal(t, 77, payment.ID)
		assert.Equal(t, models.PaymentStatusPending, payment.Status)
		repo.AssertExpectations(t)
		events.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})

	t.Run("недостаточная сумма отклоняется", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()

		service := NewPaymentService(repo, events, metrics, newNoopLogger())
		_, err := service.Record(context.Background(), actor, models.DummyPayment{CourseID: 5, Amount: 2999.99})

		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		assert.EqualError(t, err, "payment amount is not sufficient")
		repo.AssertNotCalled(t, "CreatePayment")
	})

	t.Run("переплата допускается", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("CreatePayment", mock.Anything, mock.Anything).Return(78, nil).Once()
		metrics.On("RecordPayment").Once()
		events.On("Publish", rabbitmq.RoutingKeyPaymentRecorded, mock.Anything).Return(nil).Once()

		service := NewPaymentService(repo, events, metrics, newNoopLogger())
		payment, err := service.Record(context.Background(), actor, models.DummyPayment{CourseID: 5, Amount: 5000})

		assert.NoError(t, err)
		assert.Equal(t, 78, payment.ID)
	})

	t.Run("платёж за несуществующий курс", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		service := NewPaymentService(repo, events, metrics, newNoopLogger())
		_, err := service.Record(context.Background(), actor, models.DummyPayment{CourseID: 99, Amount: 3000})

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("ошибка брокера не ломает платёж", func(t *testing.T) {
		repo := new(RepoMock)
		events := new(PublisherMock)
		metrics := new(MetricsMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("CreatePayment", mock.Anything, mock.Anything).Return(79, nil).Once()
		metrics.On("RecordPayment").Once()
		events.On("Publish", rabbitmq.RoutingKeyPaymentRecorded, mock.Anything).Return(errors.New("broker down")).Once()

		service := NewPaymentService(repo, events, metrics, newNoopLogger())
		payment, err := service.Record(context.Background(), actor, models.DummyPayment{CourseID: 5, Amount: 3000})

		assert.NoError(t, err)
		assert.Equal(t, 79, payment.ID)
	})
}

func TestPaymentService_MarkPaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		paymentID  int
		status     string
		setupMocks func(r *RepoMock, m *MetricsMock)
		wantKind   apperr.Kind
	}{
		{
			name:      "перевод в completed",
			paymentID: 77,
			status:    models.PaymentStatusCompleted,
			setupMocks: func(r *RepoMock, m *MetricsMock) {
				r.On("UpdatePaymentStatus", mock.Anything, 77, models.PaymentStatusCompleted).Return(1, nil).Once()
				m.On("RecordPaymentTransition", models.PaymentStatusCompleted).Once()
			},
		},
		{
			name:      "перевод в failed",
			paymentID: 77,
			status:    models.PaymentStatusFailed,
			setupMocks: func(r *RepoMock, m *MetricsMock) {
				r.On("UpdatePaymentStatus", mock.Anything, 77, models.PaymentStatusFailed).Return(1, nil).Once()
				m.On("RecordPaymentTransition", models.PaymentStatusFailed).Once()
			},
		},
		{
			name:      "неизвестный статус отклоняется",
			paymentID: 77,
			status:    "refunded",
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "статус pending вернуть нельзя",
			paymentID: 77,
			status:    models.PaymentStatusPending,
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "несуществующий платёж",
			paymentID: 99,
			status:    models.PaymentStatusCompleted,
			setupMocks: func(r *RepoMock, _ *MetricsMock) {
				r.On("UpdatePaymentStatus", mock.Anything, 99, models.PaymentStatusCompleted).Return(0, nil).Once()
			},
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			events := new(PublisherMock)
			metrics := new(MetricsMock)
			if tt.setupMocks != nil {
				tt.setupMocks(repo, metrics)
			}

			service := NewPaymentService(repo, events, metrics, newNoopLogger())
			err := service.MarkPaymentStatus(context.Background(), tt.paymentID, tt.status)

			if tt.wantKind != 0 {
				assert.True(t, apperr.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			metrics.AssertExpectations(t)
		})
	}
}

func TestPaymentService_List(t *testing.T) {
	repo := new(RepoMock)
	payments := []*models.Payment{{ID: 1, UserUID: "student-uid"}, {ID: 2, UserUID: "student-uid"}}
	repo.On("ListPayments", mock.Anything, "student-uid", 20, 0).Return(payments, nil).Once()

	service := NewPaymentService(repo, new(PublisherMock), new(MetricsMock), newNoopLogger())
	got, err := service.List(context.Background(), "student-uid", 20, 0)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}
