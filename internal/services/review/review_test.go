package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateReview(ctx context.Context, review models.Review) (int, error) {
	args := m.Called(ctx, review)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListReviewsByCourse(ctx context.Context, courseID, limit, offset int) ([]*models.Review, error) {
	args := m.Called(ctx, courseID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}
func (m *RepoMock) ExistsEnrollment(ctx context.Context, userUID string, courseID int) (bool, error) {
	args := m.Called(ctx, userUID, courseID)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

type MetricsMock struct{ mock.Mock }

func (m *MetricsMock) RecordReview() { m.Called() }

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReviewService_Submit(t *testing.T) {
	actor := models.Actor{UID: "student-uid", Username: "learner"}
	course := &models.Course{ID: 5, InstructorUID: "owner-uid"}

	tests := []struct {
		name       string
		courseID   int
		req        models.DummyReview
		setupMocks func(r *RepoMock, m *MetricsMock)
		wantID     int
		wantKind   apperr.Kind
		wantMsg    string
	}{
		{
			name:     "записанный студент оставляет отзыв",
			courseID: 5,
			req:      models.DummyReview{Rating: 5, Comment: "great course"},
			setupMocks: func(r *RepoMock, m *MetricsMock) {
				r.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
				r.On("ExistsEnrollment", mock.Anything, "student-uid", 5).Return(true, nil).Once()
				r.On("CreateReview", mock.Anything, mock.MatchedBy(func(rv models.Review) bool {
					return rv.UserUID == "student-uid" && rv.CourseID == 5 && rv.Rating == 5
				})).Return(13, nil).Once()
				m.On("RecordReview").Once()
			},
			wantID: 13,
		},
		{
			name:     "отзыв допускает пустой комментарий",
			courseID: 5,
			req:      models.DummyReview{Rating: 3},
			setupMocks: func(r *RepoMock, m *MetricsMock) {
				r.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
				r.On("ExistsEnrollment", mock.Anything, "student-uid", 5).Return(true, nil).Once()
				r.On("CreateReview", mock.Anything, mock.Anything).Return(14, nil).Once()
				m.On("RecordReview").Once()
			},
			wantID: 14,
		},
		{
			name:     "без записи на курс отзыв запрещён",
			courseID: 5,
			req:      models.DummyReview{Rating: 4},
			setupMocks: func(r *RepoMock, _ *MetricsMock) {
				r.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
				r.On("ExistsEnrollment", mock.Anything, "student-uid", 5).Return(false, nil).Once()
			},
			wantKind: apperr.KindForbidden,
			wantMsg:  "must be enrolled in the course to leave a review",
		},
		{
			name:     "оценка вне диапазона",
			courseID: 5,
			req:      models.DummyReview{Rating: 6},
			setupMocks: func(r *RepoMock, _ *MetricsMock) {
				r.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
				r.On("ExistsEnrollment", mock.Anything, "student-uid", 5).Return(true, nil).Once()
			},
			wantKind: apperr.KindValidation,
			wantMsg:  "rating must be between 1 and 5",
		},
		{
			name:     "отзыв на несуществующий курс",
			courseID: 99,
			req:      models.DummyReview{Rating: 4},
			setupMocks: func(r *RepoMock, _ *MetricsMock) {
				r.On("ReadCourse", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()
			},
			wantKind: apperr.KindNotFound,
			wantMsg:  "course not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			metrics := new(MetricsMock)
			tt.setupMocks(repo, metrics)

			service := NewReviewService(repo, metrics, newNoopLogger())
			review, err := service.Submit(context.Background(), actor, tt.courseID, tt.req)

			if tt.wantKind != 0 {
				assert.True(t, apperr.IsKind(err, tt.wantKind))
				assert.EqualError(t, err, tt.wantMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, review.ID)
			}
			repo.AssertExpectations(t)
			metrics.AssertExpectations(t)
		})
	}
}

func TestReviewService_List(t *testing.T) {
	course := &models.Course{ID: 5, InstructorUID: "owner-uid"}
	reviews := []*models.Review{{ID: 1, CourseID: 5, Rating: 5}, {ID: 2, CourseID: 5, Rating: 3}}

	t.Run("список отзывов курса", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 5).Return(course, nil).Once()
		repo.On("ListReviewsByCourse", mock.Anything, 5, 20, 0).Return(reviews, nil).Once()

		service := NewReviewService(repo, new(MetricsMock), newNoopLogger())
		got, err := service.List(context.Background(), 5, 20, 0)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		repo.AssertExpectations(t)
	})

	t.Run("несуществующий курс", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadCourse", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		service := NewReviewService(repo, new(MetricsMock), newNoopLogger())
		_, err := service.List(context.Background(), 99, 20, 0)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
		repo.AssertNotCalled(t, "ListReviewsByCourse")
	})
}
