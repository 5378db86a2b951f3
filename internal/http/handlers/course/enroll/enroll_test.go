package enroll

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// MockService реализует интерфейс enroll.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Enroll(ctx context.Context, actor models.Actor, courseID int) (string, *models.Enrollment, error) {
	args := m.Called(ctx, actor, courseID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.Enrollment), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestEnrollHandler(t *testing.T) {
	student := models.Actor{UID: "student-uid", Username: "learner"}
	enrollment := &models.Enrollment{ID: 9, UserUID: "student-uid", CourseID: 5}

	tests := []struct {
		name           string
		actor          *models.Actor
		urlID          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешная запись на курс",
			actor: &student,
			urlID: "5",
			setupMock: func(m *MockService) {
				m.On("Enroll", mock.Anything, student, 5).Return("enrolled", enrollment, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"enrollment_status":"enrolled"`,
		},
		{
			name:  "повторная запись возвращает already enrolled",
			actor: &student,
			urlID: "5",
			setupMock: func(m *MockService) {
				m.On("Enroll", mock.Anything, student, 5).Return("already enrolled", enrollment, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"enrollment_status":"already enrolled"`,
		},
		{
			name:  "запись без оплаты запрещена",
			actor: &student,
			urlID: "5",
			setupMock: func(m *MockService) {
				m.On("Enroll", mock.Anything, student, 5).
					Return("", nil, apperr.Forbidden("must purchase this course to enroll"))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"must purchase this course to enroll"`,
		},
		{
			name:           "запрос без пользователя в контексте",
			actor:          nil,
			urlID:          "5",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"missing authentication"`,
		},
		{
			name:           "некорректный id в URL",
			actor:          &student,
			urlID:          "abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid course id"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/courses/"+tt.urlID+"/enroll", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.actor != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.ActorKey, *tt.actor))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
