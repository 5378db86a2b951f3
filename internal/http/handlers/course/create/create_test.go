package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, actor models.Actor, req models.DummyCourse) (int, error) {
	args := m.Called(ctx, actor, req)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler(t *testing.T) {
	instructor := models.Actor{UID: "instructor-uid", Username: "teacher", IsInstructor: true}

	tests := []struct {
		name           string
		actor          *models.Actor
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное создание курса",
			actor: &instructor,
			body:  `{"title":"Go basics","description":"intro course","price":3000}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, instructor, models.DummyCourse{
					Title:       "Go basics",
					Description: "intro course",
					Price:       3000,
				}).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":42`,
		},
		{
			name:           "запрос без пользователя в контексте",
			actor:          nil,
			body:           `{"title":"Go basics","description":"intro course","price":3000}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"missing authentication"`,
		},
		{
			name:           "некорректный JSON",
			actor:          &instructor,
			body:           `{"title":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "нулевая цена не проходит валидацию",
			actor:          &instructor,
			body:           `{"title":"Go basics","description":"intro course","price":0}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:  "студент получает forbidden",
			actor: &models.Actor{UID: "student-uid", Username: "learner"},
			body:  `{"title":"Go basics","description":"intro course","price":3000}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(0, apperr.Forbidden("only an instructor can create a course"))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"only an instructor can create a course"`,
		},
		{
			name:  "ошибка сервиса",
			actor: &instructor,
			body:  `{"title":"Go basics","description":"intro course","price":3000}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not create course"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(tt.body))
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
