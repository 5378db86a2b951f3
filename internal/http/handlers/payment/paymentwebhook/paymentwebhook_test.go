package paymentwebhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
)

// MockService реализует интерфейс paymentwebhook.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) MarkPaymentStatus(ctx context.Context, paymentID int, status string) error {
	return m.Called(ctx, paymentID, status).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookHandler(t *testing.T) {
	const secret = "webhook_secret"

	tests := []struct {
		name           string
		body           string
		signature      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "подтверждение платежа",
			body:      `{"payment_id":77,"status":"completed"}`,
			signature: sign(secret, `{"payment_id":77,"status":"completed"}`),
			setupMock: func(m *MockService) {
				m.On("MarkPaymentStatus", mock.Anything, 77, "completed").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:      "отклонение платежа",
			body:      `{"payment_id":77,"status":"failed"}`,
			signature: sign(secret, `{"payment_id":77,"status":"failed"}`),
			setupMock: func(m *MockService) {
				m.On("MarkPaymentStatus", mock.Anything, 77, "failed").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "отсутствует подпись",
			body:           `{"payment_id":77,"status":"completed"}`,
			signature:      "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"invalid signature"`,
		},
		{
			name:           "подпись не совпадает с телом",
			body:           `{"payment_id":77,"status":"completed"}`,
			signature:      sign(secret, `{"payment_id":78,"status":"completed"}`),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"invalid signature"`,
		},
		{
			name:           "подпись чужим секретом",
			body:           `{"payment_id":77,"status":"completed"}`,
			signature:      sign("other_secret", `{"payment_id":77,"status":"completed"}`),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"invalid signature"`,
		},
		{
			name:      "неизвестный статус",
			body:      `{"payment_id":77,"status":"refunded"}`,
			signature: sign(secret, `{"payment_id":77,"status":"refunded"}`),
			setupMock: func(m *MockService) {
				m.On("MarkPaymentStatus", mock.Anything, 77, "refunded").
					Return(apperr.Validation("unknown payment status"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"unknown payment status"`,
		},
		{
			name:      "платёж не найден",
			body:      `{"payment_id":99,"status":"completed"}`,
			signature: sign(secret, `{"payment_id":99,"status":"completed"}`),
			setupMock: func(m *MockService) {
				m.On("MarkPaymentStatus", mock.Anything, 99, "completed").
					Return(apperr.NotFound("payment not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"payment not found"`,
		},
		{
			name:           "некорректный JSON с валидной подписью",
			body:           `{"payment_id":`,
			signature:      sign(secret, `{"payment_id":`),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			handler := New(newNoopLogger(), mockService, secret)

			req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
