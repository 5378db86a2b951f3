// Package paymentwebhook реализует HTTP-обработчик вебхука платёжного провайдера.
//
// Провайдер уведомляет о результате платежа, подписывая тело запроса
// HMAC-SHA256 с общим секретом. Запросы с неверной подписью отклоняются.
package paymentwebhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/http/response"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/sl"
)

// SignatureHeader — заголовок с HMAC-подписью тела запроса.
const SignatureHeader = "X-Api-Signature"

// Handler обрабатывает уведомления платёжного провайдера.
type Handler struct {
	log      *slog.Logger
	service  Service
	secret   string
	validate *validator.Validate
}

// Service описывает интерфейс смены статуса платежа.
type Service interface {
	MarkPaymentStatus(ctx context.Context, paymentID int, status string) error
}

// Request — тело уведомления от платёжного провайдера.
type Request struct {
	PaymentID int    `json:"payment_id" validate:"required"` // ID платежа в нашей системе
	Status    string `json:"status" validate:"required"`     // Итоговый статус: completed или failed
}

// New создает новый Handler с переданными логгером, сервисом и секретом подписи.
func New(log *slog.Logger, service Service, secret string) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		secret:   secret,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вебхук платёжного провайдера
// @Description Переводит платёж в итоговый статус по подписанному уведомлению провайдера
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param X-Api-Signature header string true "HMAC-SHA256 подпись тела запроса (hex)"
// @Param request body Request true "Уведомление о платеже"
// @Success 200 {object} response.Response "Статус обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверная подпись"
// @Failure 404 {object} response.ErrorResponse "Платёж не найден"
// @Failure 422 {object} response.ErrorResponse "Неизвестный статус"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /payments/webhook [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.paymentwebhook"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if !h.verifySignature(body, r.Header.Get(SignatureHeader)) {
		log.Error("invalid webhook signature")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid signature"))
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.MarkPaymentStatus(r.Context(), req.PaymentID, req.Status); err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Error("webhook rejected", sl.Err(err))
			w.WriteHeader(appErr.HTTPStatus())
			render.JSON(w, r, response.Error(appErr.Msg))
			return
		}
		log.Error("failed to update payment status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update payment status"))
		return
	}

	log.Info("payment status updated",
		slog.Int("payment_id", req.PaymentID),
		slog.String("payment_status", req.Status))
	render.JSON(w, r, response.OK())
}

// verifySignature сравнивает подпись заголовка с HMAC-SHA256 тела запроса.
func (h *Handler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
