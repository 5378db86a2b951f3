// Package enroll реализует HTTP-обработчик записи на курс.
//
// Запись создаётся только после оплаты курса. Повторная попытка записи
// не создаёт дубликата, а возвращает статус "already enrolled".
package enroll

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-marketplace/internal/http/response"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// Handler обрабатывает HTTP-запросы записи на курс.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики записи на курс.
type Service interface {
	Enroll(ctx context.Context, actor models.Actor, courseID int) (string, *models.Enrollment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Записаться на курс
// @Description Создает запись студента на оплаченный курс. Повторный вызов идемпотентен.
// @Tags Enrollments
// @Security BearerAuth
// @Produce  json
// @Param id path int true "ID курса"
// @Success 200 {object} map[string]any "Статус записи"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 403 {object} response.ErrorResponse "Курс не оплачен"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /courses/{id}/enroll [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.enroll"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor, ok := middlewarectx.ActorFromContext(r.Context())
	if !ok {
		log.Error("actor is missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing authentication"))
		return
	}

	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid course id"))
		return
	}

	status, enrollment, err := h.service.Enroll(r.Context(), actor, courseID)
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Error("enrollment rejected", sl.Err(err))
			w.WriteHeader(appErr.HTTPStatus())
			render.JSON(w, r, response.Error(appErr.Msg))
			return
		}
		log.Error("failed to enroll", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not enroll"))
		return
	}

	log.Info("enrollment processed",
		slog.Int("course_id", courseID),
		slog.String("user_uid", actor.UID),
		slog.String("enrollment_status", status))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"enrollment_status": status,
		"enrollment":        enrollment,
	}))
}
