// Package list реализует HTTP-обработчик получения списка уроков.
//
// Список можно фильтровать по курсу через query-параметр course_id.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-marketplace/internal/http/response"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/pagination"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// Handler обрабатывает HTTP-запросы получения списка уроков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка уроков.
type Service interface {
	List(ctx context.Context, courseID, limit, offset int) ([]*models.Lesson, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список уроков
// @Description Возвращает уроки, опционально отфильтрованные по курсу
// @Tags Lessons
// @Security BearerAuth
// @Produce  json
// @Param course_id query int false "ID курса для фильтрации"
// @Param limit query int false "Размер страницы" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {array} models.Lesson "Список уроков"
// @Failure 400 {object} response.ErrorResponse "Некорректный course_id"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /lessons [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.lesson.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	courseID := 0
	if v := r.URL.Query().Get("course_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Error("failed to decode course_id from query", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid course id"))
			return
		}
		courseID = n
	}

	limit, offset := pagination.FromQuery(r)

	lessons, err := h.service.List(r.Context(), courseID, limit, offset)
	if err != nil {
		log.Error("failed to list lessons", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list lessons"))
		return
	}

	log.Info("lessons listed", slog.Int("count", len(lessons)))
	render.JSON(w, r, response.OKWithData(lessons))
}
