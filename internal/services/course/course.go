// Package services содержит бизнес-логику для управления курсами и кешированием их карточек.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/policy"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// CourseRepository определяет методы для работы с курсами в хранилище.
type CourseRepository interface {
	// CreateCourse добавляет новый курс и возвращает его ID.
	CreateCourse(ctx context.Context, course models.Course) (int, error)
	// ReadCourse возвращает курс по ID.
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
	// UpdateCourse обновляет данные курса по ID.
	UpdateCourse(ctx context.Context, course models.Course, id int) (int, error)
	// RemoveCourse удаляет курс по ID и возвращает количество удалённых записей.
	RemoveCourse(ctx context.Context, id int) (int, error)
	// ListCourses возвращает список курсов с пагинацией.
	ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// CourseService реализует бизнес-логику работы с курсами.
// Проверки владения выполняются до любой мутации: при отказе курс
// остаётся нетронутым.
type CourseService struct {
	repo  CourseRepository
	cache Cache
	log   *slog.Logger
}

// NewCourseService создает новый экземпляр CourseService.
func NewCourseService(repo CourseRepository, cache Cache, log *slog.Logger) *CourseService {
	return &CourseService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый курс от имени инструктора и возвращает ID.
func (s *CourseService) Create(ctx context.Context, actor models.Actor, req models.DummyCourse) (int, error) {
	if err := policy.CanCreateCourse(actor); err != nil {
		return 0, err
	}

	course := models.Course{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		InstructorUID: actor.UID,
	}
	id, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new course", slog.Int("id", id))
	return id, nil
}

// Read возвращает курс по ID, используя кеш или репозиторий.
func (s *CourseService) Read(ctx context.Context, id int) (*models.Course, error) {
	var result *models.Course
	cacheKey := fmt.Sprintf("course:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadCourse(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache course", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Update обновляет курс после проверки владения и инвалидирует кеш.
func (s *CourseService) Update(ctx context.Context, actor models.Actor, id int, req models.DummyCourse) error {
	course, err := s.readForOwnershipCheck(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanModifyCourse(actor, course); err != nil {
		return err
	}

	updated := models.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if _, err := s.repo.UpdateCourse(ctx, updated, id); err != nil {
		return err
	}
	s.log.Info("updated course in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("course:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return nil
}

// Delete удаляет курс после проверки владения и инвалидирует кеш.
func (s *CourseService) Delete(ctx context.Context, actor models.Actor, id int) error {
	course, err := s.readForOwnershipCheck(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanModifyCourse(actor, course); err != nil {
		return err
	}

	if _, err := s.repo.RemoveCourse(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed course from storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("course:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return nil
}

// List возвращает список курсов с пагинацией.
func (s *CourseService) List(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	return s.repo.ListCourses(ctx, limit, offset)
}

// readForOwnershipCheck читает курс напрямую из репозитория, минуя кеш:
// проверка владения всегда идёт по актуальной записи.
func (s *CourseService) readForOwnershipCheck(ctx context.Context, id int) (*models.Course, error) {
	course, err := s.repo.ReadCourse(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}
	return course, nil
}
