// Package services содержит бизнес-логику для управления уроками курсов.
package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/policy"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// LessonRepository определяет методы для работы с уроками в хранилище.
// ReadCourse нужен для явной проверки владельца курса: урок наследует
// владельца своего курса.
type LessonRepository interface {
	CreateLesson(ctx context.Context, lesson models.Lesson) (int, error)
	ReadLesson(ctx context.Context, id int) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, lesson models.Lesson, id int) (int, error)
	RemoveLesson(ctx context.Context, id int) (int, error)
	ListLessons(ctx context.Context, courseID, limit, offset int) ([]*models.Lesson, error)
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// LessonService реализует бизнес-логику работы с уроками.
type LessonService struct {
	repo LessonRepository
	log  *slog.Logger
}

// NewLessonService создает новый экземпляр LessonService.
func NewLessonService(repo LessonRepository, log *slog.Logger) *LessonService {
	return &LessonService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый урок и возвращает его ID.
// Курс должен существовать, создавать уроки могут только инструкторы.
func (s *LessonService) Create(ctx context.Context, actor models.Actor, req models.DummyLesson) (int, error) {
	if err := policy.CanCreateLesson(actor); err != nil {
		return 0, err
	}
	if _, err := s.readCourse(ctx, req.CourseID); err != nil {
		return 0, err
	}

	lesson := models.Lesson{
		CourseID:   req.CourseID,
		Title:      req.Title,
		ContentURL: req.ContentURL,
	}
	id, err := s.repo.CreateLesson(ctx, lesson)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new lesson", slog.Int("id", id), slog.Int("course_id", req.CourseID))
	return id, nil
}

// Read возвращает урок по ID.
func (s *LessonService) Read(ctx context.Context, id int) (*models.Lesson, error) {
	lesson, err := s.repo.ReadLesson(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("lesson not found")
		}
		return nil, err
	}
	return lesson, nil
}

// Update обновляет урок после проверки владельца его курса.
func (s *LessonService) Update(ctx context.Context, actor models.Actor, id int, req models.DummyLesson) error {
	if err := s.checkLessonOwnership(ctx, actor, id); err != nil {
		return err
	}

	updated := models.Lesson{
		Title:      req.Title,
		ContentURL: req.ContentURL,
	}
	if _, err := s.repo.UpdateLesson(ctx, updated, id); err != nil {
		return err
	}
	s.log.Info("updated lesson in storage", slog.Int("id", id))
	return nil
}

// Delete удаляет урок после проверки владельца его курса.
func (s *LessonService) Delete(ctx context.Context, actor models.Actor, id int) error {
	if err := s.checkLessonOwnership(ctx, actor, id); err != nil {
		return err
	}

	if _, err := s.repo.RemoveLesson(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed lesson from storage", slog.Int("id", id))
	return nil
}

// List возвращает список уроков, опционально ограниченный курсом.
func (s *LessonService) List(ctx context.Context, courseID, limit, offset int) ([]*models.Lesson, error) {
	return s.repo.ListLessons(ctx, courseID, limit, offset)
}

// checkLessonOwnership загружает урок и его курс и проверяет,
// что actor — владелец курса.
func (s *LessonService) checkLessonOwnership(ctx context.Context, actor models.Actor, lessonID int) error {
	lesson, err := s.Read(ctx, lessonID)
	if err != nil {
		return err
	}
	course, err := s.readCourse(ctx, lesson.CourseID)
	if err != nil {
		return err
	}
	return policy.CanModifyLesson(actor, course)
}

func (s *LessonService) readCourse(ctx context.Context, courseID int) (*models.Course, error) {
	course, err := s.repo.ReadCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}
	return course, nil
}
