// Package services содержит бизнес-логику отзывов о курсах.
package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// ReviewRepository определяет методы для работы с отзывами в хранилище.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (int, error)
	ListReviewsByCourse(ctx context.Context, courseID, limit, offset int) ([]*models.Review, error)
	ExistsEnrollment(ctx context.Context, userUID string, courseID int) (bool, error)
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// Metrics учитывает бизнес-метрики отзывов.
type Metrics interface {
	RecordReview()
}

// ReviewService реализует создание и чтение отзывов. Оставить отзыв
// может только записанный на курс пользователь; уникальность отзывов
// не требуется, повторные вызовы создают новые записи.
type ReviewService struct {
	repo    ReviewRepository
	metrics Metrics
	log     *slog.Logger
}

// NewReviewService создает новый экземпляр ReviewService.
func NewReviewService(repo ReviewRepository, metrics Metrics, log *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:    repo,
		metrics: metrics,
		log:     log,
	}
}

// Submit создает отзыв о курсе от имени записанного студента.
func (s *ReviewService) Submit(ctx context.Context, actor models.Actor, courseID int, req models.DummyReview) (*models.Review, error) {
	if _, err := s.repo.ReadCourse(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}

	enrolled, err := s.repo.ExistsEnrollment(ctx, actor.UID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperr.Forbidden("must be enrolled in the course to leave a review")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	review := models.Review{
		UserUID:  actor.UID,
		CourseID: courseID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	id, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id
	s.log.Info("created new review", slog.Int("id", id), slog.Int("course_id", courseID))
	s.metrics.RecordReview()

	return &review, nil
}

// List возвращает отзывы о курсе с пагинацией.
func (s *ReviewService) List(ctx context.Context, courseID, limit, offset int) ([]*models.Review, error) {
	if _, err := s.repo.ReadCourse(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, err
	}
	return s.repo.ListReviewsByCourse(ctx, courseID, limit, offset)
}
