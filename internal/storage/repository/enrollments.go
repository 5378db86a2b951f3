package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// GetOrCreateEnrollment атомарно создаёт запись на курс для пары
// (пользователь, курс). Возвращает запись и признак того, была ли она
// создана этим вызовом. При гонке двух одинаковых запросов уникальный
// индекс гарантирует ровно одну строку, проигравший получает created=false.
func (s *Storage) GetOrCreateEnrollment(ctx context.Context, userUID string, courseID int) (*models.Enrollment, bool, error) {
	const op = "storage.GetOrCreateEnrollment"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	insert := `INSERT INTO enrollments (user_uid, course_id)
			   VALUES ($1, $2)
			   ON CONFLICT (user_uid, course_id) DO NOTHING
			   RETURNING id, enrolled_at`
	enrollment := models.Enrollment{UserUID: userUID, CourseID: courseID}
	err := s.DB.QueryRowContext(ctx, insert, userUID, courseID).
		Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err == nil {
		return &enrollment, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	// Конфликт: запись уже существует, читаем её.
	read := `SELECT id, user_uid, course_id, enrolled_at
			 FROM enrollments
			 WHERE user_uid = $1 AND course_id = $2`
	row := s.DB.QueryRowContext(ctx, read, userUID, courseID)
	if err := row.Scan(&enrollment.ID, &enrollment.UserUID,
		&enrollment.CourseID, &enrollment.EnrolledAt); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return &enrollment, false, nil
}

// ExistsEnrollment сообщает, записан ли пользователь на курс.
func (s *Storage) ExistsEnrollment(ctx context.Context, userUID string, courseID int) (bool, error) {
	const op = "storage.ExistsEnrollment"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
				  SELECT 1 FROM enrollments
				  WHERE user_uid = $1 AND course_id = $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, userUID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListStudents возвращает список студентов курса с датами записи.
func (s *Storage) ListStudents(ctx context.Context, courseID, limit, offset int) ([]*models.StudentInfo, error) {
	const op = "storage.ListStudents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.username, u.email, e.enrolled_at
			  FROM enrollments e
			  JOIN users u ON e.user_uid = u.uid
			  WHERE e.course_id = $1
			  ORDER BY e.id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, courseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.StudentInfo
	for rows.Next() {
		var si models.StudentInfo
		if err := rows.Scan(&si.Username, &si.Email, &si.EnrolledAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &si)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
