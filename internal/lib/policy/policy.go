// Package policy содержит чистые предикаты авторизации над парой
// (пользователь, сущность). Предикаты не имеют побочных эффектов и
// проверяются до любой мутации: при отказе сущность остаётся нетронутой.
//
// Владение проверяется сравнением UID инструктора, сохранённого в курсе,
// с UID текущего пользователя; урок наследует владельца своего курса.
package policy

import (
	"github.com/magabrotheeeer/course-marketplace/internal/apperr"
	"github.com/magabrotheeeer/course-marketplace/internal/models"
)

// CanCreateCourse разрешает создание курса только аутентифицированному
// инструктору.
func CanCreateCourse(actor models.Actor) error {
	if actor.UID == "" {
		return apperr.Unauthenticated("authentication required")
	}
	if !actor.IsInstructor {
		return apperr.Forbidden("only an instructor can create a course")
	}
	return nil
}

// CanCreateLesson разрешает создание урока только аутентифицированному
// инструктору.
func CanCreateLesson(actor models.Actor) error {
	if actor.UID == "" {
		return apperr.Unauthenticated("authentication required")
	}
	if !actor.IsInstructor {
		return apperr.Forbidden("only an instructor can create a lesson")
	}
	return nil
}

// CanModifyCourse разрешает изменение и удаление курса только его владельцу.
func CanModifyCourse(actor models.Actor, course *models.Course) error {
	if course.InstructorUID != actor.UID {
		return apperr.Forbidden("not the owner of this course")
	}
	return nil
}

// CanModifyLesson разрешает изменение и удаление урока только владельцу
// курса, которому принадлежит урок.
func CanModifyLesson(actor models.Actor, course *models.Course) error {
	if course.InstructorUID != actor.UID {
		return apperr.Forbidden("not the owner of this lesson")
	}
	return nil
}

// CanViewStudents разрешает просмотр студентов курса только его инструктору.
func CanViewStudents(actor models.Actor, course *models.Course) error {
	if course.InstructorUID != actor.UID {
		return apperr.Forbidden("only the instructor can view the students")
	}
	return nil
}
