// Package apperr содержит типизированные ошибки бизнес-логики.
// Каждая ошибка несёт вид (Kind) и сообщение для клиента; транспортный
// слой отображает вид на HTTP-статус. Ошибки хранилища и прочие
// внутренние ошибки в этот пакет не входят и отдаются как 500.
package apperr

import (
	"errors"
	"net/http"
)

// Kind определяет вид ошибки бизнес-логики.
type Kind int

const (
	// KindUnauthenticated — отсутствует аутентифицированный пользователь.
	KindUnauthenticated Kind = iota + 1
	// KindForbidden — у пользователя нет нужного отношения к сущности.
	KindForbidden
	// KindNotFound — сущность не найдена.
	KindNotFound
	// KindValidation — некорректные входные данные.
	KindValidation
	// KindConflict — нарушение ограничения уникальности.
	KindConflict
)

// Error — ошибка бизнес-логики с видом и сообщением для клиента.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// HTTPStatus возвращает HTTP-статус, соответствующий виду ошибки.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Unauthenticated создаёт ошибку вида KindUnauthenticated.
func Unauthenticated(msg string) *Error { return &Error{Kind: KindUnauthenticated, Msg: msg} }

// Forbidden создаёт ошибку вида KindForbidden.
func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Msg: msg} }

// NotFound создаёт ошибку вида KindNotFound.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// Validation создаёт ошибку вида KindValidation.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

// Conflict создаёт ошибку вида KindConflict.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

// As извлекает *Error из цепочки ошибок.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind сообщает, является ли ошибка ошибкой бизнес-логики заданного вида.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
