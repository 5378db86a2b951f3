package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"unauthenticated", Unauthenticated("authentication required"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not the owner of this course"), http.StatusForbidden},
		{"not found", NotFound("course not found"), http.StatusNotFound},
		{"validation", Validation("payment amount is not sufficient"), http.StatusUnprocessableEntity},
		{"conflict", Conflict("username or email already taken"), http.StatusConflict},
		{"unknown kind", &Error{Msg: "oops"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound("course not found"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.Equal(t, "course not found", appErr.Msg)

	_, ok = As(errors.New("db error"))
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	err := Forbidden("must purchase this course to enroll")

	assert.True(t, IsKind(err, KindForbidden))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("db error"), KindForbidden))
}
