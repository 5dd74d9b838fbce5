package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Error — ошибка с готовым HTTP-статусом и человекочитаемым детейлом.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func NoSource() *Error {
	return &Error{Status: http.StatusBadRequest, Detail: "no audio file provided"}
}

func UnsupportedFormat(allowed []string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Detail: "unsupported file format, supported formats: " + strings.Join(allowed, ", "),
	}
}

func PathNotFound(path string) *Error {
	return &Error{Status: http.StatusNotFound, Detail: "file not found: " + path}
}

func Upstream(detail string) *Error {
	return &Error{Status: http.StatusBadGateway, Detail: detail}
}

// StatusOf — статус для произвольной ошибки; всё неклассифицированное — 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}
