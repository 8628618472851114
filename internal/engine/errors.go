package engine

import (
	"fmt"
	"net/http"
)

// Error is the single domain error kind the engine surfaces. Every failure
// is a client/input problem: the computation is pure and deterministic, so
// nothing it reports is retryable. Status is always 400.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalidInput(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidInput reports whether err is an engine input error.
func IsInvalidInput(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Status == http.StatusBadRequest
}
