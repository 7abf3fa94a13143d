package errors

import (
	"errors"
	"net/http"
)

// Exception is a domain failure carrying the HTTP status it should be
// reported with. Services return these; the HTTP error handler translates
// them into the wire envelope exactly once.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
