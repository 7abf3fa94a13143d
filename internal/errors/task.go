package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "Task not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskForbidden = &Exception{
	Message:    "Forbidden: You are not allowed to access this task",
	StatusCode: http.StatusForbidden,
}

var ErrInvalidStatus = &Exception{
	Message:    "Invalid status",
	StatusCode: http.StatusBadRequest,
}
