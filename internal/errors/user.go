package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "User not found",
	StatusCode: http.StatusNotFound,
}

// Admins may not flip their own active flag; a lone admin deactivating
// themselves would lock the admin surface permanently.
var ErrSelfStatusChange = &Exception{
	Message:    "Admins cannot change their own status",
	StatusCode: http.StatusForbidden,
}
