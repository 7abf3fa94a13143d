package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "Unauthorized",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidToken = &Exception{
	Message:    "Invalid token",
	StatusCode: http.StatusUnauthorized,
}

// Login deliberately reports the same message for an unknown email and a
// wrong password so the endpoint cannot be used to enumerate accounts.
var ErrInvalidCredentials = &Exception{
	Message:    "Invalid credentials",
	StatusCode: http.StatusUnauthorized,
}

var ErrAccountDeactivated = &Exception{
	Message:    "Account is deactivated",
	StatusCode: http.StatusForbidden,
}

var ErrUserDeactivated = &Exception{
	Message:    "Your account has been deactivated. Please contact admin.",
	StatusCode: http.StatusForbidden,
}

var ErrRoleDeactivated = &Exception{
	Message:    "Role is deactivated",
	StatusCode: http.StatusForbidden,
}

var ErrAccessDenied = &Exception{
	Message:    "Access denied",
	StatusCode: http.StatusForbidden,
}

var ErrEmailTaken = &Exception{
	Message:    "Email already exists",
	StatusCode: http.StatusConflict,
}

var ErrInvalidRole = &Exception{
	Message:    "Invalid role",
	StatusCode: http.StatusBadRequest,
}
