package errors

import "net/http"

var ErrGroupNotFound = &Exception{
	Message:    "Group not found",
	StatusCode: http.StatusNotFound,
}

var ErrGroupForbidden = &Exception{
	Message:    "Forbidden",
	StatusCode: http.StatusForbidden,
}

var ErrTaskAlreadyInGroup = &Exception{
	Message:    "Task already added to this group",
	StatusCode: http.StatusConflict,
}

var ErrTaskNotInGroup = &Exception{
	Message:    "Task is not in this group",
	StatusCode: http.StatusBadRequest,
}

var ErrSameGroup = &Exception{
	Message:    "Source and destination groups must differ",
	StatusCode: http.StatusBadRequest,
}

var ErrNotEnoughGroups = &Exception{
	Message:    "At least two groups are required",
	StatusCode: http.StatusBadRequest,
}

var ErrNoTasksToMove = &Exception{
	Message:    "Source group has no tasks to move",
	StatusCode: http.StatusConflict,
}

var ErrNoTasksInGroup = &Exception{
	Message:    "Group has no tasks",
	StatusCode: http.StatusBadRequest,
}
