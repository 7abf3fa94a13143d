package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StatusCode  string `json:"statusCode"`
	GroupID     *uint  `json:"groupId"`
}

// UpdateTaskRequest uses pointers so absent fields are distinguishable
// from explicit zero values: only supplied fields are merged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StatusCode  *string `json:"statusCode"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type UpdateGroupRequest struct {
	Name string `json:"name"`
}

type MoveTasksRequest struct {
	FromGroupID uint `json:"fromGroupId"`
	ToGroupID   uint `json:"toGroupId"`
}

type MoveSingleTaskRequest struct {
	FromGroupID uint `json:"fromGroupId"`
	ToGroupID   uint `json:"toGroupId"`
	TaskID      uint `json:"taskId"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive"`
}
