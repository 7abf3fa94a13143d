package dto

import (
	model "task-board-api.com/task-board-api/internal/models"
)

// UserResponse is the default user projection. The password hash has no
// field here and can never leak through this path.
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	RoleCode string `json:"roleCode"`
	IsActive bool   `json:"isActive"`
}

func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		RoleCode: user.RoleCode,
		IsActive: user.IsActive,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// TaskResponse always carries explicit group fields: null when the task is
// ungrouped rather than omitting the keys.
type TaskResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StatusCode  string  `json:"statusCode"`
	GroupID     *uint   `json:"groupId"`
	GroupName   *string `json:"groupName"`
}

func NewTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		StatusCode:  task.StatusCode,
		GroupID:     task.GroupID,
	}
	if task.Group != nil {
		resp.GroupName = &task.Group.Name
	}
	return resp
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, NewTaskResponse(&tasks[i]))
	}
	return responses
}

type GroupResponse struct {
	GroupID   uint           `json:"groupId"`
	GroupName string         `json:"groupName"`
	Tasks     []TaskResponse `json:"tasks"`
}

func NewGroupResponse(group *model.TaskGroup) GroupResponse {
	return GroupResponse{
		GroupID:   group.ID,
		GroupName: group.Name,
		Tasks:     NewTaskResponses(group.Tasks),
	}
}

func NewGroupResponses(groups []model.TaskGroup) []GroupResponse {
	responses := make([]GroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, NewGroupResponse(&groups[i]))
	}
	return responses
}

type MoveTasksResponse struct {
	FromGroup GroupResponse `json:"fromGroup"`
	ToGroup   GroupResponse `json:"toGroup"`
}

type UserOverviewResponse struct {
	User           UserResponse    `json:"user"`
	Groups         []GroupResponse `json:"groups"`
	UngroupedTasks []TaskResponse  `json:"ungroupedTasks"`
}
