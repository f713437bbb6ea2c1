package api

import "github.com/dmitrijs2005/taskboard/internal/models"

type RegisterRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse wraps a possibly absent session.
type SessionResponse struct {
	Session *models.Session `json:"session"`
}

type ListTasksRequest struct {
	UserID string `json:"userId"`
	Filter string `json:"filter,omitempty"`
}

type TasksResponse struct {
	Tasks []models.Task `json:"tasks"`
}

type CreateTaskRequest struct {
	UserID      string            `json:"userId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status,omitempty"`
}

// NewTask returns the task fields of the request.
func (r CreateTaskRequest) NewTask() models.NewTask {
	return models.NewTask{Title: r.Title, Description: r.Description, Status: r.Status}
}

type TaskResponse struct {
	Task models.Task `json:"task"`
}

type DeleteTaskRequest struct {
	ID string `json:"id"`
}

type SuggestRequest struct {
	Title string `json:"title"`
}

type SuggestResponse struct {
	Description string `json:"description"`
}

type PingResponse struct {
	Status string `json:"status"`
}

// Empty is the request or reply of methods without a payload.
type Empty struct{}
