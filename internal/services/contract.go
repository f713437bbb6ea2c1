package services

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/models"
)

// Auth is the authentication contract served by AuthService.
type Auth interface {
	Register(ctx context.Context, username, fullName, password string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	GetSession(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

// Tasks is the task contract served by TaskService.
type Tasks interface {
	List(ctx context.Context, userID string) ([]models.Task, error)
	Create(ctx context.Context, userID string, in models.NewTask) (*models.Task, error)
	Update(ctx context.Context, in models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, taskID string) error
}

// OwnedTasks is Tasks plus Update and Delete scoped to one owner, for
// front ends that authenticate the caller.
type OwnedTasks interface {
	Tasks
	UpdateOwned(ctx context.Context, userID string, in models.TaskUpdate) (*models.Task, error)
	DeleteOwned(ctx context.Context, userID, taskID string) error
}

var (
	_ Auth       = (*AuthService)(nil)
	_ OwnedTasks = (*TaskService)(nil)
)
