package ports

import (
	"context"
	"time"

	"github.com/todolist/task-service/internal/core/domain"
)

// CreateTaskInput carries the data for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// ListTasksInput carries the optional list filters.
type ListTasksInput struct {
	Completed *bool
	From      time.Time
	To        time.Time
}

// Stats is the aggregate view exposed to admins.
type Stats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalTasks     int64 `json:"total_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
	PendingTasks   int64 `json:"pending_tasks"`
}

// TaskService defines the ownership-scoped task use cases. Every operation
// takes the requesting identity and applies the scoping policy before
// touching the repository.
type TaskService interface {
	Create(ctx context.Context, identity domain.Identity, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, identity domain.Identity, id string) (*domain.Task, error)
	List(ctx context.Context, identity domain.Identity, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, identity domain.Identity, id string, update TaskUpdate) (*domain.Task, error)
	SetCompleted(ctx context.Context, identity domain.Identity, id string, completed bool) (*domain.Task, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
}

// AdminService exposes the unscoped aggregate views.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	Stats(ctx context.Context) (*Stats, error)
}
