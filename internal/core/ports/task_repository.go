package ports

import (
	"context"

	"github.com/todolist/task-service/internal/core/domain"
)

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskRepository defines persistence operations for tasks. Every method that
// takes a filter applies it verbatim; ownership scoping happens in the
// service layer before the repository is reached.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByID retrieves a task by id. A non-empty ownerID constrains the
	// lookup so a foreign task is indistinguishable from a missing one.
	FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id, ownerID string, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
	Count(ctx context.Context, filter domain.TaskFilter) (int64, error)
}
