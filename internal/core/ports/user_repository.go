package ports

import (
	"context"

	"github.com/todolist/task-service/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
// Insert must rely on the store's atomic unique constraint on email and
// return domain.ErrUserExists when it fires: the constraint, not any
// pre-check, is the authoritative duplicate signal under concurrency.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
