package service

import (
	"context"

	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
)

// AdminService serves the unscoped aggregate views. The RBAC middleware has
// already established the admin role before any of these run.
type AdminService struct {
	users ports.UserRepository
	tasks ports.TaskRepository
}

func NewAdminService(users ports.UserRepository, tasks ports.TaskRepository) *AdminService {
	return &AdminService{users: users, tasks: tasks}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// ListTasks returns every task with its owner attached, so the aggregate
// view can show who a task belongs to without per-row lookups.
func (s *AdminService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx, domain.TaskFilter{})
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, t := range tasks {
		if owner, ok := byID[t.UserID]; ok {
			t.Owner = &domain.User{ID: owner.ID, Name: owner.Name, Email: owner.Email, Role: owner.Role}
		}
	}
	return tasks, nil
}

func (s *AdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalTasks, err := s.tasks.Count(ctx, domain.TaskFilter{})
	if err != nil {
		return nil, err
	}
	completed := true
	completedTasks, err := s.tasks.Count(ctx, domain.TaskFilter{Completed: &completed})
	if err != nil {
		return nil, err
	}

	return &ports.Stats{
		TotalUsers:     totalUsers,
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		PendingTasks:   totalTasks - completedTasks,
	}, nil
}
