package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
)

// TaskService implements the ownership-scoped task use cases.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// ownerConstraint is the per-record form of the scoping policy: an empty
// string means "any owner" and is only ever produced for admins.
func ownerConstraint(identity domain.Identity) string {
	if identity.IsAdmin() {
		return ""
	}
	return identity.ID
}

func (s *TaskService) Create(ctx context.Context, identity domain.Identity, input ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Completed:   input.Completed,
		UserID:      identity.ID,
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", identity.ID).Msg("task created")
	return created, nil
}

// Get fetches a single task. A task owned by someone else resolves to
// ErrTaskNotFound for non-admins, so its existence is never confirmed.
func (s *TaskService) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, ownerConstraint(identity))
}

func (s *TaskService) List(ctx context.Context, identity domain.Identity, input ports.ListTasksInput) ([]*domain.Task, error) {
	filter := domain.ScopeFilter(identity, domain.TaskFilter{
		Completed: input.Completed,
		From:      input.From,
		To:        input.To,
	})
	return s.repo.List(ctx, filter)
}

func (s *TaskService) Update(ctx context.Context, identity domain.Identity, id string, update ports.TaskUpdate) (*domain.Task, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
	}
	return s.repo.Update(ctx, id, ownerConstraint(identity), update)
}

func (s *TaskService) SetCompleted(ctx context.Context, identity domain.Identity, id string, completed bool) (*domain.Task, error) {
	return s.repo.Update(ctx, id, ownerConstraint(identity), ports.TaskUpdate{Completed: &completed})
}

func (s *TaskService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if err := s.repo.Delete(ctx, id, ownerConstraint(identity)); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Str("user_id", identity.ID).Msg("task deleted")
	return nil
}
