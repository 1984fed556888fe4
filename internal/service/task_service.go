package service

import (
	"context"
	"errors"
	"strings"

	"todo-server/internal/domain"
	"todo-server/internal/repository"
)

// ErrEmptyTaskText indicates the task text is empty after trimming.
var ErrEmptyTaskText = errors.New("task text must not be empty")

// TaskPatch carries the mutable task fields of an update. Nil fields are
// left unchanged.
type TaskPatch struct {
	Text      *string
	Completed *bool
}

// TaskService coordinates task operations. Every operation is scoped to the
// caller's user id; tasks owned by other users behave as if they do not
// exist.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, text string) (*domain.Task, error)
	List(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) (*domain.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, ownerID int64, text string) (*domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTaskText
	}

	task := &domain.Task{
		OwnerID:   ownerID,
		Text:      text,
		Completed: false,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func (s *taskService) Update(ctx context.Context, ownerID, taskID int64, patch TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, ErrEmptyTaskText
		}
		task.Text = text
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Delete(ctx, ownerID, taskID); err != nil {
		return nil, err
	}
	return task, nil
}
