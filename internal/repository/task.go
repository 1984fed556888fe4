package repository

import (
	"context"
	"errors"

	"todo-server/internal/domain"
)

// ErrTaskNotFound is returned when no task matches the id for the given
// owner. A task owned by someone else reports the same error.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository exposes persistence operations for Task entities. Every
// lookup and mutation is scoped to an owner id; rows belonging to other
// owners are invisible.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, ownerID, id int64) error
}
