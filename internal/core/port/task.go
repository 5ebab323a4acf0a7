package port

import (
	"context"

	"taskmaster/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (string, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	List(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (string, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) error
	Delete(ctx context.Context, id string) error
}
