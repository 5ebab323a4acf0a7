package service

import (
	"context"

	"github.com/rs/zerolog"

	"taskmaster/internal/core/domain"
	"taskmaster/internal/core/port"
	"taskmaster/pkg/metrics"
)

type TaskService struct {
	repo    port.TaskRepository
	logger  zerolog.Logger
	metrics *metrics.AppMetrics
}

func NewTaskService(repo port.TaskRepository, logger zerolog.Logger, metrics *metrics.AppMetrics) *TaskService {
	return &TaskService{repo: repo, logger: logger, metrics: metrics}
}

func (ts *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := ts.repo.List(ctx, userID)

	if err != nil {
		ts.logger.Error().Err(err).Str("user_id", userID).Msg("Error listing tasks")
		return nil, err
	}

	ts.metrics.RecordTaskOperation("list")

	return tasks, nil
}

func (ts *TaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	task, err := ts.repo.GetByID(ctx, id)

	if err != nil {
		return domain.Task{}, err
	}

	ts.metrics.RecordTaskOperation("get")

	return task, nil
}

func (ts *TaskService) Create(ctx context.Context, task domain.Task) (string, error) {
	// Identifier is assigned by the store; never trust one from the caller.
	newTask := domain.Task{
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}

	id, err := ts.repo.Create(ctx, newTask)

	if err != nil {
		ts.logger.Error().Err(err).Str("title", newTask.Title).Msg("Error creating task")
		return "", err
	}

	ts.metrics.RecordTaskOperation("create")

	return id, nil
}

func (ts *TaskService) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	if err := ts.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	ts.metrics.RecordTaskOperation("update")

	return nil
}

func (ts *TaskService) Delete(ctx context.Context, id string) error {
	if err := ts.repo.Delete(ctx, id); err != nil {
		return err
	}

	ts.metrics.RecordTaskOperation("delete")

	return nil
}
