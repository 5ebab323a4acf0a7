package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskmaster/internal/core/domain"
)

// TaskRepository is an in-memory store with the same contract as the mongodb
// adapter. Used as the repository double in service and handler tests.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	order []string
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]domain.Task)}
}

func (tr *TaskRepository) List(ctx context.Context, userID string) ([]domain.Task, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	tasks := []domain.Task{}

	for _, id := range tr.order {
		task := tr.tasks[id]

		if userID == "" || task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	return tasks, nil
}

func (tr *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.Task{}, domain.ErrInvalidTaskID
	}

	tr.mu.RLock()
	defer tr.mu.RUnlock()

	task, ok := tr.tasks[id]

	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return task, nil
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (string, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	task.ID = primitive.NewObjectID()
	id := task.ID.Hex()

	tr.tasks[id] = task
	tr.order = append(tr.order, id)

	return id, nil
}

func (tr *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidTaskID
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	task, ok := tr.tasks[id]

	if !ok {
		return domain.ErrTaskNotFound
	}

	patch.Apply(&task)
	tr.tasks[id] = task

	return nil
}

func (tr *TaskRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidTaskID
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, ok := tr.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}

	delete(tr.tasks, id)

	for i, existing := range tr.order {
		if existing == id {
			tr.order = append(tr.order[:i], tr.order[i+1:]...)
			break
		}
	}

	return nil
}
