package http

import (
	"github.com/rs/zerolog"

	"taskmaster/internal/adapter/database/mongodb"
	"taskmaster/internal/adapter/database/mongodb/repository"
	"taskmaster/internal/adapter/http/handler"
	"taskmaster/internal/core/port"
	"taskmaster/internal/core/service"
	"taskmaster/pkg/metrics"
)

type Container struct {
	TaskRepo    port.TaskRepository
	TaskService port.TaskService

	HealthHandler *handler.HealthHandler
	TaskHandler   *handler.TaskHandler
}

func NewContainer(db *mongodb.DB, logger zerolog.Logger, m *metrics.AppMetrics) *Container {
	taskRepo := repository.NewTaskRepository(db)
	taskSvc := service.NewTaskService(taskRepo, logger, m)

	return &Container{
		TaskRepo:    taskRepo,
		TaskService: taskSvc,

		HealthHandler: handler.NewHealthHandler(),
		TaskHandler:   handler.NewTaskHandler(taskSvc, logger),
	}
}
