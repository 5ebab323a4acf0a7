package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	. "taskmaster/internal/adapter/http/helper"
	"taskmaster/internal/adapter/http/validation"
	"taskmaster/internal/core/domain"
	"taskmaster/internal/core/model/request"
	"taskmaster/internal/core/model/response"
	"taskmaster/internal/core/port"
)

type TaskHandler struct {
	svc    port.TaskService
	logger zerolog.Logger
}

func NewTaskHandler(svc port.TaskService, logger zerolog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, logger: logger}
}

// ListTasks returns every task, or only those of the user named by the
// optional userId query parameter.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.svc.List(c.Request.Context(), c.Query("userId"))

	if err != nil {
		SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		h.sendTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var params request.CreateTaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "invalid request body")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendBadRequestError(c, "userId and title are required")
		return
	}

	task := domain.Task{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	}

	id, err := h.svc.Create(c.Request.Context(), task)

	if err != nil {
		SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.TaskCreatedResponse{
		Message: "Task created",
		TaskID:  id,
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var params request.UpdateTaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "invalid request body")
		return
	}

	patch := domain.TaskPatch{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.sendTaskError(c, err)
		return
	}

	SendMessage(c, http.StatusOK, "Task updated")
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.sendTaskError(c, err)
		return
	}

	SendMessage(c, http.StatusOK, "Task deleted")
}

func (h *TaskHandler) sendTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTaskID):
		SendBadRequestError(c, "invalid task id")
	case errors.Is(err, domain.ErrTaskNotFound):
		SendNotFoundError(c, "Task not found")
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store access failed")
		SendInternalError(c, err)
	}
}
