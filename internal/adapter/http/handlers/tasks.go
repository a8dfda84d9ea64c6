package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/adapter/http/mapper"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
	"taskapi/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	h.list(c, h.taskService.ListTasks)
}

func (h *TaskHandler) ListPendingTasks(c *gin.Context) {
	h.list(c, h.taskService.ListPendingTasks)
}

func (h *TaskHandler) ListCompletedTasks(c *gin.Context) {
	h.list(c, h.taskService.ListCompletedTasks)
}

func (h *TaskHandler) list(c *gin.Context, fetch func(context.Context, domain.TaskQuery) ([]domain.Task, error)) {
	q, err := validation.BuildTaskQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidQuery, "invalid task query")
		return
	}

	tasks, err := fetch(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.Stringer("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid task payload")
		return
	}

	in, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid task payload")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// ReplaceTask handles PUT: title must be sent, other fields stay partial.
func (h *TaskHandler) ReplaceTask(c *gin.Context) {
	h.update(c, true)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	h.update(c, false)
}

func (h *TaskHandler) update(c *gin.Context, full bool) {
	taskID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid task payload")
		return
	}

	in, err := validation.BuildUpdateTaskInput(req, raw, full)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid task payload")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, in)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.Stringer("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.Stringer("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCompleteTask, "failed to complete task", zap.Stringer("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
