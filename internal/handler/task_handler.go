package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
	"taskboard/internal/service/task"
)

type TaskHandler struct {
	service *task.Service
	logger  *zap.Logger
}

func NewTaskHandler(service *task.Service, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

type createTaskRequest struct {
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	AssigneeID  *int        `json:"assignee_id"`
	Priority    *string     `json:"priority"`
	DueDate     *model.Date `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	AssigneeID  *int        `json:"assignee_id"`
	Completed   *bool       `json:"completed"`
	Priority    *string     `json:"priority"`
	DueDate     *model.Date `json:"due_date"`
}

// ListTasks handles GET /tasks with the optional search/status/assignee_id/
// priority/due filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	in := task.ListInput{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Due:      c.Query("due"),
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("ListTasks: invalid assignee_id format", zap.String("assignee_id", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignee_id"})
			return
		}
		in.AssigneeID = &id
	}

	views, err := h.service.List(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, "ListTasks", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("CreateTask: malformed request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	in := task.CreateInput{
		Title:      req.Title,
		AssigneeID: req.AssigneeID,
		Priority:   req.Priority,
		DueDate:    req.DueDate,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	id, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, "CreateTask", err)
		return
	}

	h.logger.Info("CreateTask: success", zap.Int("task_id", id))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateTask handles PATCH /tasks/:id. Absent body fields are left untouched.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("UpdateTask: malformed request body",
			zap.Int("task_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	in := task.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	if err := h.service.Update(c.Request.Context(), id, in); err != nil {
		h.writeError(c, "UpdateTask", err)
		return
	}

	h.logger.Info("UpdateTask: success", zap.Int("task_id", id))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteTask handles DELETE /tasks/:id.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "DeleteTask", err)
		return
	}

	h.logger.Info("DeleteTask: success", zap.Int("task_id", id))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *TaskHandler) taskID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.logger.Warn("Invalid task id format", zap.String("task_id", idStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) writeError(c *gin.Context, op string, err error) {
	var invalid *task.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		h.logger.Warn(op+": invalid input", zap.String("reason", invalid.Reason))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Reason})
	case errors.Is(err, model.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		h.logger.Error(op+": internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
