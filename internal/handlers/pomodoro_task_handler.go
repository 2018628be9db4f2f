package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "vita/internal/errors"
	"vita/internal/services"
)

// PomodoroTaskHandler handles pomodoro task requests.
type PomodoroTaskHandler struct {
	taskService services.PomodoroTaskServicer
}

// NewPomodoroTaskHandler creates a new PomodoroTaskHandler.
func NewPomodoroTaskHandler(taskService services.PomodoroTaskServicer) *PomodoroTaskHandler {
	return &PomodoroTaskHandler{taskService: taskService}
}

// CreatePomodoroTaskRequest represents the request payload for creating a pomodoro task
type CreatePomodoroTaskRequest struct {
	Content string `json:"content" binding:"required,min=1,max=255"`
}

// UpdatePomodoroTaskRequest represents the request payload for updating a
// pomodoro task. Omitted fields keep their previous value.
type UpdatePomodoroTaskRequest struct {
	Content   *string `json:"content" binding:"omitempty,min=1,max=255"`
	Completed *bool   `json:"completed"`
}

// PomodoroTaskResponse represents a pomodoro task in the response
type PomodoroTaskResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
	UserID    uint   `json:"userId"`
}

// GetUserTasks returns all of the user's pomodoro tasks, newest first.
// @Summary     List pomodoro tasks
// @Description Get all pomodoro tasks owned by the authenticated user
// @Tags        pomodoro-tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} PomodoroTaskResponse "Pomodoro tasks"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pomodoroTasks [get]
func (h *PomodoroTaskHandler) GetUserTasks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tasks, err := h.taskService.GetUserTasks(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetCompletedTasks returns only the completed pomodoro tasks.
// @Summary     List completed pomodoro tasks
// @Description Get the authenticated user's completed pomodoro tasks
// @Tags        pomodoro-tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} PomodoroTaskResponse "Completed pomodoro tasks"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pomodoroTasks/completed [get]
func (h *PomodoroTaskHandler) GetCompletedTasks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tasks, err := h.taskService.GetCompletedTasks(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// CreateTask creates a new pomodoro task.
// @Summary     Create a pomodoro task
// @Description Create a new pomodoro task for the authenticated user
// @Tags        pomodoro-tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePomodoroTaskRequest true "Task details"
// @Success     201 {object} PomodoroTaskResponse "Task created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pomodoroTasks [post]
func (h *PomodoroTaskHandler) CreateTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePomodoroTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.CreateTask(userID, req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// UpdateTask applies a partial update to a pomodoro task.
// @Summary     Update pomodoro task
// @Description Update an existing pomodoro task; omitted fields are left unchanged
// @Tags        pomodoro-tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Param       request body UpdatePomodoroTaskRequest true "Task fields to update"
// @Success     200 {object} PomodoroTaskResponse "Updated task"
// @Failure     400 {object} ErrorResponse "Invalid input or task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pomodoroTasks/{id} [put]
func (h *PomodoroTaskHandler) UpdateTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePomodoroTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(userID, taskID, req.Content, req.Completed)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask removes a pomodoro task.
// @Summary     Delete pomodoro task
// @Description Delete a pomodoro task owned by the authenticated user
// @Tags        pomodoro-tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     204 "Task deleted"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pomodoroTasks/{id} [delete]
func (h *PomodoroTaskHandler) DeleteTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
