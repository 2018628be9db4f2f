package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "vita/internal/errors"
	"vita/internal/models"
	"vita/internal/services"
)

// TaskHandler handles task-related requests.
type TaskHandler struct {
	taskService services.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService services.TaskServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	Date     string `json:"date" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,priority"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// All fields are optional; omitted fields keep their previous value.
type UpdateTaskRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Date      *string `json:"date"`
	Priority  *string `json:"priority" binding:"omitempty,priority"`
	Completed *bool   `json:"completed"`
}

// TaskResponse represents a task in the response
type TaskResponse struct {
	ID        uint                `json:"id"`
	Title     string              `json:"title"`
	Date      time.Time           `json:"date"`
	Priority  models.TaskPriority `json:"priority"`
	Completed bool                `json:"completed"`
	UserID    uint                `json:"userId"`
}

// GetUserTasks returns all of the user's tasks, newest first.
// @Summary     List tasks
// @Description Get all tasks owned by the authenticated user
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} TaskResponse "Tasks"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks [get]
func (h *TaskHandler) GetUserTasks(c *gin.Context) {
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

// CreateTask creates a new task.
// @Summary     Create a task
// @Description Create a new task for the authenticated user
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTaskRequest true "Task details"
// @Success     201 {object} TaskResponse "Task created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(userID, req.Title, date, models.TaskPriority(req.Priority))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GetTaskByID returns a single task.
// @Summary     Get task by ID
// @Description Get a specific task owned by the authenticated user
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} TaskResponse "Task details"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id} [get]
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
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

	task, err := h.taskService.GetTaskByID(userID, taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateTask applies a partial update to a task.
// @Summary     Update task
// @Description Update an existing task; omitted fields are left unchanged
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Param       request body UpdateTaskRequest true "Task fields to update"
// @Success     200 {object} TaskResponse "Updated task"
// @Failure     400 {object} ErrorResponse "Invalid input or task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
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

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseDate(*req.Date)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		date = &parsed
	}

	var priority *models.TaskPriority
	if req.Priority != nil {
		p := models.TaskPriority(*req.Priority)
		priority = &p
	}

	task, err := h.taskService.UpdateTask(userID, taskID, req.Title, date, priority, req.Completed)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// ToggleTask flips a task's completed flag.
// @Summary     Toggle task completion
// @Description Flip the completed flag of a task; the server decides the new value
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} TaskResponse "Toggled task"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id}/toggle [patch]
func (h *TaskHandler) ToggleTask(c *gin.Context) {
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

	task, err := h.taskService.ToggleTaskCompletion(userID, taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask removes a task.
// @Summary     Delete task
// @Description Delete a task owned by the authenticated user
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} MessageResponse "Task deleted"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
