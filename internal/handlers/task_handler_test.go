package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "vita/internal/errors"
	"vita/internal/models"
	"vita/internal/services"
)

// --- mock task service ---

type mockTaskService struct {
	getUserTasksFn         func(userID uint) ([]models.Task, error)
	createTaskFn           func(userID uint, title string, date time.Time, priority models.TaskPriority) (*models.Task, error)
	getTaskByIDFn          func(userID, taskID uint) (*models.Task, error)
	updateTaskFn           func(userID, taskID uint, title *string, date *time.Time, priority *models.TaskPriority, completed *bool) (*models.Task, error)
	deleteTaskFn           func(userID, taskID uint) error
	toggleTaskCompletionFn func(userID, taskID uint) (*models.Task, error)
}

func (m *mockTaskService) GetUserTasks(userID uint) ([]models.Task, error) {
	if m.getUserTasksFn != nil {
		return m.getUserTasksFn(userID)
	}
	return []models.Task{}, nil
}

func (m *mockTaskService) CreateTask(userID uint, title string, date time.Time, priority models.TaskPriority) (*models.Task, error) {
	if m.createTaskFn != nil {
		return m.createTaskFn(userID, title, date, priority)
	}
	return &models.Task{}, nil
}

func (m *mockTaskService) GetTaskByID(userID, taskID uint) (*models.Task, error) {
	if m.getTaskByIDFn != nil {
		return m.getTaskByIDFn(userID, taskID)
	}
	return &models.Task{}, nil
}

func (m *mockTaskService) UpdateTask(userID, taskID uint, title *string, date *time.Time, priority *models.TaskPriority, completed *bool) (*models.Task, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(userID, taskID, title, date, priority, completed)
	}
	return &models.Task{}, nil
}

func (m *mockTaskService) DeleteTask(userID, taskID uint) error {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(userID, taskID)
	}
	return nil
}

func (m *mockTaskService) ToggleTaskCompletion(userID, taskID uint) (*models.Task, error) {
	if m.toggleTaskCompletionFn != nil {
		return m.toggleTaskCompletionFn(userID, taskID)
	}
	return &models.Task{}, nil
}

// verify interface compliance
var _ services.TaskServicer = (*mockTaskService)(nil)

func setupTaskRouter(handler *TaskHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/tasks", handler.GetUserTasks)
	auth.POST("/tasks", handler.CreateTask)
	auth.GET("/tasks/:id", handler.GetTaskByID)
	auth.PUT("/tasks/:id", handler.UpdateTask)
	auth.PATCH("/tasks/:id/toggle", handler.ToggleTask)
	auth.DELETE("/tasks/:id", handler.DeleteTask)
	return r
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		taskSvc := &mockTaskService{
			createTaskFn: func(userID uint, title string, date time.Time, priority models.TaskPriority) (*models.Task, error) {
				return &models.Task{
					Base:     models.Base{ID: 1},
					Title:    title,
					Date:     date,
					Priority: priority,
					UserID:   userID,
				}, nil
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "POST", "/tasks",
			`{"title":"Pay rent","date":"2025-01-01","priority":"high"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		task := parseJSON(t, rec)["task"].(map[string]interface{})
		if task["title"] != "Pay rent" {
			t.Errorf("expected title Pay rent, got %v", task["title"])
		}
		if task["priority"] != "high" {
			t.Errorf("expected priority high, got %v", task["priority"])
		}
	})

	t.Run("returns 400 on missing title", func(t *testing.T) {
		handler := NewTaskHandler(&mockTaskService{})
		r := setupTaskRouter(handler)

		rec := doRequest(r, "POST", "/tasks", `{"date":"2025-01-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid priority", func(t *testing.T) {
		handler := NewTaskHandler(&mockTaskService{})
		r := setupTaskRouter(handler)

		rec := doRequest(r, "POST", "/tasks",
			`{"title":"Bad","date":"2025-01-01","priority":"urgent"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unparseable date", func(t *testing.T) {
		handler := NewTaskHandler(&mockTaskService{})
		r := setupTaskRouter(handler)

		rec := doRequest(r, "POST", "/tasks", `{"title":"Bad date","date":"tomorrow"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTaskHandler_GetUserTasks(t *testing.T) {
	t.Run("returns 200 with tasks", func(t *testing.T) {
		taskSvc := &mockTaskService{
			getUserTasksFn: func(userID uint) ([]models.Task, error) {
				return []models.Task{
					{Base: models.Base{ID: 2}, Title: "Newer", UserID: userID},
					{Base: models.Base{ID: 1}, Title: "Older", UserID: userID},
				}, nil
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "GET", "/tasks", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		tasks := parseJSON(t, rec)["tasks"].([]interface{})
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
	})
}

func TestTaskHandler_GetTaskByID(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		taskSvc := &mockTaskService{
			getTaskByIDFn: func(uint, uint) (*models.Task, error) {
				return nil, apperrors.ErrTaskNotFound
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "GET", "/tasks/42", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TASK_NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric ID", func(t *testing.T) {
		handler := NewTaskHandler(&mockTaskService{})
		r := setupTaskRouter(handler)

		rec := doRequest(r, "GET", "/tasks/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	t.Run("passes only provided fields to the service", func(t *testing.T) {
		var gotTitle *string
		var gotDate *time.Time
		var gotCompleted *bool
		taskSvc := &mockTaskService{
			updateTaskFn: func(_, _ uint, title *string, date *time.Time, _ *models.TaskPriority, completed *bool) (*models.Task, error) {
				gotTitle = title
				gotDate = date
				gotCompleted = completed
				return &models.Task{Base: models.Base{ID: 1}}, nil
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "PUT", "/tasks/1", `{"completed":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTitle != nil || gotDate != nil {
			t.Error("expected omitted fields to stay nil")
		}
		if gotCompleted == nil || !*gotCompleted {
			t.Error("expected completed=true to reach the service")
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		taskSvc := &mockTaskService{
			updateTaskFn: func(uint, uint, *string, *time.Time, *models.TaskPriority, *bool) (*models.Task, error) {
				return nil, apperrors.ErrTaskNotFound
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "PUT", "/tasks/42", `{"title":"x"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTaskHandler_ToggleTask(t *testing.T) {
	t.Run("returns 200 with toggled task", func(t *testing.T) {
		taskSvc := &mockTaskService{
			toggleTaskCompletionFn: func(userID, taskID uint) (*models.Task, error) {
				return &models.Task{Base: models.Base{ID: taskID}, UserID: userID, Completed: true}, nil
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "PATCH", "/tasks/1/toggle", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		task := parseJSON(t, rec)["task"].(map[string]interface{})
		if task["completed"] != true {
			t.Errorf("expected completed true, got %v", task["completed"])
		}
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	t.Run("returns 200 with message", func(t *testing.T) {
		handler := NewTaskHandler(&mockTaskService{})
		r := setupTaskRouter(handler)

		rec := doRequest(r, "DELETE", "/tasks/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["message"] == nil {
			t.Error("expected confirmation message")
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		taskSvc := &mockTaskService{
			deleteTaskFn: func(uint, uint) error {
				return apperrors.ErrTaskNotFound
			},
		}
		handler := NewTaskHandler(taskSvc)
		r := setupTaskRouter(handler)

		rec := doRequest(r, "DELETE", "/tasks/42", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
