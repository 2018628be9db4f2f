package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "vita/internal/errors"
	"vita/internal/models"
)

// taskService handles task business logic. Every query is scoped to the owning
// user; a task belonging to someone else is indistinguishable from one that
// does not exist.
type taskService struct {
	db *gorm.DB
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(db *gorm.DB) TaskServicer {
	return &taskService{db: db}
}

// GetUserTasks returns all tasks owned by the user, newest first. The id
// tiebreak keeps the order deterministic for rows created within the same
// timestamp granularity.
func (s *taskService) GetUserTasks(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tasks, nil
}

// CreateTask creates a new task for the user. Ownership always comes from the
// authenticated identity, never from the request body.
func (s *taskService) CreateTask(userID uint, title string, date time.Time, priority models.TaskPriority) (*models.Task, error) {
	if title == "" || date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task title and date are required")
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	task := &models.Task{
		Title:    title,
		Date:     date,
		Priority: priority,
		UserID:   userID,
	}
	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return task, nil
}

// GetTaskByID retrieves a task by ID for a specific user.
func (s *taskService) GetTaskByID(userID, taskID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}

// UpdateTask applies a partial update; nil fields keep their previous value.
func (s *taskService) UpdateTask(userID, taskID uint, title *string, date *time.Time, priority *models.TaskPriority, completed *bool) (*models.Task, error) {
	task, err := s.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	// Empty-string priority means "keep current", same as a blank title.
	if priority != nil && *priority != "" && !priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	updates := make(map[string]interface{})
	if title != nil && *title != "" {
		updates["title"] = *title
	}
	if date != nil && !date.IsZero() {
		updates["date"] = *date
	}
	if priority != nil && *priority != "" {
		updates["priority"] = *priority
	}
	if completed != nil {
		updates["completed"] = *completed
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return task, nil
}

// DeleteTask removes a task owned by the user.
func (s *taskService) DeleteTask(userID, taskID uint) error {
	task, err := s.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ToggleTaskCompletion flips the completed flag server-side, so the client
// never has to know (or race over) the current value.
func (s *taskService) ToggleTaskCompletion(userID, taskID uint) (*models.Task, error) {
	task, err := s.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(task).Update("completed", !task.Completed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return task, nil
}
