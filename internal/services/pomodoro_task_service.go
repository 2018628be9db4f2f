package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "vita/internal/errors"
	"vita/internal/models"
)

// pomodoroTaskService handles pomodoro task business logic. Pomodoro tasks are
// a separate list from the main tasks; the timer itself runs client-side.
type pomodoroTaskService struct {
	db *gorm.DB
}

// NewPomodoroTaskService creates a new PomodoroTaskServicer.
func NewPomodoroTaskService(db *gorm.DB) PomodoroTaskServicer {
	return &pomodoroTaskService{db: db}
}

// GetUserTasks returns all pomodoro tasks owned by the user, newest first.
func (s *pomodoroTaskService) GetUserTasks(userID uint) ([]models.PomodoroTask, error) {
	var tasks []models.PomodoroTask
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tasks, nil
}

// GetCompletedTasks returns only completed pomodoro tasks, newest first.
func (s *pomodoroTaskService) GetCompletedTasks(userID uint) ([]models.PomodoroTask, error) {
	var tasks []models.PomodoroTask
	if err := s.db.Where("user_id = ? AND completed = ?", userID, true).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tasks, nil
}

// CreateTask creates a pomodoro task for the user.
func (s *pomodoroTaskService) CreateTask(userID uint, content string) (*models.PomodoroTask, error) {
	if content == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task content is required")
	}

	task := &models.PomodoroTask{
		Content: content,
		UserID:  userID,
	}
	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return task, nil
}

// UpdateTask applies a partial update; nil fields keep their previous value.
func (s *pomodoroTaskService) UpdateTask(userID, taskID uint, content *string, completed *bool) (*models.PomodoroTask, error) {
	task, err := s.getTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if content != nil && *content != "" {
		updates["content"] = *content
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

// DeleteTask removes a pomodoro task owned by the user.
func (s *pomodoroTaskService) DeleteTask(userID, taskID uint) error {
	task, err := s.getTaskByID(userID, taskID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *pomodoroTaskService) getTaskByID(userID, taskID uint) (*models.PomodoroTask, error) {
	var task models.PomodoroTask
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPomodoroTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}
