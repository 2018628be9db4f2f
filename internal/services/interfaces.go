package services

import (
	"time"

	"vita/internal/models"
)

// UserServicer defines the contract for account lifecycle and credentials.
type UserServicer interface {
	Register(displayName, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, displayName, email string) (*models.User, error)
	UpdatePassword(userID uint, currentPassword, newPassword string) (*models.User, error)
	DeleteAccount(userID uint, password string) error
}

// PasswordResetServicer defines the contract for the password-reset flow.
type PasswordResetServicer interface {
	RequestReset(email string) error
	ResetPassword(token, newPassword string) error
}

// TaskServicer defines the contract for task business logic.
type TaskServicer interface {
	GetUserTasks(userID uint) ([]models.Task, error)
	CreateTask(userID uint, title string, date time.Time, priority models.TaskPriority) (*models.Task, error)
	GetTaskByID(userID, taskID uint) (*models.Task, error)
	UpdateTask(userID, taskID uint, title *string, date *time.Time, priority *models.TaskPriority, completed *bool) (*models.Task, error)
	DeleteTask(userID, taskID uint) error
	ToggleTaskCompletion(userID, taskID uint) (*models.Task, error)
}

// NoteServicer defines the contract for note business logic.
type NoteServicer interface {
	GetUserNotes(userID uint) ([]models.Note, error)
	CreateNote(userID uint, title, body string) (*models.Note, error)
	GetNoteByID(userID, noteID uint) (*models.Note, error)
	UpdateNote(userID, noteID uint, title, body string) (*models.Note, error)
	DeleteNote(userID, noteID uint) error
}

// CalendarEventServicer defines the contract for calendar event business logic.
type CalendarEventServicer interface {
	GetUserEvents(userID uint) ([]models.CalendarEvent, error)
	CreateEvent(userID uint, description string, date time.Time, startTime, endTime string, allDay bool) (*models.CalendarEvent, error)
	GetEventByID(userID, eventID uint) (*models.CalendarEvent, error)
	UpdateEvent(userID, eventID uint, description *string, date *time.Time, startTime, endTime *string, allDay *bool) (*models.CalendarEvent, error)
	DeleteEvent(userID, eventID uint) error
}

// PomodoroTaskServicer defines the contract for pomodoro task business logic.
type PomodoroTaskServicer interface {
	GetUserTasks(userID uint) ([]models.PomodoroTask, error)
	GetCompletedTasks(userID uint) ([]models.PomodoroTask, error)
	CreateTask(userID uint, content string) (*models.PomodoroTask, error)
	UpdateTask(userID, taskID uint, content *string, completed *bool) (*models.PomodoroTask, error)
	DeleteTask(userID, taskID uint) error
}
