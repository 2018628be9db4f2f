package models

// PomodoroTask is a lightweight task tracked by the pomodoro timer,
// independent of the main task list.
type PomodoroTask struct {
	Base
	Content   string `gorm:"not null" json:"content"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	UserID    uint   `gorm:"not null;index" json:"userId"`
}
