package models

import "time"

// TaskPriority is the closed set of task priorities.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the accepted priority values.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a to-do list entry owned by a single user.
type Task struct {
	Base
	Title     string       `gorm:"not null" json:"title"`
	Date      time.Time    `gorm:"not null" json:"date"`
	Priority  TaskPriority `gorm:"not null;default:'medium'" json:"priority"`
	Completed bool         `gorm:"not null;default:false" json:"completed"`
	UserID    uint         `gorm:"not null;index" json:"userId"`
}
