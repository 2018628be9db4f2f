package models

import "time"

// CalendarEvent is a calendar entry owned by a single user. StartTime and
// EndTime are clock strings ("HH:MM") as sent by the calendar view.
type CalendarEvent struct {
	Base
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	StartTime   string    `gorm:"not null" json:"startTime"`
	EndTime     string    `gorm:"not null" json:"endTime"`
	AllDay      bool      `gorm:"not null;default:false" json:"allDay"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
}
