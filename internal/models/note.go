package models

import "time"

// Note is a free-form note owned by a single user. Date is set server-side on
// create and refreshed on update.
type Note struct {
	Base
	Title  string    `gorm:"not null" json:"title"`
	Body   string    `gorm:"not null" json:"body"`
	Date   time.Time `gorm:"not null" json:"date"`
	UserID uint      `gorm:"not null;index" json:"userId"`
}
