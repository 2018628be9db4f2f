package models

import "time"

// Base contains common columns for all tables. Identifiers are system-assigned
// auto-increment integers; deletes are physical, so there is no DeletedAt.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
