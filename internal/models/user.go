package models

// User represents a registered account. DisplayName and Email are each
// globally unique; Password holds the bcrypt hash and is never serialized.
type User struct {
	Base
	DisplayName string `gorm:"uniqueIndex;not null" json:"displayName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`

	Tasks          []Task          `gorm:"foreignKey:UserID" json:"-"`
	Notes          []Note          `gorm:"foreignKey:UserID" json:"-"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:UserID" json:"-"`
	PomodoroTasks  []PomodoroTask  `gorm:"foreignKey:UserID" json:"-"`
}
