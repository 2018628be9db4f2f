package models

import "time"

// PasswordReset is a single-use reset token issued to an email address.
// Email is deliberately not unique: issuing a new token first deletes any
// previous rows for the address, and redemption deletes them all.
type PasswordReset struct {
	Base
	Email     string    `gorm:"not null;index" json:"email"`
	Token     string    `gorm:"size:64;not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
