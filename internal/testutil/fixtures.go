package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"vita/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email and
// display name.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithIdentity(t, db, fmt.Sprintf("User %d", n), fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithIdentity creates a user with the given display name and email.
func CreateTestUserWithIdentity(t *testing.T, db *gorm.DB, displayName, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		DisplayName: displayName,
		Email:       email,
		Password:    string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTask creates a medium-priority task for the user.
func CreateTestTask(t *testing.T, db *gorm.DB, userID uint) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:    fmt.Sprintf("Test Task %d", nextID()),
		Date:     time.Now().Add(24 * time.Hour),
		Priority: models.PriorityMedium,
		UserID:   userID,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestNote creates a note for the user.
func CreateTestNote(t *testing.T, db *gorm.DB, userID uint) *models.Note {
	t.Helper()

	n := nextID()
	note := &models.Note{
		Title:  fmt.Sprintf("Test Note %d", n),
		Body:   fmt.Sprintf("Body of test note %d", n),
		Date:   time.Now(),
		UserID: userID,
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create test note: %v", err)
	}
	return note
}

// CreateTestEvent creates a calendar event for the user.
func CreateTestEvent(t *testing.T, db *gorm.DB, userID uint) *models.CalendarEvent {
	t.Helper()

	event := &models.CalendarEvent{
		Description: fmt.Sprintf("Test Event %d", nextID()),
		Date:        time.Now().Add(48 * time.Hour),
		StartTime:   "09:00",
		EndTime:     "10:00",
		UserID:      userID,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateTestPomodoroTask creates a pomodoro task for the user.
func CreateTestPomodoroTask(t *testing.T, db *gorm.DB, userID uint) *models.PomodoroTask {
	t.Helper()

	task := &models.PomodoroTask{
		Content: fmt.Sprintf("Test Pomodoro Task %d", nextID()),
		UserID:  userID,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test pomodoro task: %v", err)
	}
	return task
}

// CreateTestResetToken stores a password reset token for the email with the
// given expiry.
func CreateTestResetToken(t *testing.T, db *gorm.DB, email, token string, expiresAt time.Time) *models.PasswordReset {
	t.Helper()

	reset := &models.PasswordReset{
		Email:     email,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(reset).Error; err != nil {
		t.Fatalf("failed to create test reset token: %v", err)
	}
	return reset
}
