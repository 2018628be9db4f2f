package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "vita/internal/errors"
	"vita/internal/models"
)

// noteService handles note business logic, ownership-scoped like every other
// child entity.
type noteService struct {
	db *gorm.DB
}

// NewNoteService creates a new NoteServicer.
func NewNoteService(db *gorm.DB) NoteServicer {
	return &noteService{db: db}
}

// GetUserNotes returns all notes owned by the user, newest first.
func (s *noteService) GetUserNotes(userID uint) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return notes, nil
}

// CreateNote creates a note; the note date is server-assigned.
func (s *noteService) CreateNote(userID uint, title, body string) (*models.Note, error) {
	if title == "" || body == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note title and body are required")
	}

	note := &models.Note{
		Title:  title,
		Body:   body,
		Date:   time.Now(),
		UserID: userID,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// GetNoteByID retrieves a note by ID for a specific user.
func (s *noteService) GetNoteByID(userID, noteID uint) (*models.Note, error) {
	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &note, nil
}

// UpdateNote replaces title and body (both required, matching the editor UI,
// which always submits the full note) and refreshes the note date.
func (s *noteService) UpdateNote(userID, noteID uint, title, body string) (*models.Note, error) {
	if title == "" || body == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note title and body are required")
	}

	note, err := s.GetNoteByID(userID, noteID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title": title,
		"body":  body,
		"date":  time.Now(),
	}
	if err := s.db.Model(note).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// DeleteNote removes a note owned by the user.
func (s *noteService) DeleteNote(userID, noteID uint) error {
	note, err := s.GetNoteByID(userID, noteID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(note).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
