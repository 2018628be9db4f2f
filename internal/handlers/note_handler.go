package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "vita/internal/errors"
	"vita/internal/services"
)

// NoteHandler handles note-related requests.
type NoteHandler struct {
	noteService services.NoteServicer
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService services.NoteServicer) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteRequest represents the request payload for creating or updating a note.
// Updates replace the whole note; both fields are always required.
type NoteRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
	Body  string `json:"body" binding:"required"`
}

// NoteResponse represents a note in the response
type NoteResponse struct {
	ID     uint      `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	Date   time.Time `json:"date"`
	UserID uint      `json:"userId"`
}

// GetUserNotes returns all of the user's notes, newest first.
// @Summary     List notes
// @Description Get all notes owned by the authenticated user
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} NoteResponse "Notes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notes [get]
func (h *NoteHandler) GetUserNotes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	notes, err := h.noteService.GetUserNotes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// CreateNote creates a new note.
// @Summary     Create a note
// @Description Create a new note for the authenticated user
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body NoteRequest true "Note details"
// @Success     201 {object} NoteResponse "Note created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.CreateNote(userID, req.Title, req.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// GetNoteByID returns a single note.
// @Summary     Get note by ID
// @Description Get a specific note owned by the authenticated user
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Note ID"
// @Success     200 {object} NoteResponse "Note details"
// @Failure     400 {object} ErrorResponse "Invalid note ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notes/{id} [get]
func (h *NoteHandler) GetNoteByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	note, err := h.noteService.GetNoteByID(userID, noteID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// UpdateNote replaces a note's title and body.
// @Summary     Update note
// @Description Replace the title and body of an existing note
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Note ID"
// @Param       request body NoteRequest true "Updated note details"
// @Success     200 {object} NoteResponse "Updated note"
// @Failure     400 {object} ErrorResponse "Invalid input or note ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.UpdateNote(userID, noteID, req.Title, req.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// DeleteNote removes a note.
// @Summary     Delete note
// @Description Delete a note owned by the authenticated user
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Note ID"
// @Success     200 {object} MessageResponse "Note deleted"
// @Failure     400 {object} ErrorResponse "Invalid note ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.noteService.DeleteNote(userID, noteID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
