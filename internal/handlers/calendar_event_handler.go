package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "vita/internal/errors"
	"vita/internal/services"
)

// CalendarEventHandler handles calendar event requests.
type CalendarEventHandler struct {
	eventService services.CalendarEventServicer
}

// NewCalendarEventHandler creates a new CalendarEventHandler.
func NewCalendarEventHandler(eventService services.CalendarEventServicer) *CalendarEventHandler {
	return &CalendarEventHandler{eventService: eventService}
}

// CreateEventRequest represents the request payload for creating a calendar event
type CreateEventRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required,clock_time"`
	EndTime     string `json:"endTime" binding:"required,clock_time"`
	AllDay      bool   `json:"allDay"`
}

// UpdateEventRequest represents the request payload for updating a calendar event.
// All fields are optional; omitted fields keep their previous value.
type UpdateEventRequest struct {
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime" binding:"omitempty,clock_time"`
	EndTime     *string `json:"endTime" binding:"omitempty,clock_time"`
	AllDay      *bool   `json:"allDay"`
}

// EventResponse represents a calendar event in the response
type EventResponse struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	AllDay      bool      `json:"allDay"`
	UserID      uint      `json:"userId"`
}

// GetUserEvents returns all of the user's calendar events, newest first.
// @Summary     List calendar events
// @Description Get all calendar events owned by the authenticated user
// @Tags        calendar-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} EventResponse "Calendar events"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendarEvents [get]
func (h *CalendarEventHandler) GetUserEvents(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	events, err := h.eventService.GetUserEvents(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent creates a new calendar event.
// @Summary     Create a calendar event
// @Description Create a new calendar event for the authenticated user
// @Tags        calendar-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateEventRequest true "Event details"
// @Success     201 {object} EventResponse "Event created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendarEvents [post]
func (h *CalendarEventHandler) CreateEvent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(userID, req.Description, date, req.StartTime, req.EndTime, req.AllDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// GetEventByID returns a single calendar event.
// @Summary     Get calendar event by ID
// @Description Get a specific calendar event owned by the authenticated user
// @Tags        calendar-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Event ID"
// @Success     200 {object} EventResponse "Event details"
// @Failure     400 {object} ErrorResponse "Invalid event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendarEvents/{id} [get]
func (h *CalendarEventHandler) GetEventByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.eventService.GetEventByID(userID, eventID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// UpdateEvent applies a partial update to a calendar event.
// @Summary     Update calendar event
// @Description Update an existing calendar event; omitted fields are left unchanged
// @Tags        calendar-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Event ID"
// @Param       request body UpdateEventRequest true "Event fields to update"
// @Success     200 {object} EventResponse "Updated event"
// @Failure     400 {object} ErrorResponse "Invalid input or event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendarEvents/{id} [put]
func (h *CalendarEventHandler) UpdateEvent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseDate(*req.Date)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		date = &parsed
	}

	event, err := h.eventService.UpdateEvent(userID, eventID, req.Description, date, req.StartTime, req.EndTime, req.AllDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DeleteEvent removes a calendar event.
// @Summary     Delete calendar event
// @Description Delete a calendar event owned by the authenticated user
// @Tags        calendar-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Event ID"
// @Success     204 "Event deleted"
// @Failure     400 {object} ErrorResponse "Invalid event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendarEvents/{id} [delete]
func (h *CalendarEventHandler) DeleteEvent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.eventService.DeleteEvent(userID, eventID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
