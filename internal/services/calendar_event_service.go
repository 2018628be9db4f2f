package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "vita/internal/errors"
	"vita/internal/models"
)

// calendarEventService handles calendar event business logic.
type calendarEventService struct {
	db *gorm.DB
}

// NewCalendarEventService creates a new CalendarEventServicer.
func NewCalendarEventService(db *gorm.DB) CalendarEventServicer {
	return &calendarEventService{db: db}
}

// GetUserEvents returns all calendar events owned by the user, newest first.
func (s *calendarEventService) GetUserEvents(userID uint) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return events, nil
}

// CreateEvent creates a calendar event for the user.
func (s *calendarEventService) CreateEvent(userID uint, description string, date time.Time, startTime, endTime string, allDay bool) (*models.CalendarEvent, error) {
	if description == "" || date.IsZero() || startTime == "" || endTime == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description, date, start time and end time are required")
	}

	event := &models.CalendarEvent{
		Description: description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		AllDay:      allDay,
		UserID:      userID,
	}
	if err := s.db.Create(event).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return event, nil
}

// GetEventByID retrieves an event by ID for a specific user.
func (s *calendarEventService) GetEventByID(userID, eventID uint) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := s.db.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &event, nil
}

// UpdateEvent applies a partial update; nil fields keep their previous value.
func (s *calendarEventService) UpdateEvent(userID, eventID uint, description *string, date *time.Time, startTime, endTime *string, allDay *bool) (*models.CalendarEvent, error) {
	event, err := s.GetEventByID(userID, eventID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if description != nil && *description != "" {
		updates["description"] = *description
	}
	if date != nil && !date.IsZero() {
		updates["date"] = *date
	}
	if startTime != nil && *startTime != "" {
		updates["start_time"] = *startTime
	}
	if endTime != nil && *endTime != "" {
		updates["end_time"] = *endTime
	}
	if allDay != nil {
		updates["all_day"] = *allDay
	}

	if len(updates) > 0 {
		if err := s.db.Model(event).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return event, nil
}

// DeleteEvent removes an event owned by the user.
func (s *calendarEventService) DeleteEvent(userID, eventID uint) error {
	event, err := s.GetEventByID(userID, eventID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(event).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
