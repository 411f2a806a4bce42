package service

import (
	"errors"
	"fmt"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOffService handles business logic for time-off entries. Every
// mutation invalidates the availability resolver's memoized verdicts for
// the affected employee.
type TimeOffService struct {
	repo         repository.TimeOffRepositoryInterface
	availability *AvailabilityService
	validator    *validator.Validate
}

// NewTimeOffService creates a new time-off service
func NewTimeOffService(repo repository.TimeOffRepositoryInterface, availability *AvailabilityService, validator *validator.Validate) *TimeOffService {
	return &TimeOffService{repo: repo, availability: availability, validator: validator}
}

// CreateTimeOffRequest represents the request to create a time-off entry
type CreateTimeOffRequest struct {
	EmployeeID uuid.UUID          `json:"employee_id" validate:"required"`
	Date       time.Time          `json:"date" validate:"required"`
	Type       models.TimeOffType `json:"type" validate:"required"`
	AllDay     bool               `json:"all_day"`
	StartTime  string             `json:"start_time,omitempty"`
	EndTime    string             `json:"end_time,omitempty"`
	Hours      *float64           `json:"hours,omitempty"`
}

// CreateVacationRequest represents the request to create a multi-day vacation
type CreateVacationRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

// Create creates a single time-off entry
func (s *TimeOffService) Create(req *CreateTimeOffRequest) (*models.TimeOffEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	req.Type = req.Type.Normalize()
	if !req.Type.IsValid() {
		return nil, apperrors.ErrInvalidTimeOffType
	}
	if !req.AllDay {
		if _, err := ParseTimeOfDay(req.StartTime); err != nil {
			return nil, fmt.Errorf("partial-day entry start: %w", err)
		}
		if _, err := ParseTimeOfDay(req.EndTime); err != nil {
			return nil, fmt.Errorf("partial-day entry end: %w", err)
		}
	}

	entry := &models.TimeOffEntry{
		EmployeeID: req.EmployeeID,
		Date:       DateOf(req.Date),
		Type:       req.Type,
		AllDay:     req.AllDay,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Hours:      req.Hours,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create time-off entry: %w", err)
	}

	s.availability.InvalidateEmployee(req.EmployeeID)
	return entry, nil
}

// CreateVacation creates one all-day vacation entry per date in
// [StartDate, EndDate], tied together by a shared vacation group id.
func (s *TimeOffService) CreateVacation(req *CreateVacationRequest) ([]models.TimeOffEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if DateOf(req.EndDate).Before(DateOf(req.StartDate)) {
		return nil, fmt.Errorf("%w: vacation end before start", apperrors.ErrInvalidTimeRange)
	}

	groupID := uuid.New()
	var entries []models.TimeOffEntry
	for day := DateOf(req.StartDate); !day.After(DateOf(req.EndDate)); day = day.AddDate(0, 0, 1) {
		entries = append(entries, models.TimeOffEntry{
			EmployeeID:      req.EmployeeID,
			Date:            day,
			Type:            models.TimeOffVacation,
			AllDay:          true,
			VacationGroupID: &groupID,
		})
	}
	// One transaction for the whole range: a vacation is never half-booked.
	if err := s.repo.CreateGroup(entries); err != nil {
		return nil, fmt.Errorf("failed to create vacation: %w", err)
	}

	s.availability.InvalidateEmployee(req.EmployeeID)
	return entries, nil
}

// GetByID retrieves a time-off entry by ID
func (s *TimeOffService) GetByID(id uuid.UUID) (*models.TimeOffEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTimeOffNotFound
		}
		return nil, fmt.Errorf("failed to get time-off entry: %w", err)
	}
	return entry, nil
}

// GetInRange retrieves time-off entries in a date range
func (s *TimeOffService) GetInRange(employeeID *uuid.UUID, start, end time.Time) ([]models.TimeOffEntry, error) {
	return s.repo.GetInRange(employeeID, start, end)
}

// Delete deletes a time-off entry. Deleting a vacation day removes only
// that day; the rest of the group stays.
func (s *TimeOffService) Delete(id uuid.UUID) error {
	entry, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete time-off entry: %w", err)
	}
	s.availability.InvalidateEmployee(entry.EmployeeID)
	return nil
}

// DeleteVacationGroup deletes every entry of a multi-day vacation
func (s *TimeOffService) DeleteVacationGroup(groupID uuid.UUID) error {
	entries, err := s.repo.GetByVacationGroup(groupID)
	if err != nil {
		return fmt.Errorf("failed to load vacation group: %w", err)
	}
	if len(entries) == 0 {
		return apperrors.ErrTimeOffNotFound
	}
	for i := range entries {
		if err := s.repo.Delete(entries[i].ID); err != nil {
			return fmt.Errorf("failed to delete vacation day: %w", err)
		}
	}
	s.availability.InvalidateEmployee(entries[0].EmployeeID)
	return nil
}
