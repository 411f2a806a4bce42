package service

import (
	"fmt"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TemplateEntryService handles business logic for weekly template entries.
// Entries are read-only inputs to the template engine; this service only
// manages their authoring.
type TemplateEntryService struct {
	repo      repository.WeeklyTemplateRepositoryInterface
	validator *validator.Validate
}

// NewTemplateEntryService creates a new template entry service
func NewTemplateEntryService(repo repository.WeeklyTemplateRepositoryInterface, validator *validator.Validate) *TemplateEntryService {
	return &TemplateEntryService{repo: repo, validator: validator}
}

// TemplateEntryRequest represents the request to set a weekly template entry
type TemplateEntryRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Weekday    int       `json:"weekday" validate:"min=0,max=6"`
	DayOff     bool      `json:"day_off"`
	StartTime  string    `json:"start_time,omitempty"`
	EndTime    string    `json:"end_time,omitempty"`
}

// Upsert creates or replaces the entry for (employee, weekday)
func (s *TemplateEntryService) Upsert(req *TemplateEntryRequest) (*models.WeeklyTemplateEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.DayOff && (req.StartTime != "" || req.EndTime != "") {
		return nil, apperrors.NewValidationError("day_off", "a day-off entry cannot carry times")
	}
	if !req.DayOff && req.StartTime != "" {
		if _, err := ParseTimeOfDay(req.StartTime); err != nil {
			return nil, apperrors.NewValidationError("start_time", err.Error())
		}
		if _, err := ParseTimeOfDay(req.EndTime); err != nil {
			return nil, apperrors.NewValidationError("end_time", err.Error())
		}
	}

	entry := &models.WeeklyTemplateEntry{
		EmployeeID: req.EmployeeID,
		Weekday:    req.Weekday,
		DayOff:     req.DayOff,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := s.repo.Upsert(entry); err != nil {
		return nil, fmt.Errorf("failed to save template entry: %w", err)
	}
	return entry, nil
}

// GetForEmployee retrieves an employee's weekly template
func (s *TemplateEntryService) GetForEmployee(employeeID uuid.UUID) ([]models.WeeklyTemplateEntry, error) {
	return s.repo.GetForEmployee(employeeID)
}

// Delete blanks the entry for (employee, weekday)
func (s *TemplateEntryService) Delete(employeeID uuid.UUID, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return apperrors.ErrInvalidWeekday
	}
	return s.repo.Delete(employeeID, weekday)
}
