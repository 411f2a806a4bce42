package service

import (
	"errors"
	"fmt"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftTypeService handles business logic for shift-type configuration.
// Every mutation refreshes the shift clock so classification follows the
// settings change within the same session.
type ShiftTypeService struct {
	repo      repository.ShiftTypeRepositoryInterface
	clock     *ShiftClock
	validator *validator.Validate
}

// NewShiftTypeService creates a new shift-type service
func NewShiftTypeService(repo repository.ShiftTypeRepositoryInterface, clock *ShiftClock, validator *validator.Validate) *ShiftTypeService {
	return &ShiftTypeService{repo: repo, clock: clock, validator: validator}
}

// ShiftTypeRequest represents the request to create or update a shift type
type ShiftTypeRequest struct {
	Key          string `json:"key" validate:"required,min=1,max=50"`
	Label        string `json:"label" validate:"required,max=100"`
	DefaultStart string `json:"default_start" validate:"required"`
	DefaultEnd   string `json:"default_end" validate:"required"`
	WindowStart  string `json:"window_start" validate:"required"`
	WindowEnd    string `json:"window_end" validate:"required"`
	Position     int    `json:"position"`
}

// GetAll retrieves all configured shift types
func (s *ShiftTypeService) GetAll() ([]models.ShiftType, error) {
	return s.repo.GetAll()
}

// Create creates a new shift type
func (s *ShiftTypeService) Create(req *ShiftTypeRequest) (*models.ShiftType, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByKey(req.Key); err == nil && existing != nil {
		return nil, apperrors.ErrShiftTypeExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check key: %w", err)
	}

	shiftType := &models.ShiftType{
		Key:          req.Key,
		Label:        req.Label,
		DefaultStart: req.DefaultStart,
		DefaultEnd:   req.DefaultEnd,
		WindowStart:  req.WindowStart,
		WindowEnd:    req.WindowEnd,
		Position:     req.Position,
	}
	if err := s.repo.Create(shiftType); err != nil {
		return nil, fmt.Errorf("failed to create shift type: %w", err)
	}

	if err := s.clock.Refresh(); err != nil {
		return nil, fmt.Errorf("refresh shift clock: %w", err)
	}
	return shiftType, nil
}

// Update updates a shift type
func (s *ShiftTypeService) Update(id uuid.UUID, req *ShiftTypeRequest) (*models.ShiftType, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	shiftType, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	shiftType.Key = req.Key
	shiftType.Label = req.Label
	shiftType.DefaultStart = req.DefaultStart
	shiftType.DefaultEnd = req.DefaultEnd
	shiftType.WindowStart = req.WindowStart
	shiftType.WindowEnd = req.WindowEnd
	shiftType.Position = req.Position

	if err := s.repo.Update(shiftType); err != nil {
		return nil, fmt.Errorf("failed to update shift type: %w", err)
	}

	if err := s.clock.Refresh(); err != nil {
		return nil, fmt.Errorf("refresh shift clock: %w", err)
	}
	return shiftType, nil
}

// Delete deletes a shift type
func (s *ShiftTypeService) Delete(id uuid.UUID) error {
	if _, err := s.getByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	return s.clock.Refresh()
}

func (s *ShiftTypeService) getByID(id uuid.UUID) (*models.ShiftType, error) {
	types, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	for i := range types {
		if types[i].ID == id {
			return &types[i], nil
		}
	}
	return nil, apperrors.ErrShiftTypeNotFound
}

func (s *ShiftTypeService) validate(req *ShiftTypeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	for field, value := range map[string]string{
		"default_start": req.DefaultStart,
		"default_end":   req.DefaultEnd,
		"window_start":  req.WindowStart,
		"window_end":    req.WindowEnd,
	} {
		if _, err := ParseTimeOfDay(value); err != nil {
			return apperrors.NewValidationError(field, err.Error())
		}
	}
	return nil
}
