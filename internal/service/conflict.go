package service

import (
	"fmt"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"

	"github.com/google/uuid"
)

// ConflictService finds committed shifts overlapping a candidate interval.
// Results are advisory: callers surface the conflicts for confirmation and
// may proceed anyway; a save is never silently blocked here.
type ConflictService struct {
	shifts repository.ShiftRepositoryInterface
}

// NewConflictService creates a new conflict service
func NewConflictService(shifts repository.ShiftRepositoryInterface) *ConflictService {
	return &ConflictService{shifts: shifts}
}

// FindConflicts returns the employee's committed shifts overlapping
// [start, end) under open-interval comparison; intervals that merely touch
// at an endpoint do not conflict. excludeID lets an update ignore the
// shift being edited.
func (s *ConflictService) FindConflicts(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Shift, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start %s is not before end %s", apperrors.ErrInvalidTimeRange, start, end)
	}
	return s.shifts.GetConflicts(employeeID, start, end, excludeID)
}

// HasConflict reports whether FindConflicts returns anything
func (s *ConflictService) HasConflict(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	conflicts, err := s.FindConflicts(employeeID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}
