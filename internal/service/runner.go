package service

import (
	"errors"
	"fmt"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/logger"
	"schedulehq-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RunnerLinker keeps ShiftRunner records consistent with the shifts that
// back them. Deleting a backing shift cascades to its runner record (and
// the cascade is undoable, see DeleteShiftAction); moving a shift does
// not cascade.
type RunnerLinker struct {
	runners    repository.RunnerRepositoryInterface
	shifts     repository.ShiftRepositoryInterface
	shiftTypes repository.ShiftTypeRepositoryInterface
	employees  repository.EmployeeRepositoryInterface
	clock      *ShiftClock
	days       *BusinessClock
	log        *logger.Logger
}

// NewRunnerLinker creates a new runner linker
func NewRunnerLinker(
	runners repository.RunnerRepositoryInterface,
	shifts repository.ShiftRepositoryInterface,
	shiftTypes repository.ShiftTypeRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	clock *ShiftClock,
	days *BusinessClock,
) *RunnerLinker {
	return &RunnerLinker{
		runners:    runners,
		shifts:     shifts,
		shiftTypes: shiftTypes,
		employees:  employees,
		clock:      clock,
		days:       days,
		log:        logger.ForComponent("runner-linker"),
	}
}

// CaptureForDelete returns the runner record that the shift backs, or nil
// when the shift backs none. Capturing before the delete is what makes
// the cascading delete reversible: the caller folds the captured record
// into the same DeleteShiftAction as the shift.
func (l *RunnerLinker) CaptureForDelete(shift *models.Shift) (*models.ShiftRunner, error) {
	key, ok := l.clock.ClassifyTime(shift.StartTime)
	if !ok {
		return nil, nil
	}

	date := l.days.BusinessDayOf(shift.StartTime)
	runner, err := l.runners.GetForDateAndShift(date, key)
	if err != nil {
		return nil, fmt.Errorf("look up runner for %s/%s: %w", date.Format("2006-01-02"), key, err)
	}
	if runner == nil {
		return nil, nil
	}

	employee, err := l.employees.GetByID(shift.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A runner whose name matches no employee is a display-only
			// anomaly, not an error; no cascade.
			return nil, nil
		}
		return nil, fmt.Errorf("look up employee: %w", err)
	}

	if !runner.Matches(employee) {
		return nil, nil
	}
	return runner, nil
}

// AssignRunner records the employee as the runner for (date, shift type).
// When the employee has no shift on that date, one is synthesized from the
// shift type's default times; an end not after the start advances one day
// (overnight).
func (l *RunnerLinker) AssignRunner(date time.Time, shiftTypeKey string, employeeID uuid.UUID) (*models.ShiftRunner, error) {
	shiftType, err := l.shiftTypes.GetByKey(shiftTypeKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftTypeNotFound
		}
		return nil, fmt.Errorf("look up shift type: %w", err)
	}

	employee, err := l.employees.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("look up employee: %w", err)
	}

	existing, err := l.shifts.GetForEmployeeOnDate(employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("look up shifts: %w", err)
	}
	if len(existing) == 0 {
		shift, err := l.synthesizeShift(date, shiftType, employeeID)
		if err != nil {
			return nil, err
		}
		if err := l.shifts.Create(shift); err != nil {
			return nil, fmt.Errorf("create backing shift: %w", err)
		}
		l.log.WithFields(map[string]interface{}{
			"employee":   employee.DisplayName,
			"shift_type": shiftTypeKey,
			"date":       date.Format("2006-01-02"),
		}).Info("synthesized backing shift for runner assignment")
	}

	runner := &models.ShiftRunner{
		Date:         DateOf(date),
		ShiftTypeKey: shiftTypeKey,
		RunnerName:   employee.DisplayName,
		EmployeeID:   &employee.ID,
	}
	if err := l.runners.Upsert(runner); err != nil {
		return nil, fmt.Errorf("upsert runner: %w", err)
	}
	return runner, nil
}

// ClearRunner removes the runner record for (date, shift type). The
// backing shift is never touched.
func (l *RunnerLinker) ClearRunner(date time.Time, shiftTypeKey string) error {
	return l.runners.Delete(date, shiftTypeKey)
}

func (l *RunnerLinker) synthesizeShift(date time.Time, shiftType *models.ShiftType, employeeID uuid.UUID) (*models.Shift, error) {
	start, err := ParseTimeOfDay(shiftType.DefaultStart)
	if err != nil {
		return nil, fmt.Errorf("shift type %q default start: %w", shiftType.Key, err)
	}
	end, err := ParseTimeOfDay(shiftType.DefaultEnd)
	if err != nil {
		return nil, fmt.Errorf("shift type %q default end: %w", shiftType.Key, err)
	}

	startAt := start.On(date)
	endAt := end.On(date)
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	return &models.Shift{
		EmployeeID: employeeID,
		StartTime:  startAt,
		EndTime:    endAt,
		Label:      shiftType.Label,
	}, nil
}
