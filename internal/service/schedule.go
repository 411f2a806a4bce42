package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/logger"
	"schedulehq-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftMutationResult reports the outcome of a shift mutation request.
// Conflicts and Availability are advisory: when they carry warnings and
// the caller did not force, the mutation is withheld (Applied false) so
// the caller can confirm and retry with force.
type ShiftMutationResult struct {
	Applied      bool                `json:"applied"`
	Deleted      bool                `json:"deleted"`
	Shift        *models.Shift       `json:"shift,omitempty"`
	Conflicts    []models.Shift      `json:"conflicts,omitempty"`
	Availability *AvailabilityResult `json:"availability,omitempty"`
}

// HasWarnings reports whether the mutation carries advisory warnings
func (r *ShiftMutationResult) HasWarnings() bool {
	if len(r.Conflicts) > 0 {
		return true
	}
	return r.Availability != nil && r.Shift != nil &&
		r.Availability.ConflictsWith(r.Shift.StartTime, r.Shift.EndTime)
}

// ScheduleService is the host-facing facade of the scheduling engine. It
// normalizes edits, consults the conflict detector and availability
// resolver, wraps mutations as reversible actions on the session's action
// log, and coordinates the runner linker's cascades.
type ScheduleService struct {
	shifts       repository.ShiftRepositoryInterface
	timeOff      repository.TimeOffRepositoryInterface
	runners      repository.RunnerRepositoryInterface
	notes        repository.ScheduleNoteRepositoryInterface
	tx           repository.TransactionManagerInterface
	conflicts    *ConflictService
	availability *AvailabilityService
	linker       *RunnerLinker
	engine       *TemplateEngine
	log          *logger.Logger

	// One action log per open editing session; sessions are never shared
	// across concurrent editors.
	mu       sync.Mutex
	sessions map[string]*ActionLog
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	shifts repository.ShiftRepositoryInterface,
	timeOff repository.TimeOffRepositoryInterface,
	runners repository.RunnerRepositoryInterface,
	notes repository.ScheduleNoteRepositoryInterface,
	tx repository.TransactionManagerInterface,
	conflicts *ConflictService,
	availability *AvailabilityService,
	linker *RunnerLinker,
	engine *TemplateEngine,
) *ScheduleService {
	return &ScheduleService{
		shifts:       shifts,
		timeOff:      timeOff,
		runners:      runners,
		notes:        notes,
		tx:           tx,
		conflicts:    conflicts,
		availability: availability,
		linker:       linker,
		engine:       engine,
		log:          logger.ForComponent("schedule"),
		sessions:     make(map[string]*ActionLog),
	}
}

// session returns the action log for an editing session, creating it on
// first use.
func (s *ScheduleService) session(sessionID string) *ActionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.sessions[sessionID]
	if !ok {
		log = NewActionLog()
		s.sessions[sessionID] = log
	}
	return log
}

// normalizeShift applies the caller-level edit conventions before any
// action is built: a zero-length interval means "delete this shift", and
// an OFF label replaces the candidate interval with the canonical off
// window.
func normalizeShift(shift *models.Shift) (deleteSignal bool) {
	if shift.EndTime.Equal(shift.StartTime) {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(shift.Label), OffLabel) {
		shift.Label = OffLabel
		shift.StartTime, shift.EndTime = OffWindow(shift.StartTime)
	}
	return false
}

// CreateShift validates and inserts a new shift through the session's
// action log. Warnings withhold the insert unless force is set.
func (s *ScheduleService) CreateShift(sessionID string, shift *models.Shift, force bool) (*ShiftMutationResult, error) {
	if normalizeShift(shift) {
		return nil, fmt.Errorf("%w: new shift has zero length", apperrors.ErrInvalidTimeRange)
	}
	if shift.EndTime.Before(shift.StartTime) {
		return nil, fmt.Errorf("%w: end before start", apperrors.ErrInvalidTimeRange)
	}

	result := &ShiftMutationResult{Shift: shift}
	if err := s.collectWarnings(result, shift.EmployeeID, shift.StartTime, shift.EndTime, nil); err != nil {
		return nil, err
	}
	if result.HasWarnings() && !force {
		return result, nil
	}

	if err := s.session(sessionID).Execute(NewCreateShiftAction(s.shifts, shift)); err != nil {
		return nil, err
	}
	result.Applied = true
	return result, nil
}

// UpdateShift applies edited fields to an existing shift through the
// session's action log. A zero-length edit is a delete signal and routes
// to DeleteShift.
func (s *ScheduleService) UpdateShift(sessionID string, shiftID uuid.UUID, edited *models.Shift, force bool) (*ShiftMutationResult, error) {
	old, err := s.getShift(shiftID)
	if err != nil {
		return nil, err
	}

	if normalizeShift(edited) {
		result, err := s.DeleteShift(sessionID, shiftID)
		if err != nil {
			return nil, err
		}
		result.Deleted = true
		return result, nil
	}
	if edited.EndTime.Before(edited.StartTime) {
		return nil, fmt.Errorf("%w: end before start", apperrors.ErrInvalidTimeRange)
	}

	updated := *old
	if edited.EmployeeID != uuid.Nil {
		updated.EmployeeID = edited.EmployeeID
	}
	updated.StartTime = edited.StartTime
	updated.EndTime = edited.EndTime
	updated.Label = edited.Label
	updated.Notes = edited.Notes

	result := &ShiftMutationResult{Shift: &updated}
	if err := s.collectWarnings(result, updated.EmployeeID, updated.StartTime, updated.EndTime, &shiftID); err != nil {
		return nil, err
	}
	if result.HasWarnings() && !force {
		return result, nil
	}

	if err := s.session(sessionID).Execute(NewUpdateShiftAction(s.shifts, old, &updated)); err != nil {
		return nil, err
	}
	result.Applied = true
	return result, nil
}

// MoveShift relocates a shift to another employee and/or day. The runner
// record for the old slot survives; only delete cascades.
func (s *ScheduleService) MoveShift(sessionID string, shiftID uuid.UUID, newEmployeeID uuid.UUID, newStart, newEnd time.Time, force bool) (*ShiftMutationResult, error) {
	old, err := s.getShift(shiftID)
	if err != nil {
		return nil, err
	}
	if !newStart.Before(newEnd) {
		return nil, fmt.Errorf("%w: start is not before end", apperrors.ErrInvalidTimeRange)
	}

	moved := *old
	moved.EmployeeID = newEmployeeID
	moved.StartTime = newStart
	moved.EndTime = newEnd

	result := &ShiftMutationResult{Shift: &moved}
	if err := s.collectWarnings(result, newEmployeeID, newStart, newEnd, &shiftID); err != nil {
		return nil, err
	}
	if result.HasWarnings() && !force {
		return result, nil
	}

	if err := s.session(sessionID).Execute(NewMoveShiftAction(s.shifts, old, &moved)); err != nil {
		return nil, err
	}
	result.Applied = true
	return result, nil
}

// DeleteShift deletes a shift, cascading to the runner record it backs.
// The capture happens before the delete so the whole cascade is one
// reversible action.
func (s *ScheduleService) DeleteShift(sessionID string, shiftID uuid.UUID) (*ShiftMutationResult, error) {
	shift, err := s.getShift(shiftID)
	if err != nil {
		return nil, err
	}

	runner, err := s.linker.CaptureForDelete(shift)
	if err != nil {
		return nil, err
	}

	if err := s.session(sessionID).Execute(NewDeleteShiftAction(s.tx, shift, runner)); err != nil {
		return nil, err
	}
	return &ShiftMutationResult{Applied: true, Deleted: true, Shift: shift}, nil
}

// UndoState reports an action log's position after an undo/redo.
type UndoState struct {
	Action  string `json:"action,omitempty"`
	CanUndo bool   `json:"can_undo"`
	CanRedo bool   `json:"can_redo"`
}

// Undo reverses the session's most recent action
func (s *ScheduleService) Undo(sessionID string) (*UndoState, error) {
	log := s.session(sessionID)
	action, err := log.Undo()
	if err != nil {
		return nil, err
	}
	return &UndoState{Action: action.Label(), CanUndo: log.CanUndo(), CanRedo: log.CanRedo()}, nil
}

// Redo re-applies the session's most recently undone action
func (s *ScheduleService) Redo(sessionID string) (*UndoState, error) {
	log := s.session(sessionID)
	action, err := log.Redo()
	if err != nil {
		return nil, err
	}
	return &UndoState{Action: action.Label(), CanUndo: log.CanUndo(), CanRedo: log.CanRedo()}, nil
}

// CheckAvailability resolves an employee's availability on a date
func (s *ScheduleService) CheckAvailability(employeeID uuid.UUID, date time.Time) (*AvailabilityResult, error) {
	return s.availability.Resolve(employeeID, date)
}

// GetConflicts lists committed shifts overlapping the candidate interval
func (s *ScheduleService) GetConflicts(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Shift, error) {
	return s.conflicts.FindConflicts(employeeID, start, end, excludeID)
}

// ExpandTemplates computes the expansion plan for the employees over
// [start, end]. Nothing is written; review the plan, then ApplyExpansion.
func (s *ScheduleService) ExpandTemplates(employeeIDs []uuid.UUID, start, end time.Time, skipExisting, overrideExisting bool) (*ExpansionResult, error) {
	existing, err := s.shifts.GetByDateRange(nil, DateOf(start), DateOf(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("load existing shifts: %w", err)
	}
	return s.engine.Expand(employeeIDs, start, end, existing, skipExisting, overrideExisting)
}

// ApplyExpansion commits an expansion plan: deletions first, then inserts,
// in one transaction. Bulk template application is deliberately not pushed
// onto any session's undo log.
func (s *ScheduleService) ApplyExpansion(result *ExpansionResult) error {
	err := s.tx.InTransaction(func(shifts repository.ShiftRepositoryInterface, _ repository.RunnerRepositoryInterface) error {
		for _, id := range result.ToDelete {
			if err := shifts.Delete(id); err != nil {
				return err
			}
		}
		for i := range result.Created {
			if err := shifts.Create(&result.Created[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("apply expansion: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"created": result.CreatedCount,
		"deleted": result.DeletedCount,
		"skipped": len(result.Skipped),
	}).Info("applied template expansion")
	return nil
}

// AssignRunner designates an employee as the runner for a daypart
func (s *ScheduleService) AssignRunner(date time.Time, shiftTypeKey string, employeeID uuid.UUID) (*models.ShiftRunner, error) {
	return s.linker.AssignRunner(date, shiftTypeKey, employeeID)
}

// ClearRunner removes a runner designation, leaving the backing shift
func (s *ScheduleService) ClearRunner(date time.Time, shiftTypeKey string) error {
	return s.linker.ClearRunner(date, shiftTypeKey)
}

// Placeholder is a read-only calendar projection of a time-off entry. It
// is display data, never a shift row.
type Placeholder struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       time.Time `json:"date"`
	Label      string    `json:"label"`
	AllDay     bool      `json:"all_day"`
	StartTime  string    `json:"start_time,omitempty"`
	EndTime    string    `json:"end_time,omitempty"`
}

// CalendarView is everything a calendar surface renders for a date range.
type CalendarView struct {
	Shifts       []models.Shift        `json:"shifts"`
	Placeholders []Placeholder         `json:"placeholders"`
	Runners      []models.ShiftRunner  `json:"runners"`
	Notes        []models.ScheduleNote `json:"notes"`
}

// Calendar assembles the read model for [start, end]
func (s *ScheduleService) Calendar(start, end time.Time) (*CalendarView, error) {
	shifts, err := s.shifts.GetByDateRange(nil, DateOf(start), DateOf(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("load shifts: %w", err)
	}
	// Legacy all-day rows predate the canonical off window; relabel them so
	// the surface renders them as days off.
	for i := range shifts {
		if IsDayOffWindow(shifts[i].StartTime, shifts[i].EndTime) {
			shifts[i].Label = OffLabel
		}
	}
	entries, err := s.timeOff.GetInRange(nil, start, end)
	if err != nil {
		return nil, fmt.Errorf("load time off: %w", err)
	}
	runners, err := s.runners.GetForDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("load runners: %w", err)
	}
	notes, err := s.notes.GetInRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	placeholders := make([]Placeholder, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		placeholders = append(placeholders, Placeholder{
			EmployeeID: entry.EmployeeID,
			Date:       entry.Date,
			Label:      entry.Type.PlaceholderLabel(),
			AllDay:     entry.AllDay,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
		})
	}

	return &CalendarView{
		Shifts:       shifts,
		Placeholders: placeholders,
		Runners:      runners,
		Notes:        notes,
	}, nil
}

// UpsertNote sets the free-text annotation for a calendar date
func (s *ScheduleService) UpsertNote(date time.Time, text string) (*models.ScheduleNote, error) {
	note := &models.ScheduleNote{Date: DateOf(date), Text: text}
	if err := s.notes.Upsert(note); err != nil {
		return nil, fmt.Errorf("upsert note: %w", err)
	}
	return note, nil
}

// DeleteNote removes the annotation for a calendar date
func (s *ScheduleService) DeleteNote(date time.Time) error {
	return s.notes.Delete(date)
}

// GetNote retrieves the annotation for a calendar date, or nil
func (s *ScheduleService) GetNote(date time.Time) (*models.ScheduleNote, error) {
	return s.notes.GetByDate(date)
}

func (s *ScheduleService) getShift(shiftID uuid.UUID) (*models.Shift, error) {
	shift, err := s.shifts.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("load shift: %w", err)
	}
	return shift, nil
}

func (s *ScheduleService) collectWarnings(result *ShiftMutationResult, employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error {
	conflicts, err := s.conflicts.FindConflicts(employeeID, start, end, excludeID)
	if err != nil {
		return err
	}
	result.Conflicts = conflicts

	verdict, err := s.availability.Resolve(employeeID, start)
	if err != nil {
		return err
	}
	result.Availability = verdict
	return nil
}
