package service

import (
	"fmt"
	"sync"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"
)

// Action is a reversible schedule mutation. Each action carries exactly
// the state needed to invert itself. Do and Undo are all-or-nothing: a
// storage failure propagates and the caller must treat the action as not
// (un)applied.
type Action interface {
	Do() error
	Undo() error
	Label() string
}

// CreateShiftAction inserts a shift; undo deletes it by id.
type CreateShiftAction struct {
	shifts repository.ShiftRepositoryInterface
	Shift  *models.Shift
}

// NewCreateShiftAction creates a reversible shift insert
func NewCreateShiftAction(shifts repository.ShiftRepositoryInterface, shift *models.Shift) *CreateShiftAction {
	return &CreateShiftAction{shifts: shifts, Shift: shift}
}

func (a *CreateShiftAction) Do() error {
	return a.shifts.Create(a.Shift)
}

func (a *CreateShiftAction) Undo() error {
	return a.shifts.Delete(a.Shift.ID)
}

func (a *CreateShiftAction) Label() string { return "create shift" }

// UpdateShiftAction persists new field values onto an existing shift;
// undo restores the old values.
type UpdateShiftAction struct {
	shifts repository.ShiftRepositoryInterface
	Old    *models.Shift
	New    *models.Shift
}

// NewUpdateShiftAction creates a reversible shift update. Old and New must
// share the same id.
func NewUpdateShiftAction(shifts repository.ShiftRepositoryInterface, oldShift, newShift *models.Shift) *UpdateShiftAction {
	return &UpdateShiftAction{shifts: shifts, Old: oldShift, New: newShift}
}

func (a *UpdateShiftAction) Do() error {
	return a.shifts.Update(a.New)
}

func (a *UpdateShiftAction) Undo() error {
	return a.shifts.Update(a.Old)
}

func (a *UpdateShiftAction) Label() string { return "update shift" }

// MoveShiftAction relocates a shift to another employee and/or date. Same
// shape as an update but a distinct action: a move never cascades runner
// changes, the existing runner record survives.
type MoveShiftAction struct {
	shifts repository.ShiftRepositoryInterface
	Old    *models.Shift
	New    *models.Shift
}

// NewMoveShiftAction creates a reversible shift relocation
func NewMoveShiftAction(shifts repository.ShiftRepositoryInterface, oldShift, newShift *models.Shift) *MoveShiftAction {
	return &MoveShiftAction{shifts: shifts, Old: oldShift, New: newShift}
}

func (a *MoveShiftAction) Do() error {
	return a.shifts.Update(a.New)
}

func (a *MoveShiftAction) Undo() error {
	return a.shifts.Update(a.Old)
}

func (a *MoveShiftAction) Label() string { return "move shift" }

// DeleteShiftAction deletes a shift and, when the shift backed a runner
// assignment, the captured runner record with it. Both halves apply and
// invert inside one storage transaction; undo re-inserts the shift with
// its original id and restores the runner.
type DeleteShiftAction struct {
	tx     repository.TransactionManagerInterface
	Shift  *models.Shift
	Runner *models.ShiftRunner
}

// NewDeleteShiftAction creates a reversible cascading delete. runner may
// be nil when the shift backs no runner assignment.
func NewDeleteShiftAction(tx repository.TransactionManagerInterface, shift *models.Shift, runner *models.ShiftRunner) *DeleteShiftAction {
	return &DeleteShiftAction{tx: tx, Shift: shift, Runner: runner}
}

func (a *DeleteShiftAction) Do() error {
	return a.tx.InTransaction(func(shifts repository.ShiftRepositoryInterface, runners repository.RunnerRepositoryInterface) error {
		if err := shifts.Delete(a.Shift.ID); err != nil {
			return err
		}
		if a.Runner != nil {
			return runners.Delete(a.Runner.Date, a.Runner.ShiftTypeKey)
		}
		return nil
	})
}

func (a *DeleteShiftAction) Undo() error {
	return a.tx.InTransaction(func(shifts repository.ShiftRepositoryInterface, runners repository.RunnerRepositoryInterface) error {
		if err := shifts.Create(a.Shift); err != nil {
			return err
		}
		if a.Runner != nil {
			return runners.Create(a.Runner)
		}
		return nil
	})
}

func (a *DeleteShiftAction) Label() string { return "delete shift" }

// ActionLog is the linear undo/redo history of one schedule-editing
// session. Executing a new action clears the redo list; undo and redo are
// strictly LIFO. A failing Do or Undo leaves the stack position unchanged
// and propagates the error.
type ActionLog struct {
	mu     sync.Mutex
	done   []Action
	undone []Action
}

// NewActionLog creates an empty action log
func NewActionLog() *ActionLog {
	return &ActionLog{}
}

// Execute performs the action and records it for undo
func (l *ActionLog) Execute(action Action) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := action.Do(); err != nil {
		return fmt.Errorf("%s: %w", action.Label(), err)
	}
	l.done = append(l.done, action)
	l.undone = nil
	return nil
}

// Undo reverses the most recently applied action
func (l *ActionLog) Undo() (Action, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.done) == 0 {
		return nil, apperrors.ErrNothingToUndo
	}
	action := l.done[len(l.done)-1]
	if err := action.Undo(); err != nil {
		return nil, fmt.Errorf("undo %s: %w", action.Label(), err)
	}
	l.done = l.done[:len(l.done)-1]
	l.undone = append(l.undone, action)
	return action, nil
}

// Redo re-applies the most recently undone action
func (l *ActionLog) Redo() (Action, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.undone) == 0 {
		return nil, apperrors.ErrNothingToRedo
	}
	action := l.undone[len(l.undone)-1]
	if err := action.Do(); err != nil {
		return nil, fmt.Errorf("redo %s: %w", action.Label(), err)
	}
	l.undone = l.undone[:len(l.undone)-1]
	l.done = append(l.done, action)
	return action, nil
}

// CanUndo reports whether an applied action is available to undo
func (l *ActionLog) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.done) > 0
}

// CanRedo reports whether an undone action is available to redo
func (l *ActionLog) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.undone) > 0
}
