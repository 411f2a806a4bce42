package service

import (
	"fmt"
	"sync"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"

	"github.com/google/uuid"
)

// AvailabilityKind tags which source decided an availability verdict.
type AvailabilityKind string

const (
	// KindTimeOff means a time-off entry decided the verdict.
	KindTimeOff AvailabilityKind = "time-off"
	// KindPattern means the recurring availability pattern decided it.
	KindPattern AvailabilityKind = "pattern"
)

// TimeWindow is a concrete [Start, End] range on one date.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityResult is the resolved verdict for one employee and date.
// For a partial-day "requested" time-off entry the verdict is inverted:
// Available is true and Window holds the range the employee IS available
// in, so candidate shifts must fall inside it rather than avoid it.
type AvailabilityResult struct {
	Available bool                 `json:"available"`
	Kind      AvailabilityKind     `json:"kind"`
	Reason    string               `json:"reason"`
	AllDay    bool                 `json:"all_day"`
	TimeOff   *models.TimeOffEntry `json:"time_off,omitempty"`
	Window    *TimeWindow          `json:"window,omitempty"`
}

type availabilityCacheKey struct {
	employeeID uuid.UUID
	date       string
}

// AvailabilityService resolves an employee's effective availability on a
// date from time-off records and recurring patterns, time-off taking
// precedence. Verdicts are memoized per (employee, date) until a time-off
// or pattern mutation invalidates them; the resolution itself is pure
// given a stable snapshot of both inputs.
type AvailabilityService struct {
	timeOff  repository.TimeOffRepositoryInterface
	patterns repository.AvailabilityPatternRepositoryInterface

	mu    sync.Mutex
	cache map[availabilityCacheKey]*AvailabilityResult
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(timeOff repository.TimeOffRepositoryInterface, patterns repository.AvailabilityPatternRepositoryInterface) *AvailabilityService {
	return &AvailabilityService{
		timeOff:  timeOff,
		patterns: patterns,
		cache:    make(map[availabilityCacheKey]*AvailabilityResult),
	}
}

// Resolve returns the availability verdict for an employee on a date.
// Precedence is fixed: a time-off entry wins; otherwise the recurring
// pattern answers.
func (s *AvailabilityService) Resolve(employeeID uuid.UUID, date time.Time) (*AvailabilityResult, error) {
	key := availabilityCacheKey{employeeID: employeeID, date: DateOf(date).Format("2006-01-02")}

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	result, err := s.resolve(employeeID, date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = result
	s.mu.Unlock()
	return result, nil
}

func (s *AvailabilityService) resolve(employeeID uuid.UUID, date time.Time) (*AvailabilityResult, error) {
	entry, err := s.timeOff.GetForEmployeeOnDate(employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("look up time off: %w", err)
	}
	if entry != nil {
		return resolveFromTimeOff(entry, date)
	}
	return s.resolveFromPattern(employeeID, date)
}

func resolveFromTimeOff(entry *models.TimeOffEntry, date time.Time) (*AvailabilityResult, error) {
	if entry.IsAvailabilityWindow() {
		// Inverted partial-day semantics: the entry's range is when the
		// employee IS available.
		window, err := windowOn(date, entry.StartTime, entry.EndTime)
		if err != nil {
			return nil, err
		}
		return &AvailabilityResult{
			Available: true,
			Kind:      KindTimeOff,
			Reason:    fmt.Sprintf("Available %s-%s (%s)", entry.StartTime, entry.EndTime, entry.Type.PlaceholderLabel()),
			AllDay:    false,
			TimeOff:   entry,
			Window:    window,
		}, nil
	}

	reason := fmt.Sprintf("%s - All Day", entry.Type.PlaceholderLabel())
	var window *TimeWindow
	if !entry.AllDay && entry.StartTime != "" && entry.EndTime != "" {
		w, err := windowOn(date, entry.StartTime, entry.EndTime)
		if err != nil {
			return nil, err
		}
		window = w
		reason = fmt.Sprintf("%s %s-%s", entry.Type.PlaceholderLabel(), entry.StartTime, entry.EndTime)
	}
	return &AvailabilityResult{
		Available: false,
		Kind:      KindTimeOff,
		Reason:    reason,
		AllDay:    entry.AllDay,
		TimeOff:   entry,
		Window:    window,
	}, nil
}

func (s *AvailabilityService) resolveFromPattern(employeeID uuid.UUID, date time.Time) (*AvailabilityResult, error) {
	pattern, err := s.patterns.GetForEmployeeWeekday(employeeID, int(date.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("look up availability pattern: %w", err)
	}
	if pattern == nil {
		return &AvailabilityResult{Available: true, Kind: KindPattern, AllDay: true}, nil
	}

	if !pattern.Available {
		return &AvailabilityResult{
			Available: false,
			Kind:      KindPattern,
			Reason:    fmt.Sprintf("Unavailable on %ss", date.Weekday()),
			AllDay:    true,
		}, nil
	}

	if pattern.StartTime != "" && pattern.EndTime != "" {
		window, err := windowOn(date, pattern.StartTime, pattern.EndTime)
		if err != nil {
			return nil, err
		}
		return &AvailabilityResult{
			Available: true,
			Kind:      KindPattern,
			Reason:    fmt.Sprintf("Available %s-%s", pattern.StartTime, pattern.EndTime),
			AllDay:    false,
			Window:    window,
		}, nil
	}

	return &AvailabilityResult{Available: true, Kind: KindPattern, AllDay: true}, nil
}

// ConflictsWith applies the interval-overlap sub-rule to a candidate shift
// interval. For off entries any overlap with the off window (or the whole
// day) is a conflict. For an availability window the condition inverts:
// the candidate conflicts only when it is not fully contained in the
// window.
func (r *AvailabilityResult) ConflictsWith(start, end time.Time) bool {
	switch {
	case r.Window != nil && r.Available:
		return !Contains(r.Window.Start, r.Window.End, start, end)
	case r.Window != nil:
		return Overlaps(r.Window.Start, r.Window.End, start, end)
	case !r.Available:
		dayStart := DateOf(start)
		dayEnd := dayStart.AddDate(0, 0, 1)
		return Overlaps(dayStart, dayEnd, start, end)
	default:
		return false
	}
}

// InvalidateEmployee clears memoized verdicts for one employee. Called by
// time-off and pattern mutations.
func (s *AvailabilityService) InvalidateEmployee(employeeID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.cache {
		if key.employeeID == employeeID {
			delete(s.cache, key)
		}
	}
}

// InvalidateAll clears all memoized verdicts
func (s *AvailabilityService) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[availabilityCacheKey]*AvailabilityResult)
}

// UpsertPattern creates or replaces a recurring availability rule and
// drops the employee's memoized verdicts.
func (s *AvailabilityService) UpsertPattern(pattern *models.AvailabilityPattern) error {
	if pattern.Weekday < 0 || pattern.Weekday > 6 {
		return apperrors.ErrInvalidWeekday
	}
	if pattern.StartTime != "" {
		if _, err := ParseTimeOfDay(pattern.StartTime); err != nil {
			return err
		}
		if _, err := ParseTimeOfDay(pattern.EndTime); err != nil {
			return err
		}
	}
	if err := s.patterns.Upsert(pattern); err != nil {
		return fmt.Errorf("upsert pattern: %w", err)
	}
	s.InvalidateEmployee(pattern.EmployeeID)
	return nil
}

// DeletePattern removes a recurring availability rule and drops the
// employee's memoized verdicts.
func (s *AvailabilityService) DeletePattern(employeeID uuid.UUID, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return apperrors.ErrInvalidWeekday
	}
	if err := s.patterns.Delete(employeeID, weekday); err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	s.InvalidateEmployee(employeeID)
	return nil
}

// GetPatterns retrieves an employee's recurring availability rules
func (s *AvailabilityService) GetPatterns(employeeID uuid.UUID) ([]models.AvailabilityPattern, error) {
	return s.patterns.GetForEmployee(employeeID)
}

func windowOn(date time.Time, startStr, endStr string) (*TimeWindow, error) {
	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return nil, fmt.Errorf("time-off window start: %w", err)
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return nil, fmt.Errorf("time-off window end: %w", err)
	}

	startAt := start.On(date)
	endAt := end.On(date)
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}
	return &TimeWindow{Start: startAt, End: endAt}, nil
}
