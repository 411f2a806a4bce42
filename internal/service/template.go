package service

import (
	"fmt"
	"time"

	"schedulehq-backend/internal/database/models"
	"schedulehq-backend/internal/logger"
	"schedulehq-backend/internal/repository"

	"github.com/google/uuid"
)

// OffLabel marks a generated day-off shift. A caller-edited shift whose
// label equals this value is normalized onto the canonical off window
// before an action is built.
const OffLabel = "OFF"

// SkippedEntry records a template entry that expansion rejected, and why.
// A malformed entry fails alone; expansion continues for every other
// employee and day.
type SkippedEntry struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason"`
}

// ExpansionResult is the outcome of expanding weekly templates over a date
// range. It is a plan, not a mutation: the caller deletes ToDelete first,
// then inserts Created.
type ExpansionResult struct {
	Created      []models.Shift `json:"created"`
	ToDelete     []uuid.UUID    `json:"to_delete"`
	Skipped      []SkippedEntry `json:"skipped,omitempty"`
	CreatedCount int            `json:"created_count"`
	DeletedCount int            `json:"deleted_count"`
}

// TemplateEngine expands per-employee weekly templates into concrete shift
// instances over a date range. The expansion is a pure computation over
// the template snapshot and the supplied existing shifts; it never talks
// to shift storage.
type TemplateEngine struct {
	templates repository.WeeklyTemplateRepositoryInterface
	log       *logger.Logger
}

// NewTemplateEngine creates a new template engine
func NewTemplateEngine(templates repository.WeeklyTemplateRepositoryInterface) *TemplateEngine {
	return &TemplateEngine{
		templates: templates,
		log:       logger.ForComponent("template-engine"),
	}
}

// Expand computes the shifts the templates produce for each employee and
// calendar day in [start, end]. Days with existing shifts follow the
// policy flags: skipExisting skips the day, overrideExisting marks the
// existing shifts for deletion and regenerates, and with neither flag set
// the day is left untouched.
func (e *TemplateEngine) Expand(employeeIDs []uuid.UUID, start, end time.Time, existingShifts []models.Shift, skipExisting, overrideExisting bool) (*ExpansionResult, error) {
	templatesByEmployee, err := e.templates.GetTemplatesForEmployees(employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	existingByDay := bucketShiftsByEmployeeDay(existingShifts)
	result := &ExpansionResult{}

	for _, employeeID := range employeeIDs {
		byWeekday := make(map[int]*models.WeeklyTemplateEntry)
		for i := range templatesByEmployee[employeeID] {
			entry := &templatesByEmployee[employeeID][i]
			byWeekday[entry.Weekday] = entry
		}

		for day := DateOf(start); !day.After(DateOf(end)); day = day.AddDate(0, 0, 1) {
			entry := byWeekday[int(day.Weekday())]
			if entry == nil || entry.IsBlank() {
				continue
			}

			existing := existingByDay[employeeDay{employeeID, day.Format("2006-01-02")}]
			if len(existing) > 0 {
				if skipExisting {
					continue
				}
				if !overrideExisting {
					// Safe default: an unflagged day with shifts is never
					// mutated.
					continue
				}
				for _, shift := range existing {
					result.ToDelete = append(result.ToDelete, shift.ID)
				}
			}

			shift, err := expandEntry(entry, day)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedEntry{
					EmployeeID: employeeID,
					Date:       day,
					Reason:     err.Error(),
				})
				e.log.WithFields(map[string]interface{}{
					"employee": employeeID,
					"date":     day.Format("2006-01-02"),
				}).WithError(err).Warn("skipped malformed template entry")
				continue
			}
			result.Created = append(result.Created, *shift)
		}
	}

	result.CreatedCount = len(result.Created)
	result.DeletedCount = len(result.ToDelete)
	return result, nil
}

func expandEntry(entry *models.WeeklyTemplateEntry, day time.Time) (*models.Shift, error) {
	if entry.DayOff {
		offStart, offEnd := OffWindow(day)
		return &models.Shift{
			EmployeeID: entry.EmployeeID,
			StartTime:  offStart,
			EndTime:    offEnd,
			Label:      OffLabel,
		}, nil
	}

	if entry.StartTime == "" || entry.EndTime == "" {
		// Authored inconsistently (off unset, one time blank): treat as
		// blank rather than produce a zero-length shift.
		return nil, fmt.Errorf("incomplete time range %q-%q", entry.StartTime, entry.EndTime)
	}

	start, err := ParseTimeOfDay(entry.StartTime)
	if err != nil {
		return nil, fmt.Errorf("malformed start %q: %w", entry.StartTime, err)
	}
	end, err := ParseTimeOfDay(entry.EndTime)
	if err != nil {
		return nil, fmt.Errorf("malformed end %q: %w", entry.EndTime, err)
	}

	startAt := start.On(day)
	endAt := end.On(day)
	if !endAt.After(startAt) {
		// Overnight shift: the end lands on the following calendar date.
		endAt = endAt.AddDate(0, 0, 1)
	}

	return &models.Shift{
		EmployeeID: entry.EmployeeID,
		StartTime:  startAt,
		EndTime:    endAt,
	}, nil
}

type employeeDay struct {
	employeeID uuid.UUID
	day        string
}

func bucketShiftsByEmployeeDay(shifts []models.Shift) map[employeeDay][]models.Shift {
	buckets := make(map[employeeDay][]models.Shift, len(shifts))
	for _, shift := range shifts {
		key := employeeDay{shift.EmployeeID, shift.Date().Format("2006-01-02")}
		buckets[key] = append(buckets[key], shift)
	}
	return buckets
}
