package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a committed work interval for one employee. EndTime is strictly
// after StartTime once persisted; a zero-length interval is never stored,
// it is a delete signal handled before any write.
type Shift struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartTime  time.Time `json:"start_time" gorm:"not null;index" validate:"required"`
	EndTime    time.Time `json:"end_time" gorm:"not null" validate:"required"`
	Label      string    `json:"label" gorm:"size:50"`
	Notes      string    `json:"notes" gorm:"type:text"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// Overlaps reports whether this shift's interval overlaps [start, end)
// under open-interval comparison. Intervals that merely touch at an
// endpoint do not overlap.
func (s *Shift) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}

// Date returns the calendar date of the shift's start, truncated to
// midnight in the start time's location.
func (s *Shift) Date() time.Time {
	return time.Date(s.StartTime.Year(), s.StartTime.Month(), s.StartTime.Day(), 0, 0, 0, 0, s.StartTime.Location())
}
