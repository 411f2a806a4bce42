package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffEntry is a per-employee, per-date time-off record. It has a
// lifecycle independent from Shift and is never converted into a shift
// row; calendar surfaces project it into a read-only placeholder.
type TimeOffEntry struct {
	BaseModel
	EmployeeID uuid.UUID   `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date       time.Time   `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Type       TimeOffType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	AllDay     bool        `json:"all_day" gorm:"default:true"`
	StartTime  string      `json:"start_time,omitempty" gorm:"size:5"` // "HH:mm"
	EndTime    string      `json:"end_time,omitempty" gorm:"size:5"`   // "HH:mm"
	Hours      *float64    `json:"hours,omitempty"`
	// VacationGroupID ties the days of a multi-day vacation together.
	VacationGroupID *uuid.UUID `json:"vacation_group_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TimeOffEntry
func (TimeOffEntry) TableName() string {
	return "time_off_entries"
}

// IsAvailabilityWindow reports whether the entry's time range denotes when
// the employee is available rather than when they are off. This is the
// inverted partial-day "requested" semantics.
func (e *TimeOffEntry) IsAvailabilityWindow() bool {
	return !e.AllDay && e.Type.InvertsToAvailability()
}
