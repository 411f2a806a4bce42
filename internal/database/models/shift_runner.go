package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftRunner records which employee is covering a daypart (shift type)
// on a date. EmployeeID is the authoritative link; RunnerName is kept as
// a denormalized display cache and as the fallback match for rows written
// before the id column existed.
type ShiftRunner struct {
	BaseModel
	Date         time.Time  `json:"date" gorm:"type:date;not null;uniqueIndex:idx_runner_date_type" validate:"required"`
	ShiftTypeKey string     `json:"shift_type_key" gorm:"size:50;not null;uniqueIndex:idx_runner_date_type" validate:"required"`
	RunnerName   string     `json:"runner_name" gorm:"size:100;not null" validate:"required"`
	EmployeeID   *uuid.UUID `json:"employee_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for ShiftRunner
func (ShiftRunner) TableName() string {
	return "shift_runners"
}

// Matches reports whether the runner record points at the given employee,
// preferring the id link and falling back to the display-name cache.
func (r *ShiftRunner) Matches(employee *Employee) bool {
	if employee == nil {
		return false
	}
	if r.EmployeeID != nil {
		return *r.EmployeeID == employee.ID
	}
	return r.RunnerName == employee.DisplayName
}
