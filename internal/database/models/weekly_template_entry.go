package models

import "github.com/google/uuid"

// WeeklyTemplateEntry is a per-employee, per-weekday recurring rule used
// to bulk-generate shifts. An entry is one of: blank (no StartTime/EndTime
// and not a day off), a day off, or a timed shift. Weekday 0 is Sunday.
type WeeklyTemplateEntry struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_template_employee_weekday" validate:"required"`
	Weekday    int       `json:"weekday" gorm:"not null;uniqueIndex:idx_template_employee_weekday" validate:"min=0,max=6"`
	DayOff     bool      `json:"day_off" gorm:"default:false"`
	StartTime  string    `json:"start_time" gorm:"size:5"` // "HH:mm"
	EndTime    string    `json:"end_time" gorm:"size:5"`   // "HH:mm"

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WeeklyTemplateEntry
func (WeeklyTemplateEntry) TableName() string {
	return "weekly_template_entries"
}

// IsBlank reports whether the entry carries no rule. An entry authored
// with off unset and no times is treated as blank rather than producing a
// zero-length shift.
func (e *WeeklyTemplateEntry) IsBlank() bool {
	return !e.DayOff && e.StartTime == "" && e.EndTime == ""
}
