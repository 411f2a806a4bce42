package models

import "github.com/google/uuid"

// AvailabilityPattern is a recurring per-weekday availability rule. When
// Available is true and a time range is set, the employee is available
// only inside that range on that weekday; with no range they are
// available all day. Weekday 0 is Sunday.
type AvailabilityPattern struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_pattern_employee_weekday" validate:"required"`
	Weekday    int       `json:"weekday" gorm:"not null;uniqueIndex:idx_pattern_employee_weekday" validate:"min=0,max=6"`
	Available  bool      `json:"available" gorm:"default:true"`
	StartTime  string    `json:"start_time,omitempty" gorm:"size:5"` // "HH:mm"
	EndTime    string    `json:"end_time,omitempty" gorm:"size:5"`   // "HH:mm"

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AvailabilityPattern
func (AvailabilityPattern) TableName() string {
	return "availability_patterns"
}
