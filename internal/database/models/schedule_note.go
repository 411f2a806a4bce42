package models

import "time"

// ScheduleNote is a free-text annotation attached to a calendar date.
type ScheduleNote struct {
	BaseModel
	Date time.Time `json:"date" gorm:"type:date;not null;uniqueIndex" validate:"required"`
	Text string    `json:"text" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for ScheduleNote
func (ScheduleNote) TableName() string {
	return "schedule_notes"
}
