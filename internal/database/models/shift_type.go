package models

// ShiftType is a configured daypart bucket (e.g. breakfast/lunch/dinner).
// WindowStart/WindowEnd define the classification window used to map a
// raw time-of-day to this bucket; DefaultStart/DefaultEnd are the times a
// synthesized shift gets when a runner is assigned without a backing
// shift. Windows of different buckets must not overlap; together they
// need not cover the whole day.
type ShiftType struct {
	BaseModel
	Key          string `json:"key" gorm:"size:50;not null;uniqueIndex" validate:"required,min=1,max=50"`
	Label        string `json:"label" gorm:"size:100;not null" validate:"required"`
	DefaultStart string `json:"default_start" gorm:"size:5;not null" validate:"required"` // "HH:mm"
	DefaultEnd   string `json:"default_end" gorm:"size:5;not null" validate:"required"`   // "HH:mm"
	WindowStart  string `json:"window_start" gorm:"size:5;not null" validate:"required"`  // "HH:mm"
	WindowEnd    string `json:"window_end" gorm:"size:5;not null" validate:"required"`    // "HH:mm"
	Position     int    `json:"position" gorm:"default:0"`
}

// TableName returns the table name for ShiftType
func (ShiftType) TableName() string {
	return "shift_types"
}
