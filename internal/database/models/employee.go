package models

// Employee represents a person on the schedule
type Employee struct {
	BaseModel
	DisplayName string `json:"display_name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Email       string `json:"email" gorm:"size:200" validate:"omitempty,email"`
	Position    string `json:"position" gorm:"size:100"`
	Active      bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
