package testutils

import (
	"time"

	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for test suites
type FactorySet struct {
	Employee  *EmployeeFactory
	Shift     *ShiftFactory
	TimeOff   *TimeOffFactory
	Runner    *RunnerFactory
	ShiftType *ShiftTypeFactory
	Template  *TemplateFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:  NewEmployeeFactory(),
		Shift:     NewShiftFactory(),
		TimeOff:   NewTimeOffFactory(),
		Runner:    NewRunnerFactory(),
		ShiftType: NewShiftTypeFactory(),
		Template:  NewTemplateFactory(),
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DisplayName: "Test Employee",
		Email:       "employee@example.com",
		Position:    "Server",
		Active:      true,
	}
}

// WithName sets a custom display name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.DisplayName = name
	return employee
}

// Inactive creates an inactive employee
func (f *EmployeeFactory) Inactive() *models.Employee {
	employee := f.Create()
	employee.Active = false
	return employee
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values: 09:00-17:00 on 2024-03-05
func (f *ShiftFactory) Create(employeeID uuid.UUID) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}
}

// WithTimes sets a custom interval on the shift
func (f *ShiftFactory) WithTimes(employeeID uuid.UUID, start, end time.Time) *models.Shift {
	shift := f.Create(employeeID)
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// WithLabel sets a custom label on the shift
func (f *ShiftFactory) WithLabel(employeeID uuid.UUID, label string) *models.Shift {
	shift := f.Create(employeeID)
	shift.Label = label
	return shift
}

// TimeOffFactory provides methods to create test TimeOffEntry data
type TimeOffFactory struct{}

// NewTimeOffFactory creates a new TimeOffFactory
func NewTimeOffFactory() *TimeOffFactory {
	return &TimeOffFactory{}
}

// Create creates an all-day PTO entry on 2024-03-05
func (f *TimeOffFactory) Create(employeeID uuid.UUID) *models.TimeOffEntry {
	return &models.TimeOffEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:       models.TimeOffPTO,
		AllDay:     true,
	}
}

// Requested creates a partial-day requested entry: the employee is only
// available inside the given window.
func (f *TimeOffFactory) Requested(employeeID uuid.UUID, startTime, endTime string) *models.TimeOffEntry {
	entry := f.Create(employeeID)
	entry.Type = models.TimeOffRequested
	entry.AllDay = false
	entry.StartTime = startTime
	entry.EndTime = endTime
	return entry
}

// Vacation creates a vacation entry tied to a group
func (f *TimeOffFactory) Vacation(employeeID uuid.UUID, date time.Time, groupID uuid.UUID) *models.TimeOffEntry {
	entry := f.Create(employeeID)
	entry.Type = models.TimeOffVacation
	entry.Date = date
	entry.VacationGroupID = &groupID
	return entry
}

// RunnerFactory provides methods to create test ShiftRunner data
type RunnerFactory struct{}

// NewRunnerFactory creates a new RunnerFactory
func NewRunnerFactory() *RunnerFactory {
	return &RunnerFactory{}
}

// Create creates a runner assignment for 2024-03-05 lunch
func (f *RunnerFactory) Create(employeeID uuid.UUID, name string) *models.ShiftRunner {
	return &models.ShiftRunner{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ShiftTypeKey: "lunch",
		RunnerName:   name,
		EmployeeID:   &employeeID,
	}
}

// ShiftTypeFactory provides methods to create test ShiftType data
type ShiftTypeFactory struct{}

// NewShiftTypeFactory creates a new ShiftTypeFactory
func NewShiftTypeFactory() *ShiftTypeFactory {
	return &ShiftTypeFactory{}
}

// Breakfast creates the breakfast shift type
func (f *ShiftTypeFactory) Breakfast() *models.ShiftType {
	return &models.ShiftType{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Key:          "breakfast",
		Label:        "Breakfast",
		DefaultStart: "06:00",
		DefaultEnd:   "11:00",
		WindowStart:  "04:00",
		WindowEnd:    "11:00",
		Position:     0,
	}
}

// Lunch creates the lunch shift type
func (f *ShiftTypeFactory) Lunch() *models.ShiftType {
	return &models.ShiftType{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Key:          "lunch",
		Label:        "Lunch",
		DefaultStart: "11:00",
		DefaultEnd:   "16:00",
		WindowStart:  "11:00",
		WindowEnd:    "16:00",
		Position:     1,
	}
}

// Dinner creates the dinner shift type
func (f *ShiftTypeFactory) Dinner() *models.ShiftType {
	return &models.ShiftType{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Key:          "dinner",
		Label:        "Dinner",
		DefaultStart: "16:00",
		DefaultEnd:   "23:00",
		WindowStart:  "16:00",
		WindowEnd:    "04:00",
		Position:     2,
	}
}

// All creates the standard three shift types
func (f *ShiftTypeFactory) All() []*models.ShiftType {
	return []*models.ShiftType{f.Breakfast(), f.Lunch(), f.Dinner()}
}

// TemplateFactory provides methods to create test WeeklyTemplateEntry data
type TemplateFactory struct{}

// NewTemplateFactory creates a new TemplateFactory
func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// Create creates a working entry for the given weekday
func (f *TemplateFactory) Create(employeeID uuid.UUID, weekday int, start, end string) *models.WeeklyTemplateEntry {
	return &models.WeeklyTemplateEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		Weekday:    weekday,
		StartTime:  start,
		EndTime:    end,
	}
}

// DayOff creates a day-off entry for the given weekday
func (f *TemplateFactory) DayOff(employeeID uuid.UUID, weekday int) *models.WeeklyTemplateEntry {
	entry := f.Create(employeeID, weekday, "", "")
	entry.DayOff = true
	return entry
}
