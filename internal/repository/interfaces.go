package repository

import (
	"time"

	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
	GetByDateRange(employeeID *uuid.UUID, start, end time.Time) ([]models.Shift, error)
	GetForEmployeeOnDate(employeeID uuid.UUID, date time.Time) ([]models.Shift, error)
	GetConflicts(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Shift, error)
}

// TimeOffRepositoryInterface defines the interface for time-off repository operations
type TimeOffRepositoryInterface interface {
	Create(entry *models.TimeOffEntry) error
	CreateGroup(entries []models.TimeOffEntry) error
	GetByID(id uuid.UUID) (*models.TimeOffEntry, error)
	Update(entry *models.TimeOffEntry) error
	Delete(id uuid.UUID) error
	GetAll() ([]models.TimeOffEntry, error)
	GetInRange(employeeID *uuid.UUID, start, end time.Time) ([]models.TimeOffEntry, error)
	GetForEmployeeOnDate(employeeID uuid.UUID, date time.Time) (*models.TimeOffEntry, error)
	GetByVacationGroup(groupID uuid.UUID) ([]models.TimeOffEntry, error)
}

// RunnerRepositoryInterface defines the interface for shift-runner repository operations
type RunnerRepositoryInterface interface {
	Create(runner *models.ShiftRunner) error
	Upsert(runner *models.ShiftRunner) error
	Delete(date time.Time, shiftTypeKey string) error
	GetForDateAndShift(date time.Time, shiftTypeKey string) (*models.ShiftRunner, error)
	GetForDateRange(start, end time.Time) ([]models.ShiftRunner, error)
}

// WeeklyTemplateRepositoryInterface defines the interface for weekly-template repository operations
type WeeklyTemplateRepositoryInterface interface {
	GetTemplatesForEmployees(employeeIDs []uuid.UUID) (map[uuid.UUID][]models.WeeklyTemplateEntry, error)
	GetForEmployee(employeeID uuid.UUID) ([]models.WeeklyTemplateEntry, error)
	Upsert(entry *models.WeeklyTemplateEntry) error
	Delete(employeeID uuid.UUID, weekday int) error
}

// ShiftTypeRepositoryInterface defines the interface for shift-type repository operations
type ShiftTypeRepositoryInterface interface {
	GetAll() ([]models.ShiftType, error)
	GetByKey(key string) (*models.ShiftType, error)
	Create(shiftType *models.ShiftType) error
	Update(shiftType *models.ShiftType) error
	Delete(id uuid.UUID) error
}

// AvailabilityPatternRepositoryInterface defines the interface for availability-pattern repository operations
type AvailabilityPatternRepositoryInterface interface {
	GetForEmployeeWeekday(employeeID uuid.UUID, weekday int) (*models.AvailabilityPattern, error)
	GetForEmployee(employeeID uuid.UUID) ([]models.AvailabilityPattern, error)
	Upsert(pattern *models.AvailabilityPattern) error
	Delete(employeeID uuid.UUID, weekday int) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByDisplayName(name string) (*models.Employee, error)
	GetAll(activeOnly bool) ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// ScheduleNoteRepositoryInterface defines the interface for schedule-note repository operations
type ScheduleNoteRepositoryInterface interface {
	GetByDate(date time.Time) (*models.ScheduleNote, error)
	GetInRange(start, end time.Time) ([]models.ScheduleNote, error)
	Upsert(note *models.ScheduleNote) error
	Delete(date time.Time) error
}
