package repository

import (
	"time"

	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Update persists all fields of the shift onto its existing row
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift by ID
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

// GetByDateRange retrieves shifts starting inside [start, end), optionally
// restricted to one employee
func (r *ShiftRepository) GetByDateRange(employeeID *uuid.UUID, start, end time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	query := r.db.Where("start_time >= ? AND start_time < ?", start, end)
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}
	err := query.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// GetForEmployeeOnDate retrieves an employee's shifts starting on the given calendar date
func (r *ShiftRepository) GetForEmployeeOnDate(employeeID uuid.UUID, date time.Time) ([]models.Shift, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var shifts []models.Shift
	err := r.db.Where("employee_id = ? AND start_time >= ? AND start_time < ?", employeeID, dayStart, dayEnd).
		Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// GetConflicts retrieves the employee's shifts whose intervals overlap
// [start, end) under open-interval comparison; touching endpoints do not
// overlap. excludeID, when set, omits the shift being edited.
func (r *ShiftRepository) GetConflicts(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	query := r.db.Where("employee_id = ? AND start_time < ? AND ? < end_time", employeeID, end, start)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}
