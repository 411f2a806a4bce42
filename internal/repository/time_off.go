package repository

import (
	"errors"
	"time"

	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOffRepository handles database operations for time-off entries
type TimeOffRepository struct {
	db *gorm.DB
}

// NewTimeOffRepository creates a new time-off repository
func NewTimeOffRepository(db *gorm.DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

// Create creates a new time-off entry
func (r *TimeOffRepository) Create(entry *models.TimeOffEntry) error {
	return r.db.Create(entry).Error
}

// CreateGroup inserts a set of entries atomically. Either every entry is
// persisted or none is.
func (r *TimeOffRepository) CreateGroup(entries []models.TimeOffEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a time-off entry by ID
func (r *TimeOffRepository) GetByID(id uuid.UUID) (*models.TimeOffEntry, error) {
	var entry models.TimeOffEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update updates a time-off entry
func (r *TimeOffRepository) Update(entry *models.TimeOffEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a time-off entry by ID
func (r *TimeOffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TimeOffEntry{}, "id = ?", id).Error
}

// GetAll retrieves all time-off entries
func (r *TimeOffRepository) GetAll() ([]models.TimeOffEntry, error) {
	var entries []models.TimeOffEntry
	err := r.db.Order("date ASC").Find(&entries).Error
	return entries, err
}

// GetInRange retrieves time-off entries dated inside [start, end],
// optionally restricted to one employee
func (r *TimeOffRepository) GetInRange(employeeID *uuid.UUID, start, end time.Time) ([]models.TimeOffEntry, error) {
	var entries []models.TimeOffEntry
	query := r.db.Where("date >= ? AND date <= ?", dateOnly(start), dateOnly(end))
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}
	err := query.Order("date ASC").Find(&entries).Error
	return entries, err
}

// GetForEmployeeOnDate retrieves the employee's time-off entry for the
// given date, or nil when none exists
func (r *TimeOffRepository) GetForEmployeeOnDate(employeeID uuid.UUID, date time.Time) (*models.TimeOffEntry, error) {
	var entry models.TimeOffEntry
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, dateOnly(date)).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByVacationGroup retrieves all entries of a multi-day vacation
func (r *TimeOffRepository) GetByVacationGroup(groupID uuid.UUID) ([]models.TimeOffEntry, error) {
	var entries []models.TimeOffEntry
	err := r.db.Where("vacation_group_id = ?", groupID).Order("date ASC").Find(&entries).Error
	return entries, err
}

// dateOnly truncates an instant to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
