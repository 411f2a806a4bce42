package repository

import (
	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeeklyTemplateRepository handles database operations for weekly template entries
type WeeklyTemplateRepository struct {
	db *gorm.DB
}

// NewWeeklyTemplateRepository creates a new weekly template repository
func NewWeeklyTemplateRepository(db *gorm.DB) *WeeklyTemplateRepository {
	return &WeeklyTemplateRepository{db: db}
}

// GetTemplatesForEmployees retrieves template entries for the given
// employees, keyed by employee ID
func (r *WeeklyTemplateRepository) GetTemplatesForEmployees(employeeIDs []uuid.UUID) (map[uuid.UUID][]models.WeeklyTemplateEntry, error) {
	var entries []models.WeeklyTemplateEntry
	err := r.db.Where("employee_id IN ?", employeeIDs).Order("weekday ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[uuid.UUID][]models.WeeklyTemplateEntry, len(employeeIDs))
	for _, entry := range entries {
		byEmployee[entry.EmployeeID] = append(byEmployee[entry.EmployeeID], entry)
	}
	return byEmployee, nil
}

// GetForEmployee retrieves all template entries for one employee
func (r *WeeklyTemplateRepository) GetForEmployee(employeeID uuid.UUID) ([]models.WeeklyTemplateEntry, error) {
	var entries []models.WeeklyTemplateEntry
	err := r.db.Where("employee_id = ?", employeeID).Order("weekday ASC").Find(&entries).Error
	return entries, err
}

// Upsert creates or replaces the entry for (employee, weekday)
func (r *WeeklyTemplateRepository) Upsert(entry *models.WeeklyTemplateEntry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"day_off", "start_time", "end_time", "updated_at"}),
	}).Create(entry).Error
}

// Delete removes the entry for (employee, weekday)
func (r *WeeklyTemplateRepository) Delete(employeeID uuid.UUID, weekday int) error {
	return r.db.Delete(&models.WeeklyTemplateEntry{}, "employee_id = ? AND weekday = ?", employeeID, weekday).Error
}
