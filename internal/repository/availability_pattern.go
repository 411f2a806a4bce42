package repository

import (
	"errors"

	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityPatternRepository handles database operations for recurring availability patterns
type AvailabilityPatternRepository struct {
	db *gorm.DB
}

// NewAvailabilityPatternRepository creates a new availability pattern repository
func NewAvailabilityPatternRepository(db *gorm.DB) *AvailabilityPatternRepository {
	return &AvailabilityPatternRepository{db: db}
}

// GetForEmployeeWeekday retrieves the pattern for (employee, weekday), or
// nil when the employee has no rule for that weekday
func (r *AvailabilityPatternRepository) GetForEmployeeWeekday(employeeID uuid.UUID, weekday int) (*models.AvailabilityPattern, error) {
	var pattern models.AvailabilityPattern
	err := r.db.Where("employee_id = ? AND weekday = ?", employeeID, weekday).First(&pattern).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetForEmployee retrieves all patterns for one employee
func (r *AvailabilityPatternRepository) GetForEmployee(employeeID uuid.UUID) ([]models.AvailabilityPattern, error) {
	var patterns []models.AvailabilityPattern
	err := r.db.Where("employee_id = ?", employeeID).Order("weekday ASC").Find(&patterns).Error
	return patterns, err
}

// Upsert creates or replaces the pattern for (employee, weekday)
func (r *AvailabilityPatternRepository) Upsert(pattern *models.AvailabilityPattern) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"available", "start_time", "end_time", "updated_at"}),
	}).Create(pattern).Error
}

// Delete removes the pattern for (employee, weekday)
func (r *AvailabilityPatternRepository) Delete(employeeID uuid.UUID, weekday int) error {
	return r.db.Delete(&models.AvailabilityPattern{}, "employee_id = ? AND weekday = ?", employeeID, weekday).Error
}
