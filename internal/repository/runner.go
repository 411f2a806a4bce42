package repository

import (
	"errors"
	"time"

	"schedulehq-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RunnerRepository handles database operations for shift runners
type RunnerRepository struct {
	db *gorm.DB
}

// NewRunnerRepository creates a new runner repository
func NewRunnerRepository(db *gorm.DB) *RunnerRepository {
	return &RunnerRepository{db: db}
}

// Create inserts a runner record as-is, preserving its ID. Used when an
// undo re-inserts a runner captured by a cascading delete.
func (r *RunnerRepository) Create(runner *models.ShiftRunner) error {
	return r.db.Create(runner).Error
}

// Upsert creates or replaces the runner record for (date, shift type)
func (r *RunnerRepository) Upsert(runner *models.ShiftRunner) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "shift_type_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"runner_name", "employee_id", "updated_at"}),
	}).Create(runner).Error
}

// Delete removes the runner record for (date, shift type)
func (r *RunnerRepository) Delete(date time.Time, shiftTypeKey string) error {
	return r.db.Delete(&models.ShiftRunner{}, "date = ? AND shift_type_key = ?", dateOnly(date), shiftTypeKey).Error
}

// GetForDateAndShift retrieves the runner for (date, shift type), or nil
// when no runner is recorded
func (r *RunnerRepository) GetForDateAndShift(date time.Time, shiftTypeKey string) (*models.ShiftRunner, error) {
	var runner models.ShiftRunner
	err := r.db.Where("date = ? AND shift_type_key = ?", dateOnly(date), shiftTypeKey).First(&runner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &runner, nil
}

// GetForDateRange retrieves runners dated inside [start, end]
func (r *RunnerRepository) GetForDateRange(start, end time.Time) ([]models.ShiftRunner, error) {
	var runners []models.ShiftRunner
	err := r.db.Where("date >= ? AND date <= ?", dateOnly(start), dateOnly(end)).
		Order("date ASC, shift_type_key ASC").Find(&runners).Error
	return runners, err
}
