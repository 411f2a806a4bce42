package repository

import (
	"errors"
	"time"

	"schedulehq-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleNoteRepository handles database operations for schedule notes
type ScheduleNoteRepository struct {
	db *gorm.DB
}

// NewScheduleNoteRepository creates a new schedule note repository
func NewScheduleNoteRepository(db *gorm.DB) *ScheduleNoteRepository {
	return &ScheduleNoteRepository{db: db}
}

// GetByDate retrieves the note for a date, or nil when none exists
func (r *ScheduleNoteRepository) GetByDate(date time.Time) (*models.ScheduleNote, error) {
	var note models.ScheduleNote
	err := r.db.Where("date = ?", dateOnly(date)).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetInRange retrieves notes dated inside [start, end]
func (r *ScheduleNoteRepository) GetInRange(start, end time.Time) ([]models.ScheduleNote, error) {
	var notes []models.ScheduleNote
	err := r.db.Where("date >= ? AND date <= ?", dateOnly(start), dateOnly(end)).Order("date ASC").Find(&notes).Error
	return notes, err
}

// Upsert creates or replaces the note for its date
func (r *ScheduleNoteRepository) Upsert(note *models.ScheduleNote) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(note).Error
}

// Delete removes the note for a date
func (r *ScheduleNoteRepository) Delete(date time.Time) error {
	return r.db.Delete(&models.ScheduleNote{}, "date = ?", dateOnly(date)).Error
}
