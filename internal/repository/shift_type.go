package repository

import (
	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftTypeRepository handles database operations for shift types
type ShiftTypeRepository struct {
	db *gorm.DB
}

// NewShiftTypeRepository creates a new shift type repository
func NewShiftTypeRepository(db *gorm.DB) *ShiftTypeRepository {
	return &ShiftTypeRepository{db: db}
}

// GetAll retrieves all shift types in display order
func (r *ShiftTypeRepository) GetAll() ([]models.ShiftType, error) {
	var types []models.ShiftType
	err := r.db.Order("position ASC, key ASC").Find(&types).Error
	return types, err
}

// GetByKey retrieves a shift type by its bucket key
func (r *ShiftTypeRepository) GetByKey(key string) (*models.ShiftType, error) {
	var shiftType models.ShiftType
	err := r.db.Where("key = ?", key).First(&shiftType).Error
	if err != nil {
		return nil, err
	}
	return &shiftType, nil
}

// Create creates a new shift type
func (r *ShiftTypeRepository) Create(shiftType *models.ShiftType) error {
	return r.db.Create(shiftType).Error
}

// Update updates a shift type
func (r *ShiftTypeRepository) Update(shiftType *models.ShiftType) error {
	return r.db.Save(shiftType).Error
}

// Delete deletes a shift type by ID
func (r *ShiftTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftType{}, "id = ?", id).Error
}
