package repository

import (
	"schedulehq-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByDisplayName retrieves an employee by display name
func (r *EmployeeRepository) GetByDisplayName(name string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("display_name = ?", name).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees, optionally only active ones
func (r *EmployeeRepository) GetAll(activeOnly bool) ([]models.Employee, error) {
	var employees []models.Employee
	query := r.db.Order("display_name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&employees).Error
	return employees, err
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee by ID
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
