package service

import (
	"errors"
	"fmt"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for the employee roster
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Position    string `json:"position" validate:"max=100"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Position    *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Active      *bool   `json:"active,omitempty"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByDisplayName(req.DisplayName); err == nil && existing != nil {
		return nil, apperrors.ErrEmployeeExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check display name: %w", err)
	}

	employee := &models.Employee{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Position:    req.Position,
		Active:      true,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// GetAll retrieves the roster, optionally only active employees
func (s *EmployeeService) GetAll(activeOnly bool) ([]models.Employee, error) {
	employees, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Update updates an employee. Renames propagate to the display-name cache
// on runner records only through the id link; rows without an id keep the
// stale name, which readers tolerate.
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		employee.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
