package handlers

import (
	"net/http"
	"strconv"

	"schedulehq-backend/internal/database/models"
	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles availability resolution and pattern endpoints
type AvailabilityHandler struct {
	availability *service.AvailabilityService
	schedule     *service.ScheduleService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availability *service.AvailabilityService, schedule *service.ScheduleService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, schedule: schedule}
}

// PatternRequest represents the request to set a recurring weekly
// availability pattern
type PatternRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	Weekday    int       `json:"weekday" binding:"min=0,max=6"`
	Available  bool      `json:"available"`
	StartTime  string    `json:"start_time,omitempty"`
	EndTime    string    `json:"end_time,omitempty"`
}

// Check godoc
// @Summary Resolve an employee's availability for a date
// @Description Time-off entries take precedence over recurring patterns; a requested window inverts to availability.
// @Tags availability
// @Produce json
// @Param employee_id query string true "Employee ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.AvailabilityResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
		return
	}
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	result, err := h.schedule.CheckAvailability(employeeID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpsertPattern godoc
// @Summary Set the recurring pattern for an (employee, weekday)
// @Tags availability
// @Accept json
// @Produce json
// @Param pattern body PatternRequest true "Pattern"
// @Success 200 {object} models.AvailabilityPattern
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /availability/patterns [put]
func (h *AvailabilityHandler) UpsertPattern(c *gin.Context) {
	var req PatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	pattern := &models.AvailabilityPattern{
		EmployeeID: req.EmployeeID,
		Weekday:    req.Weekday,
		Available:  req.Available,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := h.availability.UpsertPattern(pattern); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pattern)
}

// ListPatterns godoc
// @Summary List an employee's recurring patterns
// @Tags availability
// @Produce json
// @Param employee_id query string true "Employee ID"
// @Success 200 {array} models.AvailabilityPattern
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /availability/patterns [get]
func (h *AvailabilityHandler) ListPatterns(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
		return
	}
	patterns, err := h.availability.GetPatterns(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// DeletePattern godoc
// @Summary Delete the pattern for an (employee, weekday)
// @Tags availability
// @Param employee_id query string true "Employee ID"
// @Param weekday query int true "Weekday (0 = Sunday)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /availability/patterns [delete]
func (h *AvailabilityHandler) DeletePattern(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
		return
	}
	weekday, err := strconv.Atoi(c.Query("weekday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid weekday"})
		return
	}
	if err := h.availability.DeletePattern(employeeID, weekday); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
