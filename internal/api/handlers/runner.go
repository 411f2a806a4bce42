package handlers

import (
	"net/http"
	"time"

	"schedulehq-backend/internal/repository"
	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunnerHandler handles runner assignment endpoints
type RunnerHandler struct {
	schedule *service.ScheduleService
	runners  repository.RunnerRepositoryInterface
}

// NewRunnerHandler creates a new runner handler
func NewRunnerHandler(schedule *service.ScheduleService, runners repository.RunnerRepositoryInterface) *RunnerHandler {
	return &RunnerHandler{schedule: schedule, runners: runners}
}

// AssignRunnerRequest represents the request to assign a runner slot
type AssignRunnerRequest struct {
	Date         time.Time `json:"date" binding:"required"`
	ShiftTypeKey string    `json:"shift_type_key" binding:"required"`
	EmployeeID   uuid.UUID `json:"employee_id" binding:"required"`
}

// Assign godoc
// @Summary Assign the runner for a (date, shift type) slot
// @Description Upserts the runner assignment, synthesizing a backing shift from the type defaults when the employee has none in the window.
// @Tags runners
// @Accept json
// @Produce json
// @Param assignment body AssignRunnerRequest true "Runner assignment"
// @Success 200 {object} models.ShiftRunner
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /runners [put]
func (h *RunnerHandler) Assign(c *gin.Context) {
	var req AssignRunnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	runner, err := h.schedule.AssignRunner(req.Date, req.ShiftTypeKey, req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runner)
}

// Clear godoc
// @Summary Clear the runner for a (date, shift type) slot
// @Description Removes the assignment only; the backing shift is untouched.
// @Tags runners
// @Param date query string true "Business day (YYYY-MM-DD)"
// @Param shift_type query string true "Shift type key"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /runners [delete]
func (h *RunnerHandler) Clear(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	key := c.Query("shift_type")
	if key == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing shift_type"})
		return
	}
	if err := h.schedule.ClearRunner(date, key); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary List runner assignments in a date range
// @Tags runners
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} models.ShiftRunner
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /runners [get]
func (h *RunnerHandler) List(c *gin.Context) {
	start, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}
	runners, err := h.runners.GetForDateRange(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runners)
}
