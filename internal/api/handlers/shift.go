package handlers

import (
	"net/http"
	"time"

	"schedulehq-backend/internal/database/models"
	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles shift mutation and calendar endpoints
type ShiftHandler struct {
	schedule *service.ScheduleService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(schedule *service.ScheduleService) *ShiftHandler {
	return &ShiftHandler{schedule: schedule}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Label      string    `json:"label"`
	Notes      string    `json:"notes"`
	Force      bool      `json:"force"`
}

// UpdateShiftRequest represents the request to edit a shift in place
type UpdateShiftRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"`
	Label     string    `json:"label"`
	Notes     string    `json:"notes"`
	Force     bool      `json:"force"`
}

// MoveShiftRequest represents the request to move a shift to another
// employee and/or interval
type MoveShiftRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Force      bool      `json:"force"`
}

// mutationStatus picks the response code for a mutation result: withheld
// mutations answer 409 so the client can confirm and retry with force.
func mutationStatus(result *service.ShiftMutationResult, created bool) int {
	if !result.Applied && !result.Deleted {
		return http.StatusConflict
	}
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// Create godoc
// @Summary Create a shift
// @Description Inserts a shift. Conflict and availability warnings withhold the insert unless force is set.
// @Tags shifts
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Editing session for undo scoping"
// @Param shift body CreateShiftRequest true "Shift"
// @Success 201 {object} service.ShiftMutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} service.ShiftMutationResult
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	shift := &models.Shift{
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Label:      req.Label,
		Notes:      req.Notes,
	}
	result, err := h.schedule.CreateShift(sessionID(c), shift, req.Force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(mutationStatus(result, true), result)
}

// Update godoc
// @Summary Edit a shift
// @Description Edits a shift in place. A zero-length interval deletes the shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Editing session for undo scoping"
// @Param id path string true "Shift ID"
// @Param shift body UpdateShiftRequest true "New interval and label"
// @Success 200 {object} service.ShiftMutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} service.ShiftMutationResult
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	edited := &models.Shift{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Label:     req.Label,
		Notes:     req.Notes,
	}
	result, err := h.schedule.UpdateShift(sessionID(c), id, edited, req.Force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(mutationStatus(result, false), result)
}

// Move godoc
// @Summary Move a shift
// @Description Moves a shift to another employee and/or interval. Linked runners are left untouched.
// @Tags shifts
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Editing session for undo scoping"
// @Param id path string true "Shift ID"
// @Param move body MoveShiftRequest true "Target employee and interval"
// @Success 200 {object} service.ShiftMutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} service.ShiftMutationResult
// @Security BearerAuth
// @Router /shifts/{id}/move [post]
func (h *ShiftHandler) Move(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req MoveShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	result, err := h.schedule.MoveShift(sessionID(c), id, req.EmployeeID, req.StartTime, req.EndTime, req.Force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(mutationStatus(result, false), result)
}

// Delete godoc
// @Summary Delete a shift
// @Description Deletes a shift and cascades to any runner assignment derived from it.
// @Tags shifts
// @Produce json
// @Param X-Session-ID header string false "Editing session for undo scoping"
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftMutationResult
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result, err := h.schedule.DeleteShift(sessionID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Conflicts godoc
// @Summary Probe for conflicting shifts
// @Tags shifts
// @Produce json
// @Param employee_id query string true "Employee ID"
// @Param start query string true "Interval start (RFC3339)"
// @Param end query string true "Interval end (RFC3339)"
// @Param exclude query string false "Shift ID to exclude"
// @Success 200 {array} models.Shift
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/conflicts [get]
func (h *ShiftHandler) Conflicts(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start, want RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end, want RFC3339"})
		return
	}
	var excludeID *uuid.UUID
	if raw := c.Query("exclude"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exclude id"})
			return
		}
		excludeID = &id
	}
	conflicts, err := h.schedule.GetConflicts(employeeID, start, end, excludeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conflicts)
}

// Calendar godoc
// @Summary Calendar view for a date range
// @Description Returns shifts, time-off placeholders, runners and notes for the range.
// @Tags calendar
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.CalendarView
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar [get]
func (h *ShiftHandler) Calendar(c *gin.Context) {
	start, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}
	view, err := h.schedule.Calendar(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
