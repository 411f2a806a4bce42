package handlers

import (
	"net/http"

	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimeOffHandler handles time-off and vacation endpoints
type TimeOffHandler struct {
	timeOff *service.TimeOffService
}

// NewTimeOffHandler creates a new time-off handler
func NewTimeOffHandler(timeOff *service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOff: timeOff}
}

// Create godoc
// @Summary Create a time-off entry
// @Description Creates a single day of PTO, vacation or a requested availability window.
// @Tags time-off
// @Accept json
// @Produce json
// @Param entry body service.CreateTimeOffRequest true "Time-off entry"
// @Success 201 {object} models.TimeOffEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /time-off [post]
func (h *TimeOffHandler) Create(c *gin.Context) {
	var req service.CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	entry, err := h.timeOff.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// CreateVacation godoc
// @Summary Create a multi-day vacation
// @Description Creates one all-day vacation entry per day in the range, linked by a shared group ID.
// @Tags time-off
// @Accept json
// @Produce json
// @Param vacation body service.CreateVacationRequest true "Vacation range"
// @Success 201 {array} models.TimeOffEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /time-off/vacations [post]
func (h *TimeOffHandler) CreateVacation(c *gin.Context) {
	var req service.CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	entries, err := h.timeOff.CreateVacation(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entries)
}

// List godoc
// @Summary List time-off entries in a date range
// @Tags time-off
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Filter by employee"
// @Success 200 {array} models.TimeOffEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /time-off [get]
func (h *TimeOffHandler) List(c *gin.Context) {
	start, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}
	var employeeID *uuid.UUID
	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
			return
		}
		employeeID = &id
	}
	entries, err := h.timeOff.GetInRange(employeeID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get godoc
// @Summary Get a time-off entry by ID
// @Tags time-off
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} models.TimeOffEntry
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /time-off/{id} [get]
func (h *TimeOffHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	entry, err := h.timeOff.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a time-off entry
// @Tags time-off
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /time-off/{id} [delete]
func (h *TimeOffHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.timeOff.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteVacationGroup godoc
// @Summary Delete every entry of a vacation group
// @Tags time-off
// @Param id path string true "Vacation group ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /time-off/vacations/{id} [delete]
func (h *TimeOffHandler) DeleteVacationGroup(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.timeOff.DeleteVacationGroup(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
