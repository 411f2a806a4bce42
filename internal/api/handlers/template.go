package handlers

import (
	"net/http"
	"strconv"
	"time"

	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles weekly template and expansion endpoints
type TemplateHandler struct {
	entries  *service.TemplateEntryService
	schedule *service.ScheduleService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(entries *service.TemplateEntryService, schedule *service.ScheduleService) *TemplateHandler {
	return &TemplateHandler{entries: entries, schedule: schedule}
}

// ExpandRequest represents the request to expand weekly templates over a
// date range
type ExpandRequest struct {
	EmployeeIDs      []uuid.UUID `json:"employee_ids" binding:"required,min=1"`
	StartDate        time.Time   `json:"start_date" binding:"required"`
	EndDate          time.Time   `json:"end_date" binding:"required"`
	SkipExisting     bool        `json:"skip_existing"`
	OverrideExisting bool        `json:"override_existing"`
	Apply            bool        `json:"apply"`
}

// UpsertEntry godoc
// @Summary Set the template entry for an (employee, weekday)
// @Tags templates
// @Accept json
// @Produce json
// @Param entry body service.TemplateEntryRequest true "Template entry"
// @Success 200 {object} models.WeeklyTemplateEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/entries [put]
func (h *TemplateHandler) UpsertEntry(c *gin.Context) {
	var req service.TemplateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	entry, err := h.entries.Upsert(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListEntries godoc
// @Summary List an employee's template entries
// @Tags templates
// @Produce json
// @Param employee_id query string true "Employee ID"
// @Success 200 {array} models.WeeklyTemplateEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/entries [get]
func (h *TemplateHandler) ListEntries(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
		return
	}
	entries, err := h.entries.GetForEmployee(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DeleteEntry godoc
// @Summary Delete the template entry for an (employee, weekday)
// @Tags templates
// @Param employee_id query string true "Employee ID"
// @Param weekday query int true "Weekday (0 = Sunday)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/entries [delete]
func (h *TemplateHandler) DeleteEntry(c *gin.Context) {
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
	if err := h.entries.Delete(employeeID, weekday); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Expand godoc
// @Summary Expand weekly templates over a date range
// @Description Plans the shifts the templates would create. With apply set, the plan is committed in one transaction (deletes first, then inserts); an applied expansion is not undoable.
// @Tags templates
// @Accept json
// @Produce json
// @Param expansion body ExpandRequest true "Expansion parameters"
// @Success 200 {object} service.ExpansionResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /templates/expand [post]
func (h *TemplateHandler) Expand(c *gin.Context) {
	var req ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !req.StartDate.Before(req.EndDate) && !req.StartDate.Equal(req.EndDate) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must not be after end_date"})
		return
	}
	result, err := h.schedule.ExpandTemplates(req.EmployeeIDs, req.StartDate, req.EndDate, req.SkipExisting, req.OverrideExisting)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Apply {
		if err := h.schedule.ApplyExpansion(result); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, result)
}
