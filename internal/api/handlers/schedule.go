package handlers

import (
	"net/http"
	"time"

	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles undo/redo and schedule note endpoints
type ScheduleHandler struct {
	schedule *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(schedule *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// NoteRequest represents the request to set a day note
type NoteRequest struct {
	Date time.Time `json:"date" binding:"required"`
	Text string    `json:"text" binding:"required"`
}

// Undo godoc
// @Summary Undo the session's most recent action
// @Tags schedule
// @Produce json
// @Param X-Session-ID header string false "Editing session"
// @Success 200 {object} service.UndoState
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedule/undo [post]
func (h *ScheduleHandler) Undo(c *gin.Context) {
	state, err := h.schedule.Undo(sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Redo godoc
// @Summary Redo the session's most recently undone action
// @Tags schedule
// @Produce json
// @Param X-Session-ID header string false "Editing session"
// @Success 200 {object} service.UndoState
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedule/redo [post]
func (h *ScheduleHandler) Redo(c *gin.Context) {
	state, err := h.schedule.Redo(sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpsertNote godoc
// @Summary Set the note for a day
// @Tags schedule
// @Accept json
// @Produce json
// @Param note body NoteRequest true "Note"
// @Success 200 {object} models.ScheduleNote
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedule/notes [put]
func (h *ScheduleHandler) UpsertNote(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	note, err := h.schedule.UpsertNote(req.Date, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// GetNote godoc
// @Summary Get the note for a day
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.ScheduleNote
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedule/notes [get]
func (h *ScheduleHandler) GetNote(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	note, err := h.schedule.GetNote(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Delete the note for a day
// @Tags schedule
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedule/notes [delete]
func (h *ScheduleHandler) DeleteNote(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	if err := h.schedule.DeleteNote(date); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
