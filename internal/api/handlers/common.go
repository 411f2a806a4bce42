package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "schedulehq-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps a service error onto an HTTP status
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err),
		errors.Is(err, apperrors.ErrNothingToUndo),
		errors.Is(err, apperrors.ErrNothingToRedo):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidTimeOfDay),
		errors.Is(err, apperrors.ErrInvalidWeekday),
		errors.Is(err, apperrors.ErrInvalidTimeOffType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// parseDateQuery parses a required "2006-01-02" query parameter
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid or missing " + name + " date, want YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// sessionID scopes undoable mutations to one editing session
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return "default"
}
