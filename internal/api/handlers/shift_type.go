package handlers

import (
	"net/http"

	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftTypeHandler handles shift type configuration endpoints
type ShiftTypeHandler struct {
	shiftTypes *service.ShiftTypeService
}

// NewShiftTypeHandler creates a new shift type handler
func NewShiftTypeHandler(shiftTypes *service.ShiftTypeService) *ShiftTypeHandler {
	return &ShiftTypeHandler{shiftTypes: shiftTypes}
}

// List godoc
// @Summary List configured shift types
// @Tags shift-types
// @Produce json
// @Success 200 {array} models.ShiftType
// @Security BearerAuth
// @Router /shift-types [get]
func (h *ShiftTypeHandler) List(c *gin.Context) {
	types, err := h.shiftTypes.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// Create godoc
// @Summary Create a shift type
// @Description Rejects the type when its classification window overlaps an existing one.
// @Tags shift-types
// @Accept json
// @Produce json
// @Param shiftType body service.ShiftTypeRequest true "Shift type"
// @Success 201 {object} models.ShiftType
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-types [post]
func (h *ShiftTypeHandler) Create(c *gin.Context) {
	var req service.ShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	shiftType, err := h.shiftTypes.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shiftType)
}

// Update godoc
// @Summary Update a shift type
// @Tags shift-types
// @Accept json
// @Produce json
// @Param id path string true "Shift type ID"
// @Param shiftType body service.ShiftTypeRequest true "Shift type"
// @Success 200 {object} models.ShiftType
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-types/{id} [put]
func (h *ShiftTypeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.ShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	shiftType, err := h.shiftTypes.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shiftType)
}

// Delete godoc
// @Summary Delete a shift type
// @Tags shift-types
// @Param id path string true "Shift type ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-types/{id} [delete]
func (h *ShiftTypeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.shiftTypes.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
