package class

import (
	"errors"
	"net/http"
	"strconv"

	"fitclass/internal/api"
	"fitclass/internal/db"
	"fitclass/internal/logger"
	"fitclass/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List classes
// @Description  All classes with their instructor and location, ordered by id
// @Tags         classes
// @Produce      json
// @Success      200 {array} class.ClassDetails
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Get a class
// @Tags         classes
// @Produce      json
// @Param        id path int true "Class ID"
// @Success      200 {object} class.ClassDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/{id} [get]
func (h *Handler) GetClass(c *gin.Context) {
	id, ok := classID(c)
	if !ok {
		return
	}

	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch class")
		return
	}

	c.JSON(http.StatusOK, details)
}

// @Summary      Create a class
// @Tags         classes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        request body class.ClassRequest true "Class payload"
// @Success      201 {object} class.Class
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, validation.FromBinding(err), "Failed to create class")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create class")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a class
// @Description  Overwrites every field of the class
// @Tags         classes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Class ID"
// @Param        request body class.ClassRequest true "Class payload"
// @Success      200 {object} class.Class
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/{id} [put]
func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := classID(c)
	if !ok {
		return
	}

	var req ClassRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, validation.FromBinding(err), "Failed to update class")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update class")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a class
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Class ID"
// @Success      200 {object} class.DeleteClassResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/{id} [delete]
func (h *Handler) DeleteClass(c *gin.Context) {
	id, ok := classID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete class")
		return
	}

	c.JSON(http.StatusOK, DeleteClassResponse{Message: "Class deleted successfully"})
}

func classID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error, action string) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: ve.Error(), Details: ve.Fields})
	case errors.Is(err, ErrClassNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
	case errors.Is(err, db.ErrConstraintViolation):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: action + ": " + err.Error()})
	case errors.Is(err, db.ErrTransactionFailure):
		logger.Warn(action, "error", err)
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: action + ": " + err.Error()})
	default:
		logger.Error(action, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: action})
	}
}
