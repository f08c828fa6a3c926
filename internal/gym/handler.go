package gym

import (
	"errors"
	"net/http"
	"strconv"

	"fitclass/internal/api"
	"fitclass/internal/logger"

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

// @Summary      List instructors
// @Tags         instructors
// @Produce      json
// @Success      200 {array} gym.Instructor
// @Failure      500 {object} api.ErrorResponse
// @Router       /instructors [get]
func (h *Handler) ListInstructors(c *gin.Context) {
	instructors, err := h.service.ListInstructors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch instructors", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch instructors"})
		return
	}

	c.JSON(http.StatusOK, instructors)
}

// @Summary      Get an instructor
// @Tags         instructors
// @Produce      json
// @Param        id path int true "Instructor ID"
// @Success      200 {object} gym.Instructor
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /instructors/{id} [get]
func (h *Handler) GetInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid instructor ID"})
		return
	}

	instructor, err := h.service.GetInstructor(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInstructorNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instructor not found"})
		default:
			logger.Error("Failed to fetch instructor", "instructor_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch instructor"})
		}
		return
	}

	c.JSON(http.StatusOK, instructor)
}

// @Summary      List locations
// @Tags         locations
// @Produce      json
// @Success      200 {array} gym.Location
// @Failure      500 {object} api.ErrorResponse
// @Router       /locations [get]
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.service.ListLocations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch locations", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// @Summary      Get a location
// @Tags         locations
// @Produce      json
// @Param        id path int true "Location ID"
// @Success      200 {object} gym.Location
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /locations/{id} [get]
func (h *Handler) GetLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid location ID"})
		return
	}

	location, err := h.service.GetLocation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Location not found"})
		default:
			logger.Error("Failed to fetch location", "location_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch location"})
		}
		return
	}

	c.JSON(http.StatusOK, location)
}
