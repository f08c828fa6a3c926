package report

import (
	"errors"
	"net/http"

	"fitclass/internal/api"
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

// @Summary      Date-range class report
// @Description  Classes scheduled between from_date and to_date inclusive, ordered by date
// @Tags         reports
// @Produce      json
// @Param        from_date query string true "Start date (YYYY-MM-DD)"
// @Param        to_date   query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} report.Response
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /report [get]
func (h *Handler) GetReport(c *gin.Context) {
	var req Request
	if err := c.ShouldBindQuery(&req); err != nil {
		h.respondError(c, validation.FromBinding(err))
		return
	}
	h.run(c, req)
}

// @Summary      Date-range class report
// @Tags         reports
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body report.Request true "Date range"
// @Success      200 {object} report.Response
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /report [post]
func (h *Handler) PostReport(c *gin.Context) {
	var req Request
	if err := c.ShouldBind(&req); err != nil {
		h.respondError(c, validation.FromBinding(err))
		return
	}
	h.run(c, req)
}

func (h *Handler) run(c *gin.Context, req Request) {
	resp, err := h.service.Report(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var ve *validation.Error
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: ve.Error(), Details: ve.Fields})
		return
	}

	logger.Error("Failed to generate report", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate report"})
}
