package handlers

import (
	"net/http"

	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ReportHandler holds dependencies for revenue reporting.
type ReportHandler struct {
	service   services.ReportService
	validator *validator.Validate
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service services.ReportService, validate *validator.Validate) *ReportHandler {
	return &ReportHandler{
		service:   service,
		validator: validate,
	}
}

// MonthlyRevenue godoc
// @Summary      Payment history by month
// @Description  Aggregates paid invoices by the month of their issue date, newest month first. An optional year narrows the window.
// @Tags         reports
// @Produce      json
// @Param        year query int false "Restrict to one calendar year"
// @Success      200 {object}  dto.RevenueReportResponse "Monthly revenue report"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /reports/revenue [get]
// @Security     BearerAuth
func (h *ReportHandler) MonthlyRevenue(c *gin.Context) {
	var req dto.MonthlyRevenueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	report, err := h.service.MonthlyRevenue(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "MonthlyRevenue")
		return
	}

	c.JSON(http.StatusOK, report)
}
