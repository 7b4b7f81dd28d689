package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenant-billing-svc/internal/service"
	"tenant-billing-svc/pkg/logger"
	"tenant-billing-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	exportService    service.ExportService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, exportService service.ExportService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
		logger:           logger,
	}
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Get the billing dashboard
// @Description Get per-tenant paid/pending aggregation with global totals
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardResponse} "Dashboard retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard")
		utils.InternalServerErrorResponse(c, "Failed to retrieve dashboard", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", dashboard)
}

// GetMonthlySummary handles GET /api/v1/dashboard/summary
// @Summary Get global monthly summary
// @Description Get global pending-by-month and paid-by-month per-service views
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.MonthlySummaryResponse} "Monthly summary retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetMonthlySummary(c *gin.Context) {
	summary, err := h.dashboardService.GetMonthlySummary()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get monthly summary")
		utils.InternalServerErrorResponse(c, "Failed to retrieve monthly summary", err)
		return
	}

	utils.SuccessResponse(c, "Monthly summary retrieved successfully", summary)
}

// ExportDashboard handles GET /api/v1/dashboard/export
// @Summary Export the dashboard to Excel
// @Description Download the dashboard aggregation as an xlsx file, one row per tenant with dynamic per-service columns
// @Tags dashboard
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/export [get]
func (h *DashboardHandler) ExportDashboard(c *gin.Context) {
	data, filename, err := h.exportService.ExportDashboardToExcel()
	if err != nil {
		h.logger.WithError(err).Error("Failed to export dashboard")
		utils.InternalServerErrorResponse(c, "Failed to export dashboard", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
