package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/repository"
	"tenant-billing-svc/internal/service"
	"tenant-billing-svc/pkg/logger"
	"tenant-billing-svc/pkg/utils"
)

// BillRequest represents the bill create/update payload. Date uses YYYY-MM-DD.
type BillRequest struct {
	TenantID uint     `json:"tenant_id" binding:"required" example:"1"`
	Type     string   `json:"type" example:"Rent"`
	Amount   *float64 `json:"amount" binding:"required,gte=0" example:"1000"`
	Date     string   `json:"date" binding:"required" example:"2024-01-05"`
	Status   string   `json:"status" binding:"omitempty,oneof=Pending Paid" example:"Pending"`
}

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService service.BillService
	logger      *logger.Logger
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService service.BillService, logger *logger.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		logger:      logger,
	}
}

// toModel converts the request into a bill model, parsing the date
func (req *BillRequest) toModel() (*models.Bill, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	return &models.Bill{
		TenantID: req.TenantID,
		Type:     req.Type,
		Amount:   *req.Amount,
		Date:     date,
		Status:   req.Status,
	}, nil
}

// CreateBill handles POST /api/v1/bills
// @Summary Create a bill
// @Description Create a new bill referencing an existing tenant. Status defaults to Pending.
// @Tags bills
// @Accept json
// @Produce json
// @Param request body BillRequest true "Bill data"
// @Success 201 {object} utils.APIResponse{data=models.Bill} "Bill added"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid bill request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with tenant_id, amount and date", err)
		return
	}

	bill, err := req.toModel()
	if err != nil {
		h.logger.WithError(err).WithField("date", req.Date).Error("Invalid bill date format")
		utils.BadRequestResponse(c, "Date must be in YYYY-MM-DD format", err)
		return
	}

	created, err := h.billService.CreateBill(bill)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Tenant not found")
			return
		}
		h.logger.WithError(err).Error("Failed to create bill")
		utils.InternalServerErrorResponse(c, "Failed to create bill", err)
		return
	}

	utils.CreatedResponse(c, "Bill added", created)
}

// GetBills handles GET /api/v1/bills
// @Summary List bills
// @Description List bills joined with their tenant, with optional tenant and month filters. Year defaults to the current year when month is set.
// @Tags bills
// @Accept json
// @Produce json
// @Param tenant_id query int false "Filter by tenant ID"
// @Param month query int false "Filter by month (1-12)"
// @Param year query int false "Year for the month filter (default: current year)"
// @Success 200 {object} utils.APIResponse{data=[]models.Bill} "Bills retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	var filter repository.BillFilter

	if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
		tenantID, err := strconv.ParseUint(tenantIDStr, 10, 32)
		if err != nil {
			h.logger.WithError(err).WithField("tenant_id", tenantIDStr).Error("Invalid tenant_id parameter format")
			utils.BadRequestResponse(c, "Invalid tenant_id parameter format", err)
			return
		}
		id := uint(tenantID)
		filter.TenantID = &id
	}

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.WithError(err).WithField("month", monthStr).Error("Invalid month parameter format")
			utils.BadRequestResponse(c, "Invalid month parameter format", err)
			return
		}
		filter.Month = &month
	}

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.WithError(err).WithField("year", yearStr).Error("Invalid year parameter format")
			utils.BadRequestResponse(c, "Invalid year parameter format", err)
			return
		}
		filter.Year = &year
	}

	bills, err := h.billService.GetBills(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get bills")
		utils.InternalServerErrorResponse(c, "Failed to retrieve bills", err)
		return
	}

	utils.SuccessResponse(c, "Bills retrieved successfully", bills)
}

// UpdateBill handles PUT /api/v1/bills/:id
// @Summary Update a bill
// @Description Replace the bill record with the given ID. Toggling status is a full update carrying the original amount and date.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param request body BillRequest true "Bill data"
// @Success 200 {object} utils.APIResponse{data=models.Bill} "Bill updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.logger.WithError(err).WithField("id_param", c.Param("id")).Error("Invalid bill ID parameter")
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid bill request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with tenant_id, amount and date", err)
		return
	}

	bill, err := req.toModel()
	if err != nil {
		h.logger.WithError(err).WithField("date", req.Date).Error("Invalid bill date format")
		utils.BadRequestResponse(c, "Date must be in YYYY-MM-DD format", err)
		return
	}

	updated, err := h.billService.UpdateBill(uint(id), bill)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Bill not found")
			return
		}
		h.logger.WithError(err).WithField("bill_id", id).Error("Failed to update bill")
		utils.InternalServerErrorResponse(c, "Failed to update bill", err)
		return
	}

	utils.SuccessResponse(c, "Bill updated", updated)
}

// DeleteBill handles DELETE /api/v1/bills/:id
// @Summary Delete a bill
// @Description Delete the bill record with the given ID
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.APIResponse "Bill deleted"
// @Failure 400 {object} utils.APIResponse "Invalid bill ID"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.logger.WithError(err).WithField("id_param", c.Param("id")).Error("Invalid bill ID parameter")
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	if err := h.billService.DeleteBill(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Bill not found")
			return
		}
		h.logger.WithError(err).WithField("bill_id", id).Error("Failed to delete bill")
		utils.InternalServerErrorResponse(c, "Failed to delete bill", err)
		return
	}

	utils.SuccessResponse(c, "Bill deleted", nil)
}
