package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/service"
	"tenant-billing-svc/pkg/logger"
	"tenant-billing-svc/pkg/utils"
)

// TenantRequest represents the tenant create/update payload
type TenantRequest struct {
	Name  string `json:"name" binding:"required" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Phone string `json:"phone" example:"+15551234567"`
	Room  string `json:"room" example:"101"`
}

// TenantHandler handles tenant-related HTTP requests
type TenantHandler struct {
	tenantService service.TenantService
	logger        *logger.Logger
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Create a tenant
// @Description Create a new tenant record. Name is required.
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body TenantRequest true "Tenant data"
// @Success 201 {object} utils.APIResponse{data=models.Tenant} "Tenant added"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid tenant request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}

	tenant := &models.Tenant{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Room:  req.Room,
	}

	created, err := h.tenantService.CreateTenant(tenant)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create tenant")
		utils.InternalServerErrorResponse(c, "Failed to create tenant", err)
		return
	}

	utils.CreatedResponse(c, "Tenant added", created)
}

// GetTenants handles GET /api/v1/tenants
// @Summary List tenants
// @Description List tenants with optional case-insensitive name search and exact room filter
// @Tags tenants
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring match on name"
// @Param room query string false "Exact room match"
// @Success 200 {object} utils.APIResponse{data=[]models.Tenant} "Tenants retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants [get]
func (h *TenantHandler) GetTenants(c *gin.Context) {
	search := c.Query("search")
	room := c.Query("room")

	tenants, err := h.tenantService.GetTenants(search, room)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get tenants")
		utils.InternalServerErrorResponse(c, "Failed to retrieve tenants", err)
		return
	}

	utils.SuccessResponse(c, "Tenants retrieved successfully", tenants)
}

// UpdateTenant handles PUT /api/v1/tenants/:id
// @Summary Update a tenant
// @Description Replace the tenant record with the given ID
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param request body TenantRequest true "Tenant data"
// @Success 200 {object} utils.APIResponse{data=models.Tenant} "Tenant updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.logger.WithError(err).WithField("id_param", c.Param("id")).Error("Invalid tenant ID parameter")
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid tenant request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}

	tenant := &models.Tenant{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Room:  req.Room,
	}

	updated, err := h.tenantService.UpdateTenant(uint(id), tenant)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Tenant not found")
			return
		}
		h.logger.WithError(err).WithField("tenant_id", id).Error("Failed to update tenant")
		utils.InternalServerErrorResponse(c, "Failed to update tenant", err)
		return
	}

	utils.SuccessResponse(c, "Tenant updated", updated)
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
// @Summary Delete a tenant
// @Description Delete the tenant and all bills referencing it
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse "Tenant and related bills deleted"
// @Failure 400 {object} utils.APIResponse "Invalid tenant ID"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.logger.WithError(err).WithField("id_param", c.Param("id")).Error("Invalid tenant ID parameter")
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	if err := h.tenantService.DeleteTenant(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Tenant not found")
			return
		}
		h.logger.WithError(err).WithField("tenant_id", id).Error("Failed to delete tenant")
		utils.InternalServerErrorResponse(c, "Failed to delete tenant", err)
		return
	}

	utils.SuccessResponse(c, "Tenant and related bills deleted", nil)
}
