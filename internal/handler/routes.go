package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tenant-billing-svc/internal/service"
	"tenant-billing-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	tenantService service.TenantService,
	billService service.BillService,
	dashboardService service.DashboardService,
	exportService service.ExportService,
	logger *logger.Logger,
) {
	// Initialize handlers
	tenantHandler := NewTenantHandler(tenantService, logger)
	billHandler := NewBillHandler(billService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, exportService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("", tenantHandler.GetTenants)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
		}

		// Bill routes
		bills := v1.Group("/bills")
		{
			bills.POST("", billHandler.CreateBill)
			bills.GET("", billHandler.GetBills)
			bills.PUT("/:id", billHandler.UpdateBill)
			bills.DELETE("/:id", billHandler.DeleteBill)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("", dashboardHandler.GetDashboard)
			dashboard.GET("/summary", dashboardHandler.GetMonthlySummary)
			dashboard.GET("/export", dashboardHandler.ExportDashboard)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Tenant Billing Service",
	})
}
