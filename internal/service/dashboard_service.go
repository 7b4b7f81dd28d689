package service

import (
	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/models/response"
	"tenant-billing-svc/internal/repository"
	"tenant-billing-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetDashboard() (*response.DashboardResponse, error)
	GetMonthlySummary() (*response.MonthlySummaryResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	tenantRepo repository.TenantRepository
	billRepo   repository.BillRepository
	logger     *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(tenantRepo repository.TenantRepository, billRepo repository.BillRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		tenantRepo: tenantRepo,
		billRepo:   billRepo,
		logger:     logger,
	}
}

// AggregateTenantBills computes the billing summary for one tenant from the
// bills referencing it. Single pass; each bill is counted exactly once, into
// either the pending or the paid structures depending on its status. Pending
// amounts are additionally bucketed by month label; paid amounts deliberately
// are not (paid is tracked per service overall, pending per month for chasing
// what is owed when).
func AggregateTenantBills(tenant *models.Tenant, bills []*models.Bill) *response.TenantSummary {
	summary := &response.TenantSummary{
		ID:             tenant.ID,
		Name:           tenant.Name,
		Room:           tenant.Room,
		ServicePending: map[string]float64{},
		ServicePaid:    map[string]float64{},
		PendingByMonth: map[string]map[string]float64{},
	}

	for _, bill := range bills {
		if bill.TenantID != tenant.ID {
			continue
		}

		if bill.Status == models.BillStatusPaid {
			summary.TotalPaid += bill.Amount
			summary.ServicePaid[bill.Type] += bill.Amount
			continue
		}

		summary.TotalPending += bill.Amount
		summary.ServicePending[bill.Type] += bill.Amount

		month := bill.MonthLabel()
		if summary.PendingByMonth[month] == nil {
			summary.PendingByMonth[month] = map[string]float64{}
		}
		summary.PendingByMonth[month][bill.Type] += bill.Amount
	}

	return summary
}

// BuildDashboard runs the aggregator across all tenants and sums the global
// totals from the per-tenant results.
func BuildDashboard(tenants []*models.Tenant, bills []*models.Bill) *response.DashboardResponse {
	dashboard := &response.DashboardResponse{
		Dashboard: make([]*response.TenantSummary, 0, len(tenants)),
	}

	for _, tenant := range tenants {
		summary := AggregateTenantBills(tenant, bills)
		dashboard.Dashboard = append(dashboard.Dashboard, summary)
		dashboard.TotalPending += summary.TotalPending
		dashboard.TotalPaid += summary.TotalPaid
	}

	return dashboard
}

// BuildMonthlySummary computes the global per-month, per-service views. The
// pending view is a re-aggregation of the per-tenant PendingByMonth buckets;
// the paid view is recomputed from the raw bill list because per-tenant paid
// totals carry no month dimension. Bills referencing a tenant missing from
// the tenant list are excluded from both views.
func BuildMonthlySummary(tenants []*models.Tenant, bills []*models.Bill) *response.MonthlySummaryResponse {
	summary := &response.MonthlySummaryResponse{
		PendingByMonth: map[string]map[string]float64{},
		PaidByMonth:    map[string]map[string]float64{},
	}

	known := make(map[uint]bool, len(tenants))
	for _, tenant := range tenants {
		known[tenant.ID] = true
	}

	for _, tenant := range tenants {
		tenantSummary := AggregateTenantBills(tenant, bills)
		for month, services := range tenantSummary.PendingByMonth {
			if summary.PendingByMonth[month] == nil {
				summary.PendingByMonth[month] = map[string]float64{}
			}
			for service, amount := range services {
				summary.PendingByMonth[month][service] += amount
			}
		}
	}

	for _, bill := range bills {
		if bill.Status != models.BillStatusPaid || !known[bill.TenantID] {
			continue
		}
		month := bill.MonthLabel()
		if summary.PaidByMonth[month] == nil {
			summary.PaidByMonth[month] = map[string]float64{}
		}
		summary.PaidByMonth[month][bill.Type] += bill.Amount
	}

	return summary
}

// GetDashboard fetches all tenants and bills and assembles the dashboard
func (s *dashboardService) GetDashboard() (*response.DashboardResponse, error) {
	tenants, bills, err := s.fetchAll()
	if err != nil {
		return nil, err
	}

	dashboard := BuildDashboard(tenants, bills)

	s.logger.WithFields(map[string]interface{}{
		"tenants":       len(tenants),
		"bills":         len(bills),
		"total_pending": dashboard.TotalPending,
		"total_paid":    dashboard.TotalPaid,
	}).Info("Dashboard assembled successfully")

	return dashboard, nil
}

// GetMonthlySummary fetches all tenants and bills and assembles the global
// per-month views
func (s *dashboardService) GetMonthlySummary() (*response.MonthlySummaryResponse, error) {
	tenants, bills, err := s.fetchAll()
	if err != nil {
		return nil, err
	}

	summary := BuildMonthlySummary(tenants, bills)

	s.logger.WithFields(map[string]interface{}{
		"pending_months": len(summary.PendingByMonth),
		"paid_months":    len(summary.PaidByMonth),
	}).Info("Monthly summary assembled successfully")

	return summary, nil
}

// fetchAll loads the full tenant and bill lists used as the immutable
// aggregation snapshot
func (s *dashboardService) fetchAll() ([]*models.Tenant, []*models.Bill, error) {
	tenants, err := s.tenantRepo.GetTenants("", "")
	if err != nil {
		s.logger.WithError(err).Error("Failed to get tenants for dashboard")
		return nil, nil, err
	}

	bills, err := s.billRepo.GetBills(repository.BillFilter{})
	if err != nil {
		s.logger.WithError(err).Error("Failed to get bills for dashboard")
		return nil, nil, err
	}

	return tenants, bills, nil
}
