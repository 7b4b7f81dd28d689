package response

// TenantSummary represents the aggregated billing view for a single tenant
type TenantSummary struct {
	ID             uint                          `json:"id" example:"1"`
	Name           string                        `json:"name" example:"Alice"`
	Room           string                        `json:"room" example:"101"`
	TotalPending   float64                       `json:"total_pending" example:"1000"`
	TotalPaid      float64                       `json:"total_paid" example:"200"`
	ServicePending map[string]float64            `json:"service_pending"`
	ServicePaid    map[string]float64            `json:"service_paid"`
	PendingByMonth map[string]map[string]float64 `json:"pending_by_month"`
}

// DashboardResponse represents the full dashboard with global totals
type DashboardResponse struct {
	Dashboard    []*TenantSummary `json:"dashboard"`
	TotalPending float64          `json:"total_pending" example:"1000"`
	TotalPaid    float64          `json:"total_paid" example:"200"`
}

// MonthlySummaryResponse represents the global per-month, per-service views.
// Pending is re-aggregated from per-tenant buckets; Paid is recomputed from
// the raw bill list since per-tenant paid totals are not month-bucketed.
type MonthlySummaryResponse struct {
	PendingByMonth map[string]map[string]float64 `json:"pending_by_month"`
	PaidByMonth    map[string]map[string]float64 `json:"paid_by_month"`
}
