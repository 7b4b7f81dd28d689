package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/models/response"
)

func TestExportColumns_OrderingAndUnion(t *testing.T) {
	summaries := []*response.TenantSummary{
		{
			PendingByMonth: map[string]map[string]float64{
				"Feb 2024": {"Rent": 800},
				"Jan 2024": {"Rent": 1000, "Gas": 50},
			},
			ServicePaid: map[string]float64{"Water": 40},
		},
		{
			PendingByMonth: map[string]map[string]float64{
				"Jan 2024": {"Internet": 60},
			},
			ServicePaid: map[string]float64{"Electricity": 200},
		},
	}

	pending, paid, keys := exportColumns(summaries)

	// months chronological, services alphabetical within a month
	assert.Equal(t, []string{
		"Gas (Jan 2024) Pen",
		"Internet (Jan 2024) Pen",
		"Rent (Jan 2024) Pen",
		"Rent (Feb 2024) Pen",
	}, pending)
	assert.Equal(t, []string{"Electricity", "Water"}, paid)
	assert.Len(t, keys, len(pending))
	assert.Equal(t, [2]string{"Jan 2024", "Gas"}, keys[0])
}

func TestExportDashboardToExcel(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	dashSvc := NewDashboardService(tenantRepo, billRepo, log)
	exportSvc := NewExportService(dashSvc, log)

	alice := &models.Tenant{Name: "Alice", Room: "101"}
	assert.NoError(t, tenantRepo.CreateTenant(alice))
	assert.NoError(t, billRepo.CreateBill(&models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: date(2024, time.January, 5), Status: models.BillStatusPending}))
	assert.NoError(t, billRepo.CreateBill(&models.Bill{TenantID: alice.ID, Type: "Electricity", Amount: 200,
		Date: date(2024, time.January, 10), Status: models.BillStatusPaid}))

	data, filename, err := exportSvc.ExportDashboardToExcel()
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(filename, "tenant_dashboard_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Dashboard")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"Tenant", "Room", "Rent (Jan 2024) Pen", "Electricity Paid"}, rows[0])
	assert.Equal(t, "Alice", rows[1][0])
	assert.Equal(t, "101", rows[1][1])
	assert.Equal(t, "1000", rows[1][2])
	assert.Equal(t, "200", rows[1][3])
}

func TestExportDashboardToExcel_NoTenants(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	dashSvc := NewDashboardService(tenantRepo, billRepo, log)
	exportSvc := NewExportService(dashSvc, log)

	data, _, err := exportSvc.ExportDashboardToExcel()
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Dashboard")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"Tenant", "Room"}, rows[0])
}
