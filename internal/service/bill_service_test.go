package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/repository"
	"tenant-billing-svc/pkg/logger"
)

func setupServiceTest(t *testing.T) (repository.TenantRepository, repository.BillRepository, *logger.Logger) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Bill{}))
	return repository.NewTenantRepository(db), repository.NewBillRepository(db), logger.NewLogger("error", "text")
}

func TestBillService_CreateDefaultsToPending(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	svc := NewBillService(billRepo, tenantRepo, log)

	alice := &models.Tenant{Name: "Alice"}
	assert.NoError(t, tenantRepo.CreateTenant(alice))

	bill, err := svc.CreateBill(&models.Bill{
		TenantID: alice.ID,
		Type:     "Rent",
		Amount:   1000,
		Date:     date(2024, time.January, 5),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPending, bill.Status)
}

func TestBillService_CreateRequiresExistingTenant(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	svc := NewBillService(billRepo, tenantRepo, log)

	_, err := svc.CreateBill(&models.Bill{
		TenantID: 42,
		Type:     "Rent",
		Amount:   1000,
		Date:     date(2024, time.January, 5),
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBillService_ValidationErrors(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	svc := NewBillService(billRepo, tenantRepo, log)

	cases := []struct {
		name string
		bill *models.Bill
	}{
		{"missing tenant", &models.Bill{Amount: 10, Date: date(2024, time.January, 1)}},
		{"missing date", &models.Bill{TenantID: 1, Amount: 10}},
		{"negative amount", &models.Bill{TenantID: 1, Amount: -5, Date: date(2024, time.January, 1)}},
		{"bad status", &models.Bill{TenantID: 1, Amount: 10, Date: date(2024, time.January, 1), Status: "Overdue"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBill(tc.bill)
			assert.Error(t, err)
		})
	}
}

func TestBillService_MonthFilterRange(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	svc := NewBillService(billRepo, tenantRepo, log)

	month := 13
	_, err := svc.GetBills(repository.BillFilter{Month: &month})
	assert.Error(t, err)
}

func TestDashboardService_EndToEnd(t *testing.T) {
	tenantRepo, billRepo, log := setupServiceTest(t)
	billSvc := NewBillService(billRepo, tenantRepo, log)
	dashSvc := NewDashboardService(tenantRepo, billRepo, log)

	alice := &models.Tenant{Name: "Alice", Room: "101"}
	assert.NoError(t, tenantRepo.CreateTenant(alice))

	_, err := billSvc.CreateBill(&models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: date(2024, time.January, 5), Status: models.BillStatusPending})
	assert.NoError(t, err)
	_, err = billSvc.CreateBill(&models.Bill{TenantID: alice.ID, Type: "Electricity", Amount: 200,
		Date: date(2024, time.January, 10), Status: models.BillStatusPaid})
	assert.NoError(t, err)

	dashboard, err := dashSvc.GetDashboard()
	assert.NoError(t, err)
	assert.Len(t, dashboard.Dashboard, 1)
	assert.Equal(t, float64(1000), dashboard.TotalPending)
	assert.Equal(t, float64(200), dashboard.TotalPaid)
	assert.Equal(t, float64(1000), dashboard.Dashboard[0].PendingByMonth["Jan 2024"]["Rent"])

	summary, err := dashSvc.GetMonthlySummary()
	assert.NoError(t, err)
	assert.Equal(t, float64(200), summary.PaidByMonth["Jan 2024"]["Electricity"])
}
