package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tenant-billing-svc/internal/models"
)

func createTenant(t *testing.T, repo TenantRepository, name, room string) *models.Tenant {
	tenant := &models.Tenant{Name: name, Room: room}
	assert.NoError(t, repo.CreateTenant(tenant))
	return tenant
}

func TestBillRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")

	bill := &models.Bill{
		TenantID: alice.ID,
		Type:     "Rent",
		Amount:   1000,
		Date:     time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Status:   models.BillStatusPending,
	}
	assert.NoError(t, billRepo.CreateBill(bill))
	assert.NotZero(t, bill.ID)

	fetched, err := billRepo.GetBillByID(bill.ID)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, fetched.TenantID)
	// joined with the tenant record
	assert.NotNil(t, fetched.Tenant)
	assert.Equal(t, "Alice", fetched.Tenant.Name)
}

func TestBillRepository_MonthFilter(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")
	year := time.Now().Year()

	january := &models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(year, time.January, 15, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	february := &models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(year, time.February, 15, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	lastDayFeb := &models.Bill{TenantID: alice.ID, Type: "Gas", Amount: 50,
		Date: time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	assert.NoError(t, billRepo.CreateBill(january))
	assert.NoError(t, billRepo.CreateBill(february))
	assert.NoError(t, billRepo.CreateBill(lastDayFeb))

	month := 2
	bills, err := billRepo.GetBills(BillFilter{Month: &month})
	assert.NoError(t, err)
	assert.Len(t, bills, 2)
	for _, b := range bills {
		assert.Equal(t, time.February, b.Date.Month())
	}
}

func TestBillRepository_MonthFilterWithExplicitYear(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")

	old := &models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 900,
		Date: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	current := &models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(time.Now().Year(), time.March, 1, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	assert.NoError(t, billRepo.CreateBill(old))
	assert.NoError(t, billRepo.CreateBill(current))

	month, yearFilter := 3, 2023
	bills, err := billRepo.GetBills(BillFilter{Month: &month, Year: &yearFilter})
	assert.NoError(t, err)
	assert.Len(t, bills, 1)
	assert.Equal(t, float64(900), bills[0].Amount)

	// without an explicit year the filter defaults to the current year
	bills, err = billRepo.GetBills(BillFilter{Month: &month})
	assert.NoError(t, err)
	assert.Len(t, bills, 1)
	assert.Equal(t, float64(1000), bills[0].Amount)
}

func TestBillRepository_TenantFilter(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")
	bob := createTenant(t, tenantRepo, "Bob", "102")

	assert.NoError(t, billRepo.CreateBill(&models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}))
	assert.NoError(t, billRepo.CreateBill(&models.Bill{TenantID: bob.ID, Type: "Rent", Amount: 800,
		Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}))

	bills, err := billRepo.GetBills(BillFilter{TenantID: &alice.ID})
	assert.NoError(t, err)
	assert.Len(t, bills, 1)
	assert.Equal(t, alice.ID, bills[0].TenantID)
}

func TestBillRepository_UpdateReplacesFields(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")
	bill := &models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	assert.NoError(t, billRepo.CreateBill(bill))

	// status toggle carries the original amount and date
	toggled := &models.Bill{TenantID: alice.ID, Type: bill.Type, Amount: bill.Amount,
		Date: bill.Date, Status: models.BillStatusPaid}
	updated, err := billRepo.UpdateBill(bill.ID, toggled)
	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, updated.Status)
	assert.Equal(t, float64(1000), updated.Amount)
	assert.Equal(t, bill.Date.Unix(), updated.Date.Unix())
}

func TestBillRepository_UpdateMissingReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)
	billRepo := NewBillRepository(db)

	_, err := billRepo.UpdateBill(999, &models.Bill{TenantID: 1, Amount: 1,
		Date: time.Now(), Status: models.BillStatusPending})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestBillRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")
	bill := &models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}
	assert.NoError(t, billRepo.CreateBill(bill))

	assert.NoError(t, billRepo.DeleteBill(bill.ID))

	_, err := billRepo.GetBillByID(bill.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	assert.True(t, errors.Is(billRepo.DeleteBill(bill.ID), gorm.ErrRecordNotFound))
}

func TestBillRepository_HasBillForMonth(t *testing.T) {
	db := setupTestDB(t)
	tenantRepo := NewTenantRepository(db)
	billRepo := NewBillRepository(db)

	alice := createTenant(t, tenantRepo, "Alice", "101")
	assert.NoError(t, billRepo.CreateBill(&models.Bill{TenantID: alice.ID, Type: "Rent", Amount: 1000,
		Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPending}))

	exists, err := billRepo.HasBillForMonth(alice.ID, "Rent", 1, 2024)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = billRepo.HasBillForMonth(alice.ID, "Rent", 2, 2024)
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = billRepo.HasBillForMonth(alice.ID, "Gas", 1, 2024)
	assert.NoError(t, err)
	assert.False(t, exists)
}
