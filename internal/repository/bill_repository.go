package repository

import (
	"time"

	"gorm.io/gorm"

	"tenant-billing-svc/internal/models"
)

// BillFilter holds the optional filters for bill listing
type BillFilter struct {
	TenantID *uint
	Month    *int
	Year     *int
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	CreateBill(bill *models.Bill) error
	GetBills(filter BillFilter) ([]*models.Bill, error)
	GetBillByID(id uint) (*models.Bill, error)
	UpdateBill(id uint, bill *models.Bill) (*models.Bill, error)
	DeleteBill(id uint) error
	HasBillForMonth(tenantID uint, billType string, month int, year int) (bool, error)
}

// billRepository implements BillRepository
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new instance of BillRepository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		db: db,
	}
}

// CreateBill stores a new bill record
func (r *billRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// GetBills retrieves bills with optional tenant and month filters, joined with
// their tenant. A bill whose tenant no longer exists is returned with a nil
// Tenant rather than an error.
func (r *billRepository) GetBills(filter BillFilter) ([]*models.Bill, error) {
	var bills []*models.Bill

	query := r.db.Model(&models.Bill{}).Preload("Tenant")

	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}

	if filter.Month != nil {
		year := time.Now().Year()
		if filter.Year != nil {
			year = *filter.Year
		}
		start := time.Date(year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	err := query.Order("id").Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// GetBillByID retrieves a bill record by ID
func (r *billRepository) GetBillByID(id uint) (*models.Bill, error) {
	var bill models.Bill

	err := r.db.Preload("Tenant").Where("id = ?", id).First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// UpdateBill replaces the fields of the bill with the given ID
func (r *billRepository) UpdateBill(id uint, bill *models.Bill) (*models.Bill, error) {
	var existing models.Bill
	if err := r.db.Where("id = ?", id).First(&existing).Error; err != nil {
		return nil, err
	}

	existing.TenantID = bill.TenantID
	existing.Type = bill.Type
	existing.Amount = bill.Amount
	existing.Date = bill.Date
	existing.Status = bill.Status

	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// DeleteBill removes a bill record by ID
func (r *billRepository) DeleteBill(id uint) error {
	var bill models.Bill
	if err := r.db.Where("id = ?", id).First(&bill).Error; err != nil {
		return err
	}
	return r.db.Delete(&bill).Error
}

// HasBillForMonth reports whether the tenant already has a bill of the given
// type dated within the given month. Used by the scheduler to avoid duplicates.
func (r *billRepository) HasBillForMonth(tenantID uint, billType string, month int, year int) (bool, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var count int64
	err := r.db.Model(&models.Bill{}).
		Where("tenant_id = ? AND type = ? AND date >= ? AND date < ?", tenantID, billType, start, end).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
