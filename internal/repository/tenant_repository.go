package repository

import (
	"strings"

	"gorm.io/gorm"

	"tenant-billing-svc/internal/models"
)

// TenantRepository defines the interface for tenant data operations
type TenantRepository interface {
	CreateTenant(tenant *models.Tenant) error
	GetTenants(search string, room string) ([]*models.Tenant, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	UpdateTenant(id uint, tenant *models.Tenant) (*models.Tenant, error)
	DeleteTenant(id uint) error
}

// tenantRepository implements TenantRepository
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new instance of TenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// CreateTenant stores a new tenant record
func (r *tenantRepository) CreateTenant(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetTenants retrieves tenants with optional case-insensitive name search and exact room match
func (r *tenantRepository) GetTenants(search string, room string) ([]*models.Tenant, error) {
	var tenants []*models.Tenant

	query := r.db.Model(&models.Tenant{})
	if strings.TrimSpace(search) != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if room != "" {
		query = query.Where("room = ?", room)
	}

	err := query.Order("id").Find(&tenants).Error
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

// GetTenantByID retrieves a tenant record by ID
func (r *tenantRepository) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant

	err := r.db.Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, err
	}

	return &tenant, nil
}

// UpdateTenant replaces the fields of the tenant with the given ID
func (r *tenantRepository) UpdateTenant(id uint, tenant *models.Tenant) (*models.Tenant, error) {
	var existing models.Tenant
	if err := r.db.Where("id = ?", id).First(&existing).Error; err != nil {
		return nil, err
	}

	existing.Name = tenant.Name
	existing.Email = tenant.Email
	existing.Phone = tenant.Phone
	existing.Room = tenant.Room

	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// DeleteTenant removes the tenant and all bills referencing it in one transaction
func (r *tenantRepository) DeleteTenant(id uint) error {
	var tenant models.Tenant
	if err := r.db.Where("id = ?", id).First(&tenant).Error; err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tenant).Error
	})
}
