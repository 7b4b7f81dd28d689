package service

import (
	"fmt"
	"strings"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/repository"
	"tenant-billing-svc/pkg/logger"
)

// TenantService interface defines tenant service methods
type TenantService interface {
	CreateTenant(tenant *models.Tenant) (*models.Tenant, error)
	GetTenants(search string, room string) ([]*models.Tenant, error)
	UpdateTenant(id uint, tenant *models.Tenant) (*models.Tenant, error)
	DeleteTenant(id uint) error
}

// tenantService implements TenantService interface
type tenantService struct {
	tenantRepo repository.TenantRepository
	logger     *logger.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepository, logger *logger.Logger) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// CreateTenant validates and stores a new tenant
func (s *tenantService) CreateTenant(tenant *models.Tenant) (*models.Tenant, error) {
	if strings.TrimSpace(tenant.Name) == "" {
		s.logger.Error("Tenant name is required")
		return nil, fmt.Errorf("tenant name is required")
	}

	if err := s.tenantRepo.CreateTenant(tenant); err != nil {
		s.logger.WithError(err).WithField("name", tenant.Name).Error("Failed to create tenant")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"tenant_id": tenant.ID,
		"name":      tenant.Name,
		"room":      tenant.Room,
	}).Info("Tenant created successfully")

	return tenant, nil
}

// GetTenants gets tenants with optional name search and exact room filter
func (s *tenantService) GetTenants(search string, room string) ([]*models.Tenant, error) {
	tenants, err := s.tenantRepo.GetTenants(search, room)
	if err != nil {
		s.logger.WithError(err).WithField("search", search).Error("Failed to get tenants")
		return nil, err
	}

	s.logger.WithField("count", len(tenants)).Info("Tenants retrieved successfully")

	return tenants, nil
}

// UpdateTenant replaces the tenant record with the given ID
func (s *tenantService) UpdateTenant(id uint, tenant *models.Tenant) (*models.Tenant, error) {
	if strings.TrimSpace(tenant.Name) == "" {
		s.logger.WithField("tenant_id", id).Error("Tenant name is required")
		return nil, fmt.Errorf("tenant name is required")
	}

	updated, err := s.tenantRepo.UpdateTenant(id, tenant)
	if err != nil {
		s.logger.WithError(err).WithField("tenant_id", id).Error("Failed to update tenant")
		return nil, err
	}

	s.logger.WithField("tenant_id", id).Info("Tenant updated successfully")

	return updated, nil
}

// DeleteTenant removes the tenant and cascades the delete to its bills
func (s *tenantService) DeleteTenant(id uint) error {
	if err := s.tenantRepo.DeleteTenant(id); err != nil {
		s.logger.WithError(err).WithField("tenant_id", id).Error("Failed to delete tenant")
		return err
	}

	s.logger.WithField("tenant_id", id).Info("Tenant and related bills deleted successfully")

	return nil
}
