package service

import (
	"fmt"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/repository"
	"tenant-billing-svc/pkg/logger"
)

// BillService interface defines bill service methods
type BillService interface {
	CreateBill(bill *models.Bill) (*models.Bill, error)
	GetBills(filter repository.BillFilter) ([]*models.Bill, error)
	UpdateBill(id uint, bill *models.Bill) (*models.Bill, error)
	DeleteBill(id uint) error
}

// billService implements BillService interface
type billService struct {
	billRepo   repository.BillRepository
	tenantRepo repository.TenantRepository
	logger     *logger.Logger
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, tenantRepo repository.TenantRepository, logger *logger.Logger) BillService {
	return &billService{
		billRepo:   billRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// validateBill checks presence of the required bill fields
func (s *billService) validateBill(bill *models.Bill) error {
	if bill.TenantID == 0 {
		return fmt.Errorf("bill tenant_id is required")
	}
	if bill.Amount < 0 {
		return fmt.Errorf("bill amount must be non-negative")
	}
	if bill.Date.IsZero() {
		return fmt.Errorf("bill date is required")
	}
	if bill.Status != "" && bill.Status != models.BillStatusPending && bill.Status != models.BillStatusPaid {
		return fmt.Errorf("bill status must be %s or %s", models.BillStatusPending, models.BillStatusPaid)
	}
	return nil
}

// CreateBill validates and stores a new bill referencing an existing tenant
func (s *billService) CreateBill(bill *models.Bill) (*models.Bill, error) {
	if err := s.validateBill(bill); err != nil {
		s.logger.WithError(err).Error("Bill validation failed")
		return nil, err
	}

	// The referenced tenant must exist at creation time
	if _, err := s.tenantRepo.GetTenantByID(bill.TenantID); err != nil {
		s.logger.WithError(err).WithField("tenant_id", bill.TenantID).Error("Bill references unknown tenant")
		return nil, fmt.Errorf("tenant %d not found: %w", bill.TenantID, err)
	}

	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	if err := s.billRepo.CreateBill(bill); err != nil {
		s.logger.WithError(err).WithField("tenant_id", bill.TenantID).Error("Failed to create bill")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"bill_id":   bill.ID,
		"tenant_id": bill.TenantID,
		"type":      bill.Type,
		"amount":    bill.Amount,
		"status":    bill.Status,
	}).Info("Bill created successfully")

	return bill, nil
}

// GetBills gets bills joined with their tenant, with optional filters
func (s *billService) GetBills(filter repository.BillFilter) ([]*models.Bill, error) {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		s.logger.WithField("month", *filter.Month).Error("Invalid month parameter")
		return nil, fmt.Errorf("invalid month parameter, must be between 1-12")
	}

	bills, err := s.billRepo.GetBills(filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get bills")
		return nil, err
	}

	s.logger.WithField("count", len(bills)).Info("Bills retrieved successfully")

	return bills, nil
}

// UpdateBill replaces the bill record with the given ID. A status toggle is a
// full-record update that carries the original amount and date unchanged.
func (s *billService) UpdateBill(id uint, bill *models.Bill) (*models.Bill, error) {
	if err := s.validateBill(bill); err != nil {
		s.logger.WithError(err).WithField("bill_id", id).Error("Bill validation failed")
		return nil, err
	}

	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	updated, err := s.billRepo.UpdateBill(id, bill)
	if err != nil {
		s.logger.WithError(err).WithField("bill_id", id).Error("Failed to update bill")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"bill_id": id,
		"status":  updated.Status,
	}).Info("Bill updated successfully")

	return updated, nil
}

// DeleteBill removes a bill record by ID
func (s *billService) DeleteBill(id uint) error {
	if err := s.billRepo.DeleteBill(id); err != nil {
		s.logger.WithError(err).WithField("bill_id", id).Error("Failed to delete bill")
		return err
	}

	s.logger.WithField("bill_id", id).Info("Bill deleted successfully")

	return nil
}
