package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"tenant-billing-svc/internal/models"
	"tenant-billing-svc/internal/repository"
	"tenant-billing-svc/pkg/logger"
)

// RentScheduler creates the monthly rent bill for every tenant on a cron
// schedule
type RentScheduler struct {
	tenantRepo     repository.TenantRepository
	billRepo       repository.BillRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	rentAmount     float64
}

// NewRentScheduler creates a new rent scheduler
func NewRentScheduler(tenantRepo repository.TenantRepository, billRepo repository.BillRepository, logger *logger.Logger, cronExpression string, rentAmount float64) *RentScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &RentScheduler{
		tenantRepo:     tenantRepo,
		billRepo:       billRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		rentAmount:     rentAmount,
	}
}

// Start initializes and starts all scheduled jobs
func (s *RentScheduler) Start() error {
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling monthly rent job")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	_, err := s.cron.AddFunc(s.cronExpression, s.createMonthlyRentBills)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly rent job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Rent scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *RentScheduler) Stop() {
	s.logger.Info("Stopping rent scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Rent scheduler stopped successfully")
}

// createMonthlyRentBills is the scheduled job that creates a pending Rent bill
// for every tenant that does not already have one this month
func (s *RentScheduler) createMonthlyRentBills() {
	runID := uuid.New().String()
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	runLog := s.logger.WithFields(map[string]interface{}{
		"run_id": runID,
		"month":  month,
		"year":   year,
	})
	runLog.Info("Starting scheduled monthly rent bill creation")

	tenants, err := s.tenantRepo.GetTenants("", "")
	if err != nil {
		runLog.WithField("error", err).Error("Failed to get tenants for rent run")
		return
	}

	created := 0
	skipped := 0
	failed := 0

	for _, tenant := range tenants {
		exists, err := s.billRepo.HasBillForMonth(tenant.ID, "Rent", month, year)
		if err != nil {
			runLog.WithField("error", err).WithField("tenant_id", tenant.ID).Error("Failed to check existing rent bill")
			failed++
			continue
		}
		if exists {
			skipped++
			continue
		}

		bill := &models.Bill{
			TenantID: tenant.ID,
			Type:     "Rent",
			Amount:   s.rentAmount,
			Date:     now,
			Status:   models.BillStatusPending,
		}
		if err := s.billRepo.CreateBill(bill); err != nil {
			runLog.WithField("error", err).WithField("tenant_id", tenant.ID).Error("Failed to create rent bill")
			failed++
			continue
		}
		created++
	}

	runLog.WithFields(map[string]interface{}{
		"tenants": len(tenants),
		"created": created,
		"skipped": skipped,
		"failed":  failed,
	}).Info("Scheduled monthly rent bill creation completed")
}
