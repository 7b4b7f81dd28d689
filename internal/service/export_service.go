package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"tenant-billing-svc/internal/models/response"
	"tenant-billing-svc/pkg/logger"
)

// ExportService defines the interface for dashboard export operations
type ExportService interface {
	ExportDashboardToExcel() ([]byte, string, error)
}

// exportService implements ExportService
type exportService struct {
	dashboardService DashboardService
	logger           *logger.Logger
}

// NewExportService creates a new instance of ExportService
func NewExportService(dashboardService DashboardService, logger *logger.Logger) ExportService {
	return &exportService{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// monthLabelTime parses a "Jan 2006" month label for chronological ordering.
// Unparseable labels sort last.
func monthLabelTime(label string) time.Time {
	t, err := time.Parse("Jan 2006", label)
	if err != nil {
		return time.Date(9999, 12, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// exportColumns materializes the sparse per-tenant maps into a fixed column
// set: the union of (month, service) pending pairs across all tenants, months
// chronological and services alphabetical, followed by the union of paid
// services alphabetically.
func exportColumns(summaries []*response.TenantSummary) (pending []string, paid []string, pendingKeys [][2]string) {
	monthServices := map[string]map[string]bool{}
	paidServices := map[string]bool{}

	for _, summary := range summaries {
		for month, services := range summary.PendingByMonth {
			if monthServices[month] == nil {
				monthServices[month] = map[string]bool{}
			}
			for service := range services {
				monthServices[month][service] = true
			}
		}
		for service := range summary.ServicePaid {
			paidServices[service] = true
		}
	}

	months := make([]string, 0, len(monthServices))
	for month := range monthServices {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return monthLabelTime(months[i]).Before(monthLabelTime(months[j]))
	})

	for _, month := range months {
		services := make([]string, 0, len(monthServices[month]))
		for service := range monthServices[month] {
			services = append(services, service)
		}
		sort.Strings(services)
		for _, service := range services {
			pending = append(pending, fmt.Sprintf("%s (%s) Pen", service, month))
			pendingKeys = append(pendingKeys, [2]string{month, service})
		}
	}

	paid = make([]string, 0, len(paidServices))
	for service := range paidServices {
		paid = append(paid, service)
	}
	sort.Strings(paid)

	return pending, paid, pendingKeys
}

// ExportDashboardToExcel exports the dashboard aggregation to an Excel file,
// one row per tenant with dynamic per-service columns
func (s *exportService) ExportDashboardToExcel() ([]byte, string, error) {
	dashboard, err := s.dashboardService.GetDashboard()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get dashboard data: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Dashboard"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	pendingHeaders, paidServices, pendingKeys := exportColumns(dashboard.Dashboard)

	headers := []string{"Tenant", "Room"}
	headers = append(headers, pendingHeaders...)
	for _, service := range paidServices {
		headers = append(headers, fmt.Sprintf("%s Paid", service))
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheetName, "A1", lastCell, headerStyle)
	}

	for i, summary := range dashboard.Dashboard {
		row := i + 2

		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheetName, cell, summary.Name)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheetName, cell, summary.Room)

		col := 3
		for _, key := range pendingKeys {
			if amount, ok := summary.PendingByMonth[key[0]][key[1]]; ok {
				cell, _ = excelize.CoordinatesToCellName(col, row)
				f.SetCellValue(sheetName, cell, amount)
			}
			col++
		}
		for _, service := range paidServices {
			if amount, ok := summary.ServicePaid[service]; ok {
				cell, _ = excelize.CoordinatesToCellName(col, row)
				f.SetCellValue(sheetName, cell, amount)
			}
			col++
		}
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("tenant_dashboard_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"filename": filename,
		"tenants":  len(dashboard.Dashboard),
		"columns":  len(headers),
	}).Info("Dashboard exported to Excel successfully")

	return buffer.Bytes(), filename, nil
}
