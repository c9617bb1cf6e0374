package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ReportService builds the worker and complaint reports and renders them as
// JSON rows, CSV or XLSX workbooks.
type ReportService struct {
	reports repository.ReportRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(reports repository.ReportRepositoryInterface) *ReportService {
	return &ReportService{reports: reports}
}

// ReportFilters narrows a report to a date range and optionally one worker
type ReportFilters struct {
	Start    *time.Time
	End      *time.Time
	WorkerID *uuid.UUID
}

var workerReportHeader = []string{
	"Worker", "Email", "Complaint", "Role", "Status",
	"Session Start", "Session End", "Minutes", "Store", "Description",
}

var complaintReportHeader = []string{
	"Created", "Tenant", "Email", "Building", "Room",
	"Description", "Status", "Priority", "Staff",
}

// WorkerReport returns the per-worker time accounting rows
func (s *ReportService) WorkerReport(filters ReportFilters) ([]repository.WorkerReportRow, error) {
	rows, err := s.reports.WorkerReport(filters.Start, filters.End, filters.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build worker report: %w", err)
	}
	return rows, nil
}

// ComplaintReport returns the per-complaint rows with aggregated staff
func (s *ReportService) ComplaintReport(filters ReportFilters) ([]repository.ComplaintReportRow, error) {
	rows, err := s.reports.ComplaintReport(filters.Start, filters.End)
	if err != nil {
		return nil, fmt.Errorf("failed to build complaint report: %w", err)
	}
	return rows, nil
}

// WriteWorkerCSV renders the worker report as CSV
func (s *ReportService) WriteWorkerCSV(w io.Writer, rows []repository.WorkerReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(workerReportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.WorkerName,
			row.WorkerEmail,
			row.ComplaintID.String(),
			workerRoleLabel(row.IsLeader),
			row.Status,
			formatReportTime(&row.SessionStart),
			formatReportTime(&row.SessionEnd),
			strconv.Itoa(row.SessionMinutes),
			row.StoreName,
			row.ComplaintDesc,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComplaintCSV renders the complaint report as CSV
func (s *ReportService) WriteComplaintCSV(w io.Writer, rows []repository.ComplaintReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(complaintReportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			formatReportTime(&row.CreatedAt),
			row.TenantName,
			row.TenantEmail,
			row.Building,
			row.Room,
			row.Description,
			row.Status,
			row.Priority,
			row.Staff,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWorkerXLSX renders the worker report as an XLSX workbook
func (s *ReportService) WriteWorkerXLSX(w io.Writer, rows []repository.WorkerReportRow) error {
	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.WorkerName,
			row.WorkerEmail,
			row.ComplaintID.String(),
			workerRoleLabel(row.IsLeader),
			row.Status,
			formatReportTime(&row.SessionStart),
			formatReportTime(&row.SessionEnd),
			row.SessionMinutes,
			row.StoreName,
			row.ComplaintDesc,
		})
	}
	return writeWorkbook(w, "Worker Report", workerReportHeader, records)
}

// WriteComplaintXLSX renders the complaint report as an XLSX workbook
func (s *ReportService) WriteComplaintXLSX(w io.Writer, rows []repository.ComplaintReportRow) error {
	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			formatReportTime(&row.CreatedAt),
			row.TenantName,
			row.TenantEmail,
			row.Building,
			row.Room,
			row.Description,
			row.Status,
			row.Priority,
			row.Staff,
		})
	}
	return writeWorkbook(w, "Complaint Report", complaintReportHeader, records)
}

func writeWorkbook(w io.Writer, sheet string, header []string, records [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to resolve header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func workerRoleLabel(isLeader bool) string {
	if isLeader {
		return "leader"
	}
	return "worker"
}

func formatReportTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
