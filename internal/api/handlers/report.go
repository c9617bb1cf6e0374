package handlers

import (
	"fmt"
	"net/http"
	"time"

	"maintenance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles HTTP requests for report export
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetWorkerReport handles GET /api/v1/reports/workers
// @Summary Export the worker time report
// @Description Export per-worker reconciled session rows as JSON, CSV or XLSX
// @Tags reports
// @Produce json
// @Param start query string false "Range start (RFC3339)"
// @Param end query string false "Range end (RFC3339)"
// @Param worker_id query string false "Filter to one worker (UUID)"
// @Param format query string false "json, csv or xlsx (default json)"
// @Success 200 {array} repository.WorkerReportRow "Report rows"
// @Failure 400 {object} map[string]interface{} "Invalid filters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/workers [get]
func (h *ReportHandler) GetWorkerReport(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reports.WorkerReport(filters)
	if err != nil {
		respondError(c, err, "Failed to build worker report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "csv":
		setDownloadHeaders(c, "worker-report", "csv", "text/csv")
		if err := h.reports.WriteWorkerCSV(c.Writer, rows); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	case "xlsx":
		setDownloadHeaders(c, "worker-report", "xlsx", xlsxContentType)
		if err := h.reports.WriteWorkerXLSX(c.Writer, rows); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	default:
		c.JSON(http.StatusOK, rows)
	}
}

// GetComplaintReport handles GET /api/v1/reports/complaints
// @Summary Export the complaint report
// @Description Export per-complaint rows with aggregated staff as JSON, CSV or XLSX
// @Tags reports
// @Produce json
// @Param start query string false "Range start (RFC3339)"
// @Param end query string false "Range end (RFC3339)"
// @Param format query string false "json, csv or xlsx (default json)"
// @Success 200 {array} repository.ComplaintReportRow "Report rows"
// @Failure 400 {object} map[string]interface{} "Invalid filters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/complaints [get]
func (h *ReportHandler) GetComplaintReport(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reports.ComplaintReport(filters)
	if err != nil {
		respondError(c, err, "Failed to build complaint report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "csv":
		setDownloadHeaders(c, "complaint-report", "csv", "text/csv")
		if err := h.reports.WriteComplaintCSV(c.Writer, rows); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	case "xlsx":
		setDownloadHeaders(c, "complaint-report", "xlsx", xlsxContentType)
		if err := h.reports.WriteComplaintXLSX(c.Writer, rows); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	default:
		c.JSON(http.StatusOK, rows)
	}
}

func parseReportFilters(c *gin.Context) (service.ReportFilters, error) {
	var filters service.ReportFilters

	if startStr := c.Query("start"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start: must be RFC3339")
		}
		filters.Start = &start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end: must be RFC3339")
		}
		filters.End = &end
	}
	if workerStr := c.Query("worker_id"); workerStr != "" {
		workerID, err := uuid.Parse(workerStr)
		if err != nil {
			return filters, fmt.Errorf("invalid worker_id: invalid UUID format")
		}
		filters.WorkerID = &workerID
	}

	return filters, nil
}

func setDownloadHeaders(c *gin.Context, name, ext, contentType string) {
	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().Format("2006-01-02"), ext)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}
