package repository

import (
	"strings"
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository builds the read-side rows for the worker and complaint reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// WorkerReport returns one row per work session, joined with the worker,
// assignment, complaint and the store of the session's visit. Optional
// filters: session window overlap with [start, end] and a single worker.
func (r *ReportRepository) WorkerReport(start, end *time.Time, workerID *uuid.UUID) ([]WorkerReportRow, error) {
	type scanRow struct {
		WorkerID      uuid.UUID
		WorkerName    string
		WorkerEmail   string
		AssignmentID  uuid.UUID
		ComplaintID   uuid.UUID
		IsLeader      bool
		Status        string
		SessionStart  time.Time
		SessionEnd    time.Time
		StoreName     *string
		ComplaintDesc string
		VisitID       *uuid.UUID
	}

	query := r.db.Model(&models.AssignmentWorkSession{}).
		Select(`assignment_work_sessions.worker_id AS worker_id,
			profiles.name AS worker_name,
			profiles.email AS worker_email,
			assignment_work_sessions.assignment_id AS assignment_id,
			complaint_assignments.complaint_id AS complaint_id,
			complaint_assignments.is_leader AS is_leader,
			complaint_assignments.status AS status,
			assignment_work_sessions.start_at AS session_start,
			assignment_work_sessions.end_at AS session_end,
			stores.name AS store_name,
			complaints.description AS complaint_desc,
			assignment_work_sessions.visit_id AS visit_id`).
		Joins("JOIN complaint_assignments ON complaint_assignments.id = assignment_work_sessions.assignment_id").
		Joins("JOIN profiles ON profiles.id = assignment_work_sessions.worker_id").
		Joins("JOIN complaints ON complaints.id = complaint_assignments.complaint_id").
		Joins("LEFT JOIN assignment_visits ON assignment_visits.id = assignment_work_sessions.visit_id").
		Joins("LEFT JOIN stores ON stores.id = assignment_visits.store_id")

	if start != nil {
		query = query.Where("assignment_work_sessions.end_at > ?", *start)
	}
	if end != nil {
		query = query.Where("assignment_work_sessions.start_at < ?", *end)
	}
	if workerID != nil {
		query = query.Where("assignment_work_sessions.worker_id = ?", *workerID)
	}

	var scanned []scanRow
	if err := query.Order("assignment_work_sessions.start_at ASC").Scan(&scanned).Error; err != nil {
		return nil, err
	}

	rows := make([]WorkerReportRow, 0, len(scanned))
	for _, s := range scanned {
		storeName := ""
		if s.StoreName != nil {
			storeName = *s.StoreName
		}
		rows = append(rows, WorkerReportRow{
			WorkerID:       s.WorkerID,
			WorkerName:     s.WorkerName,
			WorkerEmail:    s.WorkerEmail,
			AssignmentID:   s.AssignmentID,
			ComplaintID:    s.ComplaintID,
			IsLeader:       s.IsLeader,
			Status:         s.Status,
			SessionStart:   s.SessionStart,
			SessionEnd:     s.SessionEnd,
			SessionMinutes: int(s.SessionEnd.Sub(s.SessionStart).Minutes()),
			StoreName:      storeName,
			ComplaintDesc:  s.ComplaintDesc,
			VisitID:        s.VisitID,
		})
	}
	return rows, nil
}

// ComplaintReport returns one row per complaint with tenant details and the
// list of assigned staff flattened into a single column.
func (r *ReportRepository) ComplaintReport(start, end *time.Time) ([]ComplaintReportRow, error) {
	var complaints []models.Complaint
	query := r.db.Preload("Tenant").Order("created_at DESC")
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at <= ?", *end)
	}
	if err := query.Find(&complaints).Error; err != nil {
		return nil, err
	}

	if len(complaints) == 0 {
		return []ComplaintReportRow{}, nil
	}

	complaintIDs := make([]uuid.UUID, 0, len(complaints))
	for _, c := range complaints {
		complaintIDs = append(complaintIDs, c.ID)
	}

	var assignments []models.ComplaintAssignment
	if err := r.db.Preload("Worker").Where("complaint_id IN ?", complaintIDs).Find(&assignments).Error; err != nil {
		return nil, err
	}

	staffByComplaint := make(map[uuid.UUID][]string)
	for _, a := range assignments {
		name := a.Worker.Name
		if name == "" {
			name = a.Worker.Email
		}
		if a.IsLeader {
			name += " (leader)"
		}
		staffByComplaint[a.ComplaintID] = append(staffByComplaint[a.ComplaintID], name)
	}

	rows := make([]ComplaintReportRow, 0, len(complaints))
	for _, c := range complaints {
		rows = append(rows, ComplaintReportRow{
			ComplaintID: c.ID,
			CreatedAt:   c.CreatedAt,
			TenantID:    c.TenantID,
			TenantName:  c.Tenant.Name,
			TenantEmail: c.Tenant.Email,
			Building:    c.Tenant.BuildingName,
			Room:        c.Tenant.RoomNumber,
			Description: c.Description,
			Status:      string(c.Status),
			Priority:    string(c.Priority),
			Staff:       strings.Join(staffByComplaint[c.ID], ", "),
		})
	}
	return rows, nil
}
