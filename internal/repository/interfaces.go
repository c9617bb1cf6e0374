package repository

import (
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByIDs(ids []uuid.UUID) ([]models.Profile, error)
	GetByRole(role models.ProfileRole, limit, offset int) ([]models.Profile, int64, error)
	Update(profile *models.Profile) error
}

// ComplaintRepositoryInterface defines the interface for complaint repository operations
type ComplaintRepositoryInterface interface {
	Create(complaint *models.Complaint) error
	GetByID(id uuid.UUID) (*models.Complaint, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.Complaint, error)
	GetAll(limit, offset int) ([]models.Complaint, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	SetStatus(id uuid.UUID, status models.ComplaintStatus) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	CreateBatch(assignments []*models.ComplaintAssignment) error
	GetByID(id uuid.UUID) (*models.ComplaintAssignment, error)
	GetByComplaintID(complaintID uuid.UUID) ([]models.ComplaintAssignment, error)
	GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.ComplaintAssignment, int64, error)
	GetLeader(complaintID uuid.UUID) (*models.ComplaintAssignment, error)
	SetStatus(id uuid.UUID, status models.AssignmentStatus) error
	DeleteByIDs(complaintID uuid.UUID, ids []uuid.UUID) error
	ReassignLeader(complaintID, workerID uuid.UUID) error
	GetScheduledBetween(start, end time.Time) ([]models.ComplaintAssignment, error)
}

// VisitRepositoryInterface defines the interface for visit repository operations
type VisitRepositoryInterface interface {
	Create(visit *models.AssignmentVisit) error
	Update(visit *models.AssignmentVisit) error
	GetByID(id uuid.UUID) (*models.AssignmentVisit, error)
	GetOpenByAssignmentID(assignmentID uuid.UUID) (*models.AssignmentVisit, error)
	GetLatestByAssignmentID(assignmentID uuid.UUID) (*models.AssignmentVisit, error)
	GetHistoryByAssignmentID(assignmentID uuid.UUID) ([]models.AssignmentVisit, error)
	ReplaceMaterials(visitID uuid.UUID, materialIDs []uuid.UUID) error
	GetMaterialIDs(visitID uuid.UUID) ([]uuid.UUID, error)
}

// WorkSessionRepositoryInterface defines the interface for work session repository operations
type WorkSessionRepositoryInterface interface {
	Create(session *models.AssignmentWorkSession) error
	GetByAssignmentID(assignmentID uuid.UUID) ([]models.AssignmentWorkSession, error)
	GetByVisitID(visitID uuid.UUID) ([]models.AssignmentWorkSession, error)
	DeleteByVisitAndWorker(visitID, workerID uuid.UUID) error
}

// LookupRepositoryInterface defines the interface for lookup-table reads
type LookupRepositoryInterface interface {
	GetStores() ([]models.Store, error)
	StoreExists(id uuid.UUID) (bool, error)
	GetMaterials() ([]models.Material, error)
	CountMaterials(ids []uuid.UUID) (int64, error)
	GetBuildings() ([]models.Building, error)
	BuildingExists(id uuid.UUID) (bool, error)
	GetRoomsByBuilding(buildingID uuid.UUID) ([]models.Room, error)
	GetComplaintTypes() ([]models.ComplaintType, error)
}

// WorkerReportRow is one exported row of the per-worker time report
type WorkerReportRow struct {
	WorkerID       uuid.UUID  `json:"worker_id"`
	WorkerName     string     `json:"worker_name"`
	WorkerEmail    string     `json:"worker_email"`
	AssignmentID   uuid.UUID  `json:"assignment_id"`
	ComplaintID    uuid.UUID  `json:"complaint_id"`
	IsLeader       bool       `json:"is_leader"`
	Status         string     `json:"status"`
	SessionStart   time.Time  `json:"session_start"`
	SessionEnd     time.Time  `json:"session_end"`
	SessionMinutes int        `json:"session_minutes"`
	StoreName      string     `json:"store_name"`
	ComplaintDesc  string     `json:"complaint_desc"`
	VisitID        *uuid.UUID `json:"visit_id,omitempty"`
}

// ComplaintReportRow is one exported row of the complaint report
type ComplaintReportRow struct {
	ComplaintID uuid.UUID `json:"complaint_id"`
	CreatedAt   time.Time `json:"created_at"`
	TenantID    uuid.UUID `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	TenantEmail string    `json:"tenant_email"`
	Building    string    `json:"building"`
	Room        string    `json:"room"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Staff       string    `json:"staff"`
}

// ReportRepositoryInterface defines the interface for report queries
type ReportRepositoryInterface interface {
	WorkerReport(start, end *time.Time, workerID *uuid.UUID) ([]WorkerReportRow, error)
	ComplaintReport(start, end *time.Time) ([]ComplaintReportRow, error)
}
