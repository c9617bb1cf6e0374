package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies the authenticated caller of a service operation
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  models.ProfileRole
}

// IsSupervisor reports whether the actor holds the supervisor role
func (a Actor) IsSupervisor() bool {
	return a.Role == models.ProfileRoleSupervisor
}

// AssignmentService handles business logic for complaint assignments: team
// assignment, the status state machine and leader-driven session reconciliation.
type AssignmentService struct {
	db          *gorm.DB
	assignments *repository.AssignmentRepository
	visits      *repository.VisitRepository
	sessions    *repository.WorkSessionRepository
	complaints  *repository.ComplaintRepository
	profiles    repository.ProfileRepositoryInterface
	validator   *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	db *gorm.DB,
	assignments *repository.AssignmentRepository,
	visits *repository.VisitRepository,
	sessions *repository.WorkSessionRepository,
	complaints *repository.ComplaintRepository,
	profiles repository.ProfileRepositoryInterface,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		db:          db,
		assignments: assignments,
		visits:      visits,
		sessions:    sessions,
		complaints:  complaints,
		profiles:    profiles,
		validator:   validator,
	}
}

// AssignWorkersRequest represents the request to assign a batch of workers to a complaint
type AssignWorkersRequest struct {
	WorkerIDs      []uuid.UUID `json:"worker_ids" validate:"required,min=1"`
	LeaderID       *uuid.UUID  `json:"leader_id"`
	ScheduledStart *time.Time  `json:"scheduled_start"`
	ScheduledEnd   *time.Time  `json:"scheduled_end"`
}

// UpdateAssignmentsRequest represents the request to manage a complaint's team:
// remove assignment rows and/or reassign the leader
type UpdateAssignmentsRequest struct {
	LeaderID            *uuid.UUID  `json:"leader_id"`
	RemoveAssignmentIDs []uuid.UUID `json:"remove_assignment_ids"`
}

// SessionInterval is one working interval supplied in a reconciliation override
type SessionInterval struct {
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}

// SessionOverride carries a caller-supplied time accounting override for one
// teammate. Two shapes are accepted: the current per-worker form (worker_id +
// intervals, supporting split shifts) and the legacy per-assignment form
// (assignment_id + a single start/end pair).
type SessionOverride struct {
	WorkerID     *uuid.UUID        `json:"worker_id,omitempty"`
	Intervals    []SessionInterval `json:"intervals,omitempty"`
	AssignmentID *uuid.UUID        `json:"assignment_id,omitempty"`
	StartAt      *time.Time        `json:"start_at,omitempty"`
	EndAt        *time.Time        `json:"end_at,omitempty"`
}

// UpdateStatusRequest represents the request to drive an assignment's lifecycle
type UpdateStatusRequest struct {
	Action    string            `json:"action" validate:"required"`
	Overrides []SessionOverride `json:"overrides,omitempty"`
}

// AssignmentResponse represents the response data for one assignment
type AssignmentResponse struct {
	ID             uuid.UUID               `json:"id"`
	ComplaintID    uuid.UUID               `json:"complaint_id"`
	WorkerID       uuid.UUID               `json:"worker_id"`
	Status         models.AssignmentStatus `json:"status"`
	IsLeader       bool                    `json:"is_leader"`
	ScheduledStart *time.Time              `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time              `json:"scheduled_end,omitempty"`
	WorkerName     string                  `json:"worker_name,omitempty"`
	WorkerEmail    string                  `json:"worker_email,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// StatusResponse reports the outcome of a status transition
type StatusResponse struct {
	ID              uuid.UUID               `json:"id"`
	Status          models.AssignmentStatus `json:"status"`
	ComplaintStatus models.ComplaintStatus  `json:"complaint_status"`
}

// AssignWorkers assigns a batch of workers to a complaint. The first batch for
// a complaint must designate a leader from among the batch; later batches may
// not name a different leader.
func (s *AssignmentService) AssignWorkers(actor Actor, complaintID uuid.UUID, req *AssignWorkersRequest) ([]AssignmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if len(req.WorkerIDs) == 0 {
		return nil, apperrors.ErrWorkerIDsRequired
	}
	if req.ScheduledStart != nil && req.ScheduledEnd != nil && !req.ScheduledEnd.After(*req.ScheduledStart) {
		return nil, apperrors.ErrInvalidScheduleRange
	}

	if _, err := s.complaints.GetByID(complaintID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to verify complaint: %w", err)
	}

	current, err := s.assignments.GetByComplaintID(complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	// A worker may be re-assigned after rejection, never while still on the team
	for _, a := range current {
		if a.Status == models.AssignmentStatusRejected {
			continue
		}
		if containsID(req.WorkerIDs, a.WorkerID) {
			return nil, apperrors.ErrAssignmentExists
		}
	}

	existingLeader, err := s.assignments.GetLeader(complaintID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check leader: %w", err)
	}

	if existingLeader == nil {
		if req.LeaderID == nil || !containsID(req.WorkerIDs, *req.LeaderID) {
			return nil, apperrors.ErrLeaderRequired
		}
	} else if req.LeaderID != nil && *req.LeaderID != existingLeader.WorkerID {
		return nil, apperrors.ErrLeaderConflict
	}

	// Effective leader for this batch: only when no leader exists yet
	var effectiveLeader *uuid.UUID
	if existingLeader == nil {
		effectiveLeader = req.LeaderID
	}

	rows := make([]*models.ComplaintAssignment, 0, len(req.WorkerIDs))
	for _, wid := range req.WorkerIDs {
		rows = append(rows, &models.ComplaintAssignment{
			ComplaintID:    complaintID,
			WorkerID:       wid,
			AssignedBy:     actor.ID,
			Status:         models.AssignmentStatusAssigned,
			IsLeader:       effectiveLeader != nil && wid == *effectiveLeader,
			ScheduledStart: req.ScheduledStart,
			ScheduledEnd:   req.ScheduledEnd,
		})
	}
	if err := s.assignments.CreateBatch(rows); err != nil {
		return nil, fmt.Errorf("failed to create assignments: %w", err)
	}

	responses := make([]AssignmentResponse, 0, len(rows))
	for _, a := range rows {
		responses = append(responses, s.toResponse(a))
	}
	return responses, nil
}

// UpdateAssignments removes assignment rows and/or reassigns the leader of a
// complaint, validating that a leader remains whenever any assignment remains.
func (s *AssignmentService) UpdateAssignments(actor Actor, complaintID uuid.UUID, req *UpdateAssignmentsRequest) error {
	current, err := s.assignments.GetByComplaintID(complaintID)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	removeSet := make(map[uuid.UUID]bool, len(req.RemoveAssignmentIDs))
	for _, id := range req.RemoveAssignmentIDs {
		removeSet[id] = true
	}

	remaining := make([]models.ComplaintAssignment, 0, len(current))
	for _, a := range current {
		if !removeSet[a.ID] {
			remaining = append(remaining, a)
		}
	}

	remainingWorkers := make(map[uuid.UUID]bool, len(remaining))
	remainingHasLeader := false
	for _, a := range remaining {
		remainingWorkers[a.WorkerID] = true
		if a.IsLeader {
			remainingHasLeader = true
		}
	}

	if len(remaining) > 0 {
		if req.LeaderID != nil {
			if !remainingWorkers[*req.LeaderID] {
				return apperrors.ErrLeaderNotAmongRemaining
			}
		} else if !remainingHasLeader {
			return apperrors.ErrLeaderMustRemain
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.assignments.WithTx(tx)
		if err := repo.DeleteByIDs(complaintID, req.RemoveAssignmentIDs); err != nil {
			return fmt.Errorf("failed to remove assignments: %w", err)
		}
		if req.LeaderID != nil {
			if err := repo.ReassignLeader(complaintID, *req.LeaderID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrLeaderNotFound
				}
				return fmt.Errorf("failed to reassign leader: %w", err)
			}
		}
		return nil
	})
}

// GetTeamRoster returns all assignments of a complaint with each worker's
// latest visit detail and materials merged in.
func (s *AssignmentService) GetTeamRoster(complaintID uuid.UUID) ([]RosterEntry, error) {
	assignments, err := s.assignments.GetByComplaintID(complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	entries := make([]RosterEntry, 0, len(assignments))
	for _, a := range assignments {
		entry := RosterEntry{Assignment: s.toResponse(&a)}
		latest, err := s.visits.GetLatestByAssignmentID(a.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load latest visit: %w", err)
		}
		if latest != nil {
			detail := visitToDetail(latest)
			materialIDs, err := s.visits.GetMaterialIDs(latest.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load visit materials: %w", err)
			}
			detail.Materials = materialIDs
			entry.Detail = &detail
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetMine returns the calling worker's assignments
func (s *AssignmentService) GetMine(actor Actor, limit, offset int) ([]AssignmentResponse, int64, error) {
	assignments, total, err := s.assignments.GetByWorkerID(actor.ID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load assignments: %w", err)
	}
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, s.toResponse(&a))
	}
	return responses, total, nil
}

// UpdateStatus drives the assignment lifecycle. Worker actions (start,
// mark_done) require the bound worker; supervisor actions (approve, reopen)
// require the supervisor role. A leader's mark_done additionally reconciles
// every teammate's work sessions against the leader's latest visit window,
// all inside one transaction.
func (s *AssignmentService) UpdateStatus(actor Actor, assignmentID uuid.UUID, req *UpdateStatusRequest) (*StatusResponse, error) {
	action := strings.ToLower(strings.TrimSpace(req.Action))

	assignment, err := s.assignments.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	var nextStatus models.AssignmentStatus
	switch action {
	case "start":
		if assignment.WorkerID != actor.ID {
			return nil, apperrors.ErrNotAssignmentOwner
		}
		if assignment.Status.IsTerminal() {
			return nil, apperrors.NewValidationError("status", apperrors.ErrAssignmentTerminal.Error())
		}
		nextStatus = models.AssignmentStatusInProgress
	case "mark_done":
		if assignment.WorkerID != actor.ID {
			return nil, apperrors.ErrNotAssignmentOwner
		}
		nextStatus = models.AssignmentStatusPendingReview
	case "approve":
		if !actor.IsSupervisor() {
			return nil, apperrors.ErrSupervisorOnly
		}
		nextStatus = models.AssignmentStatusCompleted
	case "reopen":
		if !actor.IsSupervisor() {
			return nil, apperrors.ErrSupervisorOnly
		}
		nextStatus = models.AssignmentStatusInProgress
	default:
		return nil, apperrors.NewValidationError("action", apperrors.ErrInvalidAction.Error())
	}

	// A leader marking done must have a closed visit window before any mutation
	var leaderVisit *models.AssignmentVisit
	if action == "mark_done" && assignment.IsLeader {
		leaderVisit, err = s.visits.GetLatestByAssignmentID(assignment.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load latest visit: %w", err)
		}
		if leaderVisit == nil || !leaderVisit.HasClosedWindow() {
			return nil, apperrors.NewValidationError("visit", apperrors.ErrVisitWindowIncomplete.Error())
		}
	}

	var complaintStatus models.ComplaintStatus
	err = s.db.Transaction(func(tx *gorm.DB) error {
		assignmentRepo := s.assignments.WithTx(tx)
		if err := assignmentRepo.SetStatus(assignment.ID, nextStatus); err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		if leaderVisit != nil {
			if err := s.reconcileTeamSessions(tx, assignment.ComplaintID, leaderVisit, req.Overrides); err != nil {
				return err
			}
		}

		teammates, err := assignmentRepo.GetByComplaintID(assignment.ComplaintID)
		if err != nil {
			return fmt.Errorf("failed to load assignments: %w", err)
		}
		complaintStatus = DeriveComplaintStatus(teammates)
		if err := s.complaints.WithTx(tx).SetStatus(assignment.ComplaintID, complaintStatus); err != nil {
			return fmt.Errorf("failed to update complaint status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &StatusResponse{
		ID:              assignment.ID,
		Status:          nextStatus,
		ComplaintStatus: complaintStatus,
	}, nil
}

// reconcileTeamSessions replaces the work sessions tied to the leader's visit
// for every teammate on the complaint. Per teammate the intervals come from a
// per-worker override when supplied, from a legacy per-assignment override
// otherwise, and default to the leader's own visit window. Replace semantics:
// a teammate's existing sessions on this visit are dropped before the
// surviving intervals are inserted.
func (s *AssignmentService) reconcileTeamSessions(tx *gorm.DB, complaintID uuid.UUID, visit *models.AssignmentVisit, overrides []SessionOverride) error {
	if !visit.HasClosedWindow() {
		return apperrors.NewValidationError("visit", apperrors.ErrVisitWindowIncomplete.Error())
	}

	assignmentRepo := s.assignments.WithTx(tx)
	sessionRepo := s.sessions.WithTx(tx)

	teammates, err := assignmentRepo.GetByComplaintID(complaintID)
	if err != nil {
		return fmt.Errorf("failed to load teammates: %w", err)
	}

	byWorker := make(map[uuid.UUID][]SessionInterval)
	byAssignment := make(map[uuid.UUID]SessionOverride)
	for _, ov := range overrides {
		switch {
		case ov.WorkerID != nil:
			byWorker[*ov.WorkerID] = ov.Intervals
		case ov.AssignmentID != nil:
			byAssignment[*ov.AssignmentID] = ov
		}
	}

	for _, mate := range teammates {
		intervals := s.intervalsFor(mate, visit, byWorker, byAssignment)

		if err := sessionRepo.DeleteByVisitAndWorker(visit.ID, mate.WorkerID); err != nil {
			return fmt.Errorf("failed to replace sessions for worker %s: %w", mate.WorkerID, err)
		}
		visitID := visit.ID
		for _, iv := range intervals {
			session := &models.AssignmentWorkSession{
				AssignmentID: mate.ID,
				WorkerID:     mate.WorkerID,
				VisitID:      &visitID,
				StartAt:      *iv.StartAt,
				EndAt:        *iv.EndAt,
			}
			if err := sessionRepo.Create(session); err != nil {
				return fmt.Errorf("failed to insert session for worker %s: %w", mate.WorkerID, err)
			}
		}
	}
	return nil
}

// intervalsFor resolves the session intervals for one teammate
func (s *AssignmentService) intervalsFor(
	mate models.ComplaintAssignment,
	visit *models.AssignmentVisit,
	byWorker map[uuid.UUID][]SessionInterval,
	byAssignment map[uuid.UUID]SessionOverride,
) []SessionInterval {
	if supplied, ok := byWorker[mate.WorkerID]; ok {
		return cleanIntervals(supplied)
	}

	start, end := *visit.TimeIn, *visit.TimeOut
	if legacy, ok := byAssignment[mate.ID]; ok {
		if legacy.StartAt != nil {
			start = *legacy.StartAt
		}
		if legacy.EndAt != nil {
			end = *legacy.EndAt
		}
	}
	return cleanIntervals([]SessionInterval{{StartAt: &start, EndAt: &end}})
}

// cleanIntervals drops intervals missing either endpoint and inverted
// intervals where end <= start
func cleanIntervals(intervals []SessionInterval) []SessionInterval {
	cleaned := make([]SessionInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.StartAt == nil || iv.EndAt == nil {
			continue
		}
		if !iv.EndAt.After(*iv.StartAt) {
			continue
		}
		cleaned = append(cleaned, iv)
	}
	return cleaned
}

// DeriveComplaintStatus computes the complaint's status from its assignment
// states. Rejected assignments are ignored; a complaint with every remaining
// assignment completed is resolved.
func DeriveComplaintStatus(assignments []models.ComplaintAssignment) models.ComplaintStatus {
	active := 0
	completed := 0
	pendingReview := false
	inProgress := false
	for _, a := range assignments {
		switch a.Status {
		case models.AssignmentStatusRejected:
			continue
		case models.AssignmentStatusCompleted:
			completed++
		case models.AssignmentStatusPendingReview:
			pendingReview = true
		case models.AssignmentStatusInProgress, models.AssignmentStatusAccepted:
			inProgress = true
		}
		active++
	}

	switch {
	case active > 0 && completed == active:
		return models.ComplaintStatusResolved
	case pendingReview:
		return models.ComplaintStatusPendingReview
	case inProgress || completed > 0:
		return models.ComplaintStatusInProgress
	default:
		return models.ComplaintStatusPending
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (s *AssignmentService) toResponse(a *models.ComplaintAssignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:             a.ID,
		ComplaintID:    a.ComplaintID,
		WorkerID:       a.WorkerID,
		Status:         a.Status,
		IsLeader:       a.IsLeader,
		ScheduledStart: a.ScheduledStart,
		ScheduledEnd:   a.ScheduledEnd,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Worker.ID != uuid.Nil {
		resp.WorkerName = a.Worker.Name
		resp.WorkerEmail = a.Worker.Email
	}
	return resp
}
