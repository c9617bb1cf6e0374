package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitService handles business logic for assignment visits: the per-visit
// work detail (store, time window, materials, revisit flag) and visit history.
type VisitService struct {
	db          *gorm.DB
	visits      *repository.VisitRepository
	assignments *repository.AssignmentRepository
	sessions    repository.WorkSessionRepositoryInterface
	lookups     repository.LookupRepositoryInterface
	validator   *validator.Validate
}

// NewVisitService creates a new visit service
func NewVisitService(
	db *gorm.DB,
	visits *repository.VisitRepository,
	assignments *repository.AssignmentRepository,
	sessions repository.WorkSessionRepositoryInterface,
	lookups repository.LookupRepositoryInterface,
	validator *validator.Validate,
) *VisitService {
	return &VisitService{
		db:          db,
		visits:      visits,
		assignments: assignments,
		sessions:    sessions,
		lookups:     lookups,
		validator:   validator,
	}
}

// UpdateDetailRequest represents the worker-submitted visit detail. Absent
// fields leave the stored value untouched.
type UpdateDetailRequest struct {
	StoreID      *uuid.UUID   `json:"store_id"`
	TimeIn       *time.Time   `json:"time_in"`
	TimeOut      *time.Time   `json:"time_out"`
	NeedsRevisit *bool        `json:"needs_revisit"`
	Note         *string      `json:"note" validate:"omitempty,max=2000"`
	Materials    *[]uuid.UUID `json:"materials"`
}

// VisitDetailResponse represents one visit's detail
type VisitDetailResponse struct {
	ID        uuid.UUID           `json:"id"`
	StoreID   *uuid.UUID          `json:"store_id,omitempty"`
	TimeIn    *time.Time          `json:"time_in,omitempty"`
	TimeOut   *time.Time          `json:"time_out,omitempty"`
	Outcome   *models.VisitOutcome `json:"outcome,omitempty"`
	Note      string              `json:"note,omitempty"`
	Materials []uuid.UUID         `json:"materials"`
	CreatedAt time.Time           `json:"created_at"`
}

// SessionResponse represents one reconciled work session
type SessionResponse struct {
	ID      uuid.UUID  `json:"id"`
	VisitID *uuid.UUID `json:"visit_id,omitempty"`
	StartAt time.Time  `json:"start_at"`
	EndAt   time.Time  `json:"end_at"`
	Minutes int        `json:"minutes"`
}

// RosterEntry pairs an assignment with its latest visit detail
type RosterEntry struct {
	Assignment AssignmentResponse   `json:"assignment"`
	Detail     *VisitDetailResponse `json:"detail,omitempty"`
}

// AssignmentDetailResponse aggregates everything a worker sees on one
// assignment: the current visit, prior visits and reconciled sessions.
type AssignmentDetailResponse struct {
	Assignment AssignmentResponse    `json:"assignment"`
	Current    *VisitDetailResponse  `json:"current,omitempty"`
	History    []VisitDetailResponse `json:"history"`
	Sessions   []SessionResponse     `json:"sessions"`
}

// UpdateDetail upserts the visit detail of an assignment. Writes land on the
// open visit when one exists, otherwise a new visit is opened. Sending
// needs_revisit without an explicit time_out closes the visit at the current
// time with outcome revisit; an explicit time_out always wins over the
// auto-close and yields outcome completed.
func (s *VisitService) UpdateDetail(actor Actor, assignmentID uuid.UUID, req *UpdateDetailRequest) (*VisitDetailResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	assignment, err := s.assignments.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.WorkerID != actor.ID {
		return nil, apperrors.ErrNotAssignmentOwner
	}
	if assignment.Status.IsTerminal() {
		return nil, apperrors.NewValidationError("status", apperrors.ErrAssignmentTerminal.Error())
	}

	if req.StoreID != nil {
		exists, err := s.lookups.StoreExists(*req.StoreID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify store: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrStoreNotFound
		}
	}
	if req.Materials != nil && len(*req.Materials) > 0 {
		count, err := s.lookups.CountMaterials(*req.Materials)
		if err != nil {
			return nil, fmt.Errorf("failed to verify materials: %w", err)
		}
		if count != int64(len(*req.Materials)) {
			return nil, apperrors.ErrMaterialNotFound
		}
	}

	var response *VisitDetailResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		visitRepo := s.visits.WithTx(tx)

		visit, err := visitRepo.GetOpenByAssignmentID(assignmentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load open visit: %w", err)
		}
		created := false
		if visit == nil {
			now := time.Now().UTC()
			visit = &models.AssignmentVisit{
				AssignmentID: assignmentID,
				TimeIn:       &now,
				CreatedBy:    actor.ID,
			}
			created = true
		}

		if req.StoreID != nil {
			visit.StoreID = req.StoreID
		}
		if req.TimeIn != nil {
			visit.TimeIn = req.TimeIn
		}
		if req.TimeOut != nil {
			visit.TimeOut = req.TimeOut
		}
		if req.Note != nil {
			visit.Note = *req.Note
		}

		if visit.TimeIn != nil && visit.TimeOut != nil && !visit.TimeOut.After(*visit.TimeIn) {
			return apperrors.NewValidationError("time_out", apperrors.ErrInvalidTimeRange.Error())
		}

		if req.NeedsRevisit != nil && *req.NeedsRevisit && req.TimeOut == nil {
			now := time.Now().UTC()
			visit.TimeOut = &now
			outcome := models.VisitOutcomeRevisit
			visit.Outcome = &outcome
		} else if visit.TimeOut != nil {
			outcome := models.VisitOutcomeCompleted
			visit.Outcome = &outcome
		}

		if created {
			if err := visitRepo.Create(visit); err != nil {
				return fmt.Errorf("failed to create visit: %w", err)
			}
		} else {
			if err := visitRepo.Update(visit); err != nil {
				return fmt.Errorf("failed to update visit: %w", err)
			}
		}

		if req.Materials != nil {
			if err := visitRepo.ReplaceMaterials(visit.ID, *req.Materials); err != nil {
				return fmt.Errorf("failed to replace materials: %w", err)
			}
		}

		materialIDs, err := visitRepo.GetMaterialIDs(visit.ID)
		if err != nil {
			return fmt.Errorf("failed to load materials: %w", err)
		}
		detail := visitToDetail(visit)
		detail.Materials = materialIDs
		response = &detail
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetDetail returns the full detail view of an assignment: the latest visit,
// visit history and reconciled work sessions. Visible to the bound worker and
// to supervisors.
func (s *VisitService) GetDetail(actor Actor, assignmentID uuid.UUID) (*AssignmentDetailResponse, error) {
	assignment, err := s.assignments.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.WorkerID != actor.ID && !actor.IsSupervisor() {
		return nil, apperrors.ErrNotAssignmentOwner
	}

	response := &AssignmentDetailResponse{
		Assignment: AssignmentResponse{
			ID:             assignment.ID,
			ComplaintID:    assignment.ComplaintID,
			WorkerID:       assignment.WorkerID,
			Status:         assignment.Status,
			IsLeader:       assignment.IsLeader,
			ScheduledStart: assignment.ScheduledStart,
			ScheduledEnd:   assignment.ScheduledEnd,
			CreatedAt:      assignment.CreatedAt,
			UpdatedAt:      assignment.UpdatedAt,
		},
		History:  []VisitDetailResponse{},
		Sessions: []SessionResponse{},
	}

	visits, err := s.visits.GetHistoryByAssignmentID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visit history: %w", err)
	}
	for i := range visits {
		detail := visitToDetail(&visits[i])
		materialIDs, err := s.visits.GetMaterialIDs(visits[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load materials: %w", err)
		}
		detail.Materials = materialIDs
		if i == 0 {
			current := detail
			response.Current = &current
		} else {
			response.History = append(response.History, detail)
		}
	}

	sessions, err := s.sessions.GetByAssignmentID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	for _, session := range sessions {
		response.Sessions = append(response.Sessions, SessionResponse{
			ID:      session.ID,
			VisitID: session.VisitID,
			StartAt: session.StartAt,
			EndAt:   session.EndAt,
			Minutes: session.Minutes(),
		})
	}

	return response, nil
}

func visitToDetail(visit *models.AssignmentVisit) VisitDetailResponse {
	return VisitDetailResponse{
		ID:        visit.ID,
		StoreID:   visit.StoreID,
		TimeIn:    visit.TimeIn,
		TimeOut:   visit.TimeOut,
		Outcome:   visit.Outcome,
		Note:      visit.Note,
		Materials: []uuid.UUID{},
		CreatedAt: visit.CreatedAt,
	}
}
