package service

import (
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// WorkerService serves the supervisor's worker directory and scheduling views
type WorkerService struct {
	profiles    repository.ProfileRepositoryInterface
	assignments *repository.AssignmentRepository
}

// NewWorkerService creates a new worker service
func NewWorkerService(profiles repository.ProfileRepositoryInterface, assignments *repository.AssignmentRepository) *WorkerService {
	return &WorkerService{profiles: profiles, assignments: assignments}
}

// WorkerResponse represents one worker in the directory
type WorkerResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	IsActive bool      `json:"is_active"`
	Busy     bool      `json:"busy,omitempty"`
}

// ListWorkers returns the worker directory
func (s *WorkerService) ListWorkers(limit, offset int) ([]WorkerResponse, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	workers, total, err := s.profiles.GetByRole(models.ProfileRoleWorker, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, WorkerResponse{
			ID:       w.ID,
			Name:     w.Name,
			Email:    w.Email,
			Phone:    w.Phone,
			IsActive: w.IsActive,
		})
	}
	return responses, total, nil
}

// Availability returns the worker directory with each worker flagged busy when
// any of their assignments has a scheduled window overlapping [start, end)
func (s *WorkerService) Availability(start, end time.Time) ([]WorkerResponse, error) {
	if !end.After(start) {
		return nil, apperrors.NewValidationError("end", apperrors.ErrInvalidScheduleRange.Error())
	}

	workers, _, err := s.profiles.GetByRole(models.ProfileRoleWorker, 200, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	scheduled, err := s.assignments.GetScheduledBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled assignments: %w", err)
	}
	busy := make(map[uuid.UUID]bool, len(scheduled))
	for _, a := range scheduled {
		if !a.Status.IsTerminal() {
			busy[a.WorkerID] = true
		}
	}

	responses := make([]WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, WorkerResponse{
			ID:       w.ID,
			Name:     w.Name,
			Email:    w.Email,
			Phone:    w.Phone,
			IsActive: w.IsActive,
			Busy:     busy[w.ID],
		})
	}
	return responses, nil
}
