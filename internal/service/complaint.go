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

// ComplaintService handles business logic for complaint management
type ComplaintService struct {
	complaints  *repository.ComplaintRepository
	assignments *repository.AssignmentRepository
	lookups     repository.LookupRepositoryInterface
	validator   *validator.Validate
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaints *repository.ComplaintRepository,
	assignments *repository.AssignmentRepository,
	lookups repository.LookupRepositoryInterface,
	validator *validator.Validate,
) *ComplaintService {
	return &ComplaintService{
		complaints:  complaints,
		assignments: assignments,
		lookups:     lookups,
		validator:   validator,
	}
}

// CreateComplaintRequest represents the request to file a complaint
type CreateComplaintRequest struct {
	TypeID      uuid.UUID                `json:"type_id" validate:"required"`
	Description string                   `json:"description" validate:"required,min=3,max=2000"`
	Priority    models.ComplaintPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	ImagePath   string                   `json:"image_path" validate:"omitempty,max=500"`
}

// UpdateComplaintRequest represents the supervisor's complaint update. Status
// is not settable: it is derived from assignment states.
type UpdateComplaintRequest struct {
	Priority *models.ComplaintPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status   *string                   `json:"status"`
}

// ComplaintResponse represents the response data for a complaint
type ComplaintResponse struct {
	ID          uuid.UUID                `json:"id"`
	TenantID    uuid.UUID                `json:"tenant_id"`
	TypeID      uuid.UUID                `json:"type_id"`
	TypeName    string                   `json:"type_name,omitempty"`
	Description string                   `json:"description"`
	Status      models.ComplaintStatus   `json:"status"`
	Priority    models.ComplaintPriority `json:"priority"`
	ImagePath   string                   `json:"image_path,omitempty"`
	TenantName  string                   `json:"tenant_name,omitempty"`
	Building    string                   `json:"building,omitempty"`
	Room        string                   `json:"room,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ComplaintListResponse represents a paginated list of complaints
type ComplaintListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int64               `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// CreateComplaint files a new complaint on behalf of the calling tenant
func (s *ComplaintService) CreateComplaint(actor Actor, req *CreateComplaintRequest) (*ComplaintResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.verifyType(req.TypeID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.ComplaintPriorityMedium
	}

	complaint := &models.Complaint{
		TenantID:    actor.ID,
		TypeID:      req.TypeID,
		Description: req.Description,
		Status:      models.ComplaintStatusPending,
		Priority:    priority,
		ImagePath:   req.ImagePath,
	}
	if err := s.complaints.Create(complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	response := toComplaintResponse(complaint)
	return &response, nil
}

// GetComplaint retrieves one complaint. Tenants only see their own.
func (s *ComplaintService) GetComplaint(actor Actor, id uuid.UUID) (*ComplaintResponse, error) {
	complaint, err := s.complaints.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	if actor.Role == models.ProfileRoleTenant && complaint.TenantID != actor.ID {
		return nil, apperrors.ErrComplaintNotFound
	}
	response := toComplaintResponse(complaint)
	return &response, nil
}

// GetMyComplaints returns the calling tenant's complaints, newest first
func (s *ComplaintService) GetMyComplaints(actor Actor) ([]ComplaintResponse, error) {
	complaints, err := s.complaints.GetByTenantID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaints: %w", err)
	}
	responses := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		responses = append(responses, toComplaintResponse(&complaints[i]))
	}
	return responses, nil
}

// GetAllComplaints returns all complaints for the supervisor board
func (s *ComplaintService) GetAllComplaints(limit, offset int) (*ComplaintListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	complaints, total, err := s.complaints.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaints: %w", err)
	}
	responses := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		responses = append(responses, toComplaintResponse(&complaints[i]))
	}
	return &ComplaintListResponse{
		Complaints: responses,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateComplaint applies a supervisor edit to a complaint. Only priority is
// editable; a request carrying status is rejected outright since status is
// derived from assignment states.
func (s *ComplaintService) UpdateComplaint(id uuid.UUID, req *UpdateComplaintRequest) (*ComplaintResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Status != nil {
		return nil, apperrors.NewValidationError("status", apperrors.ErrComplaintStatusDerived.Error())
	}
	if req.Priority == nil {
		return nil, apperrors.NewValidationError("priority", apperrors.ErrNoFieldsToUpdate.Error())
	}

	if _, err := s.complaints.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	updates := map[string]interface{}{"priority": *req.Priority}
	if err := s.complaints.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}

	updated, err := s.complaints.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload complaint: %w", err)
	}
	response := toComplaintResponse(updated)
	return &response, nil
}

func (s *ComplaintService) verifyType(typeID uuid.UUID) error {
	types, err := s.lookups.GetComplaintTypes()
	if err != nil {
		return fmt.Errorf("failed to load complaint types: %w", err)
	}
	for _, t := range types {
		if t.ID == typeID {
			return nil
		}
	}
	return apperrors.ErrComplaintTypeNotFound
}

func toComplaintResponse(c *models.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		TypeID:      c.TypeID,
		Description: c.Description,
		Status:      c.Status,
		Priority:    c.Priority,
		ImagePath:   c.ImagePath,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Type.ID != uuid.Nil {
		resp.TypeName = c.Type.Name
	}
	if c.Tenant.ID != uuid.Nil {
		resp.TenantName = c.Tenant.Name
		resp.Building = c.Tenant.BuildingName
		resp.Room = c.Tenant.RoomNumber
	}
	return resp
}
