package testutils

import (
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()

	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email per instance so uniqueIndex never collides across tests
		Email:        "user-" + id.String()[:8] + "@test.com",
		Name:         "Test User",
		Role:         models.ProfileRoleTenant,
		PasswordHash: "$2a$10$invalidhashfortestingonly000000000000000000000000000",
		IsActive:     true,
	}
}

// Tenant creates a tenant profile living in a building room
func (f *ProfileFactory) Tenant() *models.Profile {
	p := f.Create()
	p.Role = models.ProfileRoleTenant
	p.BuildingName = "North Tower"
	p.RoomNumber = "203"
	return p
}

// Worker creates a worker profile
func (f *ProfileFactory) Worker() *models.Profile {
	p := f.Create()
	p.Name = "Test Worker"
	p.Role = models.ProfileRoleWorker
	p.Phone = "+972-50-0000000"
	return p
}

// Supervisor creates a supervisor profile
func (f *ProfileFactory) Supervisor() *models.Profile {
	p := f.Create()
	p.Name = "Test Supervisor"
	p.Role = models.ProfileRoleSupervisor
	return p
}

// WithEmail sets a custom email on a default profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	p := f.Create()
	p.Email = email
	return p
}

// ComplaintTypeFactory provides methods to create test ComplaintType data
type ComplaintTypeFactory struct{}

// NewComplaintTypeFactory creates a new ComplaintTypeFactory
func NewComplaintTypeFactory() *ComplaintTypeFactory {
	return &ComplaintTypeFactory{}
}

// Create creates a test ComplaintType with a unique name
func (f *ComplaintTypeFactory) Create() *models.ComplaintType {
	id := uuid.New()

	return &models.ComplaintType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Plumbing " + id.String()[:8],
	}
}

// ComplaintFactory provides methods to create test Complaint data
type ComplaintFactory struct{}

// NewComplaintFactory creates a new ComplaintFactory
func NewComplaintFactory() *ComplaintFactory {
	return &ComplaintFactory{}
}

// Create creates a test Complaint with default values
func (f *ComplaintFactory) Create(tenantID, typeID uuid.UUID) *models.Complaint {
	return &models.Complaint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    tenantID,
		TypeID:      typeID,
		Description: "Leaking faucet in the kitchen",
		Status:      models.ComplaintStatusPending,
		Priority:    models.ComplaintPriorityMedium,
	}
}

// WithStatus sets a custom status for the complaint
func (f *ComplaintFactory) WithStatus(tenantID, typeID uuid.UUID, status models.ComplaintStatus) *models.Complaint {
	c := f.Create(tenantID, typeID)
	c.Status = status
	return c
}

// AssignmentFactory provides methods to create test ComplaintAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test assignment in the assigned state
func (f *AssignmentFactory) Create(complaintID, workerID, assignedBy uuid.UUID) *models.ComplaintAssignment {
	return &models.ComplaintAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ComplaintID: complaintID,
		WorkerID:    workerID,
		AssignedBy:  assignedBy,
		Status:      models.AssignmentStatusAssigned,
		IsLeader:    false,
	}
}

// Leader creates a leader assignment
func (f *AssignmentFactory) Leader(complaintID, workerID, assignedBy uuid.UUID) *models.ComplaintAssignment {
	a := f.Create(complaintID, workerID, assignedBy)
	a.IsLeader = true
	return a
}

// WithStatus creates an assignment in a specific state
func (f *AssignmentFactory) WithStatus(complaintID, workerID, assignedBy uuid.UUID, status models.AssignmentStatus) *models.ComplaintAssignment {
	a := f.Create(complaintID, workerID, assignedBy)
	a.Status = status
	return a
}

// WithSchedule creates an assignment with a planned time window
func (f *AssignmentFactory) WithSchedule(complaintID, workerID, assignedBy uuid.UUID, start, end time.Time) *models.ComplaintAssignment {
	a := f.Create(complaintID, workerID, assignedBy)
	a.ScheduledStart = &start
	a.ScheduledEnd = &end
	return a
}

// VisitFactory provides methods to create test AssignmentVisit data
type VisitFactory struct{}

// NewVisitFactory creates a new VisitFactory
func NewVisitFactory() *VisitFactory {
	return &VisitFactory{}
}

// Open creates a visit with time_in set and no time_out
func (f *VisitFactory) Open(assignmentID, createdBy uuid.UUID, timeIn time.Time) *models.AssignmentVisit {
	return &models.AssignmentVisit{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AssignmentID: assignmentID,
		TimeIn:       &timeIn,
		CreatedBy:    createdBy,
	}
}

// Closed creates a visit with both window endpoints recorded
func (f *VisitFactory) Closed(assignmentID, createdBy uuid.UUID, timeIn, timeOut time.Time) *models.AssignmentVisit {
	v := f.Open(assignmentID, createdBy, timeIn)
	v.TimeOut = &timeOut
	outcome := models.VisitOutcomeCompleted
	v.Outcome = &outcome
	return v
}

// StoreFactory provides methods to create test Store data
type StoreFactory struct{}

// NewStoreFactory creates a new StoreFactory
func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// Create creates a test Store with a unique name
func (f *StoreFactory) Create() *models.Store {
	id := uuid.New()

	return &models.Store{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Hardware Store " + id.String()[:8],
	}
}

// MaterialFactory provides methods to create test Material data
type MaterialFactory struct{}

// NewMaterialFactory creates a new MaterialFactory
func NewMaterialFactory() *MaterialFactory {
	return &MaterialFactory{}
}

// Create creates a test Material with a unique name
func (f *MaterialFactory) Create() *models.Material {
	id := uuid.New()

	return &models.Material{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Material " + id.String()[:8],
		Unit: "pcs",
	}
}

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a test Building with a unique name
func (f *BuildingFactory) Create() *models.Building {
	id := uuid.New()

	return &models.Building{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Building " + id.String()[:8],
	}
}

// WithRoom creates a room belonging to a building
func (f *BuildingFactory) WithRoom(buildingID uuid.UUID, number string) *models.Room {
	return &models.Room{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BuildingID: buildingID,
		Number:     number,
	}
}
