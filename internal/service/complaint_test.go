package service_test

import (
	"testing"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"
	"maintenance-portal-backend/internal/service"
	"maintenance-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ComplaintServiceTestSuite struct {
	suite.Suite
	db               *gorm.DB
	complaintService *service.ComplaintService

	tenant        *models.Profile
	supervisor    *models.Profile
	complaintType *models.ComplaintType
}

func (suite *ComplaintServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLiteDB(suite.T())
	suite.complaintService = service.NewComplaintService(
		repository.NewComplaintRepository(suite.db),
		repository.NewAssignmentRepository(suite.db),
		repository.NewLookupRepository(suite.db),
		validator.New(),
	)

	profiles := testutils.NewProfileFactory()
	suite.tenant = profiles.Tenant()
	require.NoError(suite.T(), suite.db.Create(suite.tenant).Error)
	suite.supervisor = profiles.Supervisor()
	require.NoError(suite.T(), suite.db.Create(suite.supervisor).Error)

	suite.complaintType = testutils.NewComplaintTypeFactory().Create()
	require.NoError(suite.T(), suite.db.Create(suite.complaintType).Error)
}

func (suite *ComplaintServiceTestSuite) tenantActor() service.Actor {
	return service.Actor{ID: suite.tenant.ID, Email: suite.tenant.Email, Role: models.ProfileRoleTenant}
}

func (suite *ComplaintServiceTestSuite) TestCreateComplaint_Success() {
	resp, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      suite.complaintType.ID,
		Description: "Radiator is cold in the living room",
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.tenant.ID, resp.TenantID)
	assert.Equal(suite.T(), models.ComplaintStatusPending, resp.Status)
	assert.Equal(suite.T(), models.ComplaintPriorityMedium, resp.Priority)
}

func (suite *ComplaintServiceTestSuite) TestCreateComplaint_UnknownType() {
	_, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      uuid.New(),
		Description: "Radiator is cold in the living room",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrComplaintTypeNotFound)
}

func (suite *ComplaintServiceTestSuite) TestCreateComplaint_DescriptionRequired() {
	_, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID: suite.complaintType.ID,
	})
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "Description")
}

func (suite *ComplaintServiceTestSuite) TestCreateComplaint_DescriptionTooShort() {
	_, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      suite.complaintType.ID,
		Description: "ab",
	})
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ComplaintServiceTestSuite) TestGetComplaint_TenantScoping() {
	created, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      suite.complaintType.ID,
		Description: "Window latch broken",
	})
	require.NoError(suite.T(), err)

	// the owner sees it
	got, err := suite.complaintService.GetComplaint(suite.tenantActor(), created.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ID, got.ID)

	// another tenant gets a not-found, not a forbidden
	profiles := testutils.NewProfileFactory()
	other := profiles.Tenant()
	require.NoError(suite.T(), suite.db.Create(other).Error)
	otherActor := service.Actor{ID: other.ID, Role: models.ProfileRoleTenant}
	_, err = suite.complaintService.GetComplaint(otherActor, created.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrComplaintNotFound)

	// the supervisor sees everything
	supervisorActor := service.Actor{ID: suite.supervisor.ID, Role: models.ProfileRoleSupervisor}
	got, err = suite.complaintService.GetComplaint(supervisorActor, created.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ID, got.ID)
}

func (suite *ComplaintServiceTestSuite) TestGetMyComplaints() {
	for _, desc := range []string{"first issue report", "second issue report"} {
		_, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
			TypeID:      suite.complaintType.ID,
			Description: desc,
		})
		require.NoError(suite.T(), err)
	}

	mine, err := suite.complaintService.GetMyComplaints(suite.tenantActor())
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), mine, 2)
}

func (suite *ComplaintServiceTestSuite) TestGetAllComplaints_ClampsLimit() {
	_, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      suite.complaintType.ID,
		Description: "Hallway light flickering",
	})
	require.NoError(suite.T(), err)

	resp, err := suite.complaintService.GetAllComplaints(0, -5)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 50, resp.Limit)
	assert.Equal(suite.T(), 0, resp.Offset)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Complaints, 1)
}

func (suite *ComplaintServiceTestSuite) TestUpdateComplaint_StatusIsDerived() {
	created, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      suite.complaintType.ID,
		Description: "Front door intercom dead",
	})
	require.NoError(suite.T(), err)

	status := "resolved"
	_, err = suite.complaintService.UpdateComplaint(created.ID, &service.UpdateComplaintRequest{Status: &status})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ComplaintServiceTestSuite) TestUpdateComplaint_Priority() {
	created, err := suite.complaintService.CreateComplaint(suite.tenantActor(), &service.CreateComplaintRequest{
		TypeID:      suite.complaintType.ID,
		Description: "Front door intercom dead",
	})
	require.NoError(suite.T(), err)

	high := models.ComplaintPriorityHigh
	updated, err := suite.complaintService.UpdateComplaint(created.ID, &service.UpdateComplaintRequest{Priority: &high})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ComplaintPriorityHigh, updated.Priority)

	// an empty update is rejected rather than silently accepted
	_, err = suite.complaintService.UpdateComplaint(created.ID, &service.UpdateComplaintRequest{})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestComplaintServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComplaintServiceTestSuite))
}
