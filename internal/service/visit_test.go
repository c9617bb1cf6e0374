package service_test

import (
	"testing"
	"time"

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

type VisitServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	visitRepo    *repository.VisitRepository
	sessionRepo  *repository.WorkSessionRepository
	visitService *service.VisitService

	worker     *models.Profile
	supervisor *models.Profile
	assignment *models.ComplaintAssignment
	store      *models.Store
	materials  []*models.Material
}

func (suite *VisitServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLiteDB(suite.T())
	suite.visitRepo = repository.NewVisitRepository(suite.db)
	suite.sessionRepo = repository.NewWorkSessionRepository(suite.db)
	assignmentRepo := repository.NewAssignmentRepository(suite.db)
	suite.visitService = service.NewVisitService(suite.db, suite.visitRepo, assignmentRepo, suite.sessionRepo, repository.NewLookupRepository(suite.db), validator.New())

	profiles := testutils.NewProfileFactory()
	suite.worker = profiles.Worker()
	require.NoError(suite.T(), suite.db.Create(suite.worker).Error)
	suite.supervisor = profiles.Supervisor()
	require.NoError(suite.T(), suite.db.Create(suite.supervisor).Error)

	tenant := profiles.Tenant()
	require.NoError(suite.T(), suite.db.Create(tenant).Error)
	complaintType := testutils.NewComplaintTypeFactory().Create()
	require.NoError(suite.T(), suite.db.Create(complaintType).Error)
	complaint := testutils.NewComplaintFactory().Create(tenant.ID, complaintType.ID)
	require.NoError(suite.T(), suite.db.Create(complaint).Error)

	suite.assignment = testutils.NewAssignmentFactory().Leader(complaint.ID, suite.worker.ID, suite.supervisor.ID)
	require.NoError(suite.T(), suite.db.Create(suite.assignment).Error)

	suite.store = testutils.NewStoreFactory().Create()
	require.NoError(suite.T(), suite.db.Create(suite.store).Error)
	materials := testutils.NewMaterialFactory()
	suite.materials = nil
	for i := 0; i < 3; i++ {
		m := materials.Create()
		require.NoError(suite.T(), suite.db.Create(m).Error)
		suite.materials = append(suite.materials, m)
	}
}

func (suite *VisitServiceTestSuite) actor() service.Actor {
	return service.Actor{ID: suite.worker.ID, Email: suite.worker.Email, Role: models.ProfileRoleWorker}
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_OpensVisitOnFirstWrite() {
	note := "tenant not home, came back later"
	detail, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		StoreID: &suite.store.ID,
		Note:    &note,
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), detail)
	assert.NotNil(suite.T(), detail.TimeIn)
	assert.Nil(suite.T(), detail.TimeOut)
	assert.Equal(suite.T(), suite.store.ID, *detail.StoreID)
	assert.Equal(suite.T(), note, detail.Note)

	// a second write lands on the same open visit
	timeOut := time.Now().UTC().Add(time.Hour)
	second, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		TimeOut: &timeOut,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), detail.ID, second.ID)
	require.NotNil(suite.T(), second.Outcome)
	assert.Equal(suite.T(), models.VisitOutcomeCompleted, *second.Outcome)
	assert.Equal(suite.T(), suite.store.ID, *second.StoreID)

	// the visit is closed now, so the next write opens a fresh one
	third, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{})
	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), detail.ID, third.ID)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_NeedsRevisitAutoCloses() {
	needsRevisit := true
	detail, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		NeedsRevisit: &needsRevisit,
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), detail.TimeOut)
	require.NotNil(suite.T(), detail.Outcome)
	assert.Equal(suite.T(), models.VisitOutcomeRevisit, *detail.Outcome)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_ExplicitTimeOutWinsOverRevisit() {
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(time.Hour)
	needsRevisit := true
	detail, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		TimeIn:       &timeIn,
		TimeOut:      &timeOut,
		NeedsRevisit: &needsRevisit,
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), detail.TimeOut)
	assert.True(suite.T(), detail.TimeOut.Equal(timeOut))
	require.NotNil(suite.T(), detail.Outcome)
	assert.Equal(suite.T(), models.VisitOutcomeCompleted, *detail.Outcome)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_RejectsInvertedWindow() {
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(-time.Minute)
	_, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		TimeIn:  &timeIn,
		TimeOut: &timeOut,
	})
	assert.True(suite.T(), apperrors.IsValidation(err))

	// the rejected write must not have opened a visit
	_, err = suite.visitRepo.GetLatestByAssignmentID(suite.assignment.ID)
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_MaterialsFullReplace() {
	first := []uuid.UUID{suite.materials[0].ID, suite.materials[1].ID}
	detail, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		Materials: &first,
	})
	require.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), first, detail.Materials)

	// absent materials field leaves the list untouched
	detail, err = suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{})
	require.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), first, detail.Materials)

	// present field replaces wholesale, including shrinking to one entry
	second := []uuid.UUID{suite.materials[2].ID}
	detail, err = suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		Materials: &second,
	})
	require.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), second, detail.Materials)

	// empty present list clears everything
	empty := []uuid.UUID{}
	detail, err = suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		Materials: &empty,
	})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), detail.Materials)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_UnknownStore() {
	unknown := uuid.New()
	_, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		StoreID: &unknown,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrStoreNotFound)

	// the rejected write must not have opened a visit
	_, err = suite.visitRepo.GetLatestByAssignmentID(suite.assignment.ID)
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_UnknownMaterial() {
	materials := []uuid.UUID{suite.materials[0].ID, uuid.New()}
	_, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{
		Materials: &materials,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMaterialNotFound)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_OwnerOnly() {
	profiles := testutils.NewProfileFactory()
	other := profiles.Worker()
	require.NoError(suite.T(), suite.db.Create(other).Error)

	_, err := suite.visitService.UpdateDetail(service.Actor{ID: other.ID, Role: models.ProfileRoleWorker}, suite.assignment.ID, &service.UpdateDetailRequest{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAssignmentOwner)
}

func (suite *VisitServiceTestSuite) TestUpdateDetail_TerminalAssignmentRejected() {
	require.NoError(suite.T(), repository.NewAssignmentRepository(suite.db).SetStatus(suite.assignment.ID, models.AssignmentStatusCompleted))

	_, err := suite.visitService.UpdateDetail(suite.actor(), suite.assignment.ID, &service.UpdateDetailRequest{})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VisitServiceTestSuite) TestGetDetail_SplitsCurrentAndHistory() {
	visits := testutils.NewVisitFactory()
	t0 := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	older := visits.Closed(suite.assignment.ID, suite.worker.ID, t0, t0.Add(time.Hour))
	older.CreatedAt = t0
	older.UpdatedAt = t0
	require.NoError(suite.T(), suite.db.Create(older).Error)

	t1 := t0.Add(24 * time.Hour)
	newer := visits.Open(suite.assignment.ID, suite.worker.ID, t1)
	newer.CreatedAt = t1
	newer.UpdatedAt = t1
	require.NoError(suite.T(), suite.db.Create(newer).Error)

	session := &models.AssignmentWorkSession{
		AssignmentID: suite.assignment.ID,
		WorkerID:     suite.worker.ID,
		VisitID:      &older.ID,
		StartAt:      t0,
		EndAt:        t0.Add(time.Hour),
	}
	require.NoError(suite.T(), suite.sessionRepo.Create(session))

	resp, err := suite.visitService.GetDetail(suite.actor(), suite.assignment.ID)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.Current)
	assert.Equal(suite.T(), newer.ID, resp.Current.ID)
	require.Len(suite.T(), resp.History, 1)
	assert.Equal(suite.T(), older.ID, resp.History[0].ID)
	require.Len(suite.T(), resp.Sessions, 1)
	assert.Equal(suite.T(), 60, resp.Sessions[0].Minutes)
}

func (suite *VisitServiceTestSuite) TestGetDetail_VisibleToSupervisor() {
	supervisorActor := service.Actor{ID: suite.supervisor.ID, Role: models.ProfileRoleSupervisor}
	resp, err := suite.visitService.GetDetail(supervisorActor, suite.assignment.ID)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.Current)

	profiles := testutils.NewProfileFactory()
	stranger := profiles.Worker()
	require.NoError(suite.T(), suite.db.Create(stranger).Error)
	_, err = suite.visitService.GetDetail(service.Actor{ID: stranger.ID, Role: models.ProfileRoleWorker}, suite.assignment.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAssignmentOwner)
}

func TestVisitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VisitServiceTestSuite))
}
