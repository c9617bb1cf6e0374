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

type AssignmentServiceTestSuite struct {
	suite.Suite
	db                *gorm.DB
	assignmentRepo    *repository.AssignmentRepository
	visitRepo         *repository.VisitRepository
	sessionRepo       *repository.WorkSessionRepository
	complaintRepo     *repository.ComplaintRepository
	assignmentService *service.AssignmentService

	profileFactory    *testutils.ProfileFactory
	typeFactory       *testutils.ComplaintTypeFactory
	complaintFactory  *testutils.ComplaintFactory
	assignmentFactory *testutils.AssignmentFactory
	visitFactory      *testutils.VisitFactory

	supervisor *models.Profile
	tenant     *models.Profile
	complaint  *models.Complaint
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLiteDB(suite.T())
	suite.assignmentRepo = repository.NewAssignmentRepository(suite.db)
	suite.visitRepo = repository.NewVisitRepository(suite.db)
	suite.sessionRepo = repository.NewWorkSessionRepository(suite.db)
	suite.complaintRepo = repository.NewComplaintRepository(suite.db)
	suite.assignmentService = service.NewAssignmentService(
		suite.db,
		suite.assignmentRepo,
		suite.visitRepo,
		suite.sessionRepo,
		suite.complaintRepo,
		repository.NewProfileRepository(suite.db),
		validator.New(),
	)

	suite.profileFactory = testutils.NewProfileFactory()
	suite.typeFactory = testutils.NewComplaintTypeFactory()
	suite.complaintFactory = testutils.NewComplaintFactory()
	suite.assignmentFactory = testutils.NewAssignmentFactory()
	suite.visitFactory = testutils.NewVisitFactory()

	suite.supervisor = suite.profileFactory.Supervisor()
	require.NoError(suite.T(), suite.db.Create(suite.supervisor).Error)
	suite.tenant = suite.profileFactory.Tenant()
	require.NoError(suite.T(), suite.db.Create(suite.tenant).Error)

	complaintType := suite.typeFactory.Create()
	require.NoError(suite.T(), suite.db.Create(complaintType).Error)
	suite.complaint = suite.complaintFactory.Create(suite.tenant.ID, complaintType.ID)
	require.NoError(suite.T(), suite.db.Create(suite.complaint).Error)
}

func (suite *AssignmentServiceTestSuite) supervisorActor() service.Actor {
	return service.Actor{ID: suite.supervisor.ID, Email: suite.supervisor.Email, Role: models.ProfileRoleSupervisor}
}

func workerActor(p *models.Profile) service.Actor {
	return service.Actor{ID: p.ID, Email: p.Email, Role: models.ProfileRoleWorker}
}

func (suite *AssignmentServiceTestSuite) createWorker() *models.Profile {
	worker := suite.profileFactory.Worker()
	require.NoError(suite.T(), suite.db.Create(worker).Error)
	return worker
}

// seedTeam creates a leader and n-1 extra workers already assigned to the suite complaint
func (suite *AssignmentServiceTestSuite) seedTeam(n int) ([]*models.Profile, []*models.ComplaintAssignment) {
	workers := make([]*models.Profile, 0, n)
	assignments := make([]*models.ComplaintAssignment, 0, n)
	for i := 0; i < n; i++ {
		worker := suite.createWorker()
		var a *models.ComplaintAssignment
		if i == 0 {
			a = suite.assignmentFactory.Leader(suite.complaint.ID, worker.ID, suite.supervisor.ID)
		} else {
			a = suite.assignmentFactory.Create(suite.complaint.ID, worker.ID, suite.supervisor.ID)
		}
		require.NoError(suite.T(), suite.db.Create(a).Error)
		workers = append(workers, worker)
		assignments = append(assignments, a)
	}
	return workers, assignments
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkers_FirstBatchRequiresLeader() {
	worker := suite.createWorker()

	_, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{worker.ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderRequired)

	// A leader outside the batch is just as invalid
	outsider := uuid.New()
	_, err = suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{worker.ID},
		LeaderID:  &outsider,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderRequired)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkers_Success() {
	leader := suite.createWorker()
	mate := suite.createWorker()

	responses, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{leader.ID, mate.ID},
		LeaderID:  &leader.ID,
	})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), responses, 2)

	leaderCount := 0
	for _, r := range responses {
		assert.Equal(suite.T(), models.AssignmentStatusAssigned, r.Status)
		assert.Equal(suite.T(), suite.complaint.ID, r.ComplaintID)
		if r.IsLeader {
			leaderCount++
			assert.Equal(suite.T(), leader.ID, r.WorkerID)
		}
	}
	assert.Equal(suite.T(), 1, leaderCount)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkers_SecondBatchLeaderConflict() {
	suite.seedTeam(1)
	newcomer := suite.createWorker()

	_, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{newcomer.ID},
		LeaderID:  &newcomer.ID,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderConflict)

	// Omitting the leader in a later batch is fine; the newcomer joins unflagged
	responses, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{newcomer.ID},
	})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), responses, 1)
	assert.False(suite.T(), responses[0].IsLeader)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkers_DuplicateWorker() {
	workers, assignments := suite.seedTeam(2)

	_, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{workers[1].ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExists)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))

	// A rejected worker may be assigned again
	require.NoError(suite.T(), suite.assignmentRepo.SetStatus(assignments[1].ID, models.AssignmentStatusRejected))
	responses, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs: []uuid.UUID{workers[1].ID},
	})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), responses, 1)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkers_MissingWorkerIDs() {
	_, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{})
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkers_InvalidScheduleRange() {
	worker := suite.createWorker()
	start := time.Now().UTC()
	end := start.Add(-time.Hour)

	_, err := suite.assignmentService.AssignWorkers(suite.supervisorActor(), suite.complaint.ID, &service.AssignWorkersRequest{
		WorkerIDs:      []uuid.UUID{worker.ID},
		LeaderID:       &worker.ID,
		ScheduledStart: &start,
		ScheduledEnd:   &end,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidScheduleRange)
}

func (suite *AssignmentServiceTestSuite) TestUpdateAssignments_LeaderMustRemain() {
	_, assignments := suite.seedTeam(2)

	err := suite.assignmentService.UpdateAssignments(suite.supervisorActor(), suite.complaint.ID, &service.UpdateAssignmentsRequest{
		RemoveAssignmentIDs: []uuid.UUID{assignments[0].ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderMustRemain)
}

func (suite *AssignmentServiceTestSuite) TestUpdateAssignments_LeaderNotAmongRemaining() {
	workers, assignments := suite.seedTeam(2)

	err := suite.assignmentService.UpdateAssignments(suite.supervisorActor(), suite.complaint.ID, &service.UpdateAssignmentsRequest{
		LeaderID:            &workers[1].ID,
		RemoveAssignmentIDs: []uuid.UUID{assignments[1].ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderNotAmongRemaining)
}

func (suite *AssignmentServiceTestSuite) TestUpdateAssignments_RemoveLeaderAndPromote() {
	workers, assignments := suite.seedTeam(3)

	err := suite.assignmentService.UpdateAssignments(suite.supervisorActor(), suite.complaint.ID, &service.UpdateAssignmentsRequest{
		LeaderID:            &workers[1].ID,
		RemoveAssignmentIDs: []uuid.UUID{assignments[0].ID},
	})
	require.NoError(suite.T(), err)

	remaining, err := suite.assignmentRepo.GetByComplaintID(suite.complaint.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), remaining, 2)

	leaders := 0
	for _, a := range remaining {
		assert.NotEqual(suite.T(), assignments[0].ID, a.ID)
		if a.IsLeader {
			leaders++
			assert.Equal(suite.T(), workers[1].ID, a.WorkerID)
		}
	}
	assert.Equal(suite.T(), 1, leaders)
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_OwnerGating() {
	workers, assignments := suite.seedTeam(2)

	// start by a worker who is not bound to the assignment
	_, err := suite.assignmentService.UpdateStatus(workerActor(workers[1]), assignments[0].ID, &service.UpdateStatusRequest{Action: "start"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAssignmentOwner)

	// approve by a worker
	_, err = suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{Action: "approve"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrSupervisorOnly)

	// unknown action
	_, err = suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{Action: "escalate"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_StartOnTerminalAssignment() {
	worker := suite.createWorker()
	a := suite.assignmentFactory.WithStatus(suite.complaint.ID, worker.ID, suite.supervisor.ID, models.AssignmentStatusCompleted)
	a.IsLeader = true
	require.NoError(suite.T(), suite.db.Create(a).Error)

	_, err := suite.assignmentService.UpdateStatus(workerActor(worker), a.ID, &service.UpdateStatusRequest{Action: "start"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_Start() {
	workers, assignments := suite.seedTeam(1)

	resp, err := suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{Action: "start"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusInProgress, resp.Status)
	assert.Equal(suite.T(), models.ComplaintStatusInProgress, resp.ComplaintStatus)

	reloaded, err := suite.complaintRepo.GetByID(suite.complaint.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ComplaintStatusInProgress, reloaded.Status)
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_LeaderMarkDoneRequiresClosedWindow() {
	workers, assignments := suite.seedTeam(1)

	// no visit at all
	_, err := suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{Action: "mark_done"})
	assert.True(suite.T(), apperrors.IsValidation(err))

	// open visit, time_out missing
	open := suite.visitFactory.Open(assignments[0].ID, workers[0].ID, time.Now().UTC().Add(-time.Hour))
	require.NoError(suite.T(), suite.db.Create(open).Error)
	_, err = suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{Action: "mark_done"})
	assert.True(suite.T(), apperrors.IsValidation(err))

	// no sessions must have been written by the failed attempts
	sessions, err := suite.sessionRepo.GetByAssignmentID(assignments[0].ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), sessions)
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_NonLeaderMarkDoneSkipsReconciliation() {
	workers, assignments := suite.seedTeam(2)

	resp, err := suite.assignmentService.UpdateStatus(workerActor(workers[1]), assignments[1].ID, &service.UpdateStatusRequest{Action: "mark_done"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusPendingReview, resp.Status)
	assert.Equal(suite.T(), models.ComplaintStatusPendingReview, resp.ComplaintStatus)

	sessions, err := suite.sessionRepo.GetByAssignmentID(assignments[1].ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), sessions)
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_LeaderMarkDoneDefaultWindowFanOut() {
	workers, assignments := suite.seedTeam(3)
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(2 * time.Hour)
	visit := suite.visitFactory.Closed(assignments[0].ID, workers[0].ID, timeIn, timeOut)
	require.NoError(suite.T(), suite.db.Create(visit).Error)

	resp, err := suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{Action: "mark_done"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusPendingReview, resp.Status)
	assert.Equal(suite.T(), models.ComplaintStatusPendingReview, resp.ComplaintStatus)

	// every teammate inherits the leader's window
	for i, a := range assignments {
		sessions, err := suite.sessionRepo.GetByAssignmentID(a.ID)
		require.NoError(suite.T(), err)
		require.Len(suite.T(), sessions, 1, "teammate %d", i)
		assert.Equal(suite.T(), workers[i].ID, sessions[0].WorkerID)
		require.NotNil(suite.T(), sessions[0].VisitID)
		assert.Equal(suite.T(), visit.ID, *sessions[0].VisitID)
		assert.True(suite.T(), sessions[0].StartAt.Equal(timeIn))
		assert.True(suite.T(), sessions[0].EndAt.Equal(timeOut))
		assert.Equal(suite.T(), 120, sessions[0].Minutes())
	}
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_LeaderMarkDonePerWorkerOverride() {
	workers, assignments := suite.seedTeam(2)
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(4 * time.Hour)
	visit := suite.visitFactory.Closed(assignments[0].ID, workers[0].ID, timeIn, timeOut)
	require.NoError(suite.T(), suite.db.Create(visit).Error)

	// split shift for the teammate: two valid intervals plus one inverted and
	// one half-open interval that must both be dropped
	s1, e1 := timeIn, timeIn.Add(time.Hour)
	s2, e2 := timeIn.Add(2*time.Hour), timeOut
	badStart := timeOut
	badEnd := timeIn
	_, err := suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{
		Action: "mark_done",
		Overrides: []service.SessionOverride{
			{
				WorkerID: &workers[1].ID,
				Intervals: []service.SessionInterval{
					{StartAt: &s1, EndAt: &e1},
					{StartAt: &badStart, EndAt: &badEnd},
					{StartAt: &s2, EndAt: &e2},
					{StartAt: &s1},
				},
			},
		},
	})
	require.NoError(suite.T(), err)

	mateSessions, err := suite.sessionRepo.GetByAssignmentID(assignments[1].ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), mateSessions, 2)
	assert.Equal(suite.T(), 60, mateSessions[0].Minutes()+mateSessions[1].Minutes()-120)

	// the leader stays on the default window
	leaderSessions, err := suite.sessionRepo.GetByAssignmentID(assignments[0].ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), leaderSessions, 1)
	assert.True(suite.T(), leaderSessions[0].StartAt.Equal(timeIn))
	assert.True(suite.T(), leaderSessions[0].EndAt.Equal(timeOut))
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_LeaderMarkDoneEmptyOverrideClearsSessions() {
	workers, assignments := suite.seedTeam(2)
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(time.Hour)
	visit := suite.visitFactory.Closed(assignments[0].ID, workers[0].ID, timeIn, timeOut)
	require.NoError(suite.T(), suite.db.Create(visit).Error)

	// an override whose intervals all fail validation leaves the teammate with
	// no sessions rather than falling back to the leader window
	_, err := suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{
		Action: "mark_done",
		Overrides: []service.SessionOverride{
			{
				WorkerID:  &workers[1].ID,
				Intervals: []service.SessionInterval{{StartAt: &timeOut, EndAt: &timeIn}},
			},
		},
	})
	require.NoError(suite.T(), err)

	mateSessions, err := suite.sessionRepo.GetByAssignmentID(assignments[1].ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), mateSessions)
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_LeaderMarkDoneLegacyOverride() {
	workers, assignments := suite.seedTeam(2)
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(3 * time.Hour)
	visit := suite.visitFactory.Closed(assignments[0].ID, workers[0].ID, timeIn, timeOut)
	require.NoError(suite.T(), suite.db.Create(visit).Error)

	// legacy shape adjusts only the start, the end stays on the leader window
	lateStart := timeIn.Add(time.Hour)
	_, err := suite.assignmentService.UpdateStatus(workerActor(workers[0]), assignments[0].ID, &service.UpdateStatusRequest{
		Action: "mark_done",
		Overrides: []service.SessionOverride{
			{AssignmentID: &assignments[1].ID, StartAt: &lateStart},
		},
	})
	require.NoError(suite.T(), err)

	mateSessions, err := suite.sessionRepo.GetByAssignmentID(assignments[1].ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), mateSessions, 1)
	assert.True(suite.T(), mateSessions[0].StartAt.Equal(lateStart))
	assert.True(suite.T(), mateSessions[0].EndAt.Equal(timeOut))
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_MarkDoneTwiceReplacesSessions() {
	workers, assignments := suite.seedTeam(2)
	timeIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(time.Hour)
	visit := suite.visitFactory.Closed(assignments[0].ID, workers[0].ID, timeIn, timeOut)
	require.NoError(suite.T(), suite.db.Create(visit).Error)

	actor := workerActor(workers[0])
	_, err := suite.assignmentService.UpdateStatus(actor, assignments[0].ID, &service.UpdateStatusRequest{Action: "mark_done"})
	require.NoError(suite.T(), err)

	_, err = suite.assignmentService.UpdateStatus(suite.supervisorActor(), assignments[0].ID, &service.UpdateStatusRequest{Action: "reopen"})
	require.NoError(suite.T(), err)

	_, err = suite.assignmentService.UpdateStatus(actor, assignments[0].ID, &service.UpdateStatusRequest{Action: "mark_done"})
	require.NoError(suite.T(), err)

	// replace semantics: still one session per teammate, not accumulated
	for _, a := range assignments {
		sessions, err := suite.sessionRepo.GetByAssignmentID(a.ID)
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), sessions, 1)
	}
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_ApproveAllResolvesComplaint() {
	workers, assignments := suite.seedTeam(2)
	require.NoError(suite.T(), suite.assignmentRepo.SetStatus(assignments[0].ID, models.AssignmentStatusCompleted))
	require.NoError(suite.T(), suite.assignmentRepo.SetStatus(assignments[1].ID, models.AssignmentStatusPendingReview))
	_ = workers

	resp, err := suite.assignmentService.UpdateStatus(suite.supervisorActor(), assignments[1].ID, &service.UpdateStatusRequest{Action: "approve"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusCompleted, resp.Status)
	assert.Equal(suite.T(), models.ComplaintStatusResolved, resp.ComplaintStatus)

	reloaded, err := suite.complaintRepo.GetByID(suite.complaint.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ComplaintStatusResolved, reloaded.Status)
}

func (suite *AssignmentServiceTestSuite) TestUpdateStatus_ReopenPutsComplaintBackInProgress() {
	_, assignments := suite.seedTeam(1)
	require.NoError(suite.T(), suite.assignmentRepo.SetStatus(assignments[0].ID, models.AssignmentStatusCompleted))

	resp, err := suite.assignmentService.UpdateStatus(suite.supervisorActor(), assignments[0].ID, &service.UpdateStatusRequest{Action: "reopen"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusInProgress, resp.Status)
	assert.Equal(suite.T(), models.ComplaintStatusInProgress, resp.ComplaintStatus)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}

func TestDeriveComplaintStatus(t *testing.T) {
	mk := func(statuses ...models.AssignmentStatus) []models.ComplaintAssignment {
		out := make([]models.ComplaintAssignment, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, models.ComplaintAssignment{Status: s})
		}
		return out
	}

	tests := []struct {
		name        string
		assignments []models.ComplaintAssignment
		expected    models.ComplaintStatus
	}{
		{"no assignments", nil, models.ComplaintStatusPending},
		{"all assigned", mk(models.AssignmentStatusAssigned, models.AssignmentStatusAssigned), models.ComplaintStatusPending},
		{"one in progress", mk(models.AssignmentStatusAssigned, models.AssignmentStatusInProgress), models.ComplaintStatusInProgress},
		{"accepted counts as in progress", mk(models.AssignmentStatusAccepted), models.ComplaintStatusInProgress},
		{"pending review wins over in progress", mk(models.AssignmentStatusInProgress, models.AssignmentStatusPendingReview), models.ComplaintStatusPendingReview},
		{"all completed", mk(models.AssignmentStatusCompleted, models.AssignmentStatusCompleted), models.ComplaintStatusResolved},
		{"some completed, rest assigned", mk(models.AssignmentStatusCompleted, models.AssignmentStatusAssigned), models.ComplaintStatusInProgress},
		{"rejected rows are ignored", mk(models.AssignmentStatusCompleted, models.AssignmentStatusRejected), models.ComplaintStatusResolved},
		{"only rejected", mk(models.AssignmentStatusRejected), models.ComplaintStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.DeriveComplaintStatus(tt.assignments))
		})
	}
}
