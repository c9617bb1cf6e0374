package service_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"maintenance-portal-backend/internal/mocks"
	"maintenance-portal-backend/internal/repository"
	"maintenance-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReports   *mocks.MockReportRepositoryInterface
	reportService *service.ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReports = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockReports)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleWorkerRows() []repository.WorkerReportRow {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	return []repository.WorkerReportRow{
		{
			WorkerID:       uuid.New(),
			WorkerName:     "Dana Levi",
			WorkerEmail:    "dana@example.com",
			AssignmentID:   uuid.New(),
			ComplaintID:    uuid.New(),
			IsLeader:       true,
			Status:         "pending_review",
			SessionStart:   start,
			SessionEnd:     end,
			SessionMinutes: 90,
			StoreName:      "Central Hardware",
			ComplaintDesc:  "Burst pipe under the sink",
		},
	}
}

func sampleComplaintRows() []repository.ComplaintReportRow {
	return []repository.ComplaintReportRow{
		{
			ComplaintID: uuid.New(),
			CreatedAt:   time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC),
			TenantID:    uuid.New(),
			TenantName:  "Noa Cohen",
			TenantEmail: "noa@example.com",
			Building:    "North Tower",
			Room:        "203",
			Description: "Burst pipe under the sink",
			Status:      "in_progress",
			Priority:    "high",
			Staff:       "Dana Levi (leader), Avi Mizrahi",
		},
	}
}

func (suite *ReportServiceTestSuite) TestWorkerReport_PassesFilters() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	workerID := uuid.New()
	expected := sampleWorkerRows()
	suite.mockReports.EXPECT().WorkerReport(&start, &end, &workerID).Return(expected, nil)

	rows, err := suite.reportService.WorkerReport(service.ReportFilters{Start: &start, End: &end, WorkerID: &workerID})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, rows)
}

func (suite *ReportServiceTestSuite) TestWorkerReport_RepositoryError() {
	suite.mockReports.EXPECT().WorkerReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := suite.reportService.WorkerReport(service.ReportFilters{})
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to build worker report")
}

func (suite *ReportServiceTestSuite) TestComplaintReport_NoFilters() {
	expected := sampleComplaintRows()
	suite.mockReports.EXPECT().ComplaintReport(nil, nil).Return(expected, nil)

	rows, err := suite.reportService.ComplaintReport(service.ReportFilters{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, rows)
}

func (suite *ReportServiceTestSuite) TestWriteWorkerCSV() {
	var buf bytes.Buffer
	err := suite.reportService.WriteWorkerCSV(&buf, sampleWorkerRows())
	require.NoError(suite.T(), err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), "Worker", records[0][0])
	assert.Equal(suite.T(), "Dana Levi", records[1][0])
	assert.Equal(suite.T(), "leader", records[1][3])
	assert.Equal(suite.T(), "2026-03-10 09:00", records[1][5])
	assert.Equal(suite.T(), "90", records[1][7])
}

func (suite *ReportServiceTestSuite) TestWriteComplaintCSV() {
	var buf bytes.Buffer
	err := suite.reportService.WriteComplaintCSV(&buf, sampleComplaintRows())
	require.NoError(suite.T(), err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), "Created", records[0][0])
	assert.Equal(suite.T(), "2026-03-09 08:30", records[1][0])
	assert.Equal(suite.T(), "Noa Cohen", records[1][1])
	assert.Equal(suite.T(), "Dana Levi (leader), Avi Mizrahi", records[1][8])
}

func (suite *ReportServiceTestSuite) TestWriteWorkerXLSX() {
	var buf bytes.Buffer
	err := suite.reportService.WriteWorkerXLSX(&buf, sampleWorkerRows())
	require.NoError(suite.T(), err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("Worker Report")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "Worker", rows[0][0])
	assert.Equal(suite.T(), "Dana Levi", rows[1][0])
}

func (suite *ReportServiceTestSuite) TestWriteComplaintXLSX_EmptyReport() {
	var buf bytes.Buffer
	err := suite.reportService.WriteComplaintXLSX(&buf, nil)
	require.NoError(suite.T(), err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("Complaint Report")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), complaintReportHeaderLen, len(rows[0]))
}

const complaintReportHeaderLen = 9

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
