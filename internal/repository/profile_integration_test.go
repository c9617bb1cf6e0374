//go:build integration

package repository

import (
	"testing"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProfileRepositoryTestSuite runs against the shared Postgres container
type ProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProfileRepository
}

func (suite *ProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProfileRepository(suite.baseTestSuite.DB)
}

func (suite *ProfileRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ProfileRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProfileRepositoryTestSuite) TestCreateAndGetByEmail() {
	profile := testutils.NewProfileFactory().Worker()
	require.NoError(suite.T(), suite.repo.Create(profile))

	got, err := suite.repo.GetByEmail(profile.Email)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), profile.ID, got.ID)
	assert.Equal(suite.T(), models.ProfileRoleWorker, got.Role)
}

func (suite *ProfileRepositoryTestSuite) TestCreate_DuplicateEmail() {
	factory := testutils.NewProfileFactory()
	first := factory.WithEmail("dup@example.com")
	require.NoError(suite.T(), suite.repo.Create(first))

	second := factory.WithEmail("dup@example.com")
	err := suite.repo.Create(second)
	assert.Error(suite.T(), err)
}

func (suite *ProfileRepositoryTestSuite) TestGetByRole() {
	factory := testutils.NewProfileFactory()
	require.NoError(suite.T(), suite.repo.Create(factory.Worker()))
	require.NoError(suite.T(), suite.repo.Create(factory.Worker()))
	require.NoError(suite.T(), suite.repo.Create(factory.Supervisor()))

	workers, total, err := suite.repo.GetByRole(models.ProfileRoleWorker, 10, 0)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), workers, 2)
}

func (suite *ProfileRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func TestProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}
