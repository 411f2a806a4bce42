//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"schedulehq-backend/internal/database/models"
	"schedulehq-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RunnerRepositoryTestSuite tests the RunnerRepository
type RunnerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RunnerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RunnerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRunnerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RunnerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RunnerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RunnerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createEmployee inserts an employee the runner can point at
func (suite *RunnerRepositoryTestSuite) createEmployee(name string) *models.Employee {
	employee := suite.factories.Employee.WithName(name)
	err := NewEmployeeRepository(suite.baseTestSuite.DB).Create(employee)
	suite.NoError(err)
	return employee
}

// TestUpsertInsertsThenReplaces tests that a second upsert for the same
// (date, shift type) replaces the runner instead of adding a row
func (suite *RunnerRepositoryTestSuite) TestUpsertInsertsThenReplaces() {
	avery := suite.createEmployee("Avery Collins")
	jordan := suite.createEmployee("Jordan Reyes")

	first := suite.factories.Runner.Create(avery.ID, "Avery Collins")
	suite.NoError(suite.repo.Upsert(first))

	second := suite.factories.Runner.Create(jordan.ID, "Jordan Reyes")
	suite.NoError(suite.repo.Upsert(second))

	found, err := suite.repo.GetForDateAndShift(first.Date, "lunch")
	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal("Jordan Reyes", found.RunnerName)
	suite.Equal(jordan.ID, *found.EmployeeID)

	runners, err := suite.repo.GetForDateRange(first.Date, first.Date)
	suite.NoError(err)
	suite.Len(runners, 1)
}

// TestGetForDateAndShiftMissing tests that a missing slot answers nil, not an error
func (suite *RunnerRepositoryTestSuite) TestGetForDateAndShiftMissing() {
	runner, err := suite.repo.GetForDateAndShift(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "dinner")
	suite.NoError(err)
	suite.Nil(runner)
}

// TestDelete tests clearing a runner slot
func (suite *RunnerRepositoryTestSuite) TestDelete() {
	avery := suite.createEmployee("Avery Collins")
	runner := suite.factories.Runner.Create(avery.ID, "Avery Collins")
	suite.NoError(suite.repo.Upsert(runner))

	suite.NoError(suite.repo.Delete(runner.Date, "lunch"))

	found, err := suite.repo.GetForDateAndShift(runner.Date, "lunch")
	suite.NoError(err)
	suite.Nil(found)
}

// TestCreatePreservesID tests the undo path: re-inserting a captured record
// keeps its original ID
func (suite *RunnerRepositoryTestSuite) TestCreatePreservesID() {
	avery := suite.createEmployee("Avery Collins")
	runner := suite.factories.Runner.Create(avery.ID, "Avery Collins")
	suite.NoError(suite.repo.Upsert(runner))

	captured, err := suite.repo.GetForDateAndShift(runner.Date, "lunch")
	suite.NoError(err)
	suite.NoError(suite.repo.Delete(runner.Date, "lunch"))

	suite.NoError(suite.repo.Create(captured))

	restored, err := suite.repo.GetForDateAndShift(runner.Date, "lunch")
	suite.NoError(err)
	suite.Equal(captured.ID, restored.ID)
}

// TestGetForDateRange tests listing runners inside an inclusive date range
func (suite *RunnerRepositoryTestSuite) TestGetForDateRange() {
	avery := suite.createEmployee("Avery Collins")

	inRange := suite.factories.Runner.Create(avery.ID, "Avery Collins")
	outside := suite.factories.Runner.Create(avery.ID, "Avery Collins")
	outside.Date = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Upsert(inRange))
	suite.NoError(suite.repo.Upsert(outside))

	runners, err := suite.repo.GetForDateRange(
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Len(runners, 1)
	suite.Equal("lunch", runners[0].ShiftTypeKey)
}

// TestRunnerRepositoryTestSuite runs the test suite
func TestRunnerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerRepositoryTestSuite))
}
