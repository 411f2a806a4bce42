package service_test

import (
	"errors"
	"testing"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/mocks"
	"schedulehq-backend/internal/repository"
	"schedulehq-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ActionLogTestSuite defines the test suite for the action log and actions
type ActionLogTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockShiftRepo  *mocks.MockShiftRepositoryInterface
	mockRunnerRepo *mocks.MockRunnerRepositoryInterface
	mockTx         *mocks.MockTransactionManagerInterface
	log            *service.ActionLog
}

// SetupTest sets up the test suite
func (suite *ActionLogTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockRunnerRepo = mocks.NewMockRunnerRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.log = service.NewActionLog()
}

// TearDownTest cleans up after each test
func (suite *ActionLogTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTransaction makes the mock transaction manager run the unit of work
// against the suite's mock repositories.
func (suite *ActionLogTestSuite) expectTransaction(times int) {
	suite.mockTx.EXPECT().
		InTransaction(gomock.Any()).
		DoAndReturn(func(fn func(repository.ShiftRepositoryInterface, repository.RunnerRepositoryInterface) error) error {
			return fn(suite.mockShiftRepo, suite.mockRunnerRepo)
		}).
		Times(times)
}

func testShift(employeeID uuid.UUID) *models.Shift {
	return &models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}
}

// TestCreateThenUndo tests that undoing a create deletes the inserted shift
func (suite *ActionLogTestSuite) TestCreateThenUndo() {
	shift := testShift(uuid.New())

	suite.mockShiftRepo.EXPECT().Create(shift).Return(nil).Times(1)
	suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(nil).Times(1)

	action := service.NewCreateShiftAction(suite.mockShiftRepo, shift)
	suite.Require().NoError(suite.log.Execute(action))
	assert.True(suite.T(), suite.log.CanUndo())
	assert.False(suite.T(), suite.log.CanRedo())

	undone, err := suite.log.Undo()
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "create shift", undone.Label())
	assert.False(suite.T(), suite.log.CanUndo())
	assert.True(suite.T(), suite.log.CanRedo())
}

// TestUpdateUndoRedo tests that undo restores old values and redo reapplies
func (suite *ActionLogTestSuite) TestUpdateUndoRedo() {
	employeeID := uuid.New()
	oldShift := testShift(employeeID)
	newShift := *oldShift
	newShift.EndTime = oldShift.EndTime.Add(2 * time.Hour)

	gomock.InOrder(
		suite.mockShiftRepo.EXPECT().Update(&newShift).Return(nil),
		suite.mockShiftRepo.EXPECT().Update(oldShift).Return(nil),
		suite.mockShiftRepo.EXPECT().Update(&newShift).Return(nil),
	)

	action := service.NewUpdateShiftAction(suite.mockShiftRepo, oldShift, &newShift)
	suite.Require().NoError(suite.log.Execute(action))

	_, err := suite.log.Undo()
	suite.Require().NoError(err)

	redone, err := suite.log.Redo()
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "update shift", redone.Label())
}

// TestExecuteClearsRedoStack tests that a new action invalidates redo history
func (suite *ActionLogTestSuite) TestExecuteClearsRedoStack() {
	first := testShift(uuid.New())
	second := testShift(uuid.New())

	suite.mockShiftRepo.EXPECT().Create(first).Return(nil).Times(1)
	suite.mockShiftRepo.EXPECT().Delete(first.ID).Return(nil).Times(1)
	suite.mockShiftRepo.EXPECT().Create(second).Return(nil).Times(1)

	suite.Require().NoError(suite.log.Execute(service.NewCreateShiftAction(suite.mockShiftRepo, first)))
	_, err := suite.log.Undo()
	suite.Require().NoError(err)
	assert.True(suite.T(), suite.log.CanRedo())

	suite.Require().NoError(suite.log.Execute(service.NewCreateShiftAction(suite.mockShiftRepo, second)))
	assert.False(suite.T(), suite.log.CanRedo())

	_, err = suite.log.Redo()
	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToRedo)
}

// TestUndoEmptyLog tests the empty-log sentinels
func (suite *ActionLogTestSuite) TestUndoEmptyLog() {
	_, err := suite.log.Undo()
	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToUndo)

	_, err = suite.log.Redo()
	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToRedo)
}

// TestFailedDoIsNotRecorded tests that a failing action never enters history
func (suite *ActionLogTestSuite) TestFailedDoIsNotRecorded() {
	shift := testShift(uuid.New())
	suite.mockShiftRepo.EXPECT().Create(shift).Return(errors.New("storage down")).Times(1)

	err := suite.log.Execute(service.NewCreateShiftAction(suite.mockShiftRepo, shift))
	assert.Error(suite.T(), err)
	assert.False(suite.T(), suite.log.CanUndo())
}

// TestFailedUndoKeepsPosition tests that a failing undo leaves the stacks unchanged
func (suite *ActionLogTestSuite) TestFailedUndoKeepsPosition() {
	shift := testShift(uuid.New())

	gomock.InOrder(
		suite.mockShiftRepo.EXPECT().Create(shift).Return(nil),
		suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(errors.New("storage down")),
		suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(nil),
	)

	suite.Require().NoError(suite.log.Execute(service.NewCreateShiftAction(suite.mockShiftRepo, shift)))

	_, err := suite.log.Undo()
	assert.Error(suite.T(), err)
	// The action is still undoable after the failure
	assert.True(suite.T(), suite.log.CanUndo())
	assert.False(suite.T(), suite.log.CanRedo())

	_, err = suite.log.Undo()
	assert.NoError(suite.T(), err)
}

// TestDeleteCascadesRunnerInTransaction tests the cascading delete and its undo
func (suite *ActionLogTestSuite) TestDeleteCascadesRunnerInTransaction() {
	employeeID := uuid.New()
	shift := testShift(employeeID)
	runner := &models.ShiftRunner{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ShiftTypeKey: "lunch",
		RunnerName:   "Avery Collins",
		EmployeeID:   &employeeID,
	}

	suite.expectTransaction(2)
	gomock.InOrder(
		suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(nil),
		suite.mockRunnerRepo.EXPECT().Delete(runner.Date, runner.ShiftTypeKey).Return(nil),
		// Undo restores both records, the shift keeping its original id
		suite.mockShiftRepo.EXPECT().Create(shift).Return(nil),
		suite.mockRunnerRepo.EXPECT().Create(runner).Return(nil),
	)

	action := service.NewDeleteShiftAction(suite.mockTx, shift, runner)
	suite.Require().NoError(suite.log.Execute(action))

	undone, err := suite.log.Undo()
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "delete shift", undone.Label())
}

// TestDeleteWithoutRunner tests that a plain delete touches no runner records
func (suite *ActionLogTestSuite) TestDeleteWithoutRunner() {
	shift := testShift(uuid.New())

	suite.expectTransaction(1)
	suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(nil).Times(1)

	action := service.NewDeleteShiftAction(suite.mockTx, shift, nil)
	suite.Require().NoError(suite.log.Execute(action))
}

// TestDeleteRollsBackAsUnit tests that a runner failure aborts the whole delete
func (suite *ActionLogTestSuite) TestDeleteRollsBackAsUnit() {
	employeeID := uuid.New()
	shift := testShift(employeeID)
	runner := &models.ShiftRunner{
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ShiftTypeKey: "dinner",
		RunnerName:   "Jordan Reyes",
		EmployeeID:   &employeeID,
	}

	suite.expectTransaction(1)
	gomock.InOrder(
		suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(nil),
		suite.mockRunnerRepo.EXPECT().Delete(runner.Date, runner.ShiftTypeKey).Return(errors.New("storage down")),
	)

	err := suite.log.Execute(service.NewDeleteShiftAction(suite.mockTx, shift, runner))
	assert.Error(suite.T(), err)
	assert.False(suite.T(), suite.log.CanUndo())
}

func TestActionLogTestSuite(t *testing.T) {
	suite.Run(t, new(ActionLogTestSuite))
}
