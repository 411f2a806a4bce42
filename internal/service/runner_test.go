package service_test

import (
	"testing"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/mocks"
	"schedulehq-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RunnerLinkerTestSuite defines the test suite for RunnerLinker
type RunnerLinkerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRunnerRepo    *mocks.MockRunnerRepositoryInterface
	mockShiftRepo     *mocks.MockShiftRepositoryInterface
	mockShiftTypeRepo *mocks.MockShiftTypeRepositoryInterface
	mockEmployeeRepo  *mocks.MockEmployeeRepositoryInterface
	linker            *service.RunnerLinker
}

// SetupTest sets up the test suite
func (suite *RunnerLinkerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRunnerRepo = mocks.NewMockRunnerRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockShiftTypeRepo = mocks.NewMockShiftTypeRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)

	suite.mockShiftTypeRepo.EXPECT().GetAll().Return(standardShiftTypes(), nil).AnyTimes()
	clock := service.NewShiftClock(suite.mockShiftTypeRepo)
	suite.Require().NoError(clock.Refresh())

	suite.linker = service.NewRunnerLinker(
		suite.mockRunnerRepo,
		suite.mockShiftRepo,
		suite.mockShiftTypeRepo,
		suite.mockEmployeeRepo,
		clock,
		service.NewBusinessClock(2),
	)
}

// TearDownTest cleans up after each test
func (suite *RunnerLinkerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCaptureForDelete tests capturing the runner a shift backs
func (suite *RunnerLinkerTestSuite) TestCaptureForDelete() {
	employeeID := uuid.New()
	shift := &models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
	}
	employee := &models.Employee{
		BaseModel:   models.BaseModel{ID: employeeID},
		DisplayName: "Avery Collins",
	}
	runner := &models.ShiftRunner{
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ShiftTypeKey: "lunch",
		RunnerName:   "Avery Collins",
		EmployeeID:   &employeeID,
	}

	suite.mockRunnerRepo.EXPECT().
		GetForDateAndShift(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "lunch").
		Return(runner, nil).
		Times(1)
	suite.mockEmployeeRepo.EXPECT().GetByID(employeeID).Return(employee, nil).Times(1)

	captured, err := suite.linker.CaptureForDelete(shift)
	suite.Require().NoError(err)
	suite.Require().NotNil(captured)
	assert.Equal(suite.T(), "lunch", captured.ShiftTypeKey)
}

// TestCaptureForDeleteOvernightShift tests that an early-morning start maps
// back to the previous business day before the runner lookup.
func (suite *RunnerLinkerTestSuite) TestCaptureForDeleteOvernightShift() {
	employeeID := uuid.New()
	shift := &models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: employeeID,
		// 01:30 is inside dinner's wrapped window and belongs to March 5th's
		// business day.
		StartTime: time.Date(2024, 3, 6, 1, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 6, 6, 0, 0, 0, time.UTC),
	}

	suite.mockRunnerRepo.EXPECT().
		GetForDateAndShift(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "dinner").
		Return(nil, nil).
		Times(1)

	captured, err := suite.linker.CaptureForDelete(shift)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), captured)
}

// TestCaptureForDeleteDifferentRunner tests that another employee's runner
// record is left alone.
func (suite *RunnerLinkerTestSuite) TestCaptureForDeleteDifferentRunner() {
	employeeID := uuid.New()
	otherID := uuid.New()
	shift := &models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
	}
	runner := &models.ShiftRunner{
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ShiftTypeKey: "lunch",
		RunnerName:   "Jordan Reyes",
		EmployeeID:   &otherID,
	}

	suite.mockRunnerRepo.EXPECT().
		GetForDateAndShift(gomock.Any(), "lunch").
		Return(runner, nil).
		Times(1)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(employeeID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: employeeID}, DisplayName: "Avery Collins"}, nil).
		Times(1)

	captured, err := suite.linker.CaptureForDelete(shift)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), captured)
}

// TestAssignRunnerWithExistingShift tests assignment when a backing shift exists
func (suite *RunnerLinkerTestSuite) TestAssignRunnerWithExistingShift() {
	employeeID := uuid.New()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	employee := &models.Employee{
		BaseModel:   models.BaseModel{ID: employeeID},
		DisplayName: "Avery Collins",
	}

	suite.mockShiftTypeRepo.EXPECT().
		GetByKey("lunch").
		Return(&models.ShiftType{Key: "lunch", Label: "Lunch", DefaultStart: "11:00", DefaultEnd: "16:00"}, nil).
		Times(1)
	suite.mockEmployeeRepo.EXPECT().GetByID(employeeID).Return(employee, nil).Times(1)
	suite.mockShiftRepo.EXPECT().
		GetForEmployeeOnDate(employeeID, date).
		Return([]models.Shift{{BaseModel: models.BaseModel{ID: uuid.New()}}}, nil).
		Times(1)
	suite.mockRunnerRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(runner *models.ShiftRunner) error {
			assert.Equal(suite.T(), date, runner.Date)
			assert.Equal(suite.T(), "lunch", runner.ShiftTypeKey)
			assert.Equal(suite.T(), "Avery Collins", runner.RunnerName)
			suite.Require().NotNil(runner.EmployeeID)
			assert.Equal(suite.T(), employeeID, *runner.EmployeeID)
			return nil
		}).
		Times(1)

	runner, err := suite.linker.AssignRunner(date, "lunch", employeeID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Avery Collins", runner.RunnerName)
}

// TestAssignRunnerSynthesizesShift tests that a missing backing shift is
// synthesized from the shift type's default times.
func (suite *RunnerLinkerTestSuite) TestAssignRunnerSynthesizesShift() {
	employeeID := uuid.New()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	suite.mockShiftTypeRepo.EXPECT().
		GetByKey("dinner").
		Return(&models.ShiftType{Key: "dinner", Label: "Dinner", DefaultStart: "22:00", DefaultEnd: "06:00"}, nil).
		Times(1)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(employeeID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: employeeID}, DisplayName: "Sam Whitfield"}, nil).
		Times(1)
	suite.mockShiftRepo.EXPECT().GetForEmployeeOnDate(employeeID, date).Return(nil, nil).Times(1)
	suite.mockShiftRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(shift *models.Shift) error {
			assert.Equal(suite.T(), time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC), shift.StartTime)
			// An end not after the start advances one day
			assert.Equal(suite.T(), time.Date(2024, 3, 6, 6, 0, 0, 0, time.UTC), shift.EndTime)
			assert.Equal(suite.T(), "Dinner", shift.Label)
			return nil
		}).
		Times(1)
	suite.mockRunnerRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)

	_, err := suite.linker.AssignRunner(date, "dinner", employeeID)
	suite.Require().NoError(err)
}

// TestAssignRunnerUnknownShiftType tests the missing shift type error
func (suite *RunnerLinkerTestSuite) TestAssignRunnerUnknownShiftType() {
	suite.mockShiftTypeRepo.EXPECT().
		GetByKey("brunch").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.linker.AssignRunner(time.Now(), "brunch", uuid.New())
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftTypeNotFound)
}

// TestClearRunnerLeavesShift tests that clearing only removes the runner record
func (suite *RunnerLinkerTestSuite) TestClearRunnerLeavesShift() {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	suite.mockRunnerRepo.EXPECT().Delete(date, "lunch").Return(nil).Times(1)
	// No shift repository expectations: touching shifts would fail the test.

	err := suite.linker.ClearRunner(date, "lunch")
	assert.NoError(suite.T(), err)
}

func TestRunnerLinkerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerLinkerTestSuite))
}
