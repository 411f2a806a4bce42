package service_test

import (
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
	"gorm.io/gorm"
)

// ScheduleServiceTestSuite defines the test suite for ScheduleService
type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockShiftRepo     *mocks.MockShiftRepositoryInterface
	mockTimeOffRepo   *mocks.MockTimeOffRepositoryInterface
	mockRunnerRepo    *mocks.MockRunnerRepositoryInterface
	mockNoteRepo      *mocks.MockScheduleNoteRepositoryInterface
	mockShiftTypeRepo *mocks.MockShiftTypeRepositoryInterface
	mockEmployeeRepo  *mocks.MockEmployeeRepositoryInterface
	mockPatternRepo   *mocks.MockAvailabilityPatternRepositoryInterface
	mockTemplateRepo  *mocks.MockWeeklyTemplateRepositoryInterface
	mockTx            *mocks.MockTransactionManagerInterface
	schedule          *service.ScheduleService
}

// SetupTest sets up the test suite
func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockTimeOffRepo = mocks.NewMockTimeOffRepositoryInterface(suite.ctrl)
	suite.mockRunnerRepo = mocks.NewMockRunnerRepositoryInterface(suite.ctrl)
	suite.mockNoteRepo = mocks.NewMockScheduleNoteRepositoryInterface(suite.ctrl)
	suite.mockShiftTypeRepo = mocks.NewMockShiftTypeRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockPatternRepo = mocks.NewMockAvailabilityPatternRepositoryInterface(suite.ctrl)
	suite.mockTemplateRepo = mocks.NewMockWeeklyTemplateRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTransactionManagerInterface(suite.ctrl)

	suite.mockShiftTypeRepo.EXPECT().GetAll().Return(standardShiftTypes(), nil).AnyTimes()
	clock := service.NewShiftClock(suite.mockShiftTypeRepo)
	suite.Require().NoError(clock.Refresh())

	availability := service.NewAvailabilityService(suite.mockTimeOffRepo, suite.mockPatternRepo)
	linker := service.NewRunnerLinker(
		suite.mockRunnerRepo, suite.mockShiftRepo, suite.mockShiftTypeRepo,
		suite.mockEmployeeRepo, clock, service.NewBusinessClock(2),
	)

	suite.schedule = service.NewScheduleService(
		suite.mockShiftRepo,
		suite.mockTimeOffRepo,
		suite.mockRunnerRepo,
		suite.mockNoteRepo,
		suite.mockTx,
		service.NewConflictService(suite.mockShiftRepo),
		availability,
		linker,
		service.NewTemplateEngine(suite.mockTemplateRepo),
	)
}

// TearDownTest cleans up after each test
func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectNoWarnings wires the warning collectors to answer clean for a date
func (suite *ScheduleServiceTestSuite) expectNoWarnings(employeeID uuid.UUID, weekday time.Weekday) {
	suite.mockShiftRepo.EXPECT().
		GetConflicts(employeeID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	suite.mockTimeOffRepo.EXPECT().
		GetForEmployeeOnDate(employeeID, gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	suite.mockPatternRepo.EXPECT().
		GetForEmployeeWeekday(employeeID, int(weekday)).
		Return(nil, nil).
		AnyTimes()
}

// TestCreateShiftApplied tests a clean create
func (suite *ScheduleServiceTestSuite) TestCreateShiftApplied() {
	employeeID := uuid.New()
	shift := &models.Shift{
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}

	suite.expectNoWarnings(employeeID, time.Tuesday)
	suite.mockShiftRepo.EXPECT().Create(shift).Return(nil).Times(1)

	result, err := suite.schedule.CreateShift("s1", shift, false)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Applied)
	assert.Empty(suite.T(), result.Conflicts)
}

// TestCreateShiftWithheldOnConflict tests the confirm-then-force flow: the
// 16:00-20:00 candidate collides with a committed 09:00-17:00 shift.
func (suite *ScheduleServiceTestSuite) TestCreateShiftWithheldOnConflict() {
	employeeID := uuid.New()
	committed := models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}
	candidate := &models.Shift{
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC),
	}

	suite.mockShiftRepo.EXPECT().
		GetConflicts(employeeID, candidate.StartTime, candidate.EndTime, gomock.Nil()).
		Return([]models.Shift{committed}, nil).
		Times(2)
	suite.mockTimeOffRepo.EXPECT().
		GetForEmployeeOnDate(employeeID, gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	suite.mockPatternRepo.EXPECT().
		GetForEmployeeWeekday(employeeID, int(time.Tuesday)).
		Return(nil, nil).
		AnyTimes()

	// Without force the mutation is withheld and the conflicts surfaced.
	result, err := suite.schedule.CreateShift("s1", candidate, false)
	suite.Require().NoError(err)
	assert.False(suite.T(), result.Applied)
	suite.Require().Len(result.Conflicts, 1)
	assert.Equal(suite.T(), committed.ID, result.Conflicts[0].ID)

	// Forcing applies it anyway.
	suite.mockShiftRepo.EXPECT().Create(candidate).Return(nil).Times(1)
	result, err = suite.schedule.CreateShift("s1", candidate, true)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Applied)
}

// TestCreateShiftRejectsZeroLength tests that a zero-length create errors
func (suite *ScheduleServiceTestSuite) TestCreateShiftRejectsZeroLength() {
	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	_, err := suite.schedule.CreateShift("s1", &models.Shift{
		EmployeeID: uuid.New(),
		StartTime:  at,
		EndTime:    at,
	}, false)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

// TestCreateShiftNormalizesOffLabel tests that an OFF-labeled shift lands on
// the canonical off window regardless of the supplied times.
func (suite *ScheduleServiceTestSuite) TestCreateShiftNormalizesOffLabel() {
	employeeID := uuid.New()
	shift := &models.Shift{
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
		Label:      "off",
	}

	suite.expectNoWarnings(employeeID, time.Tuesday)
	suite.mockShiftRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(s *models.Shift) error {
			assert.Equal(suite.T(), service.OffLabel, s.Label)
			assert.True(suite.T(), service.IsDayOffWindow(s.StartTime, s.EndTime))
			return nil
		}).
		Times(1)

	result, err := suite.schedule.CreateShift("s1", shift, false)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Applied)
}

// TestUpdateShiftZeroLengthDeletes tests the delete signal: editing a shift
// to zero length removes it instead.
func (suite *ScheduleServiceTestSuite) TestUpdateShiftZeroLengthDeletes() {
	employeeID := uuid.New()
	shiftID := uuid.New()
	existing := &models.Shift{
		BaseModel:  models.BaseModel{ID: shiftID},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
	}

	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(existing, nil).Times(2)
	// Runner capture: lunch slot, no runner assigned
	suite.mockRunnerRepo.EXPECT().
		GetForDateAndShift(gomock.Any(), "lunch").
		Return(nil, nil).
		Times(1)
	suite.mockTx.EXPECT().
		InTransaction(gomock.Any()).
		DoAndReturn(func(fn func(repository.ShiftRepositoryInterface, repository.RunnerRepositoryInterface) error) error {
			return fn(suite.mockShiftRepo, suite.mockRunnerRepo)
		}).
		Times(1)
	suite.mockShiftRepo.EXPECT().Delete(shiftID).Return(nil).Times(1)

	at := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	result, err := suite.schedule.UpdateShift("s1", shiftID, &models.Shift{
		EmployeeID: employeeID,
		StartTime:  at,
		EndTime:    at,
	}, false)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Deleted)
	assert.True(suite.T(), result.Applied)
}

// TestUpdateShiftKeepsOwnerWhenEmployeeUnset tests that an edit carrying no
// employee keeps the shift on its current owner: the warnings run against the
// owner and the persisted row is never reassigned to the zero UUID.
func (suite *ScheduleServiceTestSuite) TestUpdateShiftKeepsOwnerWhenEmployeeUnset() {
	employeeID := uuid.New()
	shiftID := uuid.New()
	existing := &models.Shift{
		BaseModel:  models.BaseModel{ID: shiftID},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}

	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(existing, nil).Times(1)
	// Keyed to the owner: a zero-UUID lookup would not match and fail the test.
	suite.expectNoWarnings(employeeID, time.Tuesday)
	suite.mockShiftRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(s *models.Shift) error {
			assert.Equal(suite.T(), employeeID, s.EmployeeID)
			assert.Equal(suite.T(), "late lunch", s.Label)
			return nil
		}).
		Times(1)

	result, err := suite.schedule.UpdateShift("s1", shiftID, &models.Shift{
		StartTime: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC),
		Label:     "late lunch",
	}, false)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Applied)
	assert.Equal(suite.T(), employeeID, result.Shift.EmployeeID)
}

// TestUpdateShiftNotFound tests the missing-shift error mapping
func (suite *ScheduleServiceTestSuite) TestUpdateShiftNotFound() {
	shiftID := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.schedule.UpdateShift("s1", shiftID, &models.Shift{
		StartTime: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}, false)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

// TestMoveShiftLeavesRunner tests that moving never touches runner records
func (suite *ScheduleServiceTestSuite) TestMoveShiftLeavesRunner() {
	oldEmployee := uuid.New()
	newEmployee := uuid.New()
	shiftID := uuid.New()
	existing := &models.Shift{
		BaseModel:  models.BaseModel{ID: shiftID},
		EmployeeID: oldEmployee,
		StartTime:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
	}

	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(existing, nil).Times(1)
	suite.expectNoWarnings(newEmployee, time.Wednesday)
	// No runner repository expectations: a cascade here would fail the test.
	suite.mockShiftRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(s *models.Shift) error {
			assert.Equal(suite.T(), newEmployee, s.EmployeeID)
			assert.Equal(suite.T(), shiftID, s.ID)
			return nil
		}).
		Times(1)

	result, err := suite.schedule.MoveShift("s1", shiftID, newEmployee,
		time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 6, 16, 0, 0, 0, time.UTC), false)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Applied)
}

// TestDeleteThenUndoRestoresCascade tests the full undoable cascading delete
// through the session log.
func (suite *ScheduleServiceTestSuite) TestDeleteThenUndoRestoresCascade() {
	employeeID := uuid.New()
	shiftID := uuid.New()
	shift := &models.Shift{
		BaseModel:  models.BaseModel{ID: shiftID},
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
	}
	runner := &models.ShiftRunner{
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ShiftTypeKey: "lunch",
		RunnerName:   "Avery Collins",
		EmployeeID:   &employeeID,
	}

	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(shift, nil).Times(1)
	suite.mockRunnerRepo.EXPECT().
		GetForDateAndShift(runner.Date, "lunch").
		Return(runner, nil).
		Times(1)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(employeeID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: employeeID}, DisplayName: "Avery Collins"}, nil).
		Times(1)
	suite.mockTx.EXPECT().
		InTransaction(gomock.Any()).
		DoAndReturn(func(fn func(repository.ShiftRepositoryInterface, repository.RunnerRepositoryInterface) error) error {
			return fn(suite.mockShiftRepo, suite.mockRunnerRepo)
		}).
		Times(2)

	gomock.InOrder(
		suite.mockShiftRepo.EXPECT().Delete(shiftID).Return(nil),
		suite.mockRunnerRepo.EXPECT().Delete(runner.Date, "lunch").Return(nil),
		suite.mockShiftRepo.EXPECT().Create(shift).Return(nil),
		suite.mockRunnerRepo.EXPECT().Create(runner).Return(nil),
	)

	result, err := suite.schedule.DeleteShift("s1", shiftID)
	suite.Require().NoError(err)
	assert.True(suite.T(), result.Deleted)

	state, err := suite.schedule.Undo("s1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "delete shift", state.Action)
	assert.True(suite.T(), state.CanRedo)
}

// TestUndoSessionsAreIsolated tests that action logs never leak across sessions
func (suite *ScheduleServiceTestSuite) TestUndoSessionsAreIsolated() {
	employeeID := uuid.New()
	shift := &models.Shift{
		EmployeeID: employeeID,
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}

	suite.expectNoWarnings(employeeID, time.Tuesday)
	suite.mockShiftRepo.EXPECT().Create(shift).Return(nil).Times(1)

	_, err := suite.schedule.CreateShift("alice", shift, false)
	suite.Require().NoError(err)

	// Bob's session has nothing to undo.
	_, err = suite.schedule.Undo("bob")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToUndo)
}

// TestCalendarLabelsLegacyOffWindow tests that stored shifts spanning a
// recognized all-day off window, legacy 04:00->03:59 included, come back
// labeled OFF in the calendar read model.
func (suite *ScheduleServiceTestSuite) TestCalendarLabelsLegacyOffWindow() {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	legacy := models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: uuid.New(),
		StartTime:  time.Date(2024, 3, 5, 4, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 6, 3, 59, 0, 0, time.UTC),
	}
	regular := models.Shift{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: uuid.New(),
		StartTime:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
		Label:      "morning",
	}

	suite.mockShiftRepo.EXPECT().
		GetByDateRange(gomock.Nil(), gomock.Any(), gomock.Any()).
		Return([]models.Shift{legacy, regular}, nil).
		Times(1)
	suite.mockTimeOffRepo.EXPECT().GetInRange(gomock.Nil(), start, end).Return(nil, nil).Times(1)
	suite.mockRunnerRepo.EXPECT().GetForDateRange(start, end).Return(nil, nil).Times(1)
	suite.mockNoteRepo.EXPECT().GetInRange(start, end).Return(nil, nil).Times(1)

	view, err := suite.schedule.Calendar(start, end)
	suite.Require().NoError(err)
	suite.Require().Len(view.Shifts, 2)
	assert.Equal(suite.T(), service.OffLabel, view.Shifts[0].Label)
	assert.Equal(suite.T(), "morning", view.Shifts[1].Label)
}

// TestApplyExpansionDeletesBeforeInserts tests the commit order of a plan
func (suite *ScheduleServiceTestSuite) TestApplyExpansionDeletesBeforeInserts() {
	staleID := uuid.New()
	plan := &service.ExpansionResult{
		Created: []models.Shift{{
			EmployeeID: uuid.New(),
			StartTime:  time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC),
		}},
		ToDelete:     []uuid.UUID{staleID},
		CreatedCount: 1,
		DeletedCount: 1,
	}

	suite.mockTx.EXPECT().
		InTransaction(gomock.Any()).
		DoAndReturn(func(fn func(repository.ShiftRepositoryInterface, repository.RunnerRepositoryInterface) error) error {
			return fn(suite.mockShiftRepo, suite.mockRunnerRepo)
		}).
		Times(1)
	gomock.InOrder(
		suite.mockShiftRepo.EXPECT().Delete(staleID).Return(nil),
		suite.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil),
	)

	suite.Require().NoError(suite.schedule.ApplyExpansion(plan))

	// Applied expansions are not undoable.
	_, err := suite.schedule.Undo("s1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToUndo)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
