package service_test

import (
	"errors"
	"testing"
	"time"

	"schedulehq-backend/internal/database/models"
	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/mocks"
	"schedulehq-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TimeOffServiceTestSuite defines the test suite for TimeOffService
type TimeOffServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTimeOffRepo *mocks.MockTimeOffRepositoryInterface
	mockPatternRepo *mocks.MockAvailabilityPatternRepositoryInterface
	timeOff         *service.TimeOffService
}

// SetupTest sets up the test suite
func (suite *TimeOffServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTimeOffRepo = mocks.NewMockTimeOffRepositoryInterface(suite.ctrl)
	suite.mockPatternRepo = mocks.NewMockAvailabilityPatternRepositoryInterface(suite.ctrl)

	availability := service.NewAvailabilityService(suite.mockTimeOffRepo, suite.mockPatternRepo)
	suite.timeOff = service.NewTimeOffService(suite.mockTimeOffRepo, availability, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TimeOffServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateNormalizesAliasTypes tests that alias type spellings land in the
// store under their canonical names.
func (suite *TimeOffServiceTestSuite) TestCreateNormalizesAliasTypes() {
	cases := map[models.TimeOffType]models.TimeOffType{
		"sick": models.TimeOffRequested,
		"vac":  models.TimeOffVacation,
	}
	for alias, canonical := range cases {
		suite.mockTimeOffRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *models.TimeOffEntry) error {
				assert.Equal(suite.T(), canonical, entry.Type)
				return nil
			}).
			Times(1)

		entry, err := suite.timeOff.Create(&service.CreateTimeOffRequest{
			EmployeeID: uuid.New(),
			Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Type:       alias,
			AllDay:     true,
		})
		suite.Require().NoError(err)
		assert.Equal(suite.T(), canonical, entry.Type)
	}
}

// TestCreateRejectsUnknownType tests the invalid-type error mapping
func (suite *TimeOffServiceTestSuite) TestCreateRejectsUnknownType() {
	_, err := suite.timeOff.Create(&service.CreateTimeOffRequest{
		EmployeeID: uuid.New(),
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:       "sabbatical",
		AllDay:     true,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeOffType)
}

// TestCreateVacationIsAtomic tests that a multi-day vacation goes through a
// single grouped insert: one shared group id, one transaction, all-day rows
// for every date in the range.
func (suite *TimeOffServiceTestSuite) TestCreateVacationIsAtomic() {
	employeeID := uuid.New()
	suite.mockTimeOffRepo.EXPECT().
		CreateGroup(gomock.Any()).
		DoAndReturn(func(entries []models.TimeOffEntry) error {
			suite.Require().Len(entries, 3)
			groupID := entries[0].VacationGroupID
			suite.Require().NotNil(groupID)
			for i, entry := range entries {
				assert.Equal(suite.T(), employeeID, entry.EmployeeID)
				assert.Equal(suite.T(), models.TimeOffVacation, entry.Type)
				assert.True(suite.T(), entry.AllDay)
				assert.Equal(suite.T(), *groupID, *entry.VacationGroupID)
				assert.Equal(suite.T(), time.Date(2024, 3, 4+i, 0, 0, 0, 0, time.UTC), entry.Date)
			}
			return nil
		}).
		Times(1)

	entries, err := suite.timeOff.CreateVacation(&service.CreateVacationRequest{
		EmployeeID: employeeID,
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
	assert.Len(suite.T(), entries, 3)
}

// TestCreateVacationGroupFailure tests that a failed grouped insert surfaces
// as an error with nothing returned.
func (suite *TimeOffServiceTestSuite) TestCreateVacationGroupFailure() {
	suite.mockTimeOffRepo.EXPECT().
		CreateGroup(gomock.Any()).
		Return(errors.New("constraint violation")).
		Times(1)

	entries, err := suite.timeOff.CreateVacation(&service.CreateVacationRequest{
		EmployeeID: uuid.New(),
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), entries)
}

// TestCreateVacationRejectsInvertedRange tests the end-before-start guard
func (suite *TimeOffServiceTestSuite) TestCreateVacationRejectsInvertedRange() {
	_, err := suite.timeOff.CreateVacation(&service.CreateVacationRequest{
		EmployeeID: uuid.New(),
		StartDate:  time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

func TestTimeOffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeOffServiceTestSuite))
}
