package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/internal/service"
	"github.com/campushire/jobboard/internal/testutil"
	"github.com/campushire/jobboard/pkg/logger"
)

// SettingsServiceIntegrationTestSuite defines test suite
type SettingsServiceIntegrationTestSuite struct {
	suite.Suite
	testDB          *testutil.TestDatabase
	settingsService *service.SettingsService

	admin   *testutil.TestUser
	faculty *testutil.TestUser
}

// SetupSuite runs before all tests
func (s *SettingsServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.settingsService = service.NewSettingsService(repository.NewSettingRepository(s.testDB.DB))
}

// TearDownSuite runs after all tests
func (s *SettingsServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test
func (s *SettingsServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	s.admin, _ = testutil.DefaultAdmin()
	s.faculty, _ = testutil.DefaultFaculty()
	s.testDB.DB.Create(s.admin)
	s.testDB.DB.Create(s.faculty)
}

func (s *SettingsServiceIntegrationTestSuite) TestMissingToggleDefaultsToEnabled() {
	// No rows written yet; both toggles must read as enabled
	value, err := s.settingsService.Get(models.SettingRepCanPost)
	assert.NoError(s.T(), err)
	assert.True(s.T(), value)

	all, err := s.settingsService.GetAll()
	assert.NoError(s.T(), err)
	assert.True(s.T(), all[models.SettingFacultyCanPost])
	assert.True(s.T(), all[models.SettingRepCanPost])
}

func (s *SettingsServiceIntegrationTestSuite) TestSetAndGet() {
	err := s.settingsService.Set(models.SettingRepCanPost, false, s.admin.AsModel())
	assert.NoError(s.T(), err)

	value, err := s.settingsService.Get(models.SettingRepCanPost)
	assert.NoError(s.T(), err)
	assert.False(s.T(), value)

	// The other toggle keeps its default
	value, err = s.settingsService.Get(models.SettingFacultyCanPost)
	assert.NoError(s.T(), err)
	assert.True(s.T(), value)
}

func (s *SettingsServiceIntegrationTestSuite) TestSetOverwritesExistingRow() {
	assert.NoError(s.T(), s.settingsService.Set(models.SettingRepCanPost, false, s.admin.AsModel()))
	assert.NoError(s.T(), s.settingsService.Set(models.SettingRepCanPost, true, s.admin.AsModel()))

	value, err := s.settingsService.Get(models.SettingRepCanPost)
	assert.NoError(s.T(), err)
	assert.True(s.T(), value)

	var count int64
	s.testDB.DB.Model(&testutil.TestAppSetting{}).Count(&count)
	assert.Equal(s.T(), int64(1), count)
}

func (s *SettingsServiceIntegrationTestSuite) TestSetRequiresActiveAdmin() {
	err := s.settingsService.Set(models.SettingRepCanPost, false, s.faculty.AsModel())
	assert.ErrorIs(s.T(), err, service.ErrSettingsForbidden)

	inactiveAdmin, _ := testutil.CreateTestUser("Off Admin", "off-admin@example.edu", "Admin123456", models.RoleAdmin, false)
	s.testDB.DB.Create(inactiveAdmin)
	err = s.settingsService.Set(models.SettingRepCanPost, false, inactiveAdmin.AsModel())
	assert.ErrorIs(s.T(), err, service.ErrSettingsForbidden)
}

func (s *SettingsServiceIntegrationTestSuite) TestSetRejectsUnknownKey() {
	err := s.settingsService.Set(models.SettingKey("students_can_post_jobs"), true, s.admin.AsModel())
	assert.ErrorIs(s.T(), err, service.ErrInvalidSettingKey)
}

// TestSettingsServiceIntegrationTestSuite runs the test suite
func TestSettingsServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceIntegrationTestSuite))
}
