package service_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/campushire/jobboard/internal/auditlog"
	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/internal/revocation"
	"github.com/campushire/jobboard/internal/service"
	"github.com/campushire/jobboard/internal/testutil"
	"github.com/campushire/jobboard/pkg/logger"
)

const testJournalPath = "/tmp/test_audit_journal.log"

// AccountServiceIntegrationTestSuite defines test suite
type AccountServiceIntegrationTestSuite struct {
	suite.Suite
	testDB         *testutil.TestDatabase
	testRedis      *testutil.TestRedis
	journal        *auditlog.Journal
	revoker        revocation.Store
	accountService *service.AccountService

	student *testutil.TestUser
	rep     *testutil.TestUser
	admin   *testutil.TestUser
}

// SetupSuite runs before all tests
func (s *AccountServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.testRedis = testutil.SetupTestRedis(s.T())

	revoker, err := revocation.NewRedisStore(s.testRedis.URL)
	assert.NoError(s.T(), err)
	s.revoker = revoker
}

// TearDownSuite runs after all tests
func (s *AccountServiceIntegrationTestSuite) TearDownSuite() {
	if s.journal != nil {
		s.journal.Close()
	}
	os.Remove(testJournalPath)
	s.revoker.Close()
	s.testDB.Teardown(s.T())
	s.testRedis.Teardown(s.T())
}

// SetupTest runs before each test
func (s *AccountServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	// Fresh journal file per test
	if s.journal != nil {
		s.journal.Close()
	}
	os.Remove(testJournalPath)
	journal, err := auditlog.NewJournal(testJournalPath)
	assert.NoError(s.T(), err)
	s.journal = journal

	s.accountService = service.NewAccountService(
		repository.NewUserRepository(s.testDB.DB),
		repository.NewPostingRepository(s.testDB.DB),
		repository.NewApplicationRepository(s.testDB.DB),
		repository.NewSavedJobRepository(s.testDB.DB),
		repository.NewAuditRepository(s.testDB.DB),
		s.journal,
		s.revoker,
		24*time.Hour,
	)

	s.student, _ = testutil.DefaultStudent()
	s.rep, _ = testutil.DefaultRep()
	s.admin, _ = testutil.DefaultAdmin()
	s.testDB.DB.Create(s.student)
	s.testDB.DB.Create(s.rep)
	s.testDB.DB.Create(s.admin)
}

func (s *AccountServiceIntegrationTestSuite) TestSelfDeleteStudentRemovesRowAndRecords() {
	studentID := testutil.MustParseUUID(s.student.ID)

	// Seed an application and a saved job for the student
	posting := testutil.CreateTestPosting(s.rep.ID, models.StatusActive, clockDay.AddDate(0, 1, 0))
	s.testDB.DB.Create(posting)
	s.testDB.DB.Create(&testutil.TestApplication{
		ID:        "00000000-0000-0000-0000-00000000a001",
		JobID:     posting.ID,
		StudentID: s.student.ID,
		Status:    string(models.AppStatusApplied),
	})
	s.testDB.DB.Create(&testutil.TestSavedJob{
		ID:        "00000000-0000-0000-0000-00000000b001",
		JobID:     posting.ID,
		StudentID: s.student.ID,
	})

	err := s.accountService.DeleteAccount(studentID, s.student.AsModel(), "leaving university")
	assert.NoError(s.T(), err)

	// Self-initiated: the directory row is gone entirely
	var userCount int64
	s.testDB.DB.Model(&testutil.TestUser{}).Where("id = ?", s.student.ID).Count(&userCount)
	assert.Equal(s.T(), int64(0), userCount)

	// Student data is gone too
	var appCount, savedCount int64
	s.testDB.DB.Model(&testutil.TestApplication{}).Where("student_id = ?", s.student.ID).Count(&appCount)
	s.testDB.DB.Model(&testutil.TestSavedJob{}).Where("student_id = ?", s.student.ID).Count(&savedCount)
	assert.Equal(s.T(), int64(0), appCount)
	assert.Equal(s.T(), int64(0), savedCount)

	// The audit record survives with the pre-deletion identity
	var record testutil.TestAuditRecord
	result := s.testDB.DB.Where("user_id = ?", s.student.ID).First(&record)
	assert.NoError(s.T(), result.Error)
	assert.Equal(s.T(), s.student.Email, record.Email)
	assert.Equal(s.T(), "self", record.DeletedBy)
	assert.Equal(s.T(), "leaving university", record.Reason)

	// Journal holds the same event
	entries, err := s.journal.ReadAll()
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 1)
	assert.Equal(s.T(), s.student.ID, entries[0].UserID)
	assert.Equal(s.T(), "self", entries[0].DeletedBy)

	// Outstanding tokens are dead
	revoked, err := s.revoker.IsRevoked(studentID)
	assert.NoError(s.T(), err)
	assert.True(s.T(), revoked)
}

func (s *AccountServiceIntegrationTestSuite) TestAdminDeleteRepAnonymizesAndDetachesPostings() {
	repID := testutil.MustParseUUID(s.rep.ID)

	posting := testutil.CreateTestPosting(s.rep.ID, models.StatusActive, clockDay.AddDate(0, 1, 0))
	s.testDB.DB.Create(posting)

	err := s.accountService.DeleteAccount(repID, s.admin.AsModel(), "policy violation")
	assert.NoError(s.T(), err)

	// Admin-initiated: the row stays but carries no identity
	var stored testutil.TestUser
	result := s.testDB.DB.Where("id = ?", s.rep.ID).First(&stored)
	assert.NoError(s.T(), result.Error)
	assert.Equal(s.T(), "deleted user", stored.Name)
	assert.NotEqual(s.T(), s.rep.Email, stored.Email)
	assert.False(s.T(), stored.IsActive)

	// The posting survives its creator
	var storedPosting testutil.TestPosting
	result = s.testDB.DB.Where("id = ?", posting.ID).First(&storedPosting)
	assert.NoError(s.T(), result.Error)
	assert.Nil(s.T(), storedPosting.CreatedBy)

	// Audit record names the admin who pulled the trigger
	var record testutil.TestAuditRecord
	result = s.testDB.DB.Where("user_id = ?", s.rep.ID).First(&record)
	assert.NoError(s.T(), result.Error)
	assert.Equal(s.T(), s.admin.Email, record.DeletedBy)

	revoked, err := s.revoker.IsRevoked(repID)
	assert.NoError(s.T(), err)
	assert.True(s.T(), revoked)
}

func (s *AccountServiceIntegrationTestSuite) TestDeleteByStrangerNotAllowed() {
	err := s.accountService.DeleteAccount(testutil.MustParseUUID(s.student.ID), s.rep.AsModel(), "")
	assert.ErrorIs(s.T(), err, service.ErrDeleteNotAllowed)

	// Nothing was touched
	var userCount int64
	s.testDB.DB.Model(&testutil.TestUser{}).Where("id = ?", s.student.ID).Count(&userCount)
	assert.Equal(s.T(), int64(1), userCount)

	entries, err := s.journal.ReadAll()
	assert.NoError(s.T(), err)
	assert.Len(s.T(), entries, 0)
}

func (s *AccountServiceIntegrationTestSuite) TestDeleteUnknownUser() {
	err := s.accountService.DeleteAccount(testutil.MustParseUUID("00000000-0000-0000-0000-0000000000ff"), s.admin.AsModel(), "")
	assert.ErrorIs(s.T(), err, service.ErrUserNotFound)
}

// TestAccountServiceIntegrationTestSuite runs the test suite
func TestAccountServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceIntegrationTestSuite))
}
