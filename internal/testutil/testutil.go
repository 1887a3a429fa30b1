package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestDatabase holds test database connection (in-memory SQLite)
type TestDatabase struct {
	DB  *gorm.DB
	DSN string
}

// TestRedis holds test Redis mock (miniredis)
type TestRedis struct {
	Server *miniredis.Miniredis
	URL    string
}

// TestUser is a SQLite-compatible version of models.User for testing
type TestUser struct {
	ID           string `gorm:"type:text;primaryKey"` // SQLite uses TEXT for UUID
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'student'"`
	IsActive     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for GORM
func (TestUser) TableName() string {
	return "users"
}

// TestPosting is a SQLite-compatible version of models.Posting for testing
type TestPosting struct {
	ID            string `gorm:"type:text;primaryKey"`
	Title         string `gorm:"type:varchar(200);not null"`
	Company       string `gorm:"type:varchar(100);not null"`
	Industry      string `gorm:"type:varchar(100)"`
	JobType       string `gorm:"type:varchar(20);not null"`
	Description   string `gorm:"type:text;not null"`
	Skills        string `gorm:"type:text"`
	Deadline      time.Time `gorm:"not null;index"`
	Status        string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionNote *string `gorm:"type:text"`
	CreatedBy     *string `gorm:"type:text;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName overrides the table name for GORM
func (TestPosting) TableName() string {
	return "postings"
}

// TestApplication is a SQLite-compatible version of models.Application
type TestApplication struct {
	ID        string `gorm:"type:text;primaryKey"`
	JobID     string `gorm:"type:text;not null;uniqueIndex:idx_job_student"`
	StudentID string `gorm:"type:text;not null;uniqueIndex:idx_job_student"`
	Status    string `gorm:"type:varchar(20);not null;default:'applied'"`
	AppliedAt time.Time
}

// TableName overrides the table name for GORM
func (TestApplication) TableName() string {
	return "applications"
}

// TestSavedJob is a SQLite-compatible version of models.SavedJob
type TestSavedJob struct {
	ID        string `gorm:"type:text;primaryKey"`
	JobID     string `gorm:"type:text;not null;uniqueIndex:idx_saved_job_student"`
	StudentID string `gorm:"type:text;not null;uniqueIndex:idx_saved_job_student"`
	CreatedAt time.Time
}

// TableName overrides the table name for GORM
func (TestSavedJob) TableName() string {
	return "saved_jobs"
}

// TestAppSetting is a SQLite-compatible version of models.AppSetting
type TestAppSetting struct {
	Key       string `gorm:"type:varchar(50);primaryKey"`
	Value     bool   `gorm:"not null"`
	UpdatedBy string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName overrides the table name for GORM
func (TestAppSetting) TableName() string {
	return "app_settings"
}

// TestAuditRecord is a SQLite-compatible version of models.AuditRecord
type TestAuditRecord struct {
	ID        string `gorm:"type:text;primaryKey"`
	UserID    string `gorm:"type:text;not null;index"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(100);not null"`
	Role      string `gorm:"type:varchar(20);not null"`
	DeletedBy string `gorm:"type:varchar(100);not null"`
	Reason    string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName overrides the table name for GORM
func (TestAuditRecord) TableName() string {
	return "audit_records"
}

// SetupTestDatabase creates an in-memory SQLite database for integration tests
// No Docker required! Fast and isolated.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	dsn := "file::memory:?cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Auto-migrate SQLite-compatible test models
	err = db.AutoMigrate(
		&TestUser{},
		&TestPosting{},
		&TestApplication{},
		&TestSavedJob{},
		&TestAppSetting{},
		&TestAuditRecord{},
	)
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDatabase{
		DB:  db,
		DSN: dsn,
	}
}

// Teardown cleans up the test database (closes connection)
func (td *TestDatabase) Teardown(t *testing.T) {
	sqlDB, err := td.DB.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// SetupTestRedis creates an in-memory Redis mock (miniredis)
func SetupTestRedis(t *testing.T) *TestRedis {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	redisURL := fmt.Sprintf("redis://%s", server.Addr())

	return &TestRedis{
		Server: server,
		URL:    redisURL,
	}
}

// Teardown cleans up the test Redis mock
func (tr *TestRedis) Teardown(t *testing.T) {
	tr.Server.Close()
}

// CleanDatabase deletes all records from tables (for test isolation)
func CleanDatabase(t *testing.T, db *gorm.DB) {
	// SQLite doesn't support TRUNCATE
	tables := []string{"applications", "saved_jobs", "postings", "audit_records", "app_settings", "users"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("Warning: Failed to clean table %s: %v", table, err)
		}
	}
}
