package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/utils"
)

// CreateTestUser creates a SQLite-compatible test user with hashed password
func CreateTestUser(name, email, password string, role models.Role, active bool) (*TestUser, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &TestUser{
		ID:           uuid.New().String(), // SQLite stores UUID as string
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         string(role),
		IsActive:     active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// AsModel converts a TestUser into the model the services consume
func (u *TestUser) AsModel() *models.User {
	return &models.User{
		ID:           uuid.MustParse(u.ID),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         models.Role(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// CreateTestPosting creates a SQLite-compatible posting owned by creatorID
func CreateTestPosting(creatorID string, status models.PostingStatus, deadline time.Time) *TestPosting {
	creator := creatorID
	return &TestPosting{
		ID:          uuid.New().String(),
		Title:       "Software Intern",
		Company:     "Acme Corp",
		Industry:    "Technology",
		JobType:     string(models.JobTypeInternship),
		Description: "Build things",
		Skills:      "Go,SQL",
		Deadline:    deadline,
		Status:      string(status),
		CreatedBy:   &creator,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// DefaultStudent returns a default active student account
func DefaultStudent() (*TestUser, error) {
	return CreateTestUser("Test Student", "student@example.edu", "Student123", models.RoleStudent, true)
}

// DefaultFaculty returns a default approved faculty account
func DefaultFaculty() (*TestUser, error) {
	return CreateTestUser("Test Faculty", "faculty@example.edu", "Faculty123", models.RoleFaculty, true)
}

// DefaultRep returns a default approved company rep account
func DefaultRep() (*TestUser, error) {
	return CreateTestUser("Test Rep", "rep@example.com", "RepPass123", models.RoleRep, true)
}

// DefaultAdmin returns a default admin account
func DefaultAdmin() (*TestUser, error) {
	return CreateTestUser("Test Admin", "admin@example.edu", "Admin123456", models.RoleAdmin, true)
}
