package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/jobboard/internal/models"
)

// Test constants
const (
	testSecret          = "test-secret-key-for-jwt-testing"
	testWrongSecret     = "wrong-secret-key-for-jwt-testing"
	testTokenDuration   = 1 * time.Hour
	testExpiredDuration = -1 * time.Hour
)

// Helper function to create test user
func createTestUser(role models.Role) *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "test@example.edu",
		Role:  role,
	}
}

func TestGenerateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleStudent)

	token, err := GenerateToken(user, testSecret, testTokenDuration)

	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_AllRoles(t *testing.T) {
	roles := []models.Role{models.RoleStudent, models.RoleFaculty, models.RoleRep, models.RoleAdmin}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			user := createTestUser(role)

			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should work for all roles")
			assert.NotEmpty(t, token)

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role, "Token should carry the correct role")
		})
	}
}

func TestGenerateToken_ZeroDuration(t *testing.T) {
	user := createTestUser(models.RoleStudent)

	token, err := GenerateToken(user, testSecret, 0)

	require.NoError(t, err, "GenerateToken should handle zero duration")
	assert.NotEmpty(t, token)

	// Token should be immediately expired
	_, err = ValidateToken(token, testSecret)
	assert.Error(t, err, "Token with zero duration should be expired")
}

func TestValidateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleFaculty)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err, "ValidateToken should not return error for valid token")
	assert.NotNil(t, claims, "Claims should not be nil")
	assert.Equal(t, user.ID, claims.UserID, "UserID should match")
	assert.Equal(t, user.Email, claims.Email, "Email should match")
	assert.Equal(t, user.Name, claims.Name, "Name should match")
	assert.Equal(t, user.Role, claims.Role, "Role should match")
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()), "Token should not be expired")
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	user := createTestUser(models.RoleStudent)
	token, err := GenerateToken(user, testSecret, testExpiredDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	assert.Error(t, err, "ValidateToken should return error for expired token")
	assert.Nil(t, claims, "Claims should be nil for expired token")
}

func TestValidateToken_InvalidToken(t *testing.T) {
	invalidTokens := []string{
		"",
		"invalid.token.here",
		"not-a-jwt-token",
		"a.b",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", // Only header
	}

	for _, invalidToken := range invalidTokens {
		t.Run(invalidToken, func(t *testing.T) {
			claims, err := ValidateToken(invalidToken, testSecret)

			assert.Error(t, err, "ValidateToken should return error for invalid token")
			assert.Nil(t, claims, "Claims should be nil for invalid token")
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := createTestUser(models.RoleAdmin)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testWrongSecret)

	assert.Error(t, err, "ValidateToken should return error for wrong secret")
	assert.Nil(t, claims, "Claims should be nil when secret is wrong")
}

func TestValidateToken_TamperedToken(t *testing.T) {
	user := createTestUser(models.RoleStudent)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	// Tamper with the token by modifying the signature
	tamperedToken := token[:len(token)-5] + "XXXXX"

	claims, err := ValidateToken(tamperedToken, testSecret)

	assert.Error(t, err, "ValidateToken should return error for tampered token")
	assert.Nil(t, claims, "Claims should be nil for tampered token")
}

func TestToken_RoundTrip(t *testing.T) {
	users := []*models.User{
		createTestUser(models.RoleStudent),
		createTestUser(models.RoleAdmin),
		{
			ID:    uuid.New(),
			Name:  "Çiğdem Öztürk",
			Email: "unicode@example.edu",
			Role:  models.RoleFaculty,
		},
	}

	for _, user := range users {
		t.Run(user.Name, func(t *testing.T) {
			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should succeed")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err, "ValidateToken should succeed")

			assert.Equal(t, user.ID, claims.UserID, "UserID should match")
			assert.Equal(t, user.Email, claims.Email, "Email should match")
			assert.Equal(t, user.Role, claims.Role, "Role should match")
		})
	}
}

// Benchmark tests
func BenchmarkGenerateToken(b *testing.B) {
	user := createTestUser(models.RoleStudent)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GenerateToken(user, testSecret, testTokenDuration)
	}
}

func BenchmarkValidateToken(b *testing.B) {
	user := createTestUser(models.RoleStudent)
	token, _ := GenerateToken(user, testSecret, testTokenDuration)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(token, testSecret)
	}
}
