package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateRandomOTP()
		assert.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(16)
	assert.Len(t, password, 16)
	for _, c := range password {
		assert.True(t, strings.ContainsRune(string(letters), c))
	}
}

func TestGenerateUsernameFromFullName(t *testing.T) {
	username := GenerateUsernameFromFullName("Wei Jun Tan")
	assert.True(t, strings.HasPrefix(username, "weijuntan"))
	assert.NotContains(t, username, " ")
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("initial-password", "example.com", 7)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("initial-password")))
	assert.True(t, strings.HasSuffix(user.Email, "@example.com"))
	assert.Equal(t, int32(7), user.AnnualLeaveRemaining)
	assert.Contains(t, []domain.Role{domain.RoleDriver, domain.RoleTechnician}, user.Role)
	if user.Role == domain.RoleTechnician {
		assert.NotEmpty(t, user.Brand)
	} else {
		assert.Empty(t, user.Brand)
	}
}
